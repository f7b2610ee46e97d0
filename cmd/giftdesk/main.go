package main

import (
	"log/slog"
	"os"

	"github.com/DeepakKumarDu/giftdesk/internal/config"
	"github.com/DeepakKumarDu/giftdesk/internal/mockdata"
	"github.com/DeepakKumarDu/giftdesk/internal/models"
	"github.com/DeepakKumarDu/giftdesk/internal/store"
	"github.com/DeepakKumarDu/giftdesk/internal/view"
)

// Demo driver standing in for the rendering layer: seeds both stores,
// walks one catalog query and one complete send-flow order, and logs the
// derived views along the way.
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Seed both stores from generated mock data
	catalog := store.NewCatalogStore(mockdata.CatalogItems(cfg.Seed.CatalogCount, cfg.Seed.Random))
	send := store.NewSendStore(mockdata.SendProducts(cfg.Seed.SendCount, cfg.Seed.Random))

	if cfg.Catalog.PageSize != store.DefaultPageSize {
		if err := catalog.SetPageSize(cfg.Catalog.PageSize); err != nil {
			slog.Error("❌ Invalid catalog page size", "error", err.Error())
			os.Exit(1)
		}
	}

	if err := send.SetPriceRange(cfg.SendFlow.PriceMin, cfg.SendFlow.PriceMax); err != nil {
		slog.Error("❌ Invalid send price range", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("stores seeded",
		slog.String("env", cfg.Env),
		slog.Int("catalog_items", len(catalog.Snapshot().Items)),
		slog.Int("send_products", len(send.Snapshot().Products)))

	// Catalog: search, sort, paginate
	catalog.SetSearchTerm("product")
	catalog.SetSortBy(models.SortPriceAsc)
	catalog.SetCurrentPage(2)

	snap := catalog.Snapshot()
	derived := view.DeriveCatalogView(snap.Items, snap.View)

	slog.Info("catalog view derived",
		slog.Int("page", snap.View.CurrentPage),
		slog.Int("rows", len(derived.Page)),
		slog.Int("total", derived.TotalCount),
		slog.Int("total_pages", derived.TotalPages),
		slog.Int("active", snap.ActiveCount()),
		slog.Int("inactive", snap.InactiveCount()),
		slog.Any("page_numbers", view.PageNumbers(snap.View.CurrentPage, derived.TotalPages)))

	// Send flow: filter, pick a variant, fill the recipient form, confirm
	send.ToggleVendor("Amazon")
	sendSnap := send.Snapshot()
	visible := view.DeriveSendView(sendSnap.Products, sendSnap.Filters)

	if len(visible) == 0 {
		slog.Warn("no send products match the active filters")

		return
	}

	product := visible[0]
	if err := runSendFlow(send, product); err != nil {
		slog.Error("❌ Send flow failed", "error", err.Error())
		os.Exit(1)
	}

	orders := send.Snapshot().Orders
	slog.Info("✅ Order confirmed",
		slog.String("order_id", orders[len(orders)-1].ID),
		slog.String("product", product.Name),
		slog.String("vendor", product.Vendor),
		slog.Int("orders_total", len(orders)))
}

func runSendFlow(send *store.SendStore, product models.SendProduct) error {
	if err := send.OpenDetail(product); err != nil {
		return err
	}
	if err := send.SetSelectedColor(product.Colors[0]); err != nil {
		return err
	}
	if err := send.SetSelectedSize(product.Sizes[0]); err != nil {
		return err
	}
	if err := send.OpenRecipient(); err != nil {
		return err
	}

	form := models.RecipientForm{
		RecipientEmail: "jordan.lee@example.com",
		RecipientName:  "Jordan Lee",
		AddressLine1:   "500 Market St",
		Country:        "USA",
		City:           "San Francisco",
		State:          "CA",
		ZipCode:        "94105",
	}
	if err := send.UpdateRecipientForm(patchFromForm(form)); err != nil {
		return err
	}

	if _, err := send.ConfirmOrder(); err != nil {
		return err
	}

	return send.CloseSuccess()
}

func patchFromForm(f models.RecipientForm) models.RecipientFormPatch {
	return models.RecipientFormPatch{
		RecipientEmail: &f.RecipientEmail,
		RecipientName:  &f.RecipientName,
		AddressLine1:   &f.AddressLine1,
		Country:        &f.Country,
		City:           &f.City,
		State:          &f.State,
		ZipCode:        &f.ZipCode,
	}
}
