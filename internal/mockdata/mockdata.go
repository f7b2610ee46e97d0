// Package mockdata seeds both stores with generated catalogs. Generation
// is deterministic for a given seed so demo runs and tests are repeatable.
package mockdata

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/DeepakKumarDu/giftdesk/internal/models"
)

// Option lists the filter sidebars render.
var (
	ProductCategories = []string{"Electronics", "Clothing", "Food", "Sports", "Home", "Accessories"}
	Categories        = []string{"Shoes", "Clothing", "Electronics", "Sports"}
	Vendors           = []string{"Amazon", "Shopify", "eBay", "Etsy", "Walmart"}
)

var (
	colorTokens = []string{"#7B2FBE", "#3B82F6", "#EF4444", "#10B981", "#F59E0B", "#EC4899"}
	sizeTokens  = []string{"XS", "S", "M", "L", "XL", "XXL"}
)

// CatalogItems generates n admin catalog items: categories cycled from a
// fixed list, prices between 5 and 35, every third item Inactive.
func CatalogItems(n int, seed int64) []models.CatalogItem {
	rng := rand.New(rand.NewSource(seed))

	items := make([]models.CatalogItem, 0, n)
	for i := 0; i < n; i++ {
		status := models.StatusActive
		if i%3 == 0 {
			status = models.StatusInactive
		}

		items = append(items, models.CatalogItem{
			ID:             fmt.Sprintf("1234567%d", i),
			Name:           "Product Name",
			Price:          roundCents(rng.Float64()*30 + 5),
			Category:       ProductCategories[i%5],
			ProcessingTime: fmt.Sprintf("%d Days", rng.Intn(5)+1),
			Description:    "High-quality product with excellent features and durability.",
			Status:         status,
			Image:          "",
		})
	}

	return items
}

// SendProducts generates n send-flow items: vendors and categories
// cycled, 2-5 colors, 3-6 sizes, prices between 50 and 250.
func SendProducts(n int, seed int64) []models.SendProduct {
	rng := rand.New(rand.NewSource(seed))

	products := make([]models.SendProduct, 0, n)
	for i := 0; i < n; i++ {
		colorCount := rng.Intn(4) + 2
		sizeCount := rng.Intn(4) + 3

		products = append(products, models.SendProduct{
			ID:       fmt.Sprintf("send-%d", i),
			Name:     "Item Name",
			Price:    roundCents(rng.Float64()*200 + 50),
			Vendor:   Vendors[i%4],
			Category: Categories[i%4],
			Image:    "",
			Colors:   append([]string(nil), colorTokens[:colorCount]...),
			Sizes:    append([]string(nil), sizeTokens[:sizeCount]...),
			Description: "Experience unmatched comfort and performance with our premium product. " +
				"Engineered for everyday use, combining sleek design with superior quality " +
				"to keep you satisfied all day long.",
			Thumbnails: []string{"", "", ""},
		})
	}

	return products
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
