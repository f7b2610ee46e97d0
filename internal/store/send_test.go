package store_test

import (
	"testing"
	"time"

	appErrors "github.com/DeepakKumarDu/giftdesk/internal/errors"
	"github.com/DeepakKumarDu/giftdesk/internal/models"
	"github.com/DeepakKumarDu/giftdesk/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendSeed() []models.SendProduct {
	return []models.SendProduct{
		{
			ID:       "send-0",
			Name:     "Trail Shoes",
			Price:    120,
			Vendor:   "Amazon",
			Category: "Shoes",
			Colors:   []string{"red", "blue"},
			Sizes:    []string{"S", "M"},
		},
		{
			ID:       "send-1",
			Name:     "Canvas Tote",
			Price:    40,
			Vendor:   "Etsy",
			Category: "Clothing",
			Colors:   []string{"green"},
			Sizes:    []string{"L"},
		},
	}
}

func validForm() models.RecipientFormPatch {
	email := "sam.rivera@example.com"
	name := "Sam Rivera"
	addr := "12 Harbor Way"
	country := "USA"
	city := "Portland"
	state := "OR"
	zip := "97201"

	return models.RecipientFormPatch{
		RecipientEmail: &email,
		RecipientName:  &name,
		AddressLine1:   &addr,
		Country:        &country,
		City:           &city,
		State:          &state,
		ZipCode:        &zip,
	}
}

// Drives the store to the Recipient phase with a valid selection.
func storeAtRecipient(t *testing.T, opts ...store.SendOption) *store.SendStore {
	t.Helper()

	s := store.NewSendStore(sendSeed(), opts...)
	require.NoError(t, s.OpenDetail(sendSeed()[0]))
	require.NoError(t, s.SetSelectedColor("red"))
	require.NoError(t, s.SetSelectedSize("M"))
	require.NoError(t, s.OpenRecipient())

	return s
}

func TestSendWorkflowHappyPath(t *testing.T) {
	// Arrange
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := store.NewSendStore(sendSeed(), store.WithClock(func() time.Time { return fixed }))
	product := sendSeed()[0]

	// Act / Assert - Browse -> Detail with a cleared selection
	require.NoError(t, s.OpenDetail(product))
	snap := s.Snapshot()
	assert.Equal(t, models.PhaseDetail, snap.Phase)
	require.NotNil(t, snap.SelectedProduct)
	assert.Equal(t, product.ID, snap.SelectedProduct.ID)
	assert.Empty(t, snap.SelectedColor)
	assert.Empty(t, snap.SelectedSize)

	// picking a variant stays in Detail
	require.NoError(t, s.SetSelectedColor("red"))
	require.NoError(t, s.SetSelectedSize("M"))
	assert.Equal(t, models.PhaseDetail, s.Snapshot().Phase)

	// Detail -> Recipient
	require.NoError(t, s.OpenRecipient())
	assert.Equal(t, models.PhaseRecipient, s.Snapshot().Phase)

	require.NoError(t, s.UpdateRecipientForm(validForm()))

	// Recipient -> Success with exactly one order appended
	order, err := s.ConfirmOrder()
	require.NoError(t, err)

	snap = s.Snapshot()
	assert.Equal(t, models.PhaseSuccess, snap.Phase)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, order.ID, snap.Orders[0].ID)
	assert.Equal(t, "red", order.SelectedColor)
	assert.Equal(t, "M", order.SelectedSize)
	assert.Equal(t, product.ID, order.Product.ID)
	assert.Equal(t, "Sam Rivera", order.RecipientName)
	assert.Equal(t, fixed, order.CreatedAt)

	// selection and draft reset for the next send
	assert.Nil(t, snap.SelectedProduct)
	assert.Empty(t, snap.SelectedColor)
	assert.Empty(t, snap.SelectedSize)
	assert.Equal(t, models.RecipientForm{}, snap.RecipientForm)

	// Success -> Browse
	require.NoError(t, s.CloseSuccess())
	assert.Equal(t, models.PhaseBrowse, s.Snapshot().Phase)
}

func TestSendPhaseMachine(t *testing.T) {
	assertInvalid := func(t *testing.T, err error, s *store.SendStore, want models.Phase) {
		t.Helper()

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeInvalidTransition, appErr.Code)
		assert.Equal(t, want, s.Snapshot().Phase)
	}

	t.Run("Failure - Confirm Order From Browse Is Rejected", func(t *testing.T) {
		s := store.NewSendStore(sendSeed())

		_, err := s.ConfirmOrder()

		assertInvalid(t, err, s, models.PhaseBrowse)
		assert.Empty(t, s.Snapshot().Orders)
		assert.Nil(t, s.Snapshot().SelectedProduct)
	})

	t.Run("Failure - Detail Events Outside Detail", func(t *testing.T) {
		s := store.NewSendStore(sendSeed())

		assertInvalid(t, s.CloseDetail(), s, models.PhaseBrowse)
		assertInvalid(t, s.SetSelectedColor("red"), s, models.PhaseBrowse)
		assertInvalid(t, s.OpenRecipient(), s, models.PhaseBrowse)
	})

	t.Run("Failure - Open Detail Twice", func(t *testing.T) {
		s := store.NewSendStore(sendSeed())
		require.NoError(t, s.OpenDetail(sendSeed()[0]))

		assertInvalid(t, s.OpenDetail(sendSeed()[1]), s, models.PhaseDetail)
	})

	t.Run("Failure - Close Success Outside Success", func(t *testing.T) {
		s := store.NewSendStore(sendSeed())
		require.NoError(t, s.OpenDetail(sendSeed()[0]))

		assertInvalid(t, s.CloseSuccess(), s, models.PhaseDetail)
	})

	t.Run("Success - Exactly One Phase After Any Valid Sequence", func(t *testing.T) {
		s := storeAtRecipient(t)
		known := []models.Phase{
			models.PhaseBrowse, models.PhaseDetail, models.PhaseRecipient, models.PhaseSuccess,
		}

		require.NoError(t, s.CloseRecipient())
		assert.Contains(t, known, s.Snapshot().Phase)
		require.NoError(t, s.CloseDetail())
		assert.Equal(t, models.PhaseBrowse, s.Snapshot().Phase)
	})
}

func TestSendVariantSelection(t *testing.T) {
	t.Run("Failure - Color Not Offered By Product", func(t *testing.T) {
		s := store.NewSendStore(sendSeed())
		require.NoError(t, s.OpenDetail(sendSeed()[0]))

		err := s.SetSelectedColor("purple")

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Empty(t, s.Snapshot().SelectedColor)
	})

	t.Run("Failure - Recipient Blocked Until Variant Chosen", func(t *testing.T) {
		s := store.NewSendStore(sendSeed())
		require.NoError(t, s.OpenDetail(sendSeed()[0]))
		require.NoError(t, s.SetSelectedColor("red"))

		err := s.OpenRecipient()

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Equal(t, models.PhaseDetail, s.Snapshot().Phase)
	})
}

func TestSendBackNavigation(t *testing.T) {
	t.Run("Success - Draft And Selection Survive Going Back", func(t *testing.T) {
		// Arrange
		s := storeAtRecipient(t)
		require.NoError(t, s.UpdateRecipientForm(validForm()))

		// Act - back to Detail, then forward again
		require.NoError(t, s.CloseRecipient())

		snap := s.Snapshot()
		assert.Equal(t, models.PhaseDetail, snap.Phase)
		assert.Equal(t, "red", snap.SelectedColor)
		assert.Equal(t, "M", snap.SelectedSize)
		assert.Equal(t, "Sam Rivera", snap.RecipientForm.RecipientName)

		require.NoError(t, s.OpenRecipient())

		// Assert
		snap = s.Snapshot()
		assert.Equal(t, models.PhaseRecipient, snap.Phase)
		assert.Equal(t, "sam.rivera@example.com", snap.RecipientForm.RecipientEmail)
	})

	t.Run("Success - Partial Patch Merges Into Draft", func(t *testing.T) {
		s := storeAtRecipient(t)
		require.NoError(t, s.UpdateRecipientForm(validForm()))

		city := "Salem"
		require.NoError(t, s.UpdateRecipientForm(models.RecipientFormPatch{City: &city}))

		snap := s.Snapshot()
		assert.Equal(t, "Salem", snap.RecipientForm.City)
		assert.Equal(t, "Sam Rivera", snap.RecipientForm.RecipientName, "untouched fields preserved")
	})
}

func TestSendConfirmOrder(t *testing.T) {
	t.Run("Failure - Invalid Email Leaves State Unchanged", func(t *testing.T) {
		// Arrange
		s := storeAtRecipient(t)
		patch := validForm()
		bad := "not-an-email"
		patch.RecipientEmail = &bad
		require.NoError(t, s.UpdateRecipientForm(patch))

		// Act
		_, err := s.ConfirmOrder()

		// Assert
		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)

		snap := s.Snapshot()
		assert.Equal(t, models.PhaseRecipient, snap.Phase)
		assert.Empty(t, snap.Orders)
		assert.NotNil(t, snap.SelectedProduct)
	})

	t.Run("Failure - Missing Required Fields", func(t *testing.T) {
		s := storeAtRecipient(t)
		email := "sam.rivera@example.com"
		require.NoError(t, s.UpdateRecipientForm(models.RecipientFormPatch{RecipientEmail: &email}))

		_, err := s.ConfirmOrder()

		require.Error(t, err)
		assert.Empty(t, s.Snapshot().Orders)
	})

	t.Run("Success - Product Captured By Value", func(t *testing.T) {
		s := store.NewSendStore(sendSeed())
		product := sendSeed()[0]
		require.NoError(t, s.OpenDetail(product))
		require.NoError(t, s.SetSelectedColor("red"))
		require.NoError(t, s.SetSelectedSize("M"))
		require.NoError(t, s.OpenRecipient())
		require.NoError(t, s.UpdateRecipientForm(validForm()))

		// mutating the caller's copy must not reach the confirmed order
		product.Colors[0] = "mutated"

		order, err := s.ConfirmOrder()
		require.NoError(t, err)
		assert.Equal(t, "red", order.Product.Colors[0])
	})

	t.Run("Success - Orders Are Append Only Across Sends", func(t *testing.T) {
		s := store.NewSendStore(sendSeed())

		for _, id := range []string{"send-0", "send-1"} {
			var product models.SendProduct
			for _, p := range sendSeed() {
				if p.ID == id {
					product = p
				}
			}

			require.NoError(t, s.OpenDetail(product))
			require.NoError(t, s.SetSelectedColor(product.Colors[0]))
			require.NoError(t, s.SetSelectedSize(product.Sizes[0]))
			require.NoError(t, s.OpenRecipient())
			require.NoError(t, s.UpdateRecipientForm(validForm()))
			_, err := s.ConfirmOrder()
			require.NoError(t, err)
			require.NoError(t, s.CloseSuccess())
		}

		orders := s.Snapshot().Orders
		require.Len(t, orders, 2)
		assert.Equal(t, "send-0", orders[0].Product.ID)
		assert.Equal(t, "send-1", orders[1].Product.ID)
		assert.NotEqual(t, orders[0].ID, orders[1].ID)
	})
}

func TestSendFilters(t *testing.T) {
	t.Run("Success - Toggle Is Symmetric", func(t *testing.T) {
		s := store.NewSendStore(sendSeed())

		s.ToggleCategory("Shoes")
		assert.Equal(t, []string{"Shoes"}, s.Snapshot().Filters.Categories)

		s.ToggleCategory("Clothing")
		assert.Equal(t, []string{"Shoes", "Clothing"}, s.Snapshot().Filters.Categories)

		s.ToggleCategory("Shoes")
		assert.Equal(t, []string{"Clothing"}, s.Snapshot().Filters.Categories)

		s.ToggleVendor("Etsy")
		s.ToggleVendor("Etsy")
		assert.Empty(t, s.Snapshot().Filters.Vendors)
	})

	t.Run("Failure - Inverted Price Range Rejected", func(t *testing.T) {
		s := store.NewSendStore(sendSeed())

		err := s.SetPriceRange(300, 100)

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)

		snap := s.Snapshot()
		assert.Equal(t, float64(store.DefaultPriceMin), snap.Filters.PriceMin)
		assert.Equal(t, float64(store.DefaultPriceMax), snap.Filters.PriceMax)
	})

	t.Run("Success - Clear Resets To Hardcoded Defaults", func(t *testing.T) {
		s := store.NewSendStore(sendSeed())
		s.ToggleCategory("Shoes")
		s.ToggleVendor("Amazon")
		require.NoError(t, s.SetPriceRange(50, 100))
		s.SetSearchTerm("trail")
		s.SetSortBy(models.SendSortPriceDesc)

		s.ClearAllFilters()

		filters := s.Snapshot().Filters
		assert.Empty(t, filters.Categories)
		assert.Empty(t, filters.Vendors)
		assert.Equal(t, float64(0), filters.PriceMin)
		assert.Equal(t, float64(500), filters.PriceMax)
		assert.Empty(t, filters.SearchTerm)
		assert.Equal(t, models.SendSortDefault, filters.SortBy)
	})
}
