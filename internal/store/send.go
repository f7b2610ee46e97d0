package store

import (
	"sync"
	"time"

	appErrors "github.com/DeepakKumarDu/giftdesk/internal/errors"
	"github.com/DeepakKumarDu/giftdesk/internal/metrics"
	"github.com/DeepakKumarDu/giftdesk/internal/models"
	"github.com/DeepakKumarDu/giftdesk/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Price-range bounds ClearAllFilters resets to. Fixed, not derived from
// the seeded data.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 500
)

// SendStore owns the send-item catalog, the active filters, the workflow
// phase with its in-flight selection and recipient draft, and the
// append-only order log. The workflow is a single-active-phase machine:
// events dispatched from a phase that does not accept them are rejected
// and leave state untouched.
type SendStore struct {
	mu            sync.Mutex
	products      []models.SendProduct
	orders        []models.Order
	filters       models.SendFilters
	phase         models.Phase
	selected      *models.SendProduct
	selectedColor string
	selectedSize  string
	form          models.RecipientForm
	validate      *validator.Validate
	now           func() time.Time
}

type SendOption func(*SendStore)

// WithClock overrides the order timestamp source.
func WithClock(now func() time.Time) SendOption {
	return func(s *SendStore) {
		s.now = now
	}
}

// NewSendStore seeds the store with an externally supplied item list and
// starts in the Browse phase with default filters.
func NewSendStore(seed []models.SendProduct, opts ...SendOption) *SendStore {
	products := make([]models.SendProduct, len(seed))
	copy(products, seed)

	s := &SendStore{
		products: products,
		filters:  defaultFilters(),
		phase:    models.PhaseBrowse,
		validate: validator.New(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func defaultFilters() models.SendFilters {
	return models.SendFilters{
		Categories: []string{},
		Vendors:    []string{},
		PriceMin:   DefaultPriceMin,
		PriceMax:   DefaultPriceMax,
		SearchTerm: "",
		SortBy:     models.SendSortDefault,
	}
}

// Snapshot returns a copy of the full store state.
func (s *SendStore) Snapshot() models.SendSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]models.SendProduct, len(s.products))
	copy(products, s.products)

	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)

	filters := s.filters
	filters.Categories = append([]string(nil), s.filters.Categories...)
	filters.Vendors = append([]string(nil), s.filters.Vendors...)

	var selected *models.SendProduct
	if s.selected != nil {
		clone := s.selected.Clone()
		selected = &clone
	}

	return models.SendSnapshot{
		Products:        products,
		Orders:          orders,
		Filters:         filters,
		Phase:           s.phase,
		SelectedProduct: selected,
		SelectedColor:   s.selectedColor,
		SelectedSize:    s.selectedSize,
		RecipientForm:   s.form,
	}
}

// ToggleCategory adds the category to the multi-select if absent and
// removes it if present.
func (s *SendStore) ToggleCategory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters.Categories = toggleMember(s.filters.Categories, name)

	metrics.ObserveOperation("send", "toggle_category")
}

func (s *SendStore) ToggleVendor(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters.Vendors = toggleMember(s.filters.Vendors, name)

	metrics.ObserveOperation("send", "toggle_vendor")
}

func (s *SendStore) SetPriceRange(minPrice, maxPrice float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if minPrice > maxPrice {
		metrics.ObserveRejection("send", "set_price_range", appErrors.ErrCodeValidation)

		return appErrors.AddValidationError("price_range", "min must not exceed max")
	}

	s.filters.PriceMin = minPrice
	s.filters.PriceMax = maxPrice

	metrics.ObserveOperation("send", "set_price_range")

	return nil
}

func (s *SendStore) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters.SearchTerm = term

	metrics.ObserveOperation("send", "set_search_term")
}

func (s *SendStore) SetSortBy(sortBy models.SendSortOption) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters.SortBy = sortBy

	metrics.ObserveOperation("send", "set_sort_by")
}

func (s *SendStore) ClearAllFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = defaultFilters()

	metrics.ObserveOperation("send", "clear_all_filters")
}

// OpenDetail enters the Detail phase for the given product with a fresh,
// empty variant selection.
func (s *SendStore) OpenDetail(product models.SendProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseBrowse {
		return s.rejectTransition("open_detail")
	}

	clone := product.Clone()
	s.selected = &clone
	s.selectedColor = ""
	s.selectedSize = ""
	s.phase = models.PhaseDetail

	metrics.ObserveOperation("send", "open_detail")

	return nil
}

func (s *SendStore) CloseDetail() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseDetail {
		return s.rejectTransition("close_detail")
	}

	s.selected = nil
	s.selectedColor = ""
	s.selectedSize = ""
	s.phase = models.PhaseBrowse

	metrics.ObserveOperation("send", "close_detail")

	return nil
}

// SetSelectedColor picks a color in the Detail phase. The color must be
// one the selected product offers.
func (s *SendStore) SetSelectedColor(color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseDetail {
		return s.rejectTransition("set_selected_color")
	}

	if !s.selected.HasColor(color) {
		metrics.ObserveRejection("send", "set_selected_color", appErrors.ErrCodeValidation)

		return appErrors.AddValidationError("color", "not offered by this product")
	}

	s.selectedColor = color

	metrics.ObserveOperation("send", "set_selected_color")

	return nil
}

func (s *SendStore) SetSelectedSize(size string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseDetail {
		return s.rejectTransition("set_selected_size")
	}

	if !s.selected.HasSize(size) {
		metrics.ObserveRejection("send", "set_selected_size", appErrors.ErrCodeValidation)

		return appErrors.AddValidationError("size", "not offered by this product")
	}

	s.selectedSize = size

	metrics.ObserveOperation("send", "set_selected_size")

	return nil
}

// OpenRecipient advances Detail → Recipient. Both variant fields must be
// chosen first; the store enforces this rather than trusting the view's
// disabled-button state.
func (s *SendStore) OpenRecipient() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseDetail {
		return s.rejectTransition("open_recipient")
	}

	if s.selectedColor == "" || s.selectedSize == "" {
		metrics.ObserveRejection("send", "open_recipient", appErrors.ErrCodeValidation)

		return appErrors.ValidationError("select a color and a size first")
	}

	s.phase = models.PhaseRecipient

	metrics.ObserveOperation("send", "open_recipient")

	return nil
}

// CloseRecipient goes back to the Detail phase. The variant selection and
// the recipient draft are preserved.
func (s *SendStore) CloseRecipient() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseRecipient {
		return s.rejectTransition("close_recipient")
	}

	s.phase = models.PhaseDetail

	metrics.ObserveOperation("send", "close_recipient")

	return nil
}

// UpdateRecipientForm shallow-merges the patch into the draft.
func (s *SendStore) UpdateRecipientForm(patch models.RecipientFormPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseRecipient {
		return s.rejectTransition("update_recipient_form")
	}

	s.form = s.form.Apply(patch)

	metrics.ObserveOperation("send", "update_recipient_form")

	return nil
}

// ConfirmOrder validates the draft, appends an immutable Order capturing
// the product by value, clears the selection, resets the draft and enters
// the Success phase. On any failure state is unchanged.
func (s *SendStore) ConfirmOrder() (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseRecipient {
		return models.Order{}, s.rejectTransition("confirm_order")
	}

	if s.selected == nil {
		metrics.ObserveRejection("send", "confirm_order", appErrors.ErrCodeInvalidTransition)

		return models.Order{}, appErrors.InvalidTransitionError("no product selected")
	}

	if err := utils.ValidateStruct(s.validate, s.form); err != nil {
		metrics.ObserveRejection("send", "confirm_order", appErrors.ErrCodeValidation)

		return models.Order{}, err
	}

	order := models.Order{
		ID:            uuid.NewString(),
		Product:       s.selected.Clone(),
		SelectedColor: s.selectedColor,
		SelectedSize:  s.selectedSize,
		RecipientForm: s.form,
		CreatedAt:     s.now(),
	}

	s.orders = append(s.orders, order)
	s.selected = nil
	s.selectedColor = ""
	s.selectedSize = ""
	s.form = models.RecipientForm{}
	s.phase = models.PhaseSuccess

	metrics.ObserveOperation("send", "confirm_order")
	metrics.ObserveOrderConfirmed()

	return order, nil
}

func (s *SendStore) CloseSuccess() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseSuccess {
		return s.rejectTransition("close_success")
	}

	s.phase = models.PhaseBrowse

	metrics.ObserveOperation("send", "close_success")

	return nil
}

func (s *SendStore) rejectTransition(operation string) error {
	metrics.ObserveRejection("send", operation, appErrors.ErrCodeInvalidTransition)

	return appErrors.InvalidTransitionError("operation not allowed in phase " + string(s.phase)).
		WithDetail(operation)
}

func toggleMember(values []string, v string) []string {
	for i, val := range values {
		if val == v {
			return append(values[:i], values[i+1:]...)
		}
	}

	return append(values, v)
}
