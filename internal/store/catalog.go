// Package store holds the two state containers behind the UI: the admin
// product catalog and the send-item flow. Each store owns its state
// exclusively and exposes the enumerated operations as its only mutation
// surface; reads go through Snapshot plus the view package.
package store

import (
	"sync"

	appErrors "github.com/DeepakKumarDu/giftdesk/internal/errors"
	"github.com/DeepakKumarDu/giftdesk/internal/metrics"
	"github.com/DeepakKumarDu/giftdesk/internal/models"
	"github.com/DeepakKumarDu/giftdesk/internal/utils"
	"github.com/DeepakKumarDu/giftdesk/internal/view"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const DefaultPageSize = 8

// PageSizes are the only page sizes the catalog list offers.
var PageSizes = []int{8, 16, 32}

type CatalogStore struct {
	mu              sync.Mutex
	items           []models.CatalogItem
	view            models.CatalogViewState
	addModalOpen    bool
	addModalSuccess bool
	validate        *validator.Validate
}

// NewCatalogStore seeds the store with an externally supplied catalog.
func NewCatalogStore(seed []models.CatalogItem) *CatalogStore {
	items := make([]models.CatalogItem, len(seed))
	copy(items, seed)

	s := &CatalogStore{
		items: items,
		view: models.CatalogViewState{
			StatusFilter:   models.StatusFilterAll,
			CategoryFilter: models.AllCategories,
			SortBy:         models.SortIDAsc,
			CurrentPage:    1,
			PageSize:       DefaultPageSize,
		},
		validate: validator.New(),
	}

	metrics.SetCatalogSize(len(items))

	return s
}

// Snapshot returns a copy of the full store state.
func (s *CatalogStore) Snapshot() models.CatalogSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CatalogItem, len(s.items))
	copy(items, s.items)

	return models.CatalogSnapshot{
		Items:           items,
		View:            s.view,
		AddModalOpen:    s.addModalOpen,
		AddModalSuccess: s.addModalSuccess,
	}
}

func (s *CatalogStore) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.SearchTerm = term
	s.view.CurrentPage = 1

	metrics.ObserveOperation("catalog", "set_search_term")
}

func (s *CatalogStore) SetStatusFilter(filter models.StatusFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.StatusFilter = filter
	s.view.CurrentPage = 1

	metrics.ObserveOperation("catalog", "set_status_filter")
}

func (s *CatalogStore) SetCategoryFilter(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.CategoryFilter = category
	s.view.CurrentPage = 1

	metrics.ObserveOperation("catalog", "set_category_filter")
}

// SetSortBy changes the sort order only; the current page is kept.
func (s *CatalogStore) SetSortBy(sortBy models.SortOption) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.SortBy = sortBy

	metrics.ObserveOperation("catalog", "set_sort_by")
}

// SetCurrentPage clamps the requested page to [1, totalPages] for the
// current filtered set, so callers never have to pre-validate bounds.
func (s *CatalogStore) SetCurrentPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totalPages := view.DeriveCatalogView(s.items, s.view).TotalPages

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	s.view.CurrentPage = page

	metrics.ObserveOperation("catalog", "set_current_page")
}

func (s *CatalogStore) SetPageSize(size int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !allowedPageSize(size) {
		metrics.ObserveRejection("catalog", "set_page_size", appErrors.ErrCodeValidation)

		return appErrors.AddValidationError("page_size", "must be one of 8, 16 or 32")
	}

	s.view.PageSize = size
	s.view.CurrentPage = 1

	metrics.ObserveOperation("catalog", "set_page_size")

	return nil
}

func (s *CatalogStore) OpenAddModal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addModalOpen = true
	s.addModalSuccess = false

	metrics.ObserveOperation("catalog", "open_add_modal")
}

func (s *CatalogStore) CloseAddModal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addModalOpen = false
	s.addModalSuccess = false

	metrics.ObserveOperation("catalog", "close_add_modal")
}

// AddProduct validates the request, assigns a fresh id, forces the item
// Active and prepends it so the newest item shows first. The add modal
// stays open with its success sub-state set.
func (s *CatalogStore) AddProduct(req models.AddProductRequest) (models.CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := utils.ValidateStruct(s.validate, req); err != nil {
		metrics.ObserveRejection("catalog", "add_product", appErrors.ErrCodeValidation)

		return models.CatalogItem{}, err
	}

	item := models.CatalogItem{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Price:          req.Price,
		Category:       req.Category,
		ProcessingTime: req.ProcessingTime,
		Description:    req.Description,
		Status:         models.StatusActive,
		Image:          "",
	}

	s.items = append([]models.CatalogItem{item}, s.items...)
	s.addModalSuccess = true

	metrics.ObserveOperation("catalog", "add_product")
	metrics.SetCatalogSize(len(s.items))

	return item, nil
}

func (s *CatalogStore) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)

			metrics.ObserveOperation("catalog", "delete_product")
			metrics.SetCatalogSize(len(s.items))

			return nil
		}
	}

	metrics.ObserveRejection("catalog", "delete_product", appErrors.ErrCodeNotFound)

	return appErrors.NotFoundError("Product not found").WithDetail(id)
}

func (s *CatalogStore) ToggleProductStatus(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = s.items[i].Status.Toggled()

			metrics.ObserveOperation("catalog", "toggle_product_status")

			return nil
		}
	}

	metrics.ObserveRejection("catalog", "toggle_product_status", appErrors.ErrCodeNotFound)

	return appErrors.NotFoundError("Product not found").WithDetail(id)
}

func allowedPageSize(size int) bool {
	for _, allowed := range PageSizes {
		if size == allowed {
			return true
		}
	}

	return false
}
