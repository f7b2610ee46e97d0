package models

type ProductStatus string

const (
	StatusActive   ProductStatus = "Active"
	StatusInactive ProductStatus = "Inactive"
)

// Toggled returns the opposite status.
func (s ProductStatus) Toggled() ProductStatus {
	if s == StatusActive {
		return StatusInactive
	}

	return StatusActive
}

type SortOption string

const (
	SortNameAsc   SortOption = "name_asc"
	SortNameDesc  SortOption = "name_desc"
	SortPriceAsc  SortOption = "price_asc"
	SortPriceDesc SortOption = "price_desc"
	SortIDAsc     SortOption = "id_asc" // default, keeps insertion order
)

type StatusFilter string

const (
	StatusFilterAll      StatusFilter = "All"
	StatusFilterActive   StatusFilter = "Active"
	StatusFilterInactive StatusFilter = "Inactive"
)

// AllCategories is the sentinel meaning "no category filter".
const AllCategories = "All Categories"

type CatalogItem struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Price          float64       `json:"price"`
	Category       string        `json:"category"`
	ProcessingTime string        `json:"processing_time"`
	Description    string        `json:"description"`
	Status         ProductStatus `json:"status"`
	Image          string        `json:"image"`
}

// CatalogViewState holds the filter, sort and pagination knobs of the
// catalog list. CurrentPage stays within [1, ceil(filteredCount/PageSize)];
// any filter-affecting change resets it to 1.
type CatalogViewState struct {
	SearchTerm     string       `json:"search_term"`
	StatusFilter   StatusFilter `json:"status_filter"`
	CategoryFilter string       `json:"category_filter"`
	SortBy         SortOption   `json:"sort_by"`
	CurrentPage    int          `json:"current_page"`
	PageSize       int          `json:"page_size"`
}

type AddProductRequest struct {
	Name           string  `json:"name" validate:"required"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	Category       string  `json:"category" validate:"required"`
	ProcessingTime string  `json:"processing_time"`
	Description    string  `json:"description"`
}

// CatalogSnapshot is the full read surface of the catalog store.
type CatalogSnapshot struct {
	Items           []CatalogItem    `json:"items"`
	View            CatalogViewState `json:"view"`
	AddModalOpen    bool             `json:"add_modal_open"`
	AddModalSuccess bool             `json:"add_modal_success"`
}

func (s CatalogSnapshot) ActiveCount() int {
	return s.countByStatus(StatusActive)
}

func (s CatalogSnapshot) InactiveCount() int {
	return s.countByStatus(StatusInactive)
}

func (s CatalogSnapshot) countByStatus(status ProductStatus) int {
	count := 0

	for _, item := range s.Items {
		if item.Status == status {
			count++
		}
	}

	return count
}
