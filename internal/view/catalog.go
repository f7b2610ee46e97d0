// Package view holds the pure derivation functions that turn raw store
// state into the visible slice. They keep no state of their own and are
// safe to call any number of times per snapshot.
package view

import (
	"sort"
	"strings"

	"github.com/DeepakKumarDu/giftdesk/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Names sort the way the list UI expects, not by raw bytes.
var collator = collate.New(language.English)

// Ellipsis marks a gap in a windowed page-number row.
const Ellipsis = -1

type CatalogView struct {
	Page       []models.CatalogItem
	TotalCount int
	TotalPages int
}

// DeriveCatalogView filters, sorts and paginates the catalog:
// search term against name or id (case-insensitive substring), then
// category, then status, then sort, then the current page slice.
// TotalPages is never below 1 so an empty result still renders one page.
func DeriveCatalogView(items []models.CatalogItem, vs models.CatalogViewState) CatalogView {
	result := make([]models.CatalogItem, len(items))
	copy(result, items)

	if term := strings.TrimSpace(vs.SearchTerm); term != "" {
		lower := strings.ToLower(term)
		result = keepCatalog(result, func(item models.CatalogItem) bool {
			return strings.Contains(strings.ToLower(item.Name), lower) ||
				strings.Contains(strings.ToLower(item.ID), lower)
		})
	}

	if vs.CategoryFilter != models.AllCategories {
		result = keepCatalog(result, func(item models.CatalogItem) bool {
			return item.Category == vs.CategoryFilter
		})
	}

	if vs.StatusFilter != models.StatusFilterAll {
		result = keepCatalog(result, func(item models.CatalogItem) bool {
			return string(item.Status) == string(vs.StatusFilter)
		})
	}

	switch vs.SortBy {
	case models.SortNameAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return collator.CompareString(result[i].Name, result[j].Name) < 0
		})
	case models.SortNameDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return collator.CompareString(result[j].Name, result[i].Name) < 0
		})
	case models.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[j].Price < result[i].Price
		})
	default:
		// id_asc keeps insertion order
	}

	totalCount := len(result)
	totalPages := (totalCount + vs.PageSize - 1) / vs.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (vs.CurrentPage - 1) * vs.PageSize
	end := start + vs.PageSize

	if start < 0 || start >= totalCount {
		return CatalogView{Page: []models.CatalogItem{}, TotalCount: totalCount, TotalPages: totalPages}
	}
	if end > totalCount {
		end = totalCount
	}

	return CatalogView{Page: result[start:end], TotalCount: totalCount, TotalPages: totalPages}
}

func keepCatalog(items []models.CatalogItem, pred func(models.CatalogItem) bool) []models.CatalogItem {
	kept := items[:0]

	for _, item := range items {
		if pred(item) {
			kept = append(kept, item)
		}
	}

	return kept
}

// PageNumbers builds the page-number row for the pagination bar:
// contiguous up to 7 pages, otherwise windowed with Ellipsis gaps around
// the current page. No page number is skipped or duplicated at the
// window transition points.
func PageNumbers(currentPage, totalPages int) []int {
	if totalPages < 1 {
		totalPages = 1
	}

	if totalPages <= 7 {
		pages := make([]int, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, i)
		}

		return pages
	}

	switch {
	case currentPage <= 4:
		return []int{1, 2, 3, 4, 5, Ellipsis, totalPages}
	case currentPage >= totalPages-3:
		return []int{1, Ellipsis, totalPages - 4, totalPages - 3, totalPages - 2, totalPages - 1, totalPages}
	default:
		return []int{1, Ellipsis, currentPage - 1, currentPage, currentPage + 1, Ellipsis, totalPages}
	}
}
