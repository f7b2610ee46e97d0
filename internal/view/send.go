package view

import (
	"sort"
	"strings"

	"github.com/DeepakKumarDu/giftdesk/internal/models"
)

// DeriveSendView filters and sorts the send-flow catalog: search term
// against name or vendor, then category and vendor multi-select (an empty
// selection means "all"), then the inclusive price range, then sort.
func DeriveSendView(items []models.SendProduct, filters models.SendFilters) []models.SendProduct {
	result := make([]models.SendProduct, len(items))
	copy(result, items)

	if term := strings.TrimSpace(filters.SearchTerm); term != "" {
		lower := strings.ToLower(term)
		result = keepSend(result, func(p models.SendProduct) bool {
			return strings.Contains(strings.ToLower(p.Name), lower) ||
				strings.Contains(strings.ToLower(p.Vendor), lower)
		})
	}

	if len(filters.Categories) > 0 {
		result = keepSend(result, func(p models.SendProduct) bool {
			return containsString(filters.Categories, p.Category)
		})
	}

	if len(filters.Vendors) > 0 {
		result = keepSend(result, func(p models.SendProduct) bool {
			return containsString(filters.Vendors, p.Vendor)
		})
	}

	result = keepSend(result, func(p models.SendProduct) bool {
		return p.Price >= filters.PriceMin && p.Price <= filters.PriceMax
	})

	switch filters.SortBy {
	case models.SendSortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case models.SendSortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[j].Price < result[i].Price
		})
	case models.SendSortNameAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return collator.CompareString(result[i].Name, result[j].Name) < 0
		})
	default:
		// "default" keeps filtered order
	}

	return result
}

func keepSend(items []models.SendProduct, pred func(models.SendProduct) bool) []models.SendProduct {
	kept := items[:0]

	for _, item := range items {
		if pred(item) {
			kept = append(kept, item)
		}
	}

	return kept
}

func containsString(values []string, v string) bool {
	for _, val := range values {
		if val == v {
			return true
		}
	}

	return false
}
