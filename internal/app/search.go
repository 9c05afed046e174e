package app

import (
	"strings"

	"property_booking/internal/domain"
)

// FilterProperties returns the records matching every set predicate, in input
// order. The input slice is never modified.
func FilterProperties(all []domain.Property, c domain.FilterCriteria) []domain.Property {
	loc := strings.ToLower(c.Location)
	cat := strings.ToLower(c.Category)

	out := make([]domain.Property, 0, len(all))
	for _, p := range all {
		if loc != "" && !matchesLocation(p.Address, loc) {
			continue
		}
		if c.MinPrice != nil && p.Price < *c.MinPrice {
			continue
		}
		if c.MaxPrice != nil && p.Price > *c.MaxPrice {
			continue
		}
		if cat != "" && !matchesCategory(p.Category, cat) {
			continue
		}
		if c.MinRating != nil && p.Rating < *c.MinRating {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesLocation(a domain.Address, needle string) bool {
	return strings.Contains(strings.ToLower(a.City), needle) ||
		strings.Contains(strings.ToLower(a.State), needle) ||
		strings.Contains(strings.ToLower(a.Country), needle)
}

func matchesCategory(tags []string, needle string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

// Paginate slices items into the requested 1-based page. Page and Limit must
// be positive. A page past the end yields no items but correct totals.
func Paginate(items []domain.Property, pr domain.PageRequest) domain.PropertyPage {
	total := len(items)
	out := domain.PropertyPage{
		Items:      []domain.Property{},
		Total:      total,
		Page:       pr.Page,
		Limit:      pr.Limit,
		TotalPages: (total + pr.Limit - 1) / pr.Limit,
	}

	start := (pr.Page - 1) * pr.Limit
	if start >= total {
		return out
	}
	end := min(start+pr.Limit, total)
	out.Items = items[start:end]
	return out
}
