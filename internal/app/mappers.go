package app

import (
	"strconv"
	"strings"

	"property_booking/internal/domain"
)

/********** alias registry (single source of truth) **********/

var listingAliases = map[string][]string{
	"name":      {"name", "title", "listing_name", "listingName"},
	"city":      {"address.city", "city", "location.city", "locality"},
	"state":     {"address.state", "state", "location.state", "region", "province"},
	"country":   {"address.country", "country", "location.country", "country_code"},
	"image":     {"image", "image_url", "imageUrl", "photo", "images.0"},
	"discount":  {"discount", "promo", "discount_pct"},
	"bed":       {"offers.bed", "bed", "beds", "bedrooms"},
	"shower":    {"offers.shower", "shower", "baths", "bathrooms"},
	"occupants": {"offers.occupants", "occupants", "guests", "max_guests"},
	"price":     {"price", "price_per_night", "nightly_price", "rate.amount"},
	"rating":    {"rating", "score", "review_score", "rating.value"},
	"category":  {"category", "categories", "tags", "amenities"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps. Numeric parts index
// into arrays ("images.0").
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		switch obj := cur.(type) {
		case map[string]any:
			v, ok := obj[part]
			if !ok {
				return nil
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(obj) {
				return nil
			}
			cur = obj[i]
		default:
			return nil
		}
	}
	return cur
}

// lookupStr returns the value at path as a string, or "". Numbers are
// formatted so "bed": 3 and "bed": "3" map the same way.
func lookupStr(m map[string]any, path string) string {
	switch v := lookupAny(m, path).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	}
	return ""
}

// firstNonEmptyAlias: first non-empty string for a named alias set.
func firstNonEmptyAlias(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		if s := strings.TrimSpace(lookupStr(m, p)); s != "" {
			return s
		}
	}
	return ""
}

// getFloatFlexible: number from several paths (float64/int/string like "8,0").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			s = strings.TrimPrefix(s, "$")
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// firstSliceStrings: accept []any with either strings or {name/label}, or a
// comma separated string.
func firstSliceStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		switch raw := lookupAny(m, k).(type) {
		case []any:
			out := make([]string, 0, len(raw))
			for _, it := range raw {
				switch t := it.(type) {
				case string:
					if t = strings.TrimSpace(t); t != "" {
						out = append(out, t)
					}
				case map[string]any:
					if n, ok := t["name"].(string); ok && n != "" {
						out = append(out, n)
						continue
					}
					if n, ok := t["label"].(string); ok && n != "" {
						out = append(out, n)
					}
				}
			}
			if len(out) > 0 {
				return out
			}
		case string:
			var out []string
			for _, part := range strings.Split(raw, ",") {
				if t := strings.TrimSpace(part); t != "" {
					out = append(out, t)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

/********** listing mapper **********/

// mapListing turns one feed entry into a Property. The id is the entry's
// position in the feed, fixed at load time.
func mapListing(position int, p map[string]any) domain.Property {
	out := domain.Property{
		ID:   strconv.Itoa(position),
		Name: firstNonEmptyAlias(p, listingAliases, "name"),
		Address: domain.Address{
			State:   firstNonEmptyAlias(p, listingAliases, "state"),
			City:    firstNonEmptyAlias(p, listingAliases, "city"),
			Country: firstNonEmptyAlias(p, listingAliases, "country"),
		},
		Category: firstSliceStrings(p, listingAliases["category"]...),
		Offers: domain.Offers{
			Bed:       firstNonEmptyAlias(p, listingAliases, "bed"),
			Shower:    firstNonEmptyAlias(p, listingAliases, "shower"),
			Occupants: firstNonEmptyAlias(p, listingAliases, "occupants"),
		},
		Image:    firstNonEmptyAlias(p, listingAliases, "image"),
		Discount: firstNonEmptyAlias(p, listingAliases, "discount"),
	}
	if f := getFloatFlexible(p, listingAliases["price"]...); f != nil && *f >= 0 {
		out.Price = *f
	}
	if f := getFloatFlexible(p, listingAliases["rating"]...); f != nil {
		out.Rating = *f
	}
	if out.Category == nil {
		out.Category = []string{}
	}
	return out
}
