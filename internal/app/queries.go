package app

import (
	"context"
	"fmt"
	"strconv"

	"property_booking/internal/adapters/observability"
	"property_booking/internal/domain"
)

const (
	DefaultPageLimit = 12
	MaxPageLimit     = 100
)

type QueryService struct {
	props   domain.PropertyStore
	reviews domain.ReviewStore
}

func NewQueryService(p domain.PropertyStore, r domain.ReviewStore) *QueryService {
	return &QueryService{props: p, reviews: r}
}

// ListProperties filters the full dataset and returns the requested page.
func (s *QueryService) ListProperties(ctx context.Context, c domain.FilterCriteria, pr domain.PageRequest) (domain.PropertyPage, error) {
	all, err := s.props.All(ctx)
	if err != nil {
		return domain.PropertyPage{}, fmt.Errorf("load properties: %w", err)
	}
	matched := FilterProperties(all, c)
	observability.ObserveSearch(len(matched))
	return Paginate(matched, pr), nil
}

// GetProperty resolves a single listing. Identifiers are base-10 integers
// ("02" and "2" name the same record); anything else is rejected before the
// store is consulted.
func (s *QueryService) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return domain.Property{}, domain.NewValidationError("Invalid property ID")
	}
	return s.props.Get(ctx, strconv.Itoa(n))
}

// ListReviews returns the shared sample reviews re-keyed for propertyID.
// Every property gets the same set.
func (s *QueryService) ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	if propertyID == "" {
		return nil, domain.NewValidationError("Property ID is required")
	}
	rs, err := s.reviews.Reviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	// copy so the store's backing array is never rewritten
	out := make([]domain.Review, len(rs))
	for i, r := range rs {
		r.ID = propertyID + "-" + r.ID
		r.PropertyID = propertyID
		out[i] = r
	}
	return out, nil
}
