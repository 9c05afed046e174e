package domain

import "context"

// PropertyStore is the read side of the listing dataset.
type PropertyStore interface {
	All(ctx context.Context) ([]Property, error)
	Get(ctx context.Context, id string) (Property, error)
}

type ReviewStore interface {
	Reviews(ctx context.Context) ([]Review, error)
}

// PropertyWriter is used by the seeder only; the API never writes.
type PropertyWriter interface {
	UpsertProperty(ctx context.Context, position int, p Property) error
	UpsertReviews(ctx context.Context, rs []Review) error
}

type PaymentProcessor interface {
	Charge(ctx context.Context, b Booking) (Receipt, error)
}

type ListingFeed interface {
	FetchListings(ctx context.Context) ([]map[string]any, error)
}

// Read models & queries

type FilterCriteria struct {
	Location  string
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
}

type PageRequest struct {
	Page  int
	Limit int
}

type PropertyPage struct {
	Items      []Property
	Total      int
	Page       int
	Limit      int
	TotalPages int
}
