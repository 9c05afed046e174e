package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property_booking/internal/app"
	"property_booking/internal/domain"
)

type fakeWriter struct {
	props   map[int]domain.Property
	reviews []domain.Review
	err     error
}

func (f *fakeWriter) UpsertProperty(ctx context.Context, position int, p domain.Property) error {
	if f.err != nil {
		return f.err
	}
	if f.props == nil {
		f.props = map[int]domain.Property{}
	}
	f.props[position] = p
	return nil
}

func (f *fakeWriter) UpsertReviews(ctx context.Context, rs []domain.Review) error {
	f.reviews = append(f.reviews, rs...)
	return f.err
}

func TestSeedListing_MapsAndUpserts(t *testing.T) {
	w := &fakeWriter{}
	s := app.NewSeedService(w)

	require.NoError(t, s.SeedListing(context.Background(), 4, map[string]any{
		"name": "Cabin", "city": "Otago", "price": 2800.0,
	}))
	got := w.props[4]
	assert.Equal(t, "4", got.ID)
	assert.Equal(t, "Cabin", got.Name)
	assert.Equal(t, "Otago", got.Address.City)
	assert.Equal(t, 2800.0, got.Price)
}

func TestSeed_Errors(t *testing.T) {
	boom := errors.New("db gone")
	s := app.NewSeedService(&fakeWriter{err: boom})

	assert.ErrorIs(t, s.SeedProperty(context.Background(), 0, domain.Property{ID: "0"}), boom)
	assert.ErrorIs(t, s.SeedReviews(context.Background(), []domain.Review{{ID: "1"}}), boom)
	assert.NoError(t, s.SeedReviews(context.Background(), nil))
}
