package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property_booking/internal/app"
	"property_booking/internal/domain"
	"property_booking/internal/storage/memory"
)

// ---- fakes ----

type failingStore struct{ err error }

func (f failingStore) All(ctx context.Context) ([]domain.Property, error) { return nil, f.err }
func (f failingStore) Get(ctx context.Context, id string) (domain.Property, error) {
	return domain.Property{}, f.err
}
func (f failingStore) Reviews(ctx context.Context) ([]domain.Review, error) { return nil, f.err }

func newQueries(t *testing.T) (*app.QueryService, *memory.Store) {
	t.Helper()
	rs, err := memory.SampleReviews()
	require.NoError(t, err)
	s, err := memory.New(sample(), rs)
	require.NoError(t, err)
	return app.NewQueryService(s, s), s
}

// ---- tests ----

func TestGetProperty_PositionalIDs(t *testing.T) {
	q, _ := newQueries(t)
	ctx := context.Background()

	p, err := q.GetProperty(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, sample()[2].Name, p.Name)

	p, err = q.GetProperty(ctx, "02")
	require.NoError(t, err)
	assert.Equal(t, "2", p.ID)

	_, err = q.GetProperty(ctx, "10")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = q.GetProperty(ctx, "-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = q.GetProperty(ctx, "abc")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

func TestListProperties_FilterThenPage(t *testing.T) {
	q, _ := newQueries(t)

	res, err := q.ListProperties(context.Background(),
		domain.FilterCriteria{Location: "usa"},
		domain.PageRequest{Page: 2, Limit: 2},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, []string{"3"}, ids(res.Items))
}

func TestListProperties_RecomputesFromFullDataset(t *testing.T) {
	q, s := newQueries(t)
	ctx := context.Background()

	_, err := q.ListProperties(ctx, domain.FilterCriteria{Location: "bali"}, domain.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)

	all, err := q.ListProperties(ctx, domain.FilterCriteria{}, domain.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, s.Len(), all.Total)
}

func TestListReviews_PrefixedPerProperty(t *testing.T) {
	q, _ := newQueries(t)

	rs, err := q.ListReviews(context.Background(), "7")
	require.NoError(t, err)
	require.Len(t, rs, 5)
	for _, r := range rs {
		assert.True(t, strings.HasPrefix(r.ID, "7-"), r.ID)
		assert.Equal(t, "7", r.PropertyID)
	}

	// the shared set is untouched for the next caller
	again, err := q.ListReviews(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1-1", again[0].ID)
}

func TestListReviews_EmptyID(t *testing.T) {
	q, _ := newQueries(t)
	_, err := q.ListReviews(context.Background(), "")
	assert.True(t, domain.IsValidation(err))
}

func TestQueries_StoreErrorsAreWrapped(t *testing.T) {
	boom := errors.New("boom")
	q := app.NewQueryService(failingStore{boom}, failingStore{boom})

	_, err := q.ListProperties(context.Background(), domain.FilterCriteria{}, domain.PageRequest{Page: 1, Limit: 1})
	assert.ErrorIs(t, err, boom)

	_, err = q.ListReviews(context.Background(), "1")
	assert.ErrorIs(t, err, boom)
}
