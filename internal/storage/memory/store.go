// Package memory serves the built-in sample dataset.
package memory

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"property_booking/internal/domain"
)

//go:embed data/properties.json
var propertiesJSON []byte

//go:embed data/reviews.json
var reviewsJSON []byte

type Store struct {
	props   []domain.Property
	index   map[string]int
	reviews []domain.Review
}

// New builds a store over props and reviews. Records without an ID get their
// position as ID; either way the ID is fixed from here on.
func New(props []domain.Property, reviews []domain.Review) (*Store, error) {
	s := &Store{
		props:   make([]domain.Property, len(props)),
		index:   make(map[string]int, len(props)),
		reviews: slices.Clone(reviews),
	}
	for i, p := range props {
		if p.ID == "" {
			p.ID = strconv.Itoa(i)
		}
		if _, dup := s.index[p.ID]; dup {
			return nil, fmt.Errorf("duplicate property id %q", p.ID)
		}
		if p.Category == nil {
			p.Category = []string{}
		}
		s.props[i] = p
		s.index[p.ID] = i
	}
	return s, nil
}

// Load returns a store over the embedded sample data.
func Load() (*Store, error) {
	props, err := SampleProperties()
	if err != nil {
		return nil, err
	}
	reviews, err := SampleReviews()
	if err != nil {
		return nil, err
	}
	return New(props, reviews)
}

func SampleProperties() ([]domain.Property, error) {
	var props []domain.Property
	if err := json.Unmarshal(propertiesJSON, &props); err != nil {
		return nil, fmt.Errorf("decode sample properties: %w", err)
	}
	return props, nil
}

func SampleReviews() ([]domain.Review, error) {
	var rs []domain.Review
	if err := json.Unmarshal(reviewsJSON, &rs); err != nil {
		return nil, fmt.Errorf("decode sample reviews: %w", err)
	}
	return rs, nil
}

func (s *Store) All(ctx context.Context) ([]domain.Property, error) {
	return slices.Clone(s.props), nil
}

func (s *Store) Get(ctx context.Context, id string) (domain.Property, error) {
	i, ok := s.index[id]
	if !ok {
		return domain.Property{}, domain.ErrNotFound
	}
	return s.props[i], nil
}

func (s *Store) Reviews(ctx context.Context) ([]domain.Review, error) {
	return slices.Clone(s.reviews), nil
}

func (s *Store) Len() int { return len(s.props) }
