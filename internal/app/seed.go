package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"property_booking/internal/domain"
)

type SeedService struct {
	repo domain.PropertyWriter
}

func NewSeedService(r domain.PropertyWriter) *SeedService {
	return &SeedService{repo: r}
}

// SeedListing maps one raw feed entry and upserts it at position.
func (s *SeedService) SeedListing(ctx context.Context, position int, raw map[string]any) error {
	p := mapListing(position, raw)
	if p.Name == "" {
		log.Warn().Int("position", position).Msg("listing without a name")
	}
	return s.SeedProperty(ctx, position, p)
}

func (s *SeedService) SeedProperty(ctx context.Context, position int, p domain.Property) error {
	if err := s.repo.UpsertProperty(ctx, position, p); err != nil {
		return fmt.Errorf("upsert property %s: %w", p.ID, err)
	}
	return nil
}

func (s *SeedService) SeedReviews(ctx context.Context, rs []domain.Review) error {
	if len(rs) == 0 {
		return nil
	}
	if err := s.repo.UpsertReviews(ctx, rs); err != nil {
		return fmt.Errorf("upsert reviews: %w", err)
	}
	return nil
}
