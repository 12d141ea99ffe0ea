package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/cotiza/internal/core/domain"
	"github.com/custodia-labs/cotiza/internal/core/ports/driven"
	"github.com/custodia-labs/cotiza/internal/core/ports/driving"
	"github.com/custodia-labs/cotiza/internal/logger"
)

// Ensure SeedService implements the interface.
var _ driving.SeedService = (*SeedService)(nil)

// SeedService replaces the catalogue with the contents of a seed document.
// There is no retry: a failed load leaves the catalogue untouched.
type SeedService struct {
	source   driven.SeedSource
	catalog  driving.CatalogService
	notifier driven.Notifier
}

// NewSeedService creates a new seed service.
// source and notifier may be nil.
func NewSeedService(source driven.SeedSource, catalog driving.CatalogService, notifier driven.Notifier) *SeedService {
	return &SeedService{
		source:   source,
		catalog:  catalog,
		notifier: notifier,
	}
}

// Load fetches the seed document and replaces the catalogue with it.
func (s *SeedService) Load(ctx context.Context) (int, error) {
	logger.Section("Seed Load")

	if s.source == nil {
		return 0, s.fail(domain.ErrSeedUnavailable)
	}
	logger.Debug("Fetching seed from %s", s.source.Location())

	data, err := s.source.Fetch(ctx)
	if err != nil {
		return 0, s.fail(fmt.Errorf("fetching seed: %w", err))
	}

	services, err := DecodeServices(data)
	if err != nil {
		return 0, s.fail(fmt.Errorf("decoding seed: %w", err))
	}
	logger.Debug("Seed contains %d services", len(services))

	if err := s.catalog.ReplaceAll(ctx, services); err != nil {
		return 0, s.fail(err)
	}

	s.notify(domain.Success("Services loaded successfully from seed"))
	return len(services), nil
}

// Location describes where the seed is fetched from.
func (s *SeedService) Location() string {
	if s.source == nil {
		return ""
	}
	return s.source.Location()
}

func (s *SeedService) fail(err error) error {
	logger.Warn("Seed load failed: %v", err)
	s.notify(domain.Danger("Error loading services from seed"))
	return err
}

func (s *SeedService) notify(n domain.Notification) {
	if s.notifier != nil {
		s.notifier.Notify(n)
	}
}
