package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/custodia-labs/cotiza/internal/core/domain"
	"github.com/custodia-labs/cotiza/internal/core/ports/driven"
	"github.com/custodia-labs/cotiza/internal/core/ports/driving"
	"github.com/custodia-labs/cotiza/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// StorageKey is the key the catalogue is persisted under.
const StorageKey = "servicios"

// CatalogService is the single source of truth for the service collection.
//
// Every mutation builds the next collection, persists it as a whole and
// only then adopts it in memory, so memory and the persisted mirror
// agree whenever the lock is released.
type CatalogService struct {
	mu          sync.Mutex
	store       driven.KeyValueStore
	notifier    driven.Notifier
	services    []domain.Service
	initialized bool
}

// NewCatalogService creates a new catalogue service.
// notifier may be nil.
func NewCatalogService(store driven.KeyValueStore, notifier driven.Notifier) *CatalogService {
	return &CatalogService{
		store:    store,
		notifier: notifier,
	}
}

// Initialize loads the persisted collection.
// An absent or unparseable value is treated as empty, and an empty
// collection is seeded with the default service and persisted.
func (s *CatalogService) Initialize(ctx context.Context) ([]domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(s.services), nil
}

// List returns a copy of the current collection.
func (s *CatalogService) List(ctx context.Context) []domain.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		logger.Warn("Loading catalogue: %v", err)
	}
	return slices.Clone(s.services)
}

// Add appends service and persists.
func (s *CatalogService) Add(ctx context.Context, service domain.Service) error {
	if err := s.apply(ctx, func(current []domain.Service) []domain.Service {
		return append(slices.Clone(current), service)
	}); err != nil {
		return fmt.Errorf("adding service: %w", err)
	}

	s.notify(domain.Success("Service added successfully"))
	return nil
}

// AddInput validates raw form values before adding.
func (s *CatalogService) AddInput(ctx context.Context, name, price, quantity string) error {
	service, err := ParseServiceInput(name, price, quantity)
	if err != nil {
		logger.Debug("Rejected input: %v", err)
		s.notify(domain.Danger("Invalid service data"))
		return err
	}
	return s.Add(ctx, service)
}

// Hire appends the preset with the given key.
func (s *CatalogService) Hire(ctx context.Context, key string) error {
	preset, err := domain.LookupPreset(key)
	if err != nil {
		return err
	}

	if err := s.apply(ctx, func(current []domain.Service) []domain.Service {
		return append(slices.Clone(current), preset.Service)
	}); err != nil {
		return fmt.Errorf("hiring %s: %w", key, err)
	}

	s.notify(domain.Success(fmt.Sprintf("Service '%s' added successfully", preset.Service.Name)))
	return nil
}

// RemoveAt deletes the entry at index.
// An out-of-range index is a silent no-op reported as false.
func (s *CatalogService) RemoveAt(ctx context.Context, index int) (bool, error) {
	removed := false
	if err := s.apply(ctx, func(current []domain.Service) []domain.Service {
		if index < 0 || index >= len(current) {
			return nil
		}
		removed = true
		return slices.Delete(slices.Clone(current), index, index+1)
	}); err != nil {
		return false, fmt.Errorf("removing service %d: %w", index, err)
	}

	if !removed {
		logger.Debug("Remove index %d out of range, ignoring", index)
		return false, nil
	}

	s.notify(domain.Success("Service removed successfully"))
	return true, nil
}

// ReplaceAll discards the collection and adopts services verbatim.
func (s *CatalogService) ReplaceAll(ctx context.Context, services []domain.Service) error {
	next := slices.Clone(services)
	if next == nil {
		next = []domain.Service{}
	}

	if err := s.apply(ctx, func([]domain.Service) []domain.Service {
		return next
	}); err != nil {
		return fmt.Errorf("replacing services: %w", err)
	}
	return nil
}

// Total returns the sum of subtotals and reports it as an info notification.
func (s *CatalogService) Total(ctx context.Context) float64 {
	total := domain.Total(s.List(ctx))
	s.notify(domain.Info(fmt.Sprintf("The total of hired services is $%s", domain.FormatAmount(total))))
	return total
}

// Reset deletes the persisted mirror and runs the bootstrap again.
func (s *CatalogService) Reset(ctx context.Context) error {
	s.mu.Lock()
	err := s.store.Delete(ctx, StorageKey)
	if err == nil {
		s.initialized = false
		s.services = nil
		err = s.ensureLoaded(ctx)
	}
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("resetting catalogue: %w", err)
	}

	s.notify(domain.Info("Catalogue reset to defaults"))
	return nil
}

// apply runs mutate against the current collection under the lock.
// A nil result means no change. Otherwise the result is persisted and
// adopted; on a persistence failure memory keeps the old collection.
func (s *CatalogService) apply(ctx context.Context, mutate func([]domain.Service) []domain.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	next := mutate(s.services)
	if next == nil {
		return nil
	}

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.services = next
	return nil
}

// ensureLoaded runs the bootstrap once. Caller must hold the lock.
func (s *CatalogService) ensureLoaded(ctx context.Context) error {
	if s.initialized {
		return nil
	}

	services, err := s.load(ctx)
	if err != nil {
		return err
	}

	if len(services) == 0 {
		services = []domain.Service{domain.DefaultService()}
		if err := s.persist(ctx, services); err != nil {
			logger.Warn("Persisting default catalogue: %v", err)
		}
	}

	s.services = services
	s.initialized = true
	logger.Debug("Catalogue loaded with %d services", len(services))
	return nil
}

// load reads the persisted collection. Absent or malformed values load
// as an empty collection.
func (s *CatalogService) load(ctx context.Context) ([]domain.Service, error) {
	data, err := s.store.Get(ctx, StorageKey)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Debug("No persisted catalogue under %q", StorageKey)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", StorageKey, err)
	}

	services, err := DecodeServices(data)
	if err != nil {
		logger.Warn("Ignoring persisted catalogue: %v", err)
		return nil, nil
	}
	return services, nil
}

// persist overwrites the mirror with the whole collection.
func (s *CatalogService) persist(ctx context.Context, services []domain.Service) error {
	data, err := EncodeServices(services)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("writing %s: %w", StorageKey, err)
	}
	return nil
}

func (s *CatalogService) notify(n domain.Notification) {
	if s.notifier != nil {
		s.notifier.Notify(n)
	}
}
