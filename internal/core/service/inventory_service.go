package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rl1809/pinkstock/internal/core/domain"
	"github.com/rl1809/pinkstock/internal/core/view"
	"github.com/rl1809/pinkstock/internal/port"
)

var (
	ErrItemNotFound = errors.New("item not found")
	// ErrNotPersisted marks a mutation that was applied in memory but could
	// not be written to storage.
	ErrNotPersisted = errors.New("change not persisted")
)

type Option func(*InventoryService)

// WithClock overrides the time source used for DateAdded.
func WithClock(now func() time.Time) Option {
	return func(s *InventoryService) { s.now = now }
}

// WithIDGenerator overrides how new item ids are minted.
func WithIDGenerator(newID func() string) Option {
	return func(s *InventoryService) { s.newID = newID }
}

// InventoryService owns the authoritative in-memory collection. Every
// mutation is followed by a full save through the repository.
type InventoryService struct {
	repo   port.InventoryRepository
	logger *zap.Logger
	now    func() time.Time
	newID  func() string

	mu    sync.Mutex
	items []domain.InventoryItem
}

func NewInventoryService(ctx context.Context, repo port.InventoryRepository, logger *zap.Logger, opts ...Option) *InventoryService {
	s := &InventoryService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	return s
}

func (s *InventoryService) load(ctx context.Context) {
	items, err := s.repo.Load(ctx)
	switch {
	case err == nil:
		s.items = items
		s.logger.Info("loaded inventory", zap.Int("items", len(items)))

	case errors.Is(err, port.ErrNoInventory), errors.Is(err, port.ErrCorruptInventory):
		if errors.Is(err, port.ErrCorruptInventory) {
			s.logger.Warn("stored inventory unreadable, reseeding", zap.Error(err))
		}
		s.items = SeedItems()
		if err := s.repo.Save(ctx, s.items); err != nil {
			s.logger.Warn("failed to persist seed inventory", zap.Error(err))
		} else {
			s.logger.Info("seeded inventory", zap.Int("items", len(s.items)))
		}

	default:
		// Leave storage alone: the backend may just be unreachable right now.
		s.items = SeedItems()
		s.logger.Warn("failed to read inventory, using seed for this session", zap.Error(err))
	}
}

// Items returns a copy of the collection in storage order.
func (s *InventoryService) Items() []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// AddItem prepends a new item and returns its id. A negative quantity is
// clamped to zero. If only the save fails, the id is returned together with
// an error matching ErrNotPersisted.
func (s *InventoryService) AddItem(ctx context.Context, n domain.NewItem) (string, error) {
	n.Name = strings.TrimSpace(n.Name)
	n.Category = strings.TrimSpace(n.Category)
	n.Quantity = max(0, n.Quantity)
	if err := n.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.uniqueID()
	if err != nil {
		return "", err
	}
	item := domain.InventoryItem{
		ID:        id,
		Name:      n.Name,
		Quantity:  n.Quantity,
		Category:  n.Category,
		DateAdded: s.now().UTC().Truncate(time.Millisecond),
	}
	s.items = slices.Insert(s.items, 0, item)

	return item.ID, s.persist(ctx, "add", item.ID)
}

// AdjustQuantity adds delta to the item's quantity, never going below zero.
func (s *InventoryService) AdjustQuantity(ctx context.Context, id string, delta int) (domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.InventoryItem{}, fmt.Errorf("adjust %s: %w", id, ErrItemNotFound)
	}
	s.items[i].Quantity = domain.ApplyDelta(s.items[i].Quantity, delta)
	updated := s.items[i]

	return updated, s.persist(ctx, "adjust", id)
}

// DeleteItem removes the item immediately. There is no undo.
func (s *InventoryService) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete %s: %w", id, ErrItemNotFound)
	}
	s.items = slices.Delete(s.items, i, i+1)

	return s.persist(ctx, "delete", id)
}

// ListCategories returns the distinct non-empty categories in ascending order.
func (s *InventoryService) ListCategories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]string, 0, len(s.items))
	for _, item := range s.items {
		if item.Category != "" {
			categories = append(categories, item.Category)
		}
	}
	slices.Sort(categories)
	return slices.Compact(categories)
}

func (s *InventoryService) Summary() view.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.Summarize(s.items)
}

func (s *InventoryService) Filter(f view.Filter) []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.Apply(s.items, f)
}

// persist must be called with s.mu held.
func (s *InventoryService) persist(ctx context.Context, op, id string) error {
	if err := s.repo.Save(ctx, s.items); err != nil {
		s.logger.Warn("inventory change not persisted",
			zap.String("op", op),
			zap.String("id", id),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w: %w", op, id, ErrNotPersisted, err)
	}
	s.logger.Debug("inventory persisted",
		zap.String("op", op),
		zap.String("id", id),
		zap.Int("items", len(s.items)))
	return nil
}

func (s *InventoryService) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(item domain.InventoryItem) bool {
		return item.ID == id
	})
}

const maxIDAttempts = 16

// uniqueID asks the generator for an id not yet in the collection, giving up
// after maxIDAttempts.
func (s *InventoryService) uniqueID() (string, error) {
	for range maxIDAttempts {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("allocate item id: no fresh id after %d attempts", maxIDAttempts)
}
