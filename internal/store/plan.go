package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/Iron-Ham/tripbook/internal/errors"
	"github.com/Iron-Ham/tripbook/internal/logging"
	"github.com/Iron-Ham/tripbook/internal/trip"
)

// DefaultKey is the fixed key holding the current plan.
const DefaultKey = "currentPlan"

// PlanStore holds the single current plan on top of a Backend.
type PlanStore struct {
	backend Backend
	key     string
	logger  *logging.Logger
}

// Option configures a PlanStore.
type Option func(*PlanStore)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *PlanStore) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the logger used to report discarded content.
func WithLogger(logger *logging.Logger) Option {
	return func(s *PlanStore) {
		if logger != nil {
			s.logger = logger.WithComponent("store")
		}
	}
}

// NewPlanStore creates a PlanStore over backend.
func NewPlanStore(backend Backend, opts ...Option) *PlanStore {
	s := &PlanStore{
		backend: backend,
		key:     DefaultKey,
		logger:  logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key.
func (s *PlanStore) Key() string {
	return s.key
}

// Save replaces the current plan.
func (s *PlanStore) Save(ctx context.Context, plan *trip.Plan) error {
	if plan == nil {
		return errors.NewValidationError("cannot store an empty plan").WithField("plan")
	}
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	if err := s.backend.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	s.logger.Debug("plan saved", "key", s.key, "bytes", len(data))
	return nil
}

// Load returns the current plan. Missing, unreadable, malformed or null
// content all report false; Load never returns an error to its caller.
func (s *PlanStore) Load(ctx context.Context) (*trip.Plan, bool) {
	data, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.Debug("no stored plan", "key", s.key)
		} else {
			s.logger.Warn("stored plan unreadable", "key", s.key, "error", err)
		}
		return nil, false
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		s.logger.Warn("stored plan empty", "key", s.key)
		return nil, false
	}

	var plan trip.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		s.logger.Warn("stored plan malformed", "key", s.key, "error", err)
		return nil, false
	}
	return plan.Normalize(), true
}

// Require is Load for callers that need a plan: absence is a
// *errors.MissingPlanStateError.
func (s *PlanStore) Require(ctx context.Context) (*trip.Plan, error) {
	plan, ok := s.Load(ctx)
	if !ok {
		return nil, errors.NewMissingPlanStateError(s.key)
	}
	return plan, nil
}

// Clear removes the current plan. Clearing an empty store is not an error.
func (s *PlanStore) Clear(ctx context.Context) error {
	if err := s.backend.Delete(ctx, s.key); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("clear plan: %w", err)
	}
	s.logger.Debug("plan cleared", "key", s.key)
	return nil
}
