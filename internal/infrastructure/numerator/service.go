// Package numerator provides the storage-backed implementation of quotation
// auto-numbering. It implements core/numerator.Generator interface.
package numerator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	corenumerator "borequote/internal/core/numerator"
	"borequote/internal/infrastructure/storage"
	"borequote/pkg/logger"
)

// Service mints numbers from a monotonic counter held in its own storage
// namespace. The counter is persisted before a number is returned, so values
// are never reissued across restarts.
type Service struct {
	provider storage.Provider

	// mu serializes increment+persist; the app has one logical writer but
	// tests may drive the service from multiple goroutines.
	mu sync.Mutex
}

// Ensure compile-time interface compliance.
var _ corenumerator.Generator = (*Service)(nil)

// New creates a numerator service on top of a storage provider.
func New(provider storage.Provider) *Service {
	return &Service{provider: provider}
}

// NextNumber implements core/numerator.Generator.
func (s *Service) NextNumber(ctx context.Context, cfg corenumerator.Config, now time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counter, err := s.current(ctx)
	if err != nil {
		return "", err
	}

	counter++
	if err := s.provider.Store(ctx, storage.NamespaceCounter, counter); err != nil {
		return "", fmt.Errorf("persist counter: %w", err)
	}

	return cfg.Format(counter, now), nil
}

// SetNextNumber implements core/numerator.Generator.
func (s *Service) SetNextNumber(ctx context.Context, value int64) error {
	if value < 1 {
		return fmt.Errorf("next number must be positive, got %d", value)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.provider.Store(ctx, storage.NamespaceCounter, value-1)
}

// current reads the persisted counter. An unset or unreadable slot counts
// as zero, mirroring how the rest of the app degrades on malformed data.
func (s *Service) current(ctx context.Context) (int64, error) {
	var counter int64
	err := s.provider.Load(ctx, storage.NamespaceCounter, &counter)
	switch {
	case err == nil:
		return counter, nil
	case errors.Is(err, storage.ErrNotFound):
		return 0, nil
	case errors.Is(err, storage.ErrCorrupt):
		logger.FromContext(ctx).Warnw("stored counter unreadable, restarting at zero", "error", err)
		return 0, nil
	default:
		return 0, fmt.Errorf("load counter: %w", err)
	}
}
