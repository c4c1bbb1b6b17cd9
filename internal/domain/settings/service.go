package settings

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"borequote/internal/core/apperror"
	"borequote/internal/domain/quotation"
	"borequote/internal/infrastructure/storage"
	"borequote/pkg/logger"
)

// Service reads and writes the settings record.
type Service struct {
	provider storage.Provider
	log      *logger.Logger
}

// NewService creates a settings service on top of a storage provider.
func NewService(provider storage.Provider, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{provider: provider, log: log.WithComponent("settings")}
}

// Get returns the stored settings, or defaults when nothing (or nothing
// readable) has been stored yet.
func (s *Service) Get(ctx context.Context) (Settings, error) {
	var stored Settings
	err := s.provider.Load(ctx, storage.NamespaceSettings, &stored)
	switch {
	case err == nil:
		if stored.DefaultItems == nil {
			stored.DefaultItems = []ItemTemplate{}
		}
		return stored, nil
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrCorrupt):
		return Default(), nil
	default:
		return Settings{}, apperror.NewStorage("load settings", err)
	}
}

// Save overwrites the settings record. No history is kept.
func (s *Service) Save(ctx context.Context, settings Settings) error {
	if err := s.provider.Store(ctx, storage.NamespaceSettings, settings); err != nil {
		return apperror.NewStorage("persist settings", err)
	}
	s.log.Infow("settings saved", "templates", len(settings.DefaultItems))
	return nil
}

// PrefillItems builds the starting line items for a new quotation from the
// saved templates: quantity 1 each, skipping templates with an empty name or
// a zero price.
func (s *Service) PrefillItems(ctx context.Context) ([]quotation.Item, error) {
	stored, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]quotation.Item, 0, len(stored.DefaultItems))
	for _, tpl := range stored.DefaultItems {
		if tpl.Name == "" || tpl.PricePerUnit.IsZero() {
			continue
		}
		items = append(items, quotation.NewItem(tpl.Name, decimal.NewFromInt(1), tpl.PricePerUnit))
	}
	return items, nil
}
