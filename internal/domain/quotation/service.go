package quotation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"borequote/internal/core/id"
	"borequote/internal/core/numerator"
	"borequote/pkg/logger"
)

// Service provides business logic for the quotation lifecycle: create, save,
// duplicate, remove, search. All persistence goes through the Repository.
type Service struct {
	repo      Repository
	numerator numerator.Generator
	numberCfg numerator.Config
	log       *logger.Logger

	// now is injectable so tests can pin the duplication moment
	now func() time.Time
}

// NewService creates a quotation service.
func NewService(repo Repository, gen numerator.Generator, cfg numerator.Config, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		repo:      repo,
		numerator: gen,
		numberCfg: cfg,
		log:       log.WithComponent("quotation"),
		now:       time.Now,
	}
}

// WithClock overrides the service clock. Tests only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateInput carries boundary input for a new quotation.
type CreateInput struct {
	CustomerName string
	Date         time.Time // zero value defaults to today
	Items        []Item
	Notes        string // empty defaults to the warranty boilerplate
}

// Create builds a new quotation in memory: fresh ID, freshly minted number,
// computed total. It does NOT persist; the caller saves explicitly.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Quotation, error) {
	number, err := s.numerator.NextNumber(ctx, s.numberCfg, s.now())
	if err != nil {
		return nil, fmt.Errorf("mint quotation number: %w", err)
	}

	date := in.Date
	if date.IsZero() {
		date = today(s.now())
	}
	notes := in.Notes
	if notes == "" {
		notes = DefaultNotes
	}

	q := &Quotation{
		ID:              id.New(),
		QuotationNumber: number,
		CustomerName:    in.CustomerName,
		Date:            date,
		Items:           in.Items,
		Notes:           notes,
	}
	q.Normalize()
	q.Total = GrandTotal(q.Items)

	s.log.Debugw("quotation created", "number", q.QuotationNumber)
	return q, nil
}

// Save validates, recomputes the total from items, and upserts the record.
// Validation failures never leave the store partially updated.
func (s *Service) Save(ctx context.Context, q *Quotation) error {
	if err := q.Validate(ctx); err != nil {
		return err
	}
	q.Normalize()
	q.Total = GrandTotal(q.Items)

	if err := s.repo.Upsert(ctx, q); err != nil {
		return err
	}
	s.log.Infow("quotation saved", "number", q.QuotationNumber, "total", q.Total.StringFixed(2))
	return nil
}

// Duplicate clones an existing quotation under a fresh ID, a freshly minted
// number, and today's date, then saves the clone immediately.
// Returns NOT_FOUND when the source ID is absent.
func (s *Service) Duplicate(ctx context.Context, quotationID id.ID) (*Quotation, error) {
	original, err := s.repo.Get(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	number, err := s.numerator.NextNumber(ctx, s.numberCfg, s.now())
	if err != nil {
		return nil, fmt.Errorf("mint quotation number: %w", err)
	}

	clone := &Quotation{
		ID:              id.New(),
		QuotationNumber: number,
		CustomerName:    original.CustomerName,
		Date:            today(s.now()),
		Items:           original.CloneItems(),
		Notes:           original.Notes,
	}
	if err := s.Save(ctx, clone); err != nil {
		return nil, err
	}

	s.log.Infow("quotation duplicated",
		"source", original.QuotationNumber, "number", clone.QuotationNumber)
	return clone, nil
}

// Remove deletes a quotation. Removing an unknown ID is a no-op.
func (s *Service) Remove(ctx context.Context, quotationID id.ID) error {
	if err := s.repo.Delete(ctx, quotationID); err != nil {
		return err
	}
	s.log.Infow("quotation removed", "id", quotationID)
	return nil
}

// Get retrieves one quotation; NOT_FOUND when absent.
func (s *Service) Get(ctx context.Context, quotationID id.ID) (*Quotation, error) {
	return s.repo.Get(ctx, quotationID)
}

// List returns all quotations in storage order.
func (s *Service) List(ctx context.Context) ([]Quotation, error) {
	return s.repo.List(ctx)
}

// Search filters by case-insensitive substring match against customer name
// or quotation number. The empty query returns all records in store order.
func (s *Service) Search(ctx context.Context, query string) ([]Quotation, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all, nil
	}

	matched := make([]Quotation, 0, len(all))
	for _, q := range all {
		if strings.Contains(strings.ToLower(q.CustomerName), query) ||
			strings.Contains(strings.ToLower(q.QuotationNumber), query) {
			matched = append(matched, q)
		}
	}
	return matched, nil
}

// today truncates a moment to its calendar date in local time.
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
