// Package quotation_repo implements quotation.Repository over a storage
// provider. The whole collection lives in one namespace; every mutating call
// rewrites it synchronously, matching the single-writer model of the app.
package quotation_repo

import (
	"context"
	"errors"

	"borequote/internal/core/apperror"
	"borequote/internal/core/id"
	"borequote/internal/domain/quotation"
	"borequote/internal/infrastructure/storage"
	"borequote/pkg/logger"
)

// Repo holds quotations in storage.NamespaceQuotations.
type Repo struct {
	provider storage.Provider
}

// Ensure compile-time interface compliance.
var _ quotation.Repository = (*Repo)(nil)

// New creates a quotation repository on top of a storage provider.
func New(provider storage.Provider) *Repo {
	return &Repo{provider: provider}
}

// List implements quotation.Repository.
// Missing or malformed stored data degrades to an empty collection.
func (r *Repo) List(ctx context.Context) ([]quotation.Quotation, error) {
	var list []quotation.Quotation
	err := r.provider.Load(ctx, storage.NamespaceQuotations, &list)
	switch {
	case err == nil:
		return list, nil
	case errors.Is(err, storage.ErrNotFound):
		return []quotation.Quotation{}, nil
	case errors.Is(err, storage.ErrCorrupt):
		logger.FromContext(ctx).Warnw("stored quotations unreadable, starting empty", "error", err)
		return []quotation.Quotation{}, nil
	default:
		return nil, apperror.NewStorage("load quotations", err)
	}
}

// Get implements quotation.Repository.
func (r *Repo) Get(ctx context.Context, quotationID id.ID) (*quotation.Quotation, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == quotationID {
			return &list[i], nil
		}
	}
	return nil, apperror.NewNotFound("quotation", quotationID)
}

// Upsert implements quotation.Repository.
// The entire record is replaced; insertion order is kept for new IDs and
// position is kept for edits.
func (r *Repo) Upsert(ctx context.Context, q *quotation.Quotation) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range list {
		if list[i].ID == q.ID {
			list[i] = *q
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, *q)
	}

	if err := r.provider.Store(ctx, storage.NamespaceQuotations, list); err != nil {
		return apperror.NewStorage("persist quotations", err)
	}
	return nil
}

// Delete implements quotation.Repository. Absent IDs are a no-op, not an
// error, and skip the rewrite entirely.
func (r *Repo) Delete(ctx context.Context, quotationID id.ID) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := list[:0]
	for _, q := range list {
		if q.ID != quotationID {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(list) {
		return nil
	}

	if err := r.provider.Store(ctx, storage.NamespaceQuotations, kept); err != nil {
		return apperror.NewStorage("persist quotations", err)
	}
	return nil
}
