package sqlstore

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/aussiebroadwan/rally/internal/privacy/store"
)

type handlesRepo struct {
	db      DBTX
	q       *queries
	dialect Dialect
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHandle(row scanner) (domain.AnonymousHandle, error) {
	var h domain.AnonymousHandle
	if err := row.Scan(&h.ID, &h.UserID, &h.Handle, &h.DisplayName, &h.IsActive, &h.CreatedAt); err != nil {
		return domain.AnonymousHandle{}, err
	}
	h.CreatedAt = utc(h.CreatedAt)
	return h, nil
}

func (r *handlesRepo) ListActiveHandles(ctx context.Context, userID string) ([]domain.AnonymousHandle, error) {
	rows, err := r.db.QueryContext(ctx, r.q.listActiveHandles, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.AnonymousHandle{}
	for rows.Next() {
		h, err := scanHandle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *handlesRepo) LockUserHandles(ctx context.Context, userID string) error {
	if r.q.lockUserHandles == "" {
		return nil
	}
	_, err := r.db.ExecContext(ctx, r.q.lockUserHandles, userID)
	return err
}

func (r *handlesRepo) CountActiveHandles(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, r.q.countActiveHandles, userID).Scan(&n)
	return n, err
}

func (r *handlesRepo) ActiveHandleExists(ctx context.Context, userID, handle string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, r.q.activeHandleExists, userID, domain.HandleKey(handle)).Scan(&ok)
	return ok, err
}

func (r *handlesRepo) CreateHandle(ctx context.Context, h domain.AnonymousHandle) error {
	_, err := r.db.ExecContext(ctx, r.q.createHandle,
		h.ID, h.UserID, h.Handle, domain.HandleKey(h.Handle), h.DisplayName, h.IsActive, h.CreatedAt.UTC(),
	)
	if err != nil && r.dialect.IsUniqueViolation(err) {
		return fmt.Errorf("handle %q: %w", h.Handle, store.ErrAlreadyExists)
	}
	return err
}

func (r *handlesRepo) GetHandle(ctx context.Context, userID, handleID string) (domain.AnonymousHandle, error) {
	h, err := scanHandle(r.db.QueryRowContext(ctx, r.q.getHandle, userID, handleID))
	if err != nil {
		return domain.AnonymousHandle{}, mapNotFound(err)
	}
	return h, nil
}

func (r *handlesRepo) DeactivateHandle(ctx context.Context, userID, handleID string) error {
	// Checked separately: an already inactive handle still counts as found.
	var owned bool
	if err := r.db.QueryRowContext(ctx, r.q.handleOwned, userID, handleID).Scan(&owned); err != nil {
		return err
	}
	if !owned {
		return store.ErrNotFound
	}

	_, err := r.db.ExecContext(ctx, r.q.deactivateHandle, userID, handleID)
	return err
}
