package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/aussiebroadwan/rally/internal/privacy/store"
)

type profilesRepo struct {
	db      DBTX
	q       *queries
	dialect Dialect
}

func (r *profilesRepo) GetProfileIdentity(ctx context.Context, userID string) (domain.ProfileIdentity, error) {
	var p domain.ProfileIdentity
	err := r.db.QueryRowContext(ctx, r.q.getProfile, userID).
		Scan(&p.UserID, &p.RealName, &p.RealNameVisibility, &p.IsAnonymous, &p.UpdatedAt)
	if err != nil {
		return domain.ProfileIdentity{}, mapNotFound(err)
	}
	p.UpdatedAt = utc(p.UpdatedAt)
	return p, nil
}

func (r *profilesRepo) UpdateProfileIdentity(ctx context.Context, p domain.ProfileIdentity) error {
	res, err := r.db.ExecContext(ctx, r.q.updateProfile,
		p.RealName, p.RealNameVisibility, p.IsAnonymous, p.UpdatedAt.UTC(), p.UserID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.ProfileIdentity) error {
	_, err := r.db.ExecContext(ctx, r.q.createProfile,
		p.UserID, p.RealName, p.RealNameVisibility, p.IsAnonymous, p.UpdatedAt.UTC(),
	)
	if err != nil && r.dialect.IsUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}
