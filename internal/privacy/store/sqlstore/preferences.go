package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
)

type preferencesRepo struct {
	db DBTX
	q  *queries
}

func (r *preferencesRepo) GetPreferences(ctx context.Context, userID string) (domain.AnonymousPreferences, error) {
	return r.scan(ctx, r.q.getPreferences, userID)
}

func (r *preferencesRepo) LockPreferences(ctx context.Context, defaults domain.AnonymousPreferences) (domain.AnonymousPreferences, error) {
	if _, err := r.db.ExecContext(ctx, r.q.seedPreferences, preferencesArgs(defaults)...); err != nil {
		return domain.AnonymousPreferences{}, err
	}
	return r.scan(ctx, r.q.lockPreferences, defaults.UserID)
}

func (r *preferencesRepo) scan(ctx context.Context, query, userID string) (domain.AnonymousPreferences, error) {
	var p domain.AnonymousPreferences
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.UserID,
		&p.AutoAnonymousMode, &p.DefaultPrivacyLevel, &p.DefaultLocationSharing,
		&p.AllowIdentityReveal, &p.AnonymousNotifications, &p.AnonymousAnalytics,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.AnonymousPreferences{}, mapNotFound(err)
	}
	p.CreatedAt, p.UpdatedAt = utc(p.CreatedAt), utc(p.UpdatedAt)
	return p, nil
}

func (r *preferencesRepo) UpsertPreferences(ctx context.Context, p domain.AnonymousPreferences) error {
	_, err := r.db.ExecContext(ctx, r.q.upsertPreferences, preferencesArgs(p)...)
	return err
}

func preferencesArgs(p domain.AnonymousPreferences) []any {
	return []any{
		p.ID, p.UserID,
		p.AutoAnonymousMode, p.DefaultPrivacyLevel, p.DefaultLocationSharing,
		p.AllowIdentityReveal, p.AnonymousNotifications, p.AnonymousAnalytics,
		p.CreatedAt.UTC(), p.UpdatedAt.UTC(),
	}
}
