package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
)

type settingsRepo struct {
	db DBTX
	q  *queries
}

func (r *settingsRepo) GetSettings(ctx context.Context, userID string) (domain.PrivacySettings, error) {
	return r.scan(ctx, r.q.getSettings, userID)
}

func (r *settingsRepo) LockSettings(ctx context.Context, defaults domain.PrivacySettings) (domain.PrivacySettings, error) {
	if _, err := r.db.ExecContext(ctx, r.q.seedSettings, settingsArgs(defaults)...); err != nil {
		return domain.PrivacySettings{}, err
	}
	return r.scan(ctx, r.q.lockSettings, defaults.UserID)
}

func (r *settingsRepo) scan(ctx context.Context, query, userID string) (domain.PrivacySettings, error) {
	var s domain.PrivacySettings
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.ID, &s.UserID,
		&s.ProfileVisibility, &s.ShowEmail, &s.ShowPhone, &s.ShowLocation, &s.ShowWebsite, &s.ShowBio, &s.ShowAvatar,
		&s.ActivityVisibility, &s.ShowPosts, &s.ShowEvents, &s.ShowServices, &s.ShowFollowers, &s.ShowFollowing,
		&s.AllowMessagesFrom, &s.AllowFollowRequests, &s.AllowEventInvites, &s.AllowServiceRequests,
		&s.Searchable, &s.ShowInSuggestions, &s.ShowInLeaderboard,
		&s.AnalyticsEnabled, &s.PersonalizationEnabled, &s.MarketingEmails,
		&s.AnonymousMode, &s.AnonymousPosts, &s.AnonymousComments, &s.AnonymousVotes,
		&s.LocationSharing, &s.PreciseLocation, &s.LocationHistory,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.PrivacySettings{}, mapNotFound(err)
	}
	s.CreatedAt, s.UpdatedAt = utc(s.CreatedAt), utc(s.UpdatedAt)
	return s, nil
}

func (r *settingsRepo) UpsertSettings(ctx context.Context, s domain.PrivacySettings) error {
	_, err := r.db.ExecContext(ctx, r.q.upsertSettings, settingsArgs(s)...)
	return err
}

func settingsArgs(s domain.PrivacySettings) []any {
	return []any{
		s.ID, s.UserID,
		s.ProfileVisibility, s.ShowEmail, s.ShowPhone, s.ShowLocation, s.ShowWebsite, s.ShowBio, s.ShowAvatar,
		s.ActivityVisibility, s.ShowPosts, s.ShowEvents, s.ShowServices, s.ShowFollowers, s.ShowFollowing,
		s.AllowMessagesFrom, s.AllowFollowRequests, s.AllowEventInvites, s.AllowServiceRequests,
		s.Searchable, s.ShowInSuggestions, s.ShowInLeaderboard,
		s.AnalyticsEnabled, s.PersonalizationEnabled, s.MarketingEmails,
		s.AnonymousMode, s.AnonymousPosts, s.AnonymousComments, s.AnonymousVotes,
		s.LocationSharing, s.PreciseLocation, s.LocationHistory,
		s.CreatedAt.UTC(), s.UpdatedAt.UTC(),
	}
}
