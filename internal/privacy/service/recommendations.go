package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/aussiebroadwan/rally/internal/privacy/store"
	"github.com/aussiebroadwan/rally/pkg/slogx"
)

// Report is the advisory output for one user.
type Report struct {
	Recommendations []string
	Score           int
}

type RecommendationService struct {
	Store store.Store
}

// GetReport evaluates the recommendation rules and privacy score against
// whichever records the user has. Missing records are not errors.
func (s *RecommendationService) GetReport(ctx context.Context, caller domain.Caller, userID string) (Report, error) {
	if err := authorize(caller, userID, accessRead); err != nil {
		return Report{}, err
	}
	log := slogx.FromContext(ctx)

	var settings *domain.PrivacySettings
	switch got, err := s.Store.PrivacySettings().GetSettings(ctx, userID); {
	case err == nil:
		settings = &got
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to load privacy settings", slog.String("user_id", userID), slog.Any("error", err))
		return Report{}, fmt.Errorf("load privacy settings: %w", err)
	}

	var prefs *domain.AnonymousPreferences
	switch got, err := s.Store.AnonymousPreferences().GetPreferences(ctx, userID); {
	case err == nil:
		prefs = &got
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to load anonymous preferences", slog.String("user_id", userID), slog.Any("error", err))
		return Report{}, fmt.Errorf("load anonymous preferences: %w", err)
	}

	return Report{
		Recommendations: domain.Recommend(settings, prefs),
		Score:           domain.PrivacyScore(settings),
	}, nil
}
