package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/aussiebroadwan/rally/internal/privacy/store"
	"github.com/aussiebroadwan/rally/pkg/idx"
	"github.com/aussiebroadwan/rally/pkg/slogx"
)

type PreferencesService struct {
	Store store.Store
	Clock Clock
}

func (s *PreferencesService) GetPreferences(ctx context.Context, caller domain.Caller, userID string) (*domain.AnonymousPreferences, error) {
	if err := authorize(caller, userID, accessRead); err != nil {
		return nil, err
	}

	prefs, err := s.Store.AnonymousPreferences().GetPreferences(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		slogx.FromContext(ctx).Error("failed to load anonymous preferences",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("load anonymous preferences: %w", err)
	}
	return &prefs, nil
}

// MergePreferences applies the supplied fields on top of the stored record
// or the defaults.
func (s *PreferencesService) MergePreferences(ctx context.Context, caller domain.Caller, userID string, patch domain.AnonymousPreferencesPatch) error {
	if err := authorize(caller, userID, accessWrite); err != nil {
		return err
	}
	if err := patch.Validate(); err != nil {
		return invalid(err)
	}

	now := s.Clock.now()
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.AnonymousPreferences().LockPreferences(ctx,
			domain.DefaultAnonymousPreferences(idx.NewAt(now).String(), userID, now))
		if err != nil {
			return err
		}

		patch.Apply(&current, now)
		return tx.AnonymousPreferences().UpsertPreferences(ctx, current)
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to update anonymous preferences",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return fmt.Errorf("update anonymous preferences: %w", err)
	}
	return nil
}
