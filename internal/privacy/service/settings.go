package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/aussiebroadwan/rally/internal/privacy/store"
	"github.com/aussiebroadwan/rally/pkg/idx"
	"github.com/aussiebroadwan/rally/pkg/slogx"
)

type SettingsService struct {
	Store store.Store
	Clock Clock
}

// GetSettings returns the user's settings, or nil when they have never been
// saved.
func (s *SettingsService) GetSettings(ctx context.Context, caller domain.Caller, userID string) (*domain.PrivacySettings, error) {
	if err := authorize(caller, userID, accessRead); err != nil {
		return nil, err
	}

	settings, err := s.Store.PrivacySettings().GetSettings(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		slogx.FromContext(ctx).Error("failed to load privacy settings",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("load privacy settings: %w", err)
	}
	return &settings, nil
}

// MergeSettings applies the supplied fields, creating the record from
// defaults when the user has none.
func (s *SettingsService) MergeSettings(ctx context.Context, caller domain.Caller, userID string, patch domain.PrivacySettingsPatch) error {
	if err := authorize(caller, userID, accessWrite); err != nil {
		return err
	}
	if err := patch.Validate(); err != nil {
		return invalid(err)
	}

	now := s.Clock.now()
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return modifySettings(ctx, tx, userID, now, func(ps *domain.PrivacySettings) {
			patch.Apply(ps, now)
		})
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to update privacy settings",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return fmt.Errorf("update privacy settings: %w", err)
	}
	return nil
}

// ResetToAnonymousDefaults replaces every privacy-relevant field with the
// anonymous bundle. Unlike MergeSettings nothing the user set survives.
func (s *SettingsService) ResetToAnonymousDefaults(ctx context.Context, caller domain.Caller, userID string) error {
	if err := authorize(caller, userID, accessWrite); err != nil {
		return err
	}

	now := s.Clock.now()
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return modifySettings(ctx, tx, userID, now, func(ps *domain.PrivacySettings) {
			ps.ApplyAnonymousBundle(now)
		})
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to reset privacy settings",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return fmt.Errorf("reset privacy settings: %w", err)
	}

	slogx.FromContext(ctx).Info("privacy settings reset to anonymous defaults", slog.String("user_id", userID))
	return nil
}

// modifySettings is the read-modify-write shared by every settings mutation.
// It must run inside tx; the row stays locked until tx ends so concurrent
// merges apply one after the other.
func modifySettings(ctx context.Context, tx store.Tx, userID string, now time.Time, mutate func(*domain.PrivacySettings)) error {
	current, err := tx.PrivacySettings().LockSettings(ctx,
		domain.DefaultPrivacySettings(idx.NewAt(now).String(), userID, now))
	if err != nil {
		return err
	}

	mutate(&current)
	return tx.PrivacySettings().UpsertSettings(ctx, current)
}
