package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/aussiebroadwan/rally/internal/privacy/store"
	"github.com/aussiebroadwan/rally/pkg/slogx"
)

const (
	transitionReveal = "reveal"
	transitionHide   = "hide"
)

// IdentityService moves users between the anonymous and identified states.
// The profile and settings writes of a transition commit together or not
// at all.
type IdentityService struct {
	Store store.Store
	Clock Clock
}

// RevealIdentity makes realName visible and switches the user's settings
// out of anonymous mode.
func (s *IdentityService) RevealIdentity(ctx context.Context, caller domain.Caller, userID, realName string) error {
	if err := authorize(caller, userID, accessWrite); err != nil {
		return err
	}
	name, err := domain.NormalizeRealName(realName)
	if err != nil {
		return invalid(err)
	}

	return s.transition(ctx, transitionReveal, userID,
		func(p *domain.ProfileIdentity, now time.Time) { p.Reveal(name, now) },
		domain.IdentifiedSettingsPatch(),
	)
}

// HideIdentity hides the real name and puts the user's settings into
// anonymous mode.
func (s *IdentityService) HideIdentity(ctx context.Context, caller domain.Caller, userID string) error {
	if err := authorize(caller, userID, accessWrite); err != nil {
		return err
	}

	return s.transition(ctx, transitionHide, userID,
		func(p *domain.ProfileIdentity, now time.Time) { p.Hide(now) },
		domain.AnonymousSettingsPatch(),
	)
}

// IsAnonymousMode derives the state from the profile alone.
func (s *IdentityService) IsAnonymousMode(ctx context.Context, caller domain.Caller, userID string) (bool, error) {
	if err := authorize(caller, userID, accessRead); err != nil {
		return false, err
	}

	p, err := s.Store.Profiles().GetProfileIdentity(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return false, ErrProfileNotFound
	}
	if err != nil {
		slogx.FromContext(ctx).Error("failed to load profile identity",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return false, fmt.Errorf("load profile identity: %w", err)
	}
	return p.AnonymousMode(), nil
}

func (s *IdentityService) transition(
	ctx context.Context,
	name string,
	userID string,
	updateProfile func(*domain.ProfileIdentity, time.Time),
	settingsPatch domain.PrivacySettingsPatch,
) error {
	log := slogx.FromContext(ctx)
	now := s.Clock.now()

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Profile
		profile, err := tx.Profiles().GetProfileIdentity(ctx, userID)
		if err == nil {
			updateProfile(&profile, now)
			err = tx.Profiles().UpdateProfileIdentity(ctx, profile)
		}
		if errors.Is(err, store.ErrNotFound) {
			err = ErrProfileNotFound
		}
		if err != nil {
			return &TransitionError{Transition: name, Step: StepProfile, Err: err}
		}

		// 2. Settings
		err = modifySettings(ctx, tx, userID, now, func(ps *domain.PrivacySettings) {
			settingsPatch.Apply(ps, now)
		})
		if err != nil {
			return &TransitionError{Transition: name, Step: StepSettings, Err: err}
		}
		return nil
	})
	recordTransition(name, err)

	var terr *TransitionError
	switch {
	case err == nil:
		log.Info("identity transition committed",
			slog.String("transition", name),
			slog.String("user_id", userID),
		)
		return nil
	case errors.Is(err, ErrProfileNotFound):
		log.Warn("identity transition for unknown profile",
			slog.String("transition", name),
			slog.String("user_id", userID),
		)
		return err
	case errors.As(err, &terr):
		log.Error("identity transition rolled back",
			slog.String("transition", name),
			slog.String("user_id", userID),
			slog.String("step", string(terr.Step)),
			slog.Any("error", terr.Err),
		)
		return err
	default:
		// Begin or commit failed.
		log.Error("identity transition failed",
			slog.String("transition", name),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return fmt.Errorf("identity %s: %w", name, err)
	}
}
