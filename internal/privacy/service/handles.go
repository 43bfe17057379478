package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/aussiebroadwan/rally/internal/privacy/store"
	"github.com/aussiebroadwan/rally/pkg/idx"
	"github.com/aussiebroadwan/rally/pkg/slogx"
)

// DefaultMaxActiveHandles caps active handles per user when MaxActive is unset.
const DefaultMaxActiveHandles = 10

type HandleService struct {
	Store     store.Store
	Clock     Clock
	MaxActive int
}

func (s *HandleService) maxActive() int {
	if s.MaxActive <= 0 {
		return DefaultMaxActiveHandles
	}
	return s.MaxActive
}

// ListHandles returns the user's active handles, newest first.
func (s *HandleService) ListHandles(ctx context.Context, caller domain.Caller, userID string) ([]domain.AnonymousHandle, error) {
	if err := authorize(caller, userID, accessRead); err != nil {
		return nil, err
	}

	handles, err := s.Store.AnonymousHandles().ListActiveHandles(ctx, userID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list anonymous handles",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("list anonymous handles: %w", err)
	}
	return handles, nil
}

// CreateHandle registers a new active handle. displayName defaults to the
// handle itself.
func (s *HandleService) CreateHandle(ctx context.Context, caller domain.Caller, userID, handle, displayName string) (domain.AnonymousHandle, error) {
	log := slogx.FromContext(ctx)

	// 1. Authorise and validate input
	if err := authorize(caller, userID, accessWrite); err != nil {
		return domain.AnonymousHandle{}, err
	}
	name, err := domain.NormalizeHandle(handle)
	if err != nil {
		return domain.AnonymousHandle{}, invalid(err)
	}
	display, err := domain.NormalizeDisplayName(displayName, name)
	if err != nil {
		return domain.AnonymousHandle{}, invalid(err)
	}

	now := s.Clock.now()
	created := domain.AnonymousHandle{
		ID:          idx.NewAt(now).String(),
		UserID:      userID,
		Handle:      name,
		DisplayName: display,
		IsActive:    true,
		CreatedAt:   now,
	}

	// 2. Check uniqueness and the active cap, then insert
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		repo := tx.AnonymousHandles()

		// Held until commit so concurrent creates see each other's count.
		if err := repo.LockUserHandles(ctx, userID); err != nil {
			return err
		}

		taken, err := repo.ActiveHandleExists(ctx, userID, name)
		if err != nil {
			return err
		}
		if taken {
			return ErrHandleTaken
		}

		n, err := repo.CountActiveHandles(ctx, userID)
		if err != nil {
			return err
		}
		if n >= s.maxActive() {
			return ErrHandleLimitReached
		}

		// The partial unique index catches a concurrent insert of the same name.
		if err := repo.CreateHandle(ctx, created); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrHandleTaken
			}
			return err
		}
		return nil
	})

	switch {
	case errors.Is(err, ErrHandleTaken), errors.Is(err, ErrHandleLimitReached):
		log.Info("anonymous handle rejected",
			slog.String("user_id", userID),
			slog.String("reason", err.Error()),
		)
		return domain.AnonymousHandle{}, err
	case err != nil:
		log.Error("failed to create anonymous handle",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return domain.AnonymousHandle{}, fmt.Errorf("create anonymous handle: %w", err)
	}

	log.Info("anonymous handle created",
		slog.String("user_id", userID),
		slog.String("handle_id", created.ID),
	)
	return created, nil
}

// DeactivateHandle soft-deletes a handle owned by userID. Deactivating an
// already inactive handle succeeds.
func (s *HandleService) DeactivateHandle(ctx context.Context, caller domain.Caller, userID, handleID string) error {
	if err := authorize(caller, userID, accessWrite); err != nil {
		return err
	}

	err := s.Store.AnonymousHandles().DeactivateHandle(ctx, userID, handleID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrHandleNotFound
	}
	if err != nil {
		slogx.FromContext(ctx).Error("failed to deactivate anonymous handle",
			slog.String("user_id", userID),
			slog.String("handle_id", handleID),
			slog.Any("error", err),
		)
		return fmt.Errorf("deactivate anonymous handle: %w", err)
	}

	slogx.FromContext(ctx).Info("anonymous handle deactivated",
		slog.String("user_id", userID),
		slog.String("handle_id", handleID),
	)
	return nil
}

var (
	handleAdjectives = []string{
		"Quiet", "Swift", "Hidden", "Brave", "Gentle", "Silent", "Curious", "Bright",
		"Calm", "Clever", "Distant", "Humble", "Lucky", "Misty", "Nimble", "Steady",
	}
	handleNouns = []string{
		"Owl", "Explorer", "Fox", "River", "Voice", "Walker", "Sparrow", "Lantern",
		"Harbor", "Comet", "Maple", "Otter", "Pilot", "Signal", "Willow", "Wren",
	}
)

const suggestAttempts = 5

// SuggestHandle proposes an unused handle such as "SwiftExplorer42".
func (s *HandleService) SuggestHandle(ctx context.Context, caller domain.Caller) (string, error) {
	if err := authorize(caller, caller.UserID, accessRead); err != nil {
		return "", err
	}

	var candidate string
	for range suggestAttempts {
		var err error
		candidate, err = randomHandle()
		if err != nil {
			return "", fmt.Errorf("suggest handle: %w", err)
		}

		taken, err := s.Store.AnonymousHandles().ActiveHandleExists(ctx, caller.UserID, candidate)
		if err != nil {
			return "", fmt.Errorf("suggest handle: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
	// Out of attempts; CreateHandle reports the clash if the user submits it.
	return candidate, nil
}

func randomHandle() (string, error) {
	pick := func(n int) (int, error) {
		v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
		if err != nil {
			return 0, err
		}
		return int(v.Int64()), nil
	}

	a, err := pick(len(handleAdjectives))
	if err != nil {
		return "", err
	}
	n, err := pick(len(handleNouns))
	if err != nil {
		return "", err
	}
	d, err := pick(90)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s%d", handleAdjectives[a], handleNouns[n], d+10), nil
}
