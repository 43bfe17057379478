package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/stretchr/testify/require"
)

func TestHandleService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := self("alice")

	at := func(d time.Duration) *HandleService {
		return &HandleService{Store: st, Clock: fixedClock(testNow.Add(d)), MaxActive: 3}
	}

	list, err := at(0).ListHandles(ctx, alice, "alice")
	require.NoError(t, err)
	require.Empty(t, list)

	owl, err := at(0).CreateHandle(ctx, alice, "alice", "  quiet_owl ", "")
	require.NoError(t, err)
	require.Equal(t, "quiet_owl", owl.Handle)
	require.Equal(t, "quiet_owl", owl.DisplayName)
	require.True(t, owl.IsActive)

	fox, err := at(time.Minute).CreateHandle(ctx, alice, "alice", "red.fox", "Red Fox")
	require.NoError(t, err)
	require.Equal(t, "Red Fox", fox.DisplayName)

	t.Run("list is newest first", func(t *testing.T) {
		list, err := at(0).ListHandles(ctx, alice, "alice")
		require.NoError(t, err)
		require.Equal(t, []domain.AnonymousHandle{fox, owl}, list)
	})

	t.Run("duplicate names are rejected case-insensitively", func(t *testing.T) {
		_, err := at(2*time.Minute).CreateHandle(ctx, alice, "alice", "Quiet_Owl", "")
		require.ErrorIs(t, err, ErrHandleTaken)
	})

	t.Run("same name for another user is fine", func(t *testing.T) {
		_, err := at(0).CreateHandle(ctx, self("bob"), "bob", "quiet_owl", "")
		require.NoError(t, err)
	})

	t.Run("invalid handle", func(t *testing.T) {
		_, err := at(0).CreateHandle(ctx, alice, "alice", "no spaces", "")
		require.ErrorIs(t, err, ErrInvalidRequest)
		require.ErrorIs(t, err, domain.ErrInvalidHandle)
	})

	t.Run("active handle cap", func(t *testing.T) {
		_, err := at(3*time.Minute).CreateHandle(ctx, alice, "alice", "third", "")
		require.NoError(t, err)

		_, err = at(4*time.Minute).CreateHandle(ctx, alice, "alice", "fourth", "")
		require.ErrorIs(t, err, ErrHandleLimitReached)
	})

	t.Run("deactivate", func(t *testing.T) {
		err := at(0).DeactivateHandle(ctx, self("bob"), "bob", owl.ID)
		require.ErrorIs(t, err, ErrHandleNotFound, "cannot reach another user's handle")

		err = at(0).DeactivateHandle(ctx, self("bob"), "alice", owl.ID)
		require.ErrorIs(t, err, ErrForbidden)

		require.NoError(t, at(0).DeactivateHandle(ctx, alice, "alice", owl.ID))
		require.NoError(t, at(0).DeactivateHandle(ctx, alice, "alice", owl.ID), "idempotent")

		err = at(0).DeactivateHandle(ctx, alice, "alice", "01HZZZZZZZZZZZZZZZZZZZZZZZ")
		require.ErrorIs(t, err, ErrHandleNotFound)

		list, err := at(0).ListHandles(ctx, alice, "alice")
		require.NoError(t, err)
		for _, h := range list {
			require.NotEqual(t, owl.ID, h.ID)
		}

		// The freed slot and name are reusable.
		_, err = at(5*time.Minute).CreateHandle(ctx, alice, "alice", "quiet_owl", "")
		require.NoError(t, err)
	})
}

func TestSuggestHandle(t *testing.T) {
	svc := &HandleService{Store: newTestStore(t)}
	pattern := regexp.MustCompile(`^[A-Z][a-z]+[A-Z][a-z]+[1-9][0-9]$`)

	for range 20 {
		h, err := svc.SuggestHandle(context.Background(), self("alice"))
		require.NoError(t, err)
		require.Regexp(t, pattern, h)

		_, err = domain.NormalizeHandle(h)
		require.NoError(t, err)
	}

	_, err := svc.SuggestHandle(context.Background(), domain.Caller{})
	require.Error(t, err)
}

func TestConcurrentCreatesRespectLimit(t *testing.T) {
	ctx := context.Background()
	svc := &HandleService{Store: newTestStore(t), MaxActive: 2}

	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.CreateHandle(ctx, self("alice"), "alice", fmt.Sprintf("shadow-%d", i), "")
		}()
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case !errors.Is(err, ErrHandleLimitReached):
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 2, created)

	handles, err := svc.ListHandles(ctx, self("alice"), "alice")
	require.NoError(t, err)
	require.Len(t, handles, 2)
}
