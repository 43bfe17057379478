package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/aussiebroadwan/rally/pkg/jwtx"
)

// KeyRefresher keeps a KeySet in step with the auth service's JWKS so key
// rotations there are picked up without a restart.
type KeyRefresher struct {
	Keys     *jwtx.KeySet
	URL      string
	Client   *http.Client
	Logger   *slog.Logger
	Interval time.Duration

	mu      sync.Mutex
	started bool
	stopped bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewKeyRefresher creates a refresher. If interval is 0 or negative,
// defaults to 15 minutes.
func NewKeyRefresher(keys *jwtx.KeySet, url string, logger *slog.Logger, interval time.Duration) *KeyRefresher {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	return &KeyRefresher{
		Keys:     keys,
		URL:      url,
		Client:   &http.Client{Timeout: 10 * time.Second},
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Refresh fetches the JWKS once and replaces the key set. On failure the
// previous keys stay in place.
func (r *KeyRefresher) Refresh(ctx context.Context) error {
	jwks, err := jwtx.FetchJWKS(ctx, r.Client, r.URL)
	if err != nil {
		return fmt.Errorf("fetch jwks: %w", err)
	}
	if err := r.Keys.ResetFromJWKS(jwks); err != nil {
		return fmt.Errorf("load jwks: %w", err)
	}
	r.Logger.Debug("jwks refreshed", "url", r.URL, "keys", r.Keys.Len())
	return nil
}

// Start runs the refresh loop in the background. It does not fetch
// immediately; call Refresh first when startup should wait for keys.
func (r *KeyRefresher) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started || r.stopped {
		return
	}
	r.started = true

	go r.run()
	r.Logger.Info("jwks refresher started", "url", r.URL, "interval", r.Interval)
}

// Stop blocks until an in-flight refresh has finished. It is safe to call
// more than once and on a refresher that was never started.
func (r *KeyRefresher) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	running := r.started
	close(r.stopCh)
	r.mu.Unlock()

	if running {
		<-r.doneCh
		r.Logger.Info("jwks refresher stopped")
	}
}

func (r *KeyRefresher) run() {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), r.Client.Timeout)
			if err := r.Refresh(ctx); err != nil {
				r.Logger.Error("jwks refresh failed, keeping previous keys", "error", err)
			}
			cancel()
		case <-r.stopCh:
			return
		}
	}
}
