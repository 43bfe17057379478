package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	privacyhttp "github.com/aussiebroadwan/rally/internal/privacy/http"
	"github.com/aussiebroadwan/rally/internal/privacy/service"
	"github.com/aussiebroadwan/rally/internal/privacy/store"
	"github.com/aussiebroadwan/rally/internal/privacy/store/drivers/sqlite"
	"github.com/aussiebroadwan/rally/pkg/jwtx"
	"github.com/aussiebroadwan/rally/pkg/jwtx/jwtxtest"
	"github.com/aussiebroadwan/rally/pkg/privacysdk"
)

var rw = []string{domain.PermPrivacyRead, domain.PermPrivacyWrite}

type harness struct {
	t      *testing.T
	server *httptest.Server
	store  store.Store
	tokens *jwtxtest.TokenIssuer
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens := jwtxtest.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := privacyhttp.NewRouter(tokens.Keys, tokens.Verifier(), "test", st, logger)
	r.SettingsService = &service.SettingsService{Store: st}
	r.PreferencesService = &service.PreferencesService{Store: st}
	r.HandleService = &service.HandleService{Store: st}
	r.IdentityService = &service.IdentityService{Store: st}
	r.RecommendationService = &service.RecommendationService{Store: st}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &harness{t: t, server: srv, store: st, tokens: tokens}
}

// do sends body (if non-nil) as JSON and decodes the response into out.
func (h *harness) do(method, path, token string, body, out any) int {
	h.t.Helper()

	var rd io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			rd = strings.NewReader(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(h.t, err)
			rd = bytes.NewReader(b)
		}
	}

	req, err := http.NewRequest(method, h.server.URL+path, rd)
	require.NoError(h.t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.server.Client().Do(req)
	require.NoError(h.t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(h.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestSettingsRoutes(t *testing.T) {
	h := newHarness(t)
	token := h.tokens.Token(t, "user-1", rw...)

	t.Run("absent settings are null", func(t *testing.T) {
		var got privacysdk.SettingsResponse
		code := h.do(http.MethodGet, "/v1/users/user-1/privacy/settings", token, nil, &got)
		require.Equal(t, http.StatusOK, code)
		require.Nil(t, got.Settings)
		require.Empty(t, got.Error)
	})

	t.Run("patch merges onto defaults", func(t *testing.T) {
		var ok privacysdk.SuccessResponse
		code := h.do(http.MethodPatch, "/v1/users/me/privacy/settings", token,
			map[string]any{"show_email": true, "profile_visibility": "friends"}, &ok)
		require.Equal(t, http.StatusOK, code)
		require.True(t, ok.Success)

		var got privacysdk.SettingsResponse
		h.do(http.MethodGet, "/v1/users/me/privacy/settings", token, nil, &got)
		require.NotNil(t, got.Settings)
		require.Equal(t, "user-1", got.Settings.UserID)
		require.True(t, got.Settings.ShowEmail)
		require.Equal(t, "friends", got.Settings.ProfileVisibility)
		require.True(t, got.Settings.ShowBio, "untouched fields keep their defaults")
	})

	t.Run("invalid enum", func(t *testing.T) {
		var got privacysdk.SuccessResponse
		code := h.do(http.MethodPatch, "/v1/users/me/privacy/settings", token,
			map[string]any{"allow_messages_from": "everyone"}, &got)
		require.Equal(t, http.StatusBadRequest, code)
		require.False(t, got.Success)
		require.Contains(t, got.Error, "allow_messages_from")
	})

	t.Run("unknown field", func(t *testing.T) {
		var got privacysdk.SuccessResponse
		code := h.do(http.MethodPatch, "/v1/users/me/privacy/settings", token, `{"show_everything":true}`, &got)
		require.Equal(t, http.StatusBadRequest, code)
		require.Contains(t, got.Error, "invalid request body")
	})

	t.Run("reset applies anonymous bundle", func(t *testing.T) {
		var ok privacysdk.SuccessResponse
		code := h.do(http.MethodPost, "/v1/users/me/privacy/settings/reset", token, nil, &ok)
		require.Equal(t, http.StatusOK, code)
		require.True(t, ok.Success)

		var got privacysdk.SettingsResponse
		h.do(http.MethodGet, "/v1/users/me/privacy/settings", token, nil, &got)
		require.Equal(t, "private", got.Settings.ProfileVisibility)
		require.Equal(t, "none", got.Settings.AllowMessagesFrom)
		require.True(t, got.Settings.AnonymousMode)
		require.False(t, got.Settings.ShowEmail)
	})
}

func TestAuthentication(t *testing.T) {
	h := newHarness(t)

	t.Run("missing token", func(t *testing.T) {
		code := h.do(http.MethodGet, "/v1/users/me/privacy/settings", "", nil, nil)
		require.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("token from another issuer", func(t *testing.T) {
		other := jwtxtest.New(t)
		code := h.do(http.MethodGet, "/v1/users/me/privacy/settings", other.Token(t, "user-1", rw...), nil, nil)
		require.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("read scope cannot write", func(t *testing.T) {
		token := h.tokens.Token(t, "user-1", domain.PermPrivacyRead)
		code := h.do(http.MethodPost, "/v1/users/me/privacy/settings/reset", token, nil, nil)
		require.Equal(t, http.StatusForbidden, code)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		var got privacysdk.SettingsResponse
		token := h.tokens.Token(t, "user-1", rw...)
		code := h.do(http.MethodGet, "/v1/users/user-2/privacy/settings", token, nil, &got)
		require.Equal(t, http.StatusForbidden, code)
		require.Nil(t, got.Settings)
		require.Equal(t, service.ErrForbidden.Error(), got.Error)
	})

	t.Run("admin may act on other users", func(t *testing.T) {
		token := h.tokens.Token(t, "admin-1", domain.PermPrivacyAdmin)
		code := h.do(http.MethodPatch, "/v1/users/user-2/privacy/settings", token,
			map[string]any{"marketing_emails": true}, nil)
		require.Equal(t, http.StatusOK, code)
	})
}

func TestPreferencesRoutes(t *testing.T) {
	h := newHarness(t)
	token := h.tokens.Token(t, "user-1", rw...)

	var got privacysdk.PreferencesResponse
	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/v1/users/me/privacy/preferences", token, nil, &got))
	require.Nil(t, got.Preferences)

	code := h.do(http.MethodPatch, "/v1/users/me/privacy/preferences", token,
		privacysdk.AnonymousPreferencesUpdate{AutoAnonymousMode: ptr(true), DefaultLocationSharing: ptr("city")}, nil)
	require.Equal(t, http.StatusOK, code)

	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/v1/users/me/privacy/preferences", token, nil, &got))
	require.NotNil(t, got.Preferences)
	require.True(t, got.Preferences.AutoAnonymousMode)
	require.Equal(t, "city", got.Preferences.DefaultLocationSharing)
	require.Equal(t, "public", got.Preferences.DefaultPrivacyLevel)

	code = h.do(http.MethodPatch, "/v1/users/me/privacy/preferences", token,
		map[string]any{"default_privacy_level": "secret"}, nil)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestHandleRoutes(t *testing.T) {
	h := newHarness(t)
	token := h.tokens.Token(t, "user-1", rw...)

	var list privacysdk.HandlesResponse
	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/v1/users/me/privacy/handles", token, nil, &list))
	require.NotNil(t, list.Handles)
	require.Empty(t, list.Handles)

	var created privacysdk.CreateHandleResponse
	code := h.do(http.MethodPost, "/v1/users/me/privacy/handles", token,
		privacysdk.CreateHandleRequest{Handle: "QuietOwl"}, &created)
	require.Equal(t, http.StatusCreated, code)
	require.True(t, created.Success)
	require.NotNil(t, created.Handle)
	require.Equal(t, "QuietOwl", created.Handle.DisplayName)

	var dup privacysdk.CreateHandleResponse
	code = h.do(http.MethodPost, "/v1/users/me/privacy/handles", token,
		privacysdk.CreateHandleRequest{Handle: "quietowl"}, &dup)
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, service.ErrHandleTaken.Error(), dup.Error)
	require.Nil(t, dup.Handle)

	code = h.do(http.MethodPost, "/v1/users/me/privacy/handles", token,
		privacysdk.CreateHandleRequest{Handle: "no spaces allowed"}, nil)
	require.Equal(t, http.StatusBadRequest, code)

	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/v1/users/me/privacy/handles", token, nil, &list))
	require.Len(t, list.Handles, 1)

	var miss privacysdk.SuccessResponse
	code = h.do(http.MethodDelete, "/v1/users/me/privacy/handles/does-not-exist", token, nil, &miss)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, service.ErrHandleNotFound.Error(), miss.Error)

	other := h.tokens.Token(t, "user-2", rw...)
	code = h.do(http.MethodDelete, "/v1/users/me/privacy/handles/"+created.Handle.ID, other, nil, nil)
	require.Equal(t, http.StatusNotFound, code, "another user's handle is not visible")

	code = h.do(http.MethodDelete, "/v1/users/me/privacy/handles/"+created.Handle.ID, token, nil, nil)
	require.Equal(t, http.StatusOK, code)
	code = h.do(http.MethodDelete, "/v1/users/me/privacy/handles/"+created.Handle.ID, token, nil, nil)
	require.Equal(t, http.StatusOK, code, "deactivation is idempotent")

	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/v1/users/me/privacy/handles", token, nil, &list))
	require.Empty(t, list.Handles)

	var suggestion privacysdk.HandleSuggestionResponse
	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/v1/privacy/handles/suggestion", token, nil, &suggestion))
	require.Regexp(t, `^[A-Z][a-z]+[A-Z][a-z]+[1-9][0-9]$`, suggestion.Handle)
}

func TestIdentityRoutes(t *testing.T) {
	h := newHarness(t)
	token := h.tokens.Token(t, "user-1", rw...)

	t.Run("unknown profile", func(t *testing.T) {
		var got privacysdk.AnonymousModeResponse
		code := h.do(http.MethodGet, "/v1/users/me/identity/anonymous", token, nil, &got)
		require.Equal(t, http.StatusNotFound, code)
		require.Equal(t, service.ErrProfileNotFound.Error(), got.Error)

		code = h.do(http.MethodPost, "/v1/users/me/identity/hide", token, nil, nil)
		require.Equal(t, http.StatusNotFound, code)
	})

	require.NoError(t, h.store.Profiles().CreateProfile(context.Background(), domain.ProfileIdentity{
		UserID:    "user-1",
		UpdatedAt: time.Now().UTC(),
	}))

	t.Run("reveal then hide", func(t *testing.T) {
		code := h.do(http.MethodPost, "/v1/users/me/identity/reveal", token,
			privacysdk.RevealIdentityRequest{RealName: "Ada Lovelace"}, nil)
		require.Equal(t, http.StatusOK, code)

		var got privacysdk.AnonymousModeResponse
		require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/v1/users/me/identity/anonymous", token, nil, &got))
		require.False(t, got.IsAnonymous)

		require.Equal(t, http.StatusOK, h.do(http.MethodPost, "/v1/users/me/identity/hide", token, nil, nil))
		require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/v1/users/me/identity/anonymous", token, nil, &got))
		require.True(t, got.IsAnonymous)

		var settings privacysdk.SettingsResponse
		h.do(http.MethodGet, "/v1/users/me/privacy/settings", token, nil, &settings)
		require.True(t, settings.Settings.AnonymousMode)
		require.Equal(t, "private", settings.Settings.ProfileVisibility)
	})

	t.Run("blank real name", func(t *testing.T) {
		code := h.do(http.MethodPost, "/v1/users/me/identity/reveal", token,
			privacysdk.RevealIdentityRequest{RealName: "   "}, nil)
		require.Equal(t, http.StatusBadRequest, code)
	})
}

func TestRecommendationsRoute(t *testing.T) {
	h := newHarness(t)
	token := h.tokens.Token(t, "user-1", rw...)

	var got privacysdk.RecommendationsResponse
	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/v1/users/me/privacy/recommendations", token, nil, &got))
	require.Equal(t, []string{domain.RecommendAnonymousMode}, got.Recommendations)
	require.Zero(t, got.Score)

	h.do(http.MethodPatch, "/v1/users/me/privacy/settings", token,
		map[string]any{"show_email": true, "marketing_emails": true}, nil)

	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/v1/users/me/privacy/recommendations", token, nil, &got))
	require.Equal(t, []string{
		domain.RecommendHideEmail,
		domain.RecommendPrivateProfile,
		domain.RecommendAnonymousMode,
		domain.RecommendDisableMarketing,
	}, got.Recommendations)
	require.Positive(t, got.Score)
}

func TestHealthRoutes(t *testing.T) {
	h := newHarness(t)

	var live privacysdk.HealthResponse
	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/livez", "", nil, &live))
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	var ready privacysdk.HealthResponse
	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/readyz", "", nil, &ready))
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.JWKS)

	h.do(http.MethodGet, "/v1/users/me/privacy/settings", "", nil, nil)

	resp, err := h.server.Client().Get(h.server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "privacy_http_requests_total")
}

func TestReadyzWithoutKeys(t *testing.T) {
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	rec := httptest.NewRecorder()
	privacyhttp.ReadyzHandler(time.Now(), "test", st, jwtx.NewKeySet()).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var got privacysdk.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "degraded", got.Status)
	require.Equal(t, "error: no keys loaded", got.Checks.JWKS)
}

func ptr[T any](v T) *T { return &v }
