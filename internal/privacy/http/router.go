package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aussiebroadwan/rally/api/privacy" // Swagger docs
	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/aussiebroadwan/rally/internal/privacy/service"
	"github.com/aussiebroadwan/rally/internal/privacy/store"
	"github.com/aussiebroadwan/rally/pkg/httpx"
	"github.com/aussiebroadwan/rally/pkg/jwtx"
	"github.com/aussiebroadwan/rally/pkg/slogx"
)

var (
	readScopes  = []string{domain.PermPrivacyRead, domain.PermPrivacyWrite, domain.PermPrivacyAdmin}
	writeScopes = []string{domain.PermPrivacyWrite, domain.PermPrivacyAdmin}
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store                 store.Store
	SettingsService       *service.SettingsService
	PreferencesService    *service.PreferencesService
	HandleService         *service.HandleService
	IdentityService       *service.IdentityService
	RecommendationService *service.RecommendationService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// Use appends middleware that wraps the whole mux, after request logging.
func (r *Router) Use(mws ...httpx.Middleware) {
	r.middlewares = append(r.middlewares, mws...)
}

func (r *Router) ApplyRoutes() {
	r.registerSettings()
	r.registerPreferences()
	r.registerHandles()
	r.registerIdentity()
	r.registerRecommendations()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Rally Privacy Service API
//	@version		0.1.0
//	@description	Privacy settings, anonymous preferences, anonymous handles and identity reveal/hide for Rally users.
//	@description
//	@description				Every /v1 route takes a bearer token issued by the auth service. {user_id} may be "me".
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/rally
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8081
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured registers an authenticated route. The scope check is coarse; the
// services decide whether the caller may act on the target user.
func (r *Router) secured(pattern string, h http.Handler, limit httpx.RateLimitConfig, scopes []string) {
	r.Mux.Handle(pattern, httpx.Chain(h,
		httpx.Instrument(pattern),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(scopes...),
		httpx.RateLimitByUser(limit),
	))
}

func (r *Router) registerSettings() {
	h := &SettingsHandler{SettingsService: r.SettingsService}

	r.secured("GET /v1/users/{user_id}/privacy/settings",
		http.HandlerFunc(h.HandleGet), httpx.ReadLimit, readScopes)
	r.secured("PATCH /v1/users/{user_id}/privacy/settings",
		http.HandlerFunc(h.HandlePatch), httpx.WriteLimit, writeScopes)
	r.secured("POST /v1/users/{user_id}/privacy/settings/reset",
		http.HandlerFunc(h.HandleReset), httpx.WriteLimit, writeScopes)
}

func (r *Router) registerPreferences() {
	h := &PreferencesHandler{PreferencesService: r.PreferencesService}

	r.secured("GET /v1/users/{user_id}/privacy/preferences",
		http.HandlerFunc(h.HandleGet), httpx.ReadLimit, readScopes)
	r.secured("PATCH /v1/users/{user_id}/privacy/preferences",
		http.HandlerFunc(h.HandlePatch), httpx.WriteLimit, writeScopes)
}

func (r *Router) registerHandles() {
	h := &HandlesHandler{HandleService: r.HandleService}

	r.secured("GET /v1/users/{user_id}/privacy/handles",
		http.HandlerFunc(h.HandleList), httpx.ReadLimit, readScopes)
	r.secured("POST /v1/users/{user_id}/privacy/handles",
		http.HandlerFunc(h.HandleCreate), httpx.WriteLimit, writeScopes)
	r.secured("DELETE /v1/users/{user_id}/privacy/handles/{handle_id}",
		http.HandlerFunc(h.HandleDeactivate), httpx.WriteLimit, writeScopes)
	r.secured("GET /v1/privacy/handles/suggestion",
		http.HandlerFunc(h.HandleSuggest), httpx.ReadLimit, readScopes)
}

func (r *Router) registerIdentity() {
	h := &IdentityHandler{IdentityService: r.IdentityService}

	r.secured("POST /v1/users/{user_id}/identity/reveal",
		http.HandlerFunc(h.HandleReveal), httpx.WriteLimit, writeScopes)
	r.secured("POST /v1/users/{user_id}/identity/hide",
		http.HandlerFunc(h.HandleHide), httpx.WriteLimit, writeScopes)
	r.secured("GET /v1/users/{user_id}/identity/anonymous",
		http.HandlerFunc(h.HandleAnonymous), httpx.ReadLimit, readScopes)
}

func (r *Router) registerRecommendations() {
	r.secured("GET /v1/users/{user_id}/privacy/recommendations",
		&RecommendationsHandler{RecommendationService: r.RecommendationService},
		httpx.ReadLimit, readScopes)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
