package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/aussiebroadwan/rally/internal/privacy/service"
	"github.com/aussiebroadwan/rally/pkg/httpx"
	"github.com/aussiebroadwan/rally/pkg/slogx"
)

const (
	msgInternal   = "internal server error"
	msgBadRequest = "invalid request body"
)

// callerFrom builds the acting principal from the verified token.
func callerFrom(r *http.Request) domain.Caller {
	return domain.Caller{
		UserID:      httpx.UserIDFromContext(r.Context()),
		Permissions: httpx.ScopesFromContext(r.Context()),
	}
}

// targetUser resolves the {user_id} path value. "me" is the caller.
func targetUser(r *http.Request, caller domain.Caller) string {
	id := r.PathValue("user_id")
	if id == "me" {
		return caller.UserID
	}
	return id
}

// errorStatus maps a service error to a status code and the message that is
// safe to show the client.
func errorStatus(err error) (int, string) {
	var terr *service.TransitionError
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, service.ErrForbidden.Error()
	case errors.Is(err, service.ErrHandleNotFound):
		return http.StatusNotFound, service.ErrHandleNotFound.Error()
	case errors.Is(err, service.ErrProfileNotFound):
		return http.StatusNotFound, service.ErrProfileNotFound.Error()
	case errors.Is(err, service.ErrHandleTaken):
		return http.StatusConflict, service.ErrHandleTaken.Error()
	case errors.Is(err, service.ErrHandleLimitReached):
		return http.StatusConflict, service.ErrHandleLimitReached.Error()
	case errors.As(err, &terr):
		return http.StatusInternalServerError,
			fmt.Sprintf("identity %s failed, no changes were saved", terr.Transition)
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// writeServiceError renders err inside the operation's envelope. Server
// errors are logged and reported to Sentry when a hub is attached.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, envelope func(msg string) any) {
	code, msg := errorStatus(err)
	if code >= http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
			hub.CaptureException(err)
		}
	}
	httpx.WriteJSON(w, code, envelope(msg))
}
