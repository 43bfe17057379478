package http

import (
	"net/http"

	"github.com/aussiebroadwan/rally/internal/privacy/service"
	"github.com/aussiebroadwan/rally/pkg/httpx"
	"github.com/aussiebroadwan/rally/pkg/privacysdk"
)

type IdentityHandler struct {
	IdentityService *service.IdentityService
}

// HandleReveal switches the user to their real name
//
//	@Summary		Reveal identity
//	@Description	Shows real_name on the profile and turns anonymous mode off. The profile and settings are updated together or not at all.
//	@Tags			Identity
//	@Accept			json
//	@Produce		json
//	@Param			user_id	path		string							true	"User ID or \"me\""
//	@Param			request	body		privacysdk.RevealIdentityRequest	true	"Name to reveal"
//	@Success		200		{object}	privacysdk.SuccessResponse
//	@Failure		400		{object}	privacysdk.SuccessResponse	"Missing or overlong real_name"
//	@Failure		401		{object}	privacysdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403		{object}	privacysdk.SuccessResponse
//	@Failure		404		{object}	privacysdk.SuccessResponse	"No profile for this user"
//	@Failure		500		{object}	privacysdk.SuccessResponse	"Transition rolled back"
//	@Security		BearerAuth
//	@Router			/v1/users/{user_id}/identity/reveal [post].
func (h *IdentityHandler) HandleReveal(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)

	var req privacysdk.RevealIdentityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, privacysdk.SuccessResponse{Error: msgBadRequest + ": " + err.Error()})
		return
	}

	if err := h.IdentityService.RevealIdentity(r.Context(), caller, targetUser(r, caller), req.RealName); err != nil {
		writeServiceError(w, r, err, failure)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, privacysdk.SuccessResponse{Success: true})
}

// HandleHide switches the user to anonymous mode
//
//	@Summary		Hide identity
//	@Description	Hides real_name and makes the profile private with anonymous mode on. The stored name is kept.
//	@Tags			Identity
//	@Produce		json
//	@Param			user_id	path		string	true	"User ID or \"me\""
//	@Success		200		{object}	privacysdk.SuccessResponse
//	@Failure		401		{object}	privacysdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403		{object}	privacysdk.SuccessResponse
//	@Failure		404		{object}	privacysdk.SuccessResponse	"No profile for this user"
//	@Failure		500		{object}	privacysdk.SuccessResponse	"Transition rolled back"
//	@Security		BearerAuth
//	@Router			/v1/users/{user_id}/identity/hide [post].
func (h *IdentityHandler) HandleHide(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)

	if err := h.IdentityService.HideIdentity(r.Context(), caller, targetUser(r, caller)); err != nil {
		writeServiceError(w, r, err, failure)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, privacysdk.SuccessResponse{Success: true})
}

// HandleAnonymous reports whether the profile presents as anonymous
//
//	@Summary		Is anonymous mode on
//	@Tags			Identity
//	@Produce		json
//	@Param			user_id	path		string	true	"User ID or \"me\""
//	@Success		200		{object}	privacysdk.AnonymousModeResponse
//	@Failure		401		{object}	privacysdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403		{object}	privacysdk.AnonymousModeResponse
//	@Failure		404		{object}	privacysdk.AnonymousModeResponse	"No profile for this user"
//	@Failure		500		{object}	privacysdk.AnonymousModeResponse
//	@Security		BearerAuth
//	@Router			/v1/users/{user_id}/identity/anonymous [get].
func (h *IdentityHandler) HandleAnonymous(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)

	anon, err := h.IdentityService.IsAnonymousMode(r.Context(), caller, targetUser(r, caller))
	if err != nil {
		writeServiceError(w, r, err, func(msg string) any {
			return privacysdk.AnonymousModeResponse{Error: msg}
		})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, privacysdk.AnonymousModeResponse{IsAnonymous: anon})
}
