package http

import (
	"net/http"

	"github.com/aussiebroadwan/rally/internal/privacy/service"
	"github.com/aussiebroadwan/rally/pkg/httpx"
	"github.com/aussiebroadwan/rally/pkg/privacysdk"
)

type PreferencesHandler struct {
	PreferencesService *service.PreferencesService
}

// HandleGet returns the user's anonymous preferences
//
//	@Summary		Get anonymous preferences
//	@Description	preferences is null when the user has never saved any.
//	@Tags			Preferences
//	@Produce		json
//	@Param			user_id	path		string	true	"User ID or \"me\""
//	@Success		200		{object}	privacysdk.PreferencesResponse
//	@Failure		401		{object}	privacysdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403		{object}	privacysdk.PreferencesResponse
//	@Failure		500		{object}	privacysdk.PreferencesResponse
//	@Security		BearerAuth
//	@Router			/v1/users/{user_id}/privacy/preferences [get].
func (h *PreferencesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)

	prefs, err := h.PreferencesService.GetPreferences(r.Context(), caller, targetUser(r, caller))
	if err != nil {
		writeServiceError(w, r, err, func(msg string) any {
			return privacysdk.PreferencesResponse{Error: msg}
		})
		return
	}

	resp := privacysdk.PreferencesResponse{}
	if prefs != nil {
		resp.Preferences = toPreferences(*prefs)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandlePatch merges the supplied fields into the user's preferences
//
//	@Summary		Update anonymous preferences
//	@Tags			Preferences
//	@Accept			json
//	@Produce		json
//	@Param			user_id	path		string								true	"User ID or \"me\""
//	@Param			request	body		privacysdk.AnonymousPreferencesUpdate	true	"Fields to change"
//	@Success		200		{object}	privacysdk.SuccessResponse
//	@Failure		400		{object}	privacysdk.SuccessResponse
//	@Failure		401		{object}	privacysdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403		{object}	privacysdk.SuccessResponse
//	@Failure		500		{object}	privacysdk.SuccessResponse
//	@Security		BearerAuth
//	@Router			/v1/users/{user_id}/privacy/preferences [patch].
func (h *PreferencesHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)

	var req privacysdk.AnonymousPreferencesUpdate
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, privacysdk.SuccessResponse{Error: msgBadRequest + ": " + err.Error()})
		return
	}

	if err := h.PreferencesService.MergePreferences(r.Context(), caller, targetUser(r, caller), fromPreferencesUpdate(req)); err != nil {
		writeServiceError(w, r, err, failure)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, privacysdk.SuccessResponse{Success: true})
}
