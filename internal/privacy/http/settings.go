package http

import (
	"net/http"

	"github.com/aussiebroadwan/rally/internal/privacy/service"
	"github.com/aussiebroadwan/rally/pkg/httpx"
	"github.com/aussiebroadwan/rally/pkg/privacysdk"
)

type SettingsHandler struct {
	SettingsService *service.SettingsService
}

// HandleGet returns the user's privacy settings
//
//	@Summary		Get privacy settings
//	@Description	Returns the stored privacy settings. settings is null when the user has never saved any.
//	@Tags			Settings
//	@Produce		json
//	@Param			user_id	path		string						true	"User ID or \"me\""
//	@Success		200		{object}	privacysdk.SettingsResponse
//	@Failure		401		{object}	privacysdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403		{object}	privacysdk.SettingsResponse	"Not allowed to read this user"
//	@Failure		500		{object}	privacysdk.SettingsResponse
//	@Security		BearerAuth
//	@Router			/v1/users/{user_id}/privacy/settings [get].
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)

	settings, err := h.SettingsService.GetSettings(r.Context(), caller, targetUser(r, caller))
	if err != nil {
		writeServiceError(w, r, err, func(msg string) any {
			return privacysdk.SettingsResponse{Error: msg}
		})
		return
	}

	resp := privacysdk.SettingsResponse{}
	if settings != nil {
		resp.Settings = toSettings(*settings)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandlePatch merges the supplied fields into the user's settings
//
//	@Summary		Update privacy settings
//	@Description	Merges only the supplied fields. Creates the record from defaults when absent.
//	@Tags			Settings
//	@Accept			json
//	@Produce		json
//	@Param			user_id	path		string							true	"User ID or \"me\""
//	@Param			request	body		privacysdk.PrivacySettingsUpdate	true	"Fields to change"
//	@Success		200		{object}	privacysdk.SuccessResponse
//	@Failure		400		{object}	privacysdk.SuccessResponse	"Malformed body or invalid enum value"
//	@Failure		401		{object}	privacysdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403		{object}	privacysdk.SuccessResponse
//	@Failure		500		{object}	privacysdk.SuccessResponse
//	@Security		BearerAuth
//	@Router			/v1/users/{user_id}/privacy/settings [patch].
func (h *SettingsHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)

	var req privacysdk.PrivacySettingsUpdate
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, privacysdk.SuccessResponse{Error: msgBadRequest + ": " + err.Error()})
		return
	}

	if err := h.SettingsService.MergeSettings(r.Context(), caller, targetUser(r, caller), fromSettingsUpdate(req)); err != nil {
		writeServiceError(w, r, err, failure)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, privacysdk.SuccessResponse{Success: true})
}

// HandleReset replaces the user's settings with the anonymous bundle
//
//	@Summary		Reset to anonymous defaults
//	@Description	Overwrites every privacy field with the most private configuration and enables anonymous mode.
//	@Tags			Settings
//	@Produce		json
//	@Param			user_id	path		string	true	"User ID or \"me\""
//	@Success		200		{object}	privacysdk.SuccessResponse
//	@Failure		401		{object}	privacysdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403		{object}	privacysdk.SuccessResponse
//	@Failure		500		{object}	privacysdk.SuccessResponse
//	@Security		BearerAuth
//	@Router			/v1/users/{user_id}/privacy/settings/reset [post].
func (h *SettingsHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)

	if err := h.SettingsService.ResetToAnonymousDefaults(r.Context(), caller, targetUser(r, caller)); err != nil {
		writeServiceError(w, r, err, failure)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, privacysdk.SuccessResponse{Success: true})
}

func failure(msg string) any {
	return privacysdk.SuccessResponse{Error: msg}
}
