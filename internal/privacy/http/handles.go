package http

import (
	"net/http"

	"github.com/aussiebroadwan/rally/internal/privacy/service"
	"github.com/aussiebroadwan/rally/pkg/httpx"
	"github.com/aussiebroadwan/rally/pkg/privacysdk"
)

type HandlesHandler struct {
	HandleService *service.HandleService
}

// HandleList returns the user's active anonymous handles
//
//	@Summary		List anonymous handles
//	@Description	Active handles only, newest first. An empty list is not an error.
//	@Tags			Handles
//	@Produce		json
//	@Param			user_id	path		string	true	"User ID or \"me\""
//	@Success		200		{object}	privacysdk.HandlesResponse
//	@Failure		401		{object}	privacysdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403		{object}	privacysdk.HandlesResponse
//	@Failure		500		{object}	privacysdk.HandlesResponse
//	@Security		BearerAuth
//	@Router			/v1/users/{user_id}/privacy/handles [get].
func (h *HandlesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)

	handles, err := h.HandleService.ListHandles(r.Context(), caller, targetUser(r, caller))
	if err != nil {
		writeServiceError(w, r, err, func(msg string) any {
			return privacysdk.HandlesResponse{Handles: []privacysdk.AnonymousHandle{}, Error: msg}
		})
		return
	}

	resp := privacysdk.HandlesResponse{
		Handles: make([]privacysdk.AnonymousHandle, len(handles)),
	}
	for i, handle := range handles {
		resp.Handles[i] = toHandle(handle)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCreate registers a new anonymous handle
//
//	@Summary		Create anonymous handle
//	@Description	Handles are 3-30 characters of letters, digits, "_", "-" and ".", unique per user among active handles.
//	@Tags			Handles
//	@Accept			json
//	@Produce		json
//	@Param			user_id	path		string							true	"User ID or \"me\""
//	@Param			request	body		privacysdk.CreateHandleRequest	true	"Handle and optional display name"
//	@Success		201		{object}	privacysdk.CreateHandleResponse
//	@Failure		400		{object}	privacysdk.CreateHandleResponse	"Invalid handle or display name"
//	@Failure		401		{object}	privacysdk.ErrorResponse		"Missing or invalid token"
//	@Failure		403		{object}	privacysdk.CreateHandleResponse
//	@Failure		409		{object}	privacysdk.CreateHandleResponse	"Handle taken or limit reached"
//	@Failure		500		{object}	privacysdk.CreateHandleResponse
//	@Security		BearerAuth
//	@Router			/v1/users/{user_id}/privacy/handles [post].
func (h *HandlesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)

	var req privacysdk.CreateHandleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, privacysdk.CreateHandleResponse{Error: msgBadRequest + ": " + err.Error()})
		return
	}

	created, err := h.HandleService.CreateHandle(r.Context(), caller, targetUser(r, caller), req.Handle, req.DisplayName)
	if err != nil {
		writeServiceError(w, r, err, func(msg string) any {
			return privacysdk.CreateHandleResponse{Error: msg}
		})
		return
	}

	handle := toHandle(created)
	httpx.WriteJSON(w, http.StatusCreated, privacysdk.CreateHandleResponse{Success: true, Handle: &handle})
}

// HandleDeactivate marks one of the user's handles inactive
//
//	@Summary		Deactivate anonymous handle
//	@Description	Handles are never deleted. Deactivating an already inactive handle succeeds.
//	@Tags			Handles
//	@Produce		json
//	@Param			user_id		path		string	true	"User ID or \"me\""
//	@Param			handle_id	path		string	true	"Handle ID"
//	@Success		200			{object}	privacysdk.SuccessResponse
//	@Failure		401			{object}	privacysdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403			{object}	privacysdk.SuccessResponse
//	@Failure		404			{object}	privacysdk.SuccessResponse	"No such handle for this user"
//	@Failure		500			{object}	privacysdk.SuccessResponse
//	@Security		BearerAuth
//	@Router			/v1/users/{user_id}/privacy/handles/{handle_id} [delete].
func (h *HandlesHandler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)

	err := h.HandleService.DeactivateHandle(r.Context(), caller, targetUser(r, caller), r.PathValue("handle_id"))
	if err != nil {
		writeServiceError(w, r, err, failure)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, privacysdk.SuccessResponse{Success: true})
}

// HandleSuggest proposes a random handle for the caller
//
//	@Summary		Suggest a handle
//	@Description	Returns a random handle such as "SwiftExplorer42" that is not among the caller's active handles.
//	@Tags			Handles
//	@Produce		json
//	@Success		200	{object}	privacysdk.HandleSuggestionResponse
//	@Failure		401	{object}	privacysdk.ErrorResponse	"Missing or invalid token"
//	@Failure		500	{object}	privacysdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/privacy/handles/suggestion [get].
func (h *HandlesHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	suggestion, err := h.HandleService.SuggestHandle(r.Context(), callerFrom(r))
	if err != nil {
		writeServiceError(w, r, err, func(msg string) any {
			return httpx.ErrorBody{Error: msg}
		})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, privacysdk.HandleSuggestionResponse{Handle: suggestion})
}
