package http

import (
	"net/http"

	"github.com/aussiebroadwan/rally/internal/privacy/service"
	"github.com/aussiebroadwan/rally/pkg/httpx"
	"github.com/aussiebroadwan/rally/pkg/privacysdk"
)

type RecommendationsHandler struct {
	RecommendationService *service.RecommendationService
}

// ServeHTTP returns privacy suggestions for the user
//
//	@Summary		Get privacy recommendations
//	@Description	Advisory suggestions in a fixed order plus a 0-100 privacy score. Users without saved settings score 0.
//	@Tags			Recommendations
//	@Produce		json
//	@Param			user_id	path		string	true	"User ID or \"me\""
//	@Success		200		{object}	privacysdk.RecommendationsResponse
//	@Failure		401		{object}	privacysdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403		{object}	privacysdk.RecommendationsResponse
//	@Failure		500		{object}	privacysdk.RecommendationsResponse
//	@Security		BearerAuth
//	@Router			/v1/users/{user_id}/privacy/recommendations [get].
func (h *RecommendationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)

	report, err := h.RecommendationService.GetReport(r.Context(), caller, targetUser(r, caller))
	if err != nil {
		writeServiceError(w, r, err, func(msg string) any {
			return privacysdk.RecommendationsResponse{Recommendations: []string{}, Error: msg}
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, privacysdk.RecommendationsResponse{
		Recommendations: report.Recommendations,
		Score:           report.Score,
	})
}
