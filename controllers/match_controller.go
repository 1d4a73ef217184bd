package controllers

import (
	"log"
	"net/http"

	"matchmaking_server/helpers"
	"matchmaking_server/services"
)

// MatchController handles match listing
type MatchController struct {
	AuthService  *services.AuthService
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(authService *services.AuthService, matchService *services.MatchService) *MatchController {
	return &MatchController{AuthService: authService, MatchService: matchService}
}

// HandleGetMatches returns every match the caller participates in
func (mc *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	user, err := mc.AuthService.ResolveToken(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}

	matches, err := mc.MatchService.GetMatchesForUser(r.Context(), user.UserID)
	if err != nil {
		log.Printf("Error fetching matches for %s: %v", user.UserID, err)
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"matches": matches})
}
