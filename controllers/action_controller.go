package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"matchmaking_server/helpers"
	"matchmaking_server/services"
)

// ActionController handles like actions
type ActionController struct {
	AuthService   *services.AuthService
	ActionService *services.ActionService
}

// NewActionController creates a new ActionController instance
func NewActionController(authService *services.AuthService, actionService *services.ActionService) *ActionController {
	return &ActionController{AuthService: authService, ActionService: actionService}
}

// HandleLike records a like and reports "liked" or "match"
func (ac *ActionController) HandleLike(w http.ResponseWriter, r *http.Request) {
	user, err := ac.AuthService.ResolveToken(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}

	var request struct {
		ToUserID string `json:"toUserId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if request.ToUserID == "" {
		http.Error(w, `{"error": "toUserId is required"}`, http.StatusBadRequest)
		return
	}

	status, err := ac.ActionService.LikeUser(r.Context(), user, request.ToUserID)
	if err != nil {
		log.Printf("Error processing like from %s: %v", user.UserID, err)
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": status})
}
