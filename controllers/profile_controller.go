package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"matchmaking_server/helpers"
	"matchmaking_server/models"
	"matchmaking_server/services"
)

// ProfileController handles profile writes and the /me view
type ProfileController struct {
	AuthService    *services.AuthService
	ProfileService *services.ProfileService
}

// NewProfileController creates a new ProfileController instance
func NewProfileController(authService *services.AuthService, profileService *services.ProfileService) *ProfileController {
	return &ProfileController{AuthService: authService, ProfileService: profileService}
}

// HandleUpsertProfile creates or fully replaces the caller's profile
func (pc *ProfileController) HandleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	user, err := pc.AuthService.ResolveToken(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}

	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}

	status, err := pc.ProfileService.UpsertProfile(r.Context(), user, profile)
	if err != nil {
		log.Printf("Error upserting profile for %s: %v", user.UserID, err)
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": status})
}

// HandleGetMe returns the caller's profile plus auth info, even when unpaid
func (pc *ProfileController) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	user, err := pc.AuthService.ResolveToken(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}

	response, err := pc.ProfileService.GetOwnProfile(r.Context(), user)
	if err != nil {
		log.Printf("Error fetching profile for %s: %v", user.UserID, err)
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, response)
}
