package controllers

import (
	"crypto/subtle"
	"fmt"
	"log"
	"net/http"

	"matchmaking_server/helpers"
	"matchmaking_server/services"

	"github.com/gorilla/mux"
)

// AdminController gates the moderation endpoints behind a static shared
// secret supplied as a query token.
type AdminController struct {
	AdminService *services.AdminService
	AdminToken   string
}

// NewAdminController creates a new AdminController instance
func NewAdminController(adminService *services.AdminService, adminToken string) *AdminController {
	return &AdminController{AdminService: adminService, AdminToken: adminToken}
}

func (ac *AdminController) requireAdmin(r *http.Request) error {
	token := r.URL.Query().Get("token")
	if subtle.ConstantTimeCompare([]byte(token), []byte(ac.AdminToken)) != 1 {
		return fmt.Errorf("admin secret mismatch: %w", services.ErrUnauthorized)
	}
	return nil
}

// HandleListProfiles returns every profile, unfiltered
func (ac *AdminController) HandleListProfiles(w http.ResponseWriter, r *http.Request) {
	if err := ac.requireAdmin(r); err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}

	profiles, err := ac.AdminService.ListProfiles(r.Context())
	if err != nil {
		log.Printf("Error listing profiles: %v", err)
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"profiles": profiles})
}

// HandleVerifyUser sets the verified badge on a user
func (ac *AdminController) HandleVerifyUser(w http.ResponseWriter, r *http.Request) {
	if err := ac.requireAdmin(r); err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}

	userID := mux.Vars(r)["userId"]
	if err := ac.AdminService.VerifyUser(r.Context(), userID); err != nil {
		log.Printf("Error verifying user %s: %v", userID, err)
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "verified"})
}

// HandleDeleteUser cascades a user and everything referencing them
func (ac *AdminController) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := ac.requireAdmin(r); err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}

	userID := mux.Vars(r)["userId"]
	if err := ac.AdminService.DeleteUser(r.Context(), userID); err != nil {
		log.Printf("Error deleting user %s: %v", userID, err)
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// HandleStats returns the aggregate counters
func (ac *AdminController) HandleStats(w http.ResponseWriter, r *http.Request) {
	if err := ac.requireAdmin(r); err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}

	stats, err := ac.AdminService.GetStats(r.Context())
	if err != nil {
		log.Printf("Error computing stats: %v", err)
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, stats)
}
