package routes

import (
	"matchmaking_server/controllers"
	"matchmaking_server/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up profile upsert and the /me view
func RegisterProfileRoutes(r *mux.Router, authService *services.AuthService, profileService *services.ProfileService) {
	controller := controllers.NewProfileController(authService, profileService)

	r.HandleFunc("/api/profile", controller.HandleUpsertProfile).Methods("POST")
	r.HandleFunc("/api/me", controller.HandleGetMe).Methods("GET")
}
