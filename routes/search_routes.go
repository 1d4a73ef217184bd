package routes

import (
	"matchmaking_server/controllers"
	"matchmaking_server/services"

	"github.com/gorilla/mux"
)

// RegisterSearchRoutes sets up the profile search endpoint
func RegisterSearchRoutes(r *mux.Router, authService *services.AuthService, searchService *services.SearchService) {
	controller := controllers.NewSearchController(authService, searchService)

	r.HandleFunc("/api/search", controller.HandleSearch).Methods("GET")
}
