package routes

import (
	"matchmaking_server/controllers"
	"matchmaking_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up match listing
func RegisterMatchRoutes(r *mux.Router, authService *services.AuthService, matchService *services.MatchService) {
	controller := controllers.NewMatchController(authService, matchService)

	r.HandleFunc("/api/matches", controller.HandleGetMatches).Methods("GET")
}
