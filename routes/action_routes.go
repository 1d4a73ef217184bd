package routes

import (
	"matchmaking_server/controllers"
	"matchmaking_server/services"

	"github.com/gorilla/mux"
)

// RegisterActionRoutes sets up the like endpoint
func RegisterActionRoutes(r *mux.Router, authService *services.AuthService, actionService *services.ActionService) {
	controller := controllers.NewActionController(authService, actionService)

	r.HandleFunc("/api/like", controller.HandleLike).Methods("POST")
}
