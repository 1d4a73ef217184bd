package routes

import (
	"matchmaking_server/controllers"
	"matchmaking_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up the mock checkout/confirm payment flow
func RegisterAuthRoutes(r *mux.Router, authService *services.AuthService) {
	controller := controllers.NewAuthController(authService)

	r.HandleFunc("/api/checkout", controller.HandleCheckout).Methods("POST")
	r.HandleFunc("/api/confirm", controller.HandleConfirm).Methods("POST")
}
