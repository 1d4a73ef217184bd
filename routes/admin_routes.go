package routes

import (
	"matchmaking_server/controllers"
	"matchmaking_server/services"

	"github.com/gorilla/mux"
)

// RegisterAdminRoutes sets up the moderation endpoints under /api/admin
func RegisterAdminRoutes(r *mux.Router, adminService *services.AdminService, adminToken string) {
	controller := controllers.NewAdminController(adminService, adminToken)

	adminRouter := r.PathPrefix("/api/admin").Subrouter()
	adminRouter.HandleFunc("/profiles", controller.HandleListProfiles).Methods("GET")
	adminRouter.HandleFunc("/verify/{userId}", controller.HandleVerifyUser).Methods("POST")
	adminRouter.HandleFunc("/user/{userId}", controller.HandleDeleteUser).Methods("DELETE")
	adminRouter.HandleFunc("/stats", controller.HandleStats).Methods("GET")
}
