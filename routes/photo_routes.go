package routes

import (
	"matchmaking_server/controllers"
	"matchmaking_server/services"

	"github.com/gorilla/mux"
)

// RegisterPhotoRoutes sets up presigned URL generation for profile photos
func RegisterPhotoRoutes(r *mux.Router, authService *services.AuthService, photoService *services.PhotoService) {
	controller := controllers.NewPhotoController(authService, photoService)

	r.HandleFunc("/api/photos/upload-url", controller.HandleGenerateUploadURL).Methods("POST")
	r.HandleFunc("/api/photos/read-url", controller.HandleGenerateReadURL).Methods("POST")
}
