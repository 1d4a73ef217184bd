package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"matchmaking_server/helpers"
	"matchmaking_server/services"
)

// PhotoController handles presigned URLs for profile photos
type PhotoController struct {
	AuthService  *services.AuthService
	PhotoService *services.PhotoService
}

// NewPhotoController creates a new PhotoController instance
func NewPhotoController(authService *services.AuthService, photoService *services.PhotoService) *PhotoController {
	return &PhotoController{AuthService: authService, PhotoService: photoService}
}

// HandleGenerateUploadURL generates a presigned URL for uploading a photo
func (pc *PhotoController) HandleGenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	user, err := pc.AuthService.ResolveToken(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	if !user.Paid {
		helpers.WriteErrorResponse(w, services.ErrPaymentRequired)
		return
	}

	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		http.Error(w, `{"error": "fileName and fileType are required"}`, http.StatusBadRequest)
		return
	}

	url, key, err := pc.PhotoService.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("Error generating upload URL: %v", err)
		http.Error(w, `{"error": "Failed to generate pre-signed URL"}`, http.StatusInternalServerError)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// HandleGenerateReadURL generates a presigned URL for reading a stored photo
func (pc *PhotoController) HandleGenerateReadURL(w http.ResponseWriter, r *http.Request) {
	if _, err := pc.AuthService.ResolveToken(r.Context(), r.URL.Query().Get("token")); err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}

	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}

	url, err := pc.PhotoService.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		log.Printf("Error generating read URL: %v", err)
		http.Error(w, `{"error": "Failed to generate read pre-signed URL"}`, http.StatusInternalServerError)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url})
}
