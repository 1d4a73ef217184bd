package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"matchmaking_server/helpers"
	"matchmaking_server/services"
)

// AuthController handles the mock checkout/confirm payment flow
type AuthController struct {
	AuthService *services.AuthService
}

// NewAuthController creates a new AuthController instance
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// HandleCheckout creates an unpaid session and returns the mock checkout URL
func (ac *AuthController) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if request.Email == "" {
		http.Error(w, `{"error": "email is required"}`, http.StatusBadRequest)
		return
	}

	session, err := ac.AuthService.CreateCheckoutSession(r.Context(), request.Email)
	if err != nil {
		log.Printf("Error creating checkout session: %v", err)
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, session)
}

// HandleConfirm marks the session as paid and returns the bearer token
func (ac *AuthController) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if request.SessionID == "" {
		http.Error(w, `{"error": "sessionId is required"}`, http.StatusBadRequest)
		return
	}

	token, err := ac.AuthService.ConfirmPayment(r.Context(), request.SessionID)
	if err != nil {
		log.Printf("Error confirming payment: %v", err)
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"token": token})
}
