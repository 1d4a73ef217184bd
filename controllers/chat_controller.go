package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"matchmaking_server/helpers"
	"matchmaking_server/services"

	"github.com/gorilla/mux"
)

// ChatController handles message send and history retrieval
type ChatController struct {
	AuthService *services.AuthService
	ChatService *services.ChatService
}

// NewChatController initializes the chat controller
func NewChatController(authService *services.AuthService, chatService *services.ChatService) *ChatController {
	return &ChatController{AuthService: authService, ChatService: chatService}
}

// HandleSendMessage appends a message to a match the caller belongs to
func (cc *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	user, err := cc.AuthService.ResolveToken(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}

	var request struct {
		MatchID string `json:"matchId"`
		Text    string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if request.MatchID == "" || request.Text == "" {
		http.Error(w, `{"error": "matchId and text are required"}`, http.StatusBadRequest)
		return
	}

	if _, err := cc.ChatService.SendMessage(r.Context(), user, request.MatchID, request.Text); err != nil {
		log.Printf("Error sending message from %s: %v", user.UserID, err)
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "sent"})
}

// HandleGetMessages returns the full ascending history of a match
func (cc *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	user, err := cc.AuthService.ResolveToken(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}

	matchID := mux.Vars(r)["matchId"]
	messages, err := cc.ChatService.GetMessages(r.Context(), user, matchID)
	if err != nil {
		log.Printf("Error fetching messages for match %s: %v", matchID, err)
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"messages": messages})
}
