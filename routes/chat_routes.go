package routes

import (
	"matchmaking_server/controllers"
	"matchmaking_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up message send and history retrieval
func RegisterChatRoutes(r *mux.Router, authService *services.AuthService, chatService *services.ChatService) {
	controller := controllers.NewChatController(authService, chatService)

	r.HandleFunc("/api/chat/send", controller.HandleSendMessage).Methods("POST")
	r.HandleFunc("/api/chat/{matchId}", controller.HandleGetMessages).Methods("GET")
}
