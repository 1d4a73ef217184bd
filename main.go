package main

import (
	"log"
	"net/http"
	"os"

	"matchmaking_server/controllers"
	"matchmaking_server/routes"
	"matchmaking_server/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Local development convenience; env vars win in deployment
	_ = godotenv.Load()

	// Initialize DynamoDB client and the shared store
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize services
	authService := &services.AuthService{Dynamo: dynamoService}
	profileService := &services.ProfileService{Dynamo: dynamoService}
	searchService := &services.SearchService{Dynamo: dynamoService}
	actionService := &services.ActionService{Dynamo: dynamoService}
	matchService := &services.MatchService{Dynamo: dynamoService}
	chatService := &services.ChatService{Dynamo: dynamoService, Matches: matchService}
	adminService := &services.AdminService{Dynamo: dynamoService}
	photoService := services.NewPhotoService()

	adminToken := os.Getenv("ADMIN_TOKEN")
	if adminToken == "" {
		adminToken = "admin-secret"
	}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")

	// Register routes
	routes.RegisterAuthRoutes(r, authService)
	routes.RegisterProfileRoutes(r, authService, profileService)
	routes.RegisterSearchRoutes(r, authService, searchService)
	routes.RegisterActionRoutes(r, authService, actionService)
	routes.RegisterMatchRoutes(r, authService, matchService)
	routes.RegisterChatRoutes(r, authService, chatService)
	routes.RegisterAdminRoutes(r, adminService, adminToken)
	routes.RegisterPhotoRoutes(r, authService, photoService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
