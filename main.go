package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"simplexify_server/config"
	"simplexify_server/controllers"
	"simplexify_server/routes"
	"simplexify_server/services"
	"simplexify_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	// Initialize DynamoDB client and stores
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWSRegion)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	userStore := &services.DynamoUserStore{Dynamo: dynamoService}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	userProfileService := services.NewUserProfileService(userStore)
	courseService := services.NewCourseService(userStore, userStore)
	connectionService := services.NewConnectionService(userStore, courseService)
	friendRequestService := services.NewFriendRequestService(userStore)
	notificationService := services.NewNotificationService(userStore)
	recommendationService := services.NewRecommendationService(
		userStore, cfg.OpenRouterAPIKey, cfg.OpenRouterModel, cfg.SiteName, cfg.SiteURL)
	authService := services.NewAuthService(cfg.JWTSecret)

	s3Service, err := services.NewS3Service(cfg.AWSRegion, cfg.S3Bucket)
	if err != nil {
		log.Fatalf("Failed to initialize S3 service: %v", err)
	}

	// Initialize the socket server for live notification delivery
	socketServer := socket.NewServer(notificationService)
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Simplexify")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	r.PathPrefix("/socket.io/").Handler(socketServer.IO)

	// Register routes
	routes.RegisterCommunityRoutes(r,
		controllers.NewConnectionController(connectionService),
		controllers.NewFriendRequestController(friendRequestService),
		controllers.NewNotificationController(notificationService),
	)
	routes.RegisterUserProfileRoutes(r, controllers.NewUserProfileController(userProfileService))
	routes.RegisterCourseRoutes(r, controllers.NewCourseController(courseService))
	routes.RegisterRecommendationRoutes(r, controllers.NewRecommendationController(recommendationService))
	routes.RegisterS3Routes(r, controllers.NewS3Controller(s3Service))

	// Protect API routes when a JWT secret is configured
	handler := http.Handler(r)
	if cfg.JWTSecret != "" {
		handler = authService.RequireAuth(r)
	}

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(handler)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, corsHandler))
}
