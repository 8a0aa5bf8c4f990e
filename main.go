package main

import (
	"log"
	"net/http"
	"os"

	"github.com/nexusboard/nexus-api/config"
	"github.com/nexusboard/nexus-api/handlers"
	"github.com/nexusboard/nexus-api/middleware"
	"github.com/nexusboard/nexus-api/notify"
	"github.com/nexusboard/nexus-api/store"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	// Initialize database connection
	config.Connect()

	h := &handlers.Handler{
		Store: store.New(config.Database),
		Hub:   notify.NewHub(),
	}

	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/register", h.Register)
	mux.HandleFunc("POST /api/login", h.Login)
	mux.HandleFunc("POST /api/logout", h.Logout)
	mux.HandleFunc("DELETE /api/account", middleware.RequireUser(h.DeleteAccount))

	// Refresh events for connected viewers (fire-and-forget)
	mux.HandleFunc("GET /api/events", h.Events)

	// Boards
	mux.HandleFunc("GET /api/boards", middleware.RequireUser(h.Dashboard))
	mux.HandleFunc("POST /api/boards", middleware.RequireUser(h.CreateBoard))
	mux.HandleFunc("GET /api/boards/{boardID}", middleware.RequireUser(h.GetBoard))
	mux.HandleFunc("PUT /api/boards/{boardID}", middleware.RequireUser(h.UpdateBoard))
	mux.HandleFunc("DELETE /api/boards/{boardID}", middleware.RequireUser(h.DeleteBoard))
	mux.HandleFunc("POST /api/boards/{boardID}/collaborators", middleware.RequireUser(h.AddCollaborator))
	mux.HandleFunc("GET /api/boards/{boardID}/stats", middleware.RequireUser(h.BoardStats))

	// Lists
	mux.HandleFunc("POST /api/boards/{boardID}/lists", middleware.RequireUser(h.CreateList))
	mux.HandleFunc("DELETE /api/lists/{listID}", middleware.RequireUser(h.DeleteList))

	// Cards
	mux.HandleFunc("POST /api/lists/{listID}/cards", middleware.RequireUser(h.CreateCard))
	mux.HandleFunc("PUT /api/cards/{cardID}/due-date", middleware.RequireUser(h.UpdateDueDate))
	mux.HandleFunc("PUT /api/cards/{cardID}/status", middleware.RequireUser(h.UpdateCardStatus))
	mux.HandleFunc("POST /api/cards/{cardID}/comments", middleware.RequireUser(h.AddComment))

	// Analytics
	mux.HandleFunc("GET /api/analytics", middleware.RequireUser(h.Analytics))

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://nexusboard.app"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}
	serverAddr := "0.0.0.0:" + port

	log.Printf("nexus-api listening on %s", serverAddr)
	http.ListenAndServe(serverAddr, corsHandler)
}
