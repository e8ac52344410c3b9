package main

import (
	"log"
	"net/http"
	"os"

	"github.com/andrewmackie/graph-explorer-api/config"
	"github.com/andrewmackie/graph-explorer-api/handlers"
	"github.com/andrewmackie/graph-explorer-api/middleware"
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

	DBHandler := &handlers.DBHandler{DB: config.Database}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handlers.Welcome)

	// Graph
	mux.HandleFunc("GET /api/v0/graph", DBHandler.GetGraph)

	// Node
	mux.HandleFunc("GET /api/v0/node/{id}", DBHandler.GetNode)
	mux.HandleFunc("POST /api/v0/node", DBHandler.CreateNode)
	mux.HandleFunc("PUT /api/v0/node/{id}", DBHandler.UpsertNode)
	mux.HandleFunc("DELETE /api/v0/node/{id}", DBHandler.DeleteNode)

	// Edge
	mux.HandleFunc("GET /api/v0/edge/{id}", DBHandler.GetEdge)
	mux.HandleFunc("POST /api/v0/edge", DBHandler.CreateEdge)
	mux.HandleFunc("PUT /api/v0/edge/{id}", DBHandler.UpsertEdge)
	mux.HandleFunc("DELETE /api/v0/edge/{id}", DBHandler.DeleteEdge)

	// Plain OPTIONS requests that are not true CORS preflights fall through
	// the cors wrapper and are answered here without a database call
	mux.HandleFunc("OPTIONS /api/v0/{noun}", handlers.Preflight)
	mux.HandleFunc("OPTIONS /api/v0/{noun}/{id}", handlers.Preflight)

	// Allow all origins, matching the open read/write contract of the API
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Requested-With", "Accept", "Origin"},
		MaxAge:         86400,
	}).Handler(middleware.RequestLogger(mux))

	serverAddr := "0.0.0.0:" + config.Env.Port

	log.Printf("Graph Explorer API listening on %s", serverAddr)
	http.ListenAndServe(serverAddr, corsHandler)
}
