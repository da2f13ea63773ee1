package main

import (
	"log"

	_ "taskman/docs"
	"taskman/internal/config"
	"taskman/internal/server"
)

// @title           Task Manager API
// @version         1.0
// @description     REST API for managing workspaces, boards, lists and cards.

// @host      localhost:4003
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
