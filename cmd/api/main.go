package main

import (
	"net/http"
	"os"
	"time"

	"pet-adoption-api/internal/adapters/auth/idp"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/ports/auth"
	"pet-adoption-api/internal/router"

	_ "github.com/joho/godotenv/autoload"
)

// @title        Pet Adoption API
// @version      1.0
// @description  Refugios publican mascotas, usuarios aplican a adoptar y el refugio decide.
// @BasePath     /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Verifier real solo si hay servicio de identidad configurado.
	// Sin él, el middleware queda en modo dev (headers X-Debug-*).
	var verifier auth.AuthVerifier
	if baseURL := os.Getenv("AUTH_BASE_URL"); baseURL != "" {
		client := idp.NewClient(idp.Config{
			BaseURL: baseURL,
			APIKey:  os.Getenv("AUTH_API_KEY"),
		})
		if client.IsConfigured() {
			verifier = idp.NewVerifier(client)
		} else {
			log.Warn("AUTH_BASE_URL set but AUTH_API_KEY missing, falling back to dev auth", nil)
		}
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Logger:       log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr, "dev_auth": verifier == nil})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
