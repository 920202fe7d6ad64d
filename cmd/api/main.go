package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberflow/salon-api/internal/config"
	"github.com/barberflow/salon-api/internal/middleware"
	"github.com/barberflow/salon-api/internal/routes"
	"github.com/barberflow/salon-api/internal/state"
)

func main() {

	cfg := config.Load()
	st := newStore(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, cfg)

	log.Printf("Server running on %s (storage: %s)", cfg.Addr(), cfg.StorageDriver)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newStore(cfg *config.Config) state.Store {
	switch cfg.StorageDriver {
	case "redis":
		st := state.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := st.Ping(context.Background()); err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		return st
	case "postgres":
		st, err := state.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
		return st
	case "memory":
		return state.NewMemoryStore()
	default:
		log.Fatalf("unknown storage driver: %s", cfg.StorageDriver)
		return nil
	}
}
