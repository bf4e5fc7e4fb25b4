package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DougLewin/SuperWeirdOneBudFast/config"
	"github.com/DougLewin/SuperWeirdOneBudFast/middleware"
	"github.com/DougLewin/SuperWeirdOneBudFast/routes"
	"github.com/DougLewin/SuperWeirdOneBudFast/services"
	"github.com/DougLewin/SuperWeirdOneBudFast/utils"
)

func main() {
	if err := config.InitLogger(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer config.Logger.Sync()

	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	utils.InitJWT(conf.JWTSecret)

	db, err := config.OpenDB(conf)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	redisClient, err := config.NewRedisClient(conf)
	if err != nil {
		log.Fatalf("failed to initialize redis: %v", err)
	}

	authService := services.NewAuthService(db, redisClient)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	middleware.SetupMiddleware(r)
	routes.RegisterRoutes(r, db, authService)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		log.Printf("starting server on port %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
