package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-backend/config"
	"blog-backend/db"
	_ "blog-backend/docs"
	"blog-backend/routes"
	"blog-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title Blog API
// @version 1.0
// @description Typed procedures for blog posts and categories
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	if err := utils.InitLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatal("Could not configure logger: ", err)
	}

	gin.SetMode(cfg.GinMode)

	if err := db.InitDB(cfg.DBURL); err != nil {
		log.Fatal("Could not connect to the database: ", err)
	}
	defer db.Close()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.SetupRouter(cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		utils.LogInfo("Listening on " + srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogError(err, "Server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.LogError(err, "Graceful shutdown failed")
	}
	utils.LogInfo("Server stopped")
}
