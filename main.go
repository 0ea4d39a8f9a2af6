package main

import (
	"io"
	"log"
	"net/http"
	"os"

	"github.com/laticiniossantana/notabase/internal/config"
	"github.com/laticiniossantana/notabase/internal/gelf"
	"github.com/laticiniossantana/notabase/internal/handler"
	"github.com/laticiniossantana/notabase/internal/repository"
	"github.com/laticiniossantana/notabase/internal/router"
	"github.com/laticiniossantana/notabase/internal/service"
	"github.com/laticiniossantana/notabase/internal/store"
)

func main() {
	cfg := config.Load()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	// Storage
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open store at %s: %v", cfg.DBPath, err)
	}
	log.Printf("Store ready at %s", cfg.DBPath)

	// Repositories
	docRepo := repository.NewDocumentRepo(st)
	userRepo := repository.NewUserRepo(st)
	fieldRepo := repository.NewFieldConfigRepo(st)

	// Services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	userSvc := service.NewUserService(userRepo)
	fieldSvc := service.NewFieldConfigService(fieldRepo)
	docSvc := service.NewDocumentService(docRepo, fieldSvc)
	reportSvc := service.NewReportService(docRepo, userRepo)

	if err := userSvc.SeedDefaults(); err != nil {
		log.Fatalf("Failed to seed default users: %v", err)
	}

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	docH := handler.NewDocumentHandler(docSvc, reportSvc)
	reportH := handler.NewReportHandler(reportSvc)
	exportH := handler.NewExportHandler(reportSvc)
	userH := handler.NewUserHandler(userSvc)
	formH := handler.NewFormConfigHandler(fieldSvc)

	// Router
	r := router.New(cfg.JWTSecret, cfg.CORSOrigin, authH, docH, reportH, exportH, userH, formH)

	log.Printf("Listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
