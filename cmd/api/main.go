package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"invtrack/internal/app"
	"invtrack/internal/config"
	"invtrack/internal/database"
	"invtrack/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed: ", err)
	}
	log.Println("database connected")

	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed: ", err)
	}

	typeRepo := repository.NewEquipmentTypeRepository(db)
	if err := typeRepo.SeedDefaults(context.Background()); err != nil {
		log.Fatal("seeding equipment types failed: ", err)
	}

	handler := app.NewRouter(db, cfg.TemplatesDir)

	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal(err)
	}
}
