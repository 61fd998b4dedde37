// Command seed inserts the admin account described by the EANMBLE_ADMIN_*
// environment variables. Running it against a database that already holds the
// admin reports "already present" and exits cleanly.
package main

import (
	"context"
	"log"

	"eanmble/internal/config"
	"eanmble/internal/db"
	"eanmble/internal/model"
	"eanmble/internal/repository"
	"eanmble/internal/service"
)

func main() {
	cfg := config.Load()

	if cfg.AdminSeed.Email == "" || cfg.AdminSeed.Password == "" {
		log.Fatal("EANMBLE_ADMIN_EMAIL and EANMBLE_ADMIN_PASSWORD must be set")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	users := service.NewUserService(repository.NewUserRepository(gormDB))

	created, err := users.SeedAdmin(context.Background(), cfg.AdminSeed)
	if err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if !created {
		log.Printf("admin %s already present, nothing to do", cfg.AdminSeed.Email)
		return
	}
	log.Printf("admin %s created", cfg.AdminSeed.Email)
}
