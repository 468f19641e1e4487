package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"jobtrack/internal/common"
	"jobtrack/internal/common/security"
	"jobtrack/internal/domain/model"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/platform/config"
	"jobtrack/internal/platform/database"
	"jobtrack/internal/platform/logger"

	"github.com/google/uuid"
)

// Admin accounts are never created through the public register endpoint;
// this tool is the only way to mint one.
func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password (min 6 characters)")
	name := flag.String("name", "Admin", "admin display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Please provide -email and -password.")
	}
	if len(*password) < 6 {
		log.Fatal("Password must be at least 6 characters.")
	}

	config.Load()
	if err := logger.Init(config.AppConfig.LogLevel); err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := database.Connect(); err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer database.Close()

	userRepo := repository.NewPgUserRepository(database.DB)
	ctx := context.Background()

	if _, err := userRepo.FindByEmail(ctx, *email); err == nil {
		log.Fatal("User with this email already exists.")
	} else if !errors.Is(err, common.ErrNotFound) {
		log.Fatalf("Failed to check existing user: %v", err)
	}

	hashed, err := security.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &model.User{
		ID:             uuid.NewString(),
		Name:           *name,
		Email:          *email,
		HashedPassword: hashed,
		Role:           model.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Error creating admin user: %v", err)
	}

	log.Println("Admin user created successfully!")
}
