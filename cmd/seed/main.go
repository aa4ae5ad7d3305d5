package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"mediavault/internal/config"
	"mediavault/internal/database"
	"mediavault/internal/domain/identity"
)

// Seeds the two development accounts: an admin and a regular user.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := db.AutoMigrate(&identity.User{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	repo := identity.NewRepository(db)
	ctx := context.Background()

	seedUsers := []struct {
		username string
		password string
		role     string
	}{
		{"admin", "admin", identity.RoleAdmin},
		{"user2", "pass2", identity.RoleUser},
	}

	for _, su := range seedUsers {
		if _, err := repo.GetByUsername(ctx, su.username); err == nil {
			log.Printf("user %s already exists, skipping", su.username)
			continue
		}

		hash, err := identity.HashPassword(su.password)
		if err != nil {
			log.Fatal(err)
		}
		if err := repo.Create(ctx, &identity.User{
			Username:     su.username,
			PasswordHash: hash,
			Role:         su.role,
		}); err != nil {
			log.Fatalf("failed to create %s: %v", su.username, err)
		}
		log.Printf("created user %s (%s)", su.username, su.role)
	}
}
