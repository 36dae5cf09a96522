// Command devtoken prints an access token for a user of the users collection.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/config"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository/document"
)

func main() {
	userID := flag.String("user", "1", "id of the user to mint a token for")
	flag.Parse()

	if err := run(*userID); err != nil {
		log.Fatal(err)
	}
}

func run(userID string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Database.MaxConns = 1
	cfg.Database.MinConns = 1

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, closeStore, err := repository.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	u, err := document.NewUserRepository(store).GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user %q: %w", userID, err)
	}

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	token, expiresAt, err := JWTService.GenerateAccessToken(u.ID, u.Name, u.Role)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	log.Printf("token for %s (%s) expires at %s", u.Name, u.Role, time.Unix(expiresAt, 0).Format(time.RFC3339))
	fmt.Println(token)
	return nil
}
