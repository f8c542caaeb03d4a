// Package main provides data seeding for SlopeWatch.
//
// Seeds one account per role so a fresh install has someone to log in as.
// Safe to run repeatedly: existing users are left untouched.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"go.uber.org/zap"

	"slopewatch.io/slopewatch/ent"
	"slopewatch.io/slopewatch/ent/user"
	"slopewatch.io/slopewatch/internal/config"
	"slopewatch.io/slopewatch/internal/infrastructure"
	"slopewatch.io/slopewatch/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	logger.Info("Starting data seeding...")

	// Migrations are expected to be executed before seeding. This command
	// only performs idempotent data bootstrap.
	if err := seedDemoUsers(ctx, db.EntClient); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// demoUser defines an account to seed.
type demoUser struct {
	ID          string
	Username    string
	DisplayName string
	Role        user.Role
	Password    string
}

func demoUsers() []demoUser {
	return []demoUser{
		{
			ID: "user-default-admin", Username: "admin",
			DisplayName: "Default Administrator",
			Role:        user.RoleAdmin, Password: "admin",
		},
		{
			ID: "user-demo-officer", Username: "officer",
			DisplayName: "Duty Officer",
			Role:        user.RoleOfficer, Password: "officer",
		},
		{
			ID: "user-demo-field-worker", Username: "fieldworker",
			DisplayName: "Field Worker",
			Role:        user.RoleFieldWorker, Password: "fieldworker",
		},
		{
			ID: "user-demo-resident", Username: "resident",
			DisplayName: "Zone Resident",
			Role:        user.RoleResident, Password: "resident",
		},
	}
}

// seedDemoUsers creates the demo accounts. Uses the constraint error as an
// ON CONFLICT DO NOTHING equivalent for idempotency.
func seedDemoUsers(ctx context.Context, client *ent.Client) error {
	for _, u := range demoUsers() {
		hashBytes, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Username, err)
		}

		_, err = client.User.Create().
			SetID(u.ID).
			SetUsername(u.Username).
			SetDisplayName(u.DisplayName).
			SetRole(u.Role).
			SetPasswordHash(string(hashBytes)).
			SetActive(true).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("User already exists, skipping", zap.String("username", u.Username))
				continue
			}
			return fmt.Errorf("create user %s: %w", u.Username, err)
		}
		logger.Info("Seeded user",
			zap.String("username", u.Username),
			zap.String("role", string(u.Role)),
		)
	}
	return nil
}
