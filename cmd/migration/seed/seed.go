package seed

import (
	"context"

	"eventaggregator/internal/database"
	. "eventaggregator/internal/models"
	"eventaggregator/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
)

func stringPtr(s string) *string {
	return &s
}

func Seed(ctx context.Context, db database.DB, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	users := []User{
		{
			Username:  "admin",
			FirstName: "Admin",
			LastName:  "User",
			Email:     stringPtr("admin@example.com"),
			IsAdmin:   true,
		}, {
			Username:  "testuser",
			FirstName: "Test",
			LastName:  "User",
			Email:     stringPtr("test@example.com"),
		},
	}

	userRepo := repositories.NewUserRepository(db)
	for i := range users {
		outcome, err := userRepo.CreateIfAbsent(ctx, db.SQL, &users[i])
		if err != nil {
			return log.Err("failed to create user", err, "username", users[i].Username)
		}
		log.Info("Seeded user", "username", users[i].Username, "outcome", outcome.String())
	}

	return nil
}
