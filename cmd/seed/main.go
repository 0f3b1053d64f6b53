// Command seed loads a small demo dataset: two users, a marketing team, and a
// pair of posts. Safe to re-run; it exits early when the demo admin already
// exists.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/pkg/config"
	"github.com/socialai/socialai-backend/pkg/db"
	"github.com/socialai/socialai-backend/pkg/db/models"
	dbtypes "github.com/socialai/socialai-backend/pkg/db/types"
	"github.com/socialai/socialai-backend/pkg/enums"
	"github.com/socialai/socialai-backend/pkg/logger"
	"github.com/socialai/socialai-backend/pkg/migrate"
	"github.com/socialai/socialai-backend/pkg/security"
)

const (
	adminEmail   = "admin@demo.com"
	memberEmail  = "user@demo.com"
	demoPassword = "demo1234"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})
	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	dbClient, err := db.New(ctx, cfg.DB, cfg.Features.UseSQLite, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		os.Exit(1)
	}

	if err := seed(ctx, dbClient.DB(), cfg, logg); err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, gormDB *gorm.DB, cfg *config.Config, logg *logger.Logger) error {
	var existing models.User
	err := gormDB.WithContext(ctx).Where("email = ?", adminEmail).First(&existing).Error
	if err == nil {
		logg.Info(ctx, "demo data already present, nothing to do")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("checking for existing demo data: %w", err)
	}

	hash, err := security.HashPassword(demoPassword, cfg.Password)
	if err != nil {
		return fmt.Errorf("hashing demo password: %w", err)
	}

	now := time.Now().UTC()
	admin := models.User{
		ID:           uuid.New(),
		Email:        adminEmail,
		PasswordHash: hash,
		Name:         "Admin User",
		Role:         enums.UserRoleAdmin,
		Company:      "Demo Company",
		IsActive:     true,
	}
	member := models.User{
		ID:           uuid.New(),
		Email:        memberEmail,
		PasswordHash: hash,
		Name:         "Regular User",
		Role:         enums.UserRoleUser,
		Company:      "Demo Company",
		IsActive:     true,
	}
	team := models.Team{
		ID:          uuid.New(),
		Name:        "Marketing Team",
		Description: "Main marketing team for Demo Company",
		CompanyID:   "demo-company",
		CreatedBy:   admin.ID,
	}

	publishedAt := now
	scheduledAt := now.Add(24 * time.Hour)
	aiPrompt := "Create a post about AI content generation benefits"
	posts := []models.Post{
		{
			ID:          uuid.New(),
			Title:       "Welcome to SocialAI Manager",
			Content:     "Excited to announce our new AI-powered social media management platform! 🚀",
			Type:        enums.PostTypeText,
			Status:      enums.PostStatusPublished,
			Platforms:   dbtypes.StringArray{"instagram", "twitter", "linkedin"},
			PublishedAt: &publishedAt,
			CreatedBy:   admin.ID,
			TeamID:      team.ID,
			Hashtags:    dbtypes.StringArray{"#SocialAI", "#AI", "#SocialMedia"},
		},
		{
			ID:          uuid.New(),
			Title:       "AI Content Generation Demo",
			Content:     "Check out how our AI can create engaging content for your brand! Perfect for busy marketers.",
			Type:        enums.PostTypeText,
			Status:      enums.PostStatusScheduled,
			Platforms:   dbtypes.StringArray{"facebook", "instagram"},
			ScheduledAt: &scheduledAt,
			CreatedBy:   admin.ID,
			TeamID:      team.ID,
			AIGenerated: true,
			AIPrompt:    &aiPrompt,
			Hashtags:    dbtypes.StringArray{"#AI", "#ContentCreation", "#Marketing"},
		},
	}
	memberships := []models.TeamMember{
		{ID: uuid.New(), TeamID: team.ID, UserID: admin.ID, Role: enums.TeamRoleAdmin},
		{ID: uuid.New(), TeamID: team.ID, UserID: member.ID, Role: enums.TeamRoleMember},
	}

	err = gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, user := range []models.User{admin, member} {
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("creating user %s: %w", user.Email, err)
			}
		}
		if err := tx.Create(&team).Error; err != nil {
			return fmt.Errorf("creating team: %w", err)
		}
		for i := range memberships {
			if err := tx.Create(&memberships[i]).Error; err != nil {
				return fmt.Errorf("creating membership: %w", err)
			}
		}
		for i := range posts {
			if err := tx.Create(&posts[i]).Error; err != nil {
				return fmt.Errorf("creating post %q: %w", posts[i].Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logg.Info(logg.WithFields(ctx, map[string]any{
		"admin":  adminEmail,
		"member": memberEmail,
		"team":   team.Name,
	}), "demo data loaded")
	return nil
}
