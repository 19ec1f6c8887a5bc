package main

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"toolhub/internal/config"
	"toolhub/internal/db"
	"toolhub/internal/logger"
	"toolhub/internal/model"
	"toolhub/internal/repository"
)

var sampleTools = []model.Tool{
	{Name: "ChatGPT", Description: "Conversational assistant by OpenAI", Website: "https://chat.openai.com", Category: "chat"},
	{Name: "Midjourney", Description: "Image generation from text prompts", Website: "https://midjourney.com", Category: "image"},
	{Name: "GitHub Copilot", Description: "Code completion inside the editor", Website: "https://github.com/features/copilot", Category: "code"},
	{Name: "Whisper", Description: "Speech to text transcription", Website: "https://github.com/openai/whisper", Category: "audio"},
	{Name: "Runway", Description: "Video generation and editing", Website: "https://runwayml.com", Category: "video"},
}

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	log.Info().Msg("starting seed")

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Tool{}, &model.Favorite{}, &model.Comment{}); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	ctx := context.Background()
	seedTools(ctx, repository.NewToolRepository(gormDB), log)
	seedAdmin(ctx, repository.NewUserRepository(gormDB), log)
}

func seedTools(ctx context.Context, tools repository.ToolRepository, log zerolog.Logger) {
	created, updated := 0, 0
	for _, tool := range sampleTools {
		existing, err := tools.FindByName(ctx, tool.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal().Err(err).Str("tool", tool.Name).Msg("check tool")
		}

		if existing != nil {
			existing.Description = tool.Description
			existing.Website = tool.Website
			existing.Category = tool.Category
			if err := tools.Update(ctx, existing); err != nil {
				log.Fatal().Err(err).Str("tool", tool.Name).Msg("update tool")
			}
			updated++
			continue
		}

		tool := tool
		if err := tools.Create(ctx, &tool); err != nil {
			log.Fatal().Err(err).Str("tool", tool.Name).Msg("create tool")
		}
		created++
	}
	log.Info().Int("created", created).Int("updated", updated).Msg("tools seeded")
}

// seedAdmin provisions a super-admin from SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD. Skipped when the variables are unset or the account
// already exists.
func seedAdmin(ctx context.Context, users repository.UserRepository, log zerolog.Logger) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Info().Msg("SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD unset, skipping admin seed")
		return
	}

	if _, err := users.FindByEmail(ctx, email); err == nil {
		log.Info().Str("email", email).Msg("admin already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal().Err(err).Msg("check admin")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatal().Err(err).Msg("hash admin password")
	}

	admin := &model.User{
		FullName:     "Administrator",
		Email:        email,
		Password:     string(hashed),
		IsAdmin:      true,
		IsSuperAdmin: true,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("create admin")
	}
	log.Info().Str("email", email).Msg("admin seeded")
}
