package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/ScoreBot_Go/internal/config"
	"github.com/osse101/ScoreBot_Go/internal/discord"
	"github.com/osse101/ScoreBot_Go/internal/logger"
)

// Default values for optional configuration
const (
	DefaultHealthPort = "8082"
	DefaultAPIURL     = "http://localhost:8080"
	DefaultBotName    = "ScoreBot"
)

func main() {
	// Load .env file
	_ = godotenv.Load()

	setupLogger()

	warnings, err := config.ValidateEnvWithWarnings(config.BotEnvVars)
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	healthPort := os.Getenv("HEALTH_PORT")
	if healthPort == "" {
		healthPort = DefaultHealthPort
	}

	httpServer := discord.NewHTTPServer(healthPort, bot)
	httpServer.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Stop(ctx)
	}()

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// setupLogger configures structured logging to stdout
func setupLogger() {
	cfg := logger.NewConfig(
		os.Getenv("LOG_LEVEL"),
		os.Getenv("LOG_FORMAT"),
		"scorebot-discord",
		os.Getenv("VERSION"),
		os.Getenv("ENVIRONMENT"),
		false,
	)
	logger.InitLogger(cfg)
}

// loadConfig loads and validates Discord bot configuration from environment variables.
// Returns error if required variables are missing or malformed.
func loadConfig() (discord.Config, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return discord.Config{}, errors.New("DISCORD_TOKEN is required")
	}

	channelID := os.Getenv("DISCORD_CHANNEL_ID")
	if channelID == "" {
		return discord.Config{}, errors.New("DISCORD_CHANNEL_ID is required")
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	slog.Info("Configured API URL", "url", apiURL)

	apiKey := os.Getenv("API_KEY")

	botName := os.Getenv("BOT_NAME")
	if botName == "" {
		botName = DefaultBotName
	}

	minStreak := discord.DefaultMinStreakLength
	if v := os.Getenv("MIN_STREAK_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return discord.Config{}, fmt.Errorf("invalid MIN_STREAK_LENGTH %q", v)
		}
		minStreak = n
	}

	tzName := os.Getenv("TIME_ZONE")
	if tzName == "" {
		tzName = discord.DefaultTimeZone
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return discord.Config{}, fmt.Errorf(discord.ErrMsgInvalidTimeZone, tzName, err)
	}

	impersonation := os.Getenv("DEBUG_IMPERSONATION") == "true"

	return discord.Config{
		Token:           token,
		ChannelID:       channelID,
		APIURL:          apiURL,
		APIKey:          apiKey,
		BotName:         botName,
		MinStreakLength: minStreak,
		TimeZone:        loc,
		Impersonation:   impersonation,
	}, nil
}
