package main

import (
	"log"

	"github.com/slack-go/slack"
)

func main() {
	cfg := LoadConfig()
	appliedHTTPTimeout := ConfigureExternalHTTPClient(cfg.ExternalHTTPTimeoutSeconds)
	log.Printf(
		"Config loaded. Provider=%s ListenAddr=%s CacheMaxEntries=%d SnapshotSchedule=%q ExternalHTTPTimeout=%s",
		cfg.LLMProvider,
		cfg.ListenAddr,
		cfg.CacheMaxEntries,
		cfg.CacheSnapshotSchedule,
		appliedHTTPTimeout,
	)

	db, err := InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	log.Printf("Database initialized at %s", cfg.DBPath)
	defer db.Close()

	bot, err := NewBot(cfg, db)
	if err != nil {
		log.Fatalf("Failed to build bot: %v", err)
	}

	if cfg.SpoonacularAPIKey != "" {
		WarmCacheFromDB(db, bot.cache, bot.rules)
	} else {
		log.Println("Spoonacular API key not found - food term detection will be limited")
	}
	StartSnapshotScheduler(cfg, db, bot.cache)

	if cfg.SlackConfigured() {
		api := slack.New(
			cfg.SlackBotToken,
			slack.OptionAppLevelToken(cfg.SlackAppToken),
		)
		go func() {
			if err := StartSlackBot(cfg, bot, api); err != nil {
				log.Printf("Slack bot error: %v", err)
			}
		}()
	}

	log.Printf("Starting the Nutrition Facts Guide on %s", cfg.ListenAddr)
	if err := NewHTTPServer(bot).Run(cfg.ListenAddr); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}
