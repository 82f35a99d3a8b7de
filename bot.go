package main

import (
	"database/sql"
	"log"
)

// Bot wires the classification and resolution pipeline together with its
// persistence. Both front-ends (HTTP and Slack) route through the same
// Bot instance, so they share one cache and one static table.
type Bot struct {
	cfg      Config
	rules    *Rules
	cache    *FoodTermCache
	resolver *NutritionResolver
	router   *ConversationRouter
	db       *sql.DB
}

func NewBot(cfg Config, db *sql.DB) (*Bot, error) {
	rules := DefaultRules()
	if cfg.RulesPath != "" {
		loaded, err := LoadRules(cfg.RulesPath)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}

	spoonacular := NewSpoonacularClient(cfg.SpoonacularAPIKey)
	cache := NewFoodTermCache(cfg.CacheMaxEntries, spoonacular.IsFoodTerm)
	classifier := NewFoodClassifier(rules, cache)
	resolver := NewNutritionResolver(DefaultNutritionTable(), SpoonacularStrategies(spoonacular))
	router := NewConversationRouter(rules, classifier, resolver, NewGenerativeClient(cfg))

	return &Bot{
		cfg:      cfg,
		rules:    rules,
		cache:    cache,
		resolver: resolver,
		router:   router,
		db:       db,
	}, nil
}

// Respond routes one message and logs the exchange when a database is
// attached. Logging failures never affect the reply.
func (b *Bot) Respond(message string) (string, bool) {
	response, exit := b.router.Respond(message)

	if b.db != nil {
		route := "chat"
		if exit {
			route = "exit"
		}
		if err := InsertChatLog(b.db, ChatLogEntry{Message: message, Response: response, Route: route}); err != nil {
			log.Printf("chat log insert error: %v", err)
		}
	}
	return response, exit
}
