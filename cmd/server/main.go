package main

import (
	"log"

	"github.com/kbrown517/Veteran-Compass-Corps/app"
	"github.com/kbrown517/Veteran-Compass-Corps/app/config"
	"github.com/kbrown517/Veteran-Compass-Corps/auth"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	opts := app.ServerOptions{Stripe: cfg.Stripe}

	// Every collaborator below is optional: a missing credential degrades
	// its feature per request instead of stopping the process, so /health
	// stays up regardless.
	if dsn := cfg.DB.DSN(); dsn == "" {
		log.Print("no database configured; usage and membership persistence disabled")
	} else if db, err := app.OpenDB(dsn); err != nil {
		log.Printf("postgres unavailable, continuing without persistence: %v", err)
	} else {
		opts.Store = app.NewStore(db)
	}

	var verifier *auth.Verifier
	if cfg.Auth.Issuer == "" {
		log.Print("AUTH_ISSUER/SUPABASE_URL not set; auth features disabled")
	} else if verifier, err = auth.NewVerifier(cfg.Auth.Issuer, cfg.Auth.Audience, cfg.Auth.JWKSURL); err != nil {
		log.Printf("auth verifier not configured: %v", err)
		verifier = nil
	} else {
		opts.Identity = verifier
	}

	if client := app.NewOpenAIClient(cfg.OpenAI); client == nil {
		log.Print("OpenAI API key not found; chat features disabled")
	} else {
		log.Printf("OpenAI client initialized model=%s", cfg.OpenAI.Model)
		opts.Completer = client
	}

	app.InitStripe(cfg.Stripe)

	router := app.NewRouter(app.NewServer(opts), verifier)
	if err := router.Run("0.0.0.0:" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
