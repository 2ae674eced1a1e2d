package config

import "time"

// Config is the whole server configuration, parsed from the environment
// with the ZIPPER prefix (e.g. ZIPPER_WEB_ADDRESS).
type Config struct {
	Web       Web
	Cors      Cors
	Firestore Firestore
	RateLimit RateLimit
	Client    Client
	State     State
}

type Web struct {
	Address         string        `conf:"default:0.0.0.0:5000"`
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
}

type Cors struct {
	Origin string `conf:"default:http://localhost:3000"`
}

type Firestore struct {
	ProjectID       string `conf:"default:zipper-dev"`
	CredentialsFile string
}

type RateLimit struct {
	Burst  int           `conf:"default:20"`
	Every  time.Duration `conf:"default:100ms"`
	Expiry time.Duration `conf:"default:10m"`
}

// Client configures the storefront API client used by the
// presentation-tier state managers.
type Client struct {
	APIBaseURL string        `conf:"default:http://localhost:5000"`
	Timeout    time.Duration `conf:"default:10s"`
}

// State configures the durable client-local snapshot store.
type State struct {
	Path            string        `conf:"default:zipper-state.db"`
	NotificationTTL time.Duration `conf:"default:3s"`
}
