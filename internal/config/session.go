package config

import "time"

type Session struct {
	CookieName   string        `env:"SESSION_COOKIE_NAME" envDefault:"studio_session"`
	TTL          time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

// Redis is optional. Without an address sessions live in process memory and
// login attempts are not rate limited.
type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type RateLimit struct {
	LoginPerMinute int `env:"LOGIN_RATE_LIMIT_PER_MINUTE" envDefault:"10"`
}
