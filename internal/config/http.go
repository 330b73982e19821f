package config

type HTTP struct {
	Port               uint32   `env:"PORT" envDefault:"5000"`
	CORSAllowedOrigins []string `env:"HTTP_CORS_ALLOWED_ORIGINS" envSeparator:","`
	TrustProxy         bool     `env:"HTTP_TRUST_PROXY" envDefault:"false"`
	Metrics            bool     `env:"HTTP_METRICS" envDefault:"true"`
}
