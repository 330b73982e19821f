package config

// Admin holds the single admin account. The username is fixed; an empty
// password disables admin login.
type Admin struct {
	Password string `env:"ADMIN_PASS"`
}

type WhatsApp struct {
	Number string `env:"WHATSAPP_NUMBER"`
}

type Seed struct {
	Products bool `env:"SEED_PRODUCTS" envDefault:"true"`
}
