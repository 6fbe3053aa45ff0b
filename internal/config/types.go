package config

import "time"

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int      `yaml:"port"`
	Env            string   `yaml:"env"` // "development" | "production"
	MongoURL       string   `yaml:"mongo_url"`
	MongoDB        string   `yaml:"mongo_db"`
	RedisURL       string   `yaml:"redis_url"`
	JWTSecret      string   `yaml:"jwt_secret"`
	AllowedOrigins []string `yaml:"allowed_origins"`

	// TokenSweepInterval controls the background cleanup of expired/revoked
	// access tokens. Zero disables the sweeper.
	TokenSweepInterval time.Duration `yaml:"-"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return c.Env != "production"
}

// rawAppConfig is the YAML shape before defaults and env overrides are applied.
type rawAppConfig struct {
	Port               int      `yaml:"port"`
	Env                string   `yaml:"env"`
	NodeEnv            string   `yaml:"node_env"`
	MongoURL           string   `yaml:"mongo_url"`
	MongoDB            string   `yaml:"mongo_db"`
	RedisURL           string   `yaml:"redis_url"`
	JWTSecret          string   `yaml:"jwt_secret"`
	JWTSecretLegacy    string   `yaml:"jwtsecret"`
	AllowedOrigins     []string `yaml:"allowed_origins"`
	TokenSweepInterval string   `yaml:"token_sweep_interval"`
}
