package config

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 3000
	defaultEnv        = "development"
	defaultMongoURL   = "mongodb://127.0.0.1:27017"
	defaultMongoDB    = "atom"
)
