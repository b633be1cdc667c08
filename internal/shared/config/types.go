package config

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// RedisConfig holds redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig holds viewer authentication configuration
type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

// JWTConfig holds JWT token configuration
type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	Issuer           string `mapstructure:"issuer"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

// RankingConfig holds the tunable ranking parameters.
// GraceDays is the window past a subscription end date during which the
// subscription still counts as active for ranking and gating.
// The completeness weights only break ties between profiles of equal
// priority; they never cross tier boundaries.
type RankingConfig struct {
	GraceDays       int `mapstructure:"grace_days"`
	BioWeight       int `mapstructure:"bio_weight"`
	CityWeight      int `mapstructure:"city_weight"`
	PerImageWeight  int `mapstructure:"per_image_weight"`
	MaxScoredImages int `mapstructure:"max_scored_images"`
}

// CatalogConfig holds plan catalog configuration
type CatalogConfig struct {
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
	SeedFile        string `mapstructure:"seed_file"`
}

// EmailConfig holds SMTP configuration for receipt mail
type EmailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	Enabled  bool   `mapstructure:"enabled"`
}
