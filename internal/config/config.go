package config

import "time"

// Store drivers accepted by StoreConfig.Driver.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the root application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store"`
	Database  DatabaseConfig  `yaml:"database"`
	SQLite    SQLiteConfig    `yaml:"sqlite"`
	Log       LogConfig       `yaml:"log"`
	Directory DirectoryConfig `yaml:"directory"`
	Seed      SeedConfig      `yaml:"seed"`
}

// StoreConfig selects the record store backend.
type StoreConfig struct {
	Driver string `yaml:"driver" env:"STORE_DRIVER" env-default:"sqlite"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only used by the
// postgres driver.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// SQLiteConfig holds settings of the local single-file store.
type SQLiteConfig struct {
	Path     string `yaml:"path"      env:"SQLITE_PATH"      env-default:"./portal.db"`
	PoolSize int    `yaml:"pool_size" env:"SQLITE_POOL_SIZE" env-default:"4"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// DirectoryConfig holds the access codes given to users created without one.
type DirectoryConfig struct {
	AdminAccessCode     string `yaml:"admin_access_code"     env:"DIRECTORY_ADMIN_ACCESS_CODE"     env-default:"0000"`
	CaregiverAccessCode string `yaml:"caregiver_access_code" env:"DIRECTORY_CAREGIVER_ACCESS_CODE" env-default:"9999"`
	PatientAccessCode   string `yaml:"patient_access_code"   env:"DIRECTORY_PATIENT_ACCESS_CODE"   env-default:"0000"`
}

// SeedConfig controls demo data bootstrap.
type SeedConfig struct {
	Enabled bool `yaml:"enabled" env:"SEED_ENABLED" env-default:"true"`
}
