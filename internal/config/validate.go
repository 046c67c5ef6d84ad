package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))

	switch c.Store.Driver {
	case DriverMemory:
	case DriverSQLite:
		if strings.TrimSpace(c.SQLite.Path) == "" {
			return fmt.Errorf("sqlite.path is required for the sqlite driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("store.driver must be one of memory, sqlite, postgres (got %q)", c.Store.Driver)
	}

	if err := c.Directory.validate(); err != nil {
		return fmt.Errorf("directory: %w", err)
	}

	return nil
}

func (d *DirectoryConfig) validate() error {
	codes := []struct{ name, value string }{
		{"admin_access_code", d.AdminAccessCode},
		{"caregiver_access_code", d.CaregiverAccessCode},
		{"patient_access_code", d.PatientAccessCode},
	}
	for _, c := range codes {
		if strings.TrimSpace(c.value) == "" {
			return fmt.Errorf("%s must not be empty", c.name)
		}
	}
	return nil
}
