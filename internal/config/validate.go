package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/robdix/spanish-reading/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Reading.validate(); err != nil {
		return fmt.Errorf("reading: %w", err)
	}

	if err := c.Export.validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if c.Import.MaxBodyBytes <= 0 {
		return fmt.Errorf("import: max_body_bytes must be > 0 (got %d)", c.Import.MaxBodyBytes)
	}
	if c.Import.RateLimitPerMinute < 0 {
		return fmt.Errorf("import: rate_limit_per_minute must be >= 0 (got %d)", c.Import.RateLimitPerMinute)
	}

	return nil
}

func (r *ReadingConfig) validate() error {
	if r.ContextWindow <= 0 {
		return fmt.Errorf("context_window must be > 0 (got %d)", r.ContextWindow)
	}
	if _, err := time.LoadLocation(r.DefaultTimezone); err != nil || r.DefaultTimezone == "" {
		return fmt.Errorf("default_timezone %q is not a valid IANA timezone", r.DefaultTimezone)
	}
	return nil
}

func (e *ExportConfig) validate() error {
	if e.MaxEntries <= 0 {
		return fmt.Errorf("max_entries must be > 0 (got %d)", e.MaxEntries)
	}

	mappings, err := ParseFieldMappings(e.DefaultMappingsRaw, e.FieldSeparator)
	if err != nil {
		return fmt.Errorf("default_mappings: %w", err)
	}
	if len(mappings) == 0 {
		return fmt.Errorf("default_mappings must define at least one column")
	}
	e.DefaultMappings = mappings

	return nil
}

// ParseFieldMappings parses export columns written as "phrase|definition,example".
// Columns are separated by "|", the fields of a column by ","; every column
// uses sep to join its fields. Field names are checked against the known set.
func ParseFieldMappings(raw, sep string) ([]domain.FieldMapping, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	columns := strings.Split(raw, "|")
	mappings := make([]domain.FieldMapping, 0, len(columns))

	for i, col := range columns {
		var fields []string
		for _, f := range strings.Split(col, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			if !domain.IsExportField(f) {
				return nil, fmt.Errorf("column %d: unknown field %q", i+1, f)
			}
			fields = append(fields, f)
		}
		if len(fields) == 0 {
			return nil, fmt.Errorf("column %d is empty", i+1)
		}
		mappings = append(mappings, domain.FieldMapping{SourceFields: fields, Separator: sep})
	}

	return mappings, nil
}
