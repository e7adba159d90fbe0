package config

import (
	"slices"
	"strings"
)

// Warnings reports settings that are valid but probably unintended.
func (c *Config) Warnings() []string {
	var warnings []string

	if slices.Contains(c.AllowedOrigins, "*") {
		warnings = append(warnings, WarnMsgWildcardOrigin)
	}

	if strings.EqualFold(c.LogLevel, "debug") && c.Environment == EnvironmentProduction {
		warnings = append(warnings, WarnMsgDebugInProd)
	}

	if c.DatabaseURL != "" && c.BinderStore != StorePostgres {
		warnings = append(warnings, WarnMsgUnusedDatabaseURL)
	}

	return warnings
}
