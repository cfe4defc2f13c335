package config

import (
	"slices"
	"strings"

	"github.com/kerbaras/anitrack/pkg/key"
	"github.com/kerbaras/anitrack/pkg/where"
	"github.com/samber/lo"
)

// Field is a registered configuration setting.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that overrides the field.
func (f Field) Env() string {
	return strings.ToUpper(where.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
	}

	register(key.DatabasePath, "", "Path to the watchlist database.\nEmpty means anime_tracker.db inside the config directory")
	register(key.CatalogURL, "https://api.jikan.moe/v4", "Base URL of the Jikan catalog API")
	register(key.CatalogLimit, 25, "Maximum number of search results requested from the catalog")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

// Fields returns the registered fields ordered by key.
func Fields() []Field {
	fields := lo.Values(Default)
	slices.SortFunc(fields, func(a, b Field) int {
		return strings.Compare(a.Key, b.Key)
	})
	return fields
}
