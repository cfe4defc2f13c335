// Package key lists the configuration keys understood by anitrack.
package key

const (
	DatabasePath = "db.path"

	CatalogURL   = "catalog.url"
	CatalogLimit = "catalog.limit"

	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"

	CliColored = "cli.colored"
)
