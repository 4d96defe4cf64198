// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Download Handling - these keys govern where and how selected media files are retrieved.
const (
	DownloadsPath        = "downloads.path"
	DownloadsConcurrency = "downloads.concurrency"
	DownloadsTimeout     = "downloads.timeout"
)

// Fallback Retrieval - these keys configure the direct GraphQL fallback request.
const (
	FallbackTimeout = "fallback.timeout"
)

// History Tracking - these keys configure the persistence of completed downloads.
const (
	HistorySaveOnDownload = "history.save_on_download"
)

// Prompt Interaction - these keys define the UI/UX parameters of the interactive prompt.
const (
	PromptShowURLSuggestions = "prompt.show_url_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
