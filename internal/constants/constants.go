package constants

import "time"

// Version of the client library, reported in the default User-Agent.
const Version = "0.1.0"

// DefaultUserAgent is sent when no User-Agent is configured.
const DefaultUserAgent = "brigade-client/" + Version

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP header names and values.
const (
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderUserAgent     = "User-Agent"

	// ContentTypeJSON is used for both Accept and Content-Type.
	ContentTypeJSON = "application/json"
)

// API paths.
const (
	// APIPathPrefix is prepended to every resource collection.
	APIPathPrefix = "/v2/"

	// CollectionProjects is the project collection name.
	CollectionProjects = "projects"

	// CollectionEvents is the event collection name.
	CollectionEvents = "events"

	// CollectionSessions is the session collection name.
	CollectionSessions = "sessions"

	// SubresourceCancellation cancels a single event.
	SubresourceCancellation = "cancellation"

	// SubresourceCancellations cancels events in bulk.
	SubresourceCancellations = "cancellations"

	// SubresourceDeletions deletes events in bulk.
	SubresourceDeletions = "deletions"
)

// CLI timeouts.
const (
	// DefaultCommandTimeout bounds a single CLI command.
	DefaultCommandTimeout = 30 * time.Second
)

// Pagination and display limits.
const (
	// DefaultPageSize is the page size the CLI asks for when listing.
	DefaultPageSize = 20

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// DescriptionDisplayLength is the length for displaying descriptions.
	DescriptionDisplayLength = 60
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// None is used when no value is present.
	None = "none"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Configuration keys shared by flags, the config file and the environment.
const (
	ConfigKeyAPI      = "api"
	ConfigKeyToken    = "token"
	ConfigKeyInsecure = "insecure"
	ConfigKeyOutput   = "output"
	ConfigKeyVerbose  = "verbose"
	ConfigKeyNoColor  = "no_color"

	// EnvPrefix is the environment variable prefix, e.g. BRIG_API.
	EnvPrefix = "BRIG"

	// ConfigDirName is the directory under $HOME holding the config file.
	ConfigDirName = ".brig"

	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
)
