package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0o755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0o644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, including the new session
	LogFileRetentionCount = 9
)

// Environments that log source locations
const (
	EnvDev         = "dev"
	EnvDevelopment = "development"
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting booster pack service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Binder Store
// =============================================================================

// BinderDocumentID is the row id of the binder document in database stores
const BinderDocumentID = "default"

const (
	LogMsgBinderStoreOpened  = "Binder store opened"
	LogMsgBinderStoreClosed  = "Binder store closed"
	ErrMsgUnknownBinderStore = "unknown binder store"
	ErrMsgFailedOpenPostgres = "failed to open postgres binder store"
	ErrMsgFailedMigrate      = "failed to migrate binder store"
	ErrMsgFailedOpenSQLite   = "failed to open sqlite binder store"
)

// =============================================================================
// Service Wiring
// =============================================================================

const (
	LogMsgCatalogLoaded        = "Card catalog loaded"
	LogMsgServicesInitialized  = "Services initialized"
	LogMsgEventObserverWired   = "Binder event observers registered"
	LogMsgProgressionAnnounced = "Collection progression"
	ErrMsgFailedLoadCatalog    = "failed to load card catalog"
	ErrMsgFailedInitBinder     = "failed to initialize binder service"
	LogFieldSets               = "sets"
	LogFieldPoolsDir           = "pools_dir"
	LogFieldStore              = "store"
	LogFieldProgressionOrder   = "progression_order"
	LogFieldObservers          = "observers"
	LogFieldError              = "error"
	LogFieldFile               = "file"
	LogFieldPath               = "path"
	LogFieldEventType          = "event_type"
	LogFieldSetID              = "set_id"
	LogFieldTimestamp          = "timestamp"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoreCloseFailed     = "Binder store close failed"
)

// DefaultShutdownTimeout bounds GracefulShutdown when the caller passes no deadline.
const DefaultShutdownTimeout = 10 * time.Second
