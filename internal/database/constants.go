package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 1
)

// SQLite settings
const (
	SQLiteDriver      = "sqlite"
	SQLitePragmas     = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)"
	SQLiteMaxOpenConn = 1
	SQLiteDirPerm     = 0o755
)

// Migration directories inside the embedded filesystems
const (
	MigrationDirPostgres = "postgres"
	MigrationDirSQLite   = "sqlite"
)

// PingTimeout bounds the initial connectivity check.
const PingTimeout = 5 * time.Second

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToOpenSQLite      = "failed to open sqlite database"
	ErrMsgFailedToLoadMigrations  = "failed to load migrations"
	ErrMsgFailedToApplyMigrations = "failed to apply migrations"
	ErrMsgFailedToCreateDataDir   = "failed to create database directory"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgMigrationsUpToDate              = "Database migrations up to date"
	LogMsgOpenedSQLite                    = "Opened sqlite database"
)

// Log field keys
const (
	LogFieldVersion  = "version"
	LogFieldSource   = "source"
	LogFieldDuration = "duration"
	LogFieldPath     = "path"
	LogFieldApplied  = "applied"
)
