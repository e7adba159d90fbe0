package config

// Binder store backends
const (
	StoreFile     = "file"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// EnvironmentProduction marks a production deployment.
const EnvironmentProduction = "production"

// Error contexts
const (
	ErrContextParseEnv = "parse env"
	ErrContextValidate = "invalid configuration"
)

// Warning messages
const (
	WarnMsgWildcardOrigin    = "ALLOWED_ORIGINS contains '*' - any site can call the API from a browser"
	WarnMsgDebugInProd       = "LOG_LEVEL is debug in production - per-slot draw logs will be verbose"
	WarnMsgUnusedDatabaseURL = "DATABASE_URL is set but BINDER_STORE is not postgres - it will be ignored"
)
