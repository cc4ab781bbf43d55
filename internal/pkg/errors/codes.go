package errors

import "net/http"

var (
	ErrInvalidConfig = New(
		"INVALID_CONFIG",
		"Invalid configuration",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrMigrationFailed = New(
		"MIGRATION_FAILED",
		"Schema migration failed",
		http.StatusInternalServerError,
	)

	ErrSeedDependency = New(
		"SEED_DEPENDENCY",
		"Seed step ran before its dependencies were loaded",
		http.StatusInternalServerError,
	)

	ErrInvalidDataset = New(
		"INVALID_DATASET",
		"Seed dataset failed validation",
		http.StatusInternalServerError,
	)

	ErrDuplicateRow = New(
		"DUPLICATE_ROW",
		"Row violates a uniqueness constraint",
		http.StatusConflict,
	)

	ErrLookupFailed = New(
		"LOOKUP_FAILED",
		"Referenced row does not exist",
		http.StatusInternalServerError,
	)

	ErrVerifyFailed = New(
		"VERIFY_FAILED",
		"Seeded data failed integrity verification",
		http.StatusInternalServerError,
	)

	ErrAdminDisabled = New(
		"ADMIN_DISABLED",
		"Admin bootstrap is disabled or not allowed in this environment",
		http.StatusForbidden,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
