package sqlstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// migrations returns the ordered DDL groups for the marketplace tables
// this tool bootstraps. Table names follow the external <app>_<model>
// convention; the schema itself is owned by the marketplace application
// and is reproduced here only so an empty database can be provisioned.
// Each group runs in a single transaction; the version is the 1-based
// index into the slice.
func migrations(driver string) [][]string {
	pk := "BIGSERIAL PRIMARY KEY"
	if driver == "sqlite" {
		pk = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	return [][]string{
		// Migration 1: users and geography
		{
			fmt.Sprintf(`CREATE TABLE user_customuser (
				id %s,
				email TEXT NOT NULL UNIQUE,
				password TEXT NOT NULL,
				first_name TEXT NOT NULL DEFAULT '',
				last_name TEXT NOT NULL DEFAULT '',
				phone_number TEXT,
				is_provider BOOLEAN NOT NULL DEFAULT FALSE,
				is_professional BOOLEAN NOT NULL DEFAULT FALSE,
				is_verified BOOLEAN NOT NULL DEFAULT FALSE,
				is_active BOOLEAN NOT NULL DEFAULT TRUE,
				is_staff BOOLEAN NOT NULL DEFAULT FALSE,
				is_superuser BOOLEAN NOT NULL DEFAULT FALSE,
				date_joined TIMESTAMP NOT NULL
			)`, pk),

			fmt.Sprintf(`CREATE TABLE address_country (
				id %s,
				name TEXT NOT NULL UNIQUE,
				code TEXT NOT NULL UNIQUE
			)`, pk),

			fmt.Sprintf(`CREATE TABLE address_province (
				id %s,
				name TEXT NOT NULL,
				code TEXT NOT NULL,
				country_id BIGINT NOT NULL REFERENCES address_country(id)
			)`, pk),
			`CREATE UNIQUE INDEX uniq_province_name_country_ci ON address_province (lower(name), country_id)`,
			`CREATE UNIQUE INDEX uniq_province_code_country_ci ON address_province (lower(code), country_id)`,

			fmt.Sprintf(`CREATE TABLE address_city (
				id %s,
				name TEXT NOT NULL,
				province_id BIGINT NOT NULL REFERENCES address_province(id)
			)`, pk),
			`CREATE UNIQUE INDEX uniq_city_name_province_ci ON address_city (lower(name), province_id)`,
			`CREATE INDEX idx_city_province ON address_city (province_id)`,

			fmt.Sprintf(`CREATE TABLE address_address (
				id %s,
				user_id BIGINT NOT NULL REFERENCES user_customuser(id),
				street_number TEXT NOT NULL,
				street_name TEXT NOT NULL,
				unit_suite TEXT,
				city_id BIGINT NOT NULL REFERENCES address_city(id),
				postal_code TEXT NOT NULL,
				latitude NUMERIC(9,6),
				longitude NUMERIC(9,6),
				date_created TIMESTAMP NOT NULL,
				date_updated TIMESTAMP NOT NULL,
				CONSTRAINT chk_lat_range CHECK (latitude IS NULL OR (latitude >= -90 AND latitude <= 90)),
				CONSTRAINT chk_lng_range CHECK (longitude IS NULL OR (longitude >= -180 AND longitude <= 180))
			)`, pk),
			`CREATE INDEX idx_address_user ON address_address (user_id)`,
			`CREATE INDEX idx_address_postal_code ON address_address (postal_code)`,
		},

		// Migration 2: service taxonomy and ratings
		{
			fmt.Sprintf(`CREATE TABLE service_servicecategory (
				id %s,
				title TEXT NOT NULL UNIQUE,
				description TEXT,
				created_at TIMESTAMP NOT NULL
			)`, pk),
			`CREATE UNIQUE INDEX uniq_servicecategory_title_ci ON service_servicecategory (lower(title))`,

			fmt.Sprintf(`CREATE TABLE service_unit (
				id %s,
				name TEXT NOT NULL UNIQUE,
				code TEXT,
				created_at TIMESTAMP NOT NULL
			)`, pk),
			`CREATE UNIQUE INDEX uniq_unit_name_ci ON service_unit (lower(name))`,
			`CREATE UNIQUE INDEX uniq_unit_code_ci ON service_unit (lower(code)) WHERE code IS NOT NULL`,

			fmt.Sprintf(`CREATE TABLE service_service (
				id %s,
				title TEXT NOT NULL UNIQUE,
				description TEXT,
				is_trade_required BOOLEAN NOT NULL DEFAULT FALSE,
				price NUMERIC(10,2) NOT NULL DEFAULT 0,
				unit_id BIGINT REFERENCES service_unit(id) ON DELETE SET NULL,
				created_at TIMESTAMP NOT NULL,
				CONSTRAINT chk_price_non_negative CHECK (price >= 0)
			)`, pk),
			`CREATE UNIQUE INDEX uniq_service_title_ci ON service_service (lower(title))`,

			fmt.Sprintf(`CREATE TABLE service_service_categories (
				id %s,
				service_id BIGINT NOT NULL REFERENCES service_service(id),
				servicecategory_id BIGINT NOT NULL REFERENCES service_servicecategory(id),
				UNIQUE (service_id, servicecategory_id)
			)`, pk),

			fmt.Sprintf(`CREATE TABLE service_servicetype (
				id %s,
				service_id BIGINT NOT NULL REFERENCES service_service(id) ON DELETE CASCADE,
				title TEXT NOT NULL,
				description TEXT,
				price NUMERIC(10,2),
				created_at TIMESTAMP NOT NULL,
				CONSTRAINT chk_type_price_non_negative CHECK (price IS NULL OR price >= 0)
			)`, pk),
			`CREATE UNIQUE INDEX uniq_servicetype_title_service_ci ON service_servicetype (lower(title), service_id)`,

			fmt.Sprintf(`CREATE TABLE service_servicephoto (
				id %s,
				service_id BIGINT NOT NULL REFERENCES service_service(id) ON DELETE CASCADE,
				photo TEXT NOT NULL,
				caption TEXT,
				uploaded_at TIMESTAMP NOT NULL
			)`, pk),

			fmt.Sprintf(`CREATE TABLE service_servicetypephoto (
				id %s,
				service_type_id BIGINT NOT NULL REFERENCES service_servicetype(id) ON DELETE CASCADE,
				photo TEXT NOT NULL,
				caption TEXT,
				uploaded_at TIMESTAMP NOT NULL
			)`, pk),

			fmt.Sprintf(`CREATE TABLE service_rating (
				id %s,
				service_id BIGINT NOT NULL REFERENCES service_service(id) ON DELETE CASCADE,
				user_id BIGINT NOT NULL REFERENCES user_customuser(id) ON DELETE CASCADE,
				rating INTEGER NOT NULL,
				review TEXT,
				created_at TIMESTAMP NOT NULL,
				UNIQUE (service_id, user_id),
				CONSTRAINT chk_rating_between_1_5 CHECK (rating >= 1 AND rating <= 5)
			)`, pk),
			`CREATE INDEX idx_rating_service ON service_rating (service_id)`,
		},

		// Migration 3: professionals
		{
			fmt.Sprintf(`CREATE TABLE professional_professional (
				id %s,
				user_id BIGINT NOT NULL UNIQUE REFERENCES user_customuser(id) ON DELETE CASCADE,
				license_number TEXT NOT NULL,
				government_issued_id TEXT NOT NULL DEFAULT 'driver_license',
				is_verified BOOLEAN NOT NULL DEFAULT FALSE,
				verification_status TEXT NOT NULL DEFAULT 'pending',
				CONSTRAINT chk_professional_verified_consistent CHECK (
					(verification_status = 'approved' AND is_verified)
					OR (verification_status IN ('pending', 'rejected') AND NOT is_verified)
				)
			)`, pk),
			`CREATE UNIQUE INDEX uniq_professional_license_ci ON professional_professional (lower(license_number))`,
			`CREATE INDEX idx_professional_status ON professional_professional (verification_status)`,

			fmt.Sprintf(`CREATE TABLE professional_professionalservice (
				id %s,
				service_id BIGINT NOT NULL REFERENCES service_service(id) ON DELETE CASCADE,
				professional_id BIGINT NOT NULL REFERENCES professional_professional(id) ON DELETE CASCADE,
				UNIQUE (service_id, professional_id)
			)`, pk),
			`CREATE INDEX idx_proservice_professional ON professional_professionalservice (professional_id)`,
		},
	}
}

// seededTables lists every table the migrations create, in reverse
// dependency order so they can be dropped front to back.
var seededTables = []string{
	"professional_professionalservice",
	"professional_professional",
	"service_rating",
	"service_servicetypephoto",
	"service_servicephoto",
	"service_servicetype",
	"service_service_categories",
	"service_service",
	"service_unit",
	"service_servicecategory",
	"address_address",
	"address_city",
	"address_province",
	"address_country",
	"user_customuser",
}

// Migrate applies all pending schema migrations, each group inside its
// own transaction. Applied versions are tracked in schema_migrations.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for i, stmts := range migrations(db.driver) {
		version := i + 1

		var exists int
		if err := db.QueryRowContext(ctx,
			db.Rebind("SELECT COUNT(*) FROM schema_migrations WHERE version = ?"), version,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", version, err)
		}

		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("migration %d: %w", version, err)
			}
		}

		if _, err := tx.ExecContext(ctx,
			db.Rebind("INSERT INTO schema_migrations (version) VALUES (?)"), version,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %d: %w", version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", version, err)
		}

		db.logger.Info("migration applied", zap.Int("version", version))
	}

	return nil
}

// DropAll removes every owned table including the migration ledger.
// This is the destructive half of the reset procedure; callers are
// expected to Migrate immediately after.
func (db *DB) DropAll(ctx context.Context) error {
	tables := append([]string{}, seededTables...)
	tables = append(tables, "schema_migrations")

	for _, table := range tables {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}

	db.logger.Info("all tables dropped", zap.Int("tables", len(tables)))
	return nil
}
