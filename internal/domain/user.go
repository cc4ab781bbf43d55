package domain

import "time"

// User mirrors the marketplace user table this tool seeds into. The
// schema is owned externally; only the columns the seeder writes are
// modeled here.
type User struct {
	ID             int64     `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	Password       string    `db:"password" json:"-"`
	FirstName      string    `db:"first_name" json:"first_name"`
	LastName       string    `db:"last_name" json:"last_name"`
	PhoneNumber    *string   `db:"phone_number" json:"phone_number,omitempty"`
	IsProvider     bool      `db:"is_provider" json:"is_provider"`
	IsProfessional bool      `db:"is_professional" json:"is_professional"`
	IsVerified     bool      `db:"is_verified" json:"is_verified"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	IsStaff        bool      `db:"is_staff" json:"is_staff"`
	IsSuperuser    bool      `db:"is_superuser" json:"is_superuser"`
	DateJoined     time.Time `db:"date_joined" json:"date_joined"`
}
