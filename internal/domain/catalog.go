package domain

import "time"

type ServiceCategory struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Unit is the billing unit a service price refers to (hour, visit, ...).
type Unit struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Code      *string   `db:"code" json:"code,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Service is a catalog entry. Price is a non-negative decimal stored
// with two fractional digits; UnitID is optional to mirror the schema's
// SET NULL behavior.
type Service struct {
	ID              int64     `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Description     *string   `db:"description" json:"description,omitempty"`
	IsTradeRequired bool      `db:"is_trade_required" json:"is_trade_required"`
	Price           string    `db:"price" json:"price"`
	UnitID          *int64    `db:"unit_id" json:"unit_id,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type ServiceType struct {
	ID          int64     `db:"id" json:"id"`
	ServiceID   int64     `db:"service_id" json:"service_id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	Price       *string   `db:"price" json:"price,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type ServicePhoto struct {
	ID         int64     `db:"id" json:"id"`
	ServiceID  int64     `db:"service_id" json:"service_id"`
	Photo      string    `db:"photo" json:"photo"`
	Caption    *string   `db:"caption" json:"caption,omitempty"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploaded_at"`
}

type ServiceTypePhoto struct {
	ID            int64     `db:"id" json:"id"`
	ServiceTypeID int64     `db:"service_type_id" json:"service_type_id"`
	Photo         string    `db:"photo" json:"photo"`
	Caption       *string   `db:"caption" json:"caption,omitempty"`
	UploadedAt    time.Time `db:"uploaded_at" json:"uploaded_at"`
}

// Rating is a per-user review of a service, constrained to 1..5.
type Rating struct {
	ID        int64     `db:"id" json:"id"`
	ServiceID int64     `db:"service_id" json:"service_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Rating    int       `db:"rating" json:"rating"`
	Review    *string   `db:"review" json:"review,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
