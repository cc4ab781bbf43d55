package domain

import "time"

// Country is the root of the geographic hierarchy. Codes are ISO-style
// and unique across the table.
type Country struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Code string `db:"code" json:"code"`
}

// Province belongs to a country; its two-letter code is unique within
// that country.
type Province struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Code      string `db:"code" json:"code"`
	CountryID int64  `db:"country_id" json:"country_id"`
}

type City struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	ProvinceID int64  `db:"province_id" json:"province_id"`
}

// Address is a demo address owned by a single user. Latitude and
// longitude are optional but range-checked by the schema.
type Address struct {
	ID           int64     `db:"id" json:"id"`
	UserID       int64     `db:"user_id" json:"user_id"`
	StreetNumber string    `db:"street_number" json:"street_number"`
	StreetName   string    `db:"street_name" json:"street_name"`
	UnitSuite    *string   `db:"unit_suite" json:"unit_suite,omitempty"`
	CityID       int64     `db:"city_id" json:"city_id"`
	PostalCode   string    `db:"postal_code" json:"postal_code"`
	Latitude     *float64  `db:"latitude" json:"latitude,omitempty"`
	Longitude    *float64  `db:"longitude" json:"longitude,omitempty"`
	DateCreated  time.Time `db:"date_created" json:"date_created"`
	DateUpdated  time.Time `db:"date_updated" json:"date_updated"`
}
