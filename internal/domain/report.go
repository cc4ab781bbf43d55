package domain

import "time"

// SeedReport summarizes one seeding run: rows inserted per entity,
// keyed off the uuid run id carried through the logs.
type SeedReport struct {
	RunID       string    `json:"run_id"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	DemoUserID  int64     `json:"demo_user_id"`
	AdminSeeded bool      `json:"admin_seeded"`

	Countries        int `json:"countries"`
	Provinces        int `json:"provinces"`
	Cities           int `json:"cities"`
	Addresses        int `json:"addresses"`
	Users            int `json:"users"`
	Categories       int `json:"categories"`
	Units            int `json:"units"`
	Services         int `json:"services"`
	ServiceTypes     int `json:"service_types"`
	ServicePhotos    int `json:"service_photos"`
	TypePhotos       int `json:"service_type_photos"`
	CategoryLinks    int `json:"category_links"`
	Ratings          int `json:"ratings"`
	Professionals    int `json:"professionals"`
	ServiceLinks     int `json:"professional_service_links"`
	SkippedDuplicate int `json:"skipped_duplicate_links"`
}

// TableCounts maps a table name to its current row count.
type TableCounts map[string]int

// CheckResult is the outcome of one integrity check.
type CheckResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// IntegrityReport aggregates the post-seed integrity checks.
type IntegrityReport struct {
	CheckedAt time.Time     `json:"checked_at"`
	Passed    bool          `json:"passed"`
	Checks    []CheckResult `json:"checks"`
	Counts    TableCounts   `json:"counts"`
}
