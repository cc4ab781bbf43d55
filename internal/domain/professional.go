package domain

// Verification statuses a professional can carry. The schema enforces
// that only "approved" rows have IsVerified set.
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

// Government-issued id types accepted for professional verification.
const (
	IssuedIDPassport      = "passport"
	IssuedIDDriverLicense = "driver_license"
	IssuedIDPR            = "pr"
)

// Professional augments a user with licensing and verification state.
// License numbers are unique case-insensitively across the table.
type Professional struct {
	ID                 int64  `db:"id" json:"id"`
	UserID             int64  `db:"user_id" json:"user_id"`
	LicenseNumber      string `db:"license_number" json:"license_number"`
	GovernmentIssuedID string `db:"government_issued_id" json:"government_issued_id"`
	IsVerified         bool   `db:"is_verified" json:"is_verified"`
	VerificationStatus string `db:"verification_status" json:"verification_status"`
}

// ProfessionalService links a professional to a service they offer.
// The (service, professional) pair is unique.
type ProfessionalService struct {
	ID             int64 `db:"id" json:"id"`
	ServiceID      int64 `db:"service_id" json:"service_id"`
	ProfessionalID int64 `db:"professional_id" json:"professional_id"`
}
