package domain

import "time"

// Status is the lifecycle flag shared by users, offices, airlines and suppliers.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Provenance is the creator/tenant stamp written once when a record is created.
// Edits never change it.
type Provenance struct {
	OfficeID  string    `json:"officeId"`
	CreatedBy string    `json:"createdBy"` // creator email
	CreatedAt time.Time `json:"createdAt"`
}

// NewProvenance stamps a record with the principal's identity and tenant.
func NewProvenance(p Principal, now time.Time) Provenance {
	return Provenance{
		OfficeID:  p.OfficeID,
		CreatedBy: p.Email,
		CreatedAt: now,
	}
}
