package domain

import "time"

// Airline is a global carrier record, not scoped to any office.
type Airline struct {
	ID        string    `json:"_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
