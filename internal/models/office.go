package models

import "time"

// Office is the offices table row.
type Office struct {
	ID            string    `db:"id"`
	OfficeName    string    `db:"office_name"`
	OfficeID      string    `db:"office_id"`
	OfficeAddress string    `db:"office_address"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
}

// Airline is the airlines table row.
type Airline struct {
	ID        string    `db:"id"`
	Code      string    `db:"code"`
	Name      string    `db:"name"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
