package domain

import "time"

// Office is a tenant (client area). Its OfficeID business key scopes users,
// suppliers, sales and payments.
type Office struct {
	ID            string    `json:"_id"`
	OfficeName    string    `json:"officeName"`
	OfficeID      string    `json:"officeId"`
	OfficeAddress string    `json:"officeAddress"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
}
