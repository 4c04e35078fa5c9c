package domain

import "time"

// User is a directory entry and the authoritative source of a Principal.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Status    Status    `json:"status"`
	OfficeID  string    `json:"officeId"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Principal returns the token view of the user.
func (u User) Principal() Principal {
	return Principal{
		Email:    u.Email,
		Role:     u.Role,
		Status:   u.Status,
		OfficeID: u.OfficeID,
	}
}

// IsAdmin reports whether the user holds admin or super-admin rights.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
