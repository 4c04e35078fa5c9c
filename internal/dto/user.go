package dto

import (
	"time"

	"github.com/quickway/travels_backoffice/internal/core/domain"
)

// CreateUserRequest defines the body of POST /user.
type CreateUserRequest struct {
	Name     string        `json:"name" binding:"required,max=120"`
	Email    string        `json:"email" binding:"required,email"`
	Role     domain.Role   `json:"role" binding:"required,role"`
	Status   domain.Status `json:"status" binding:"omitempty,status"`
	OfficeID string        `json:"officeId" binding:"max=64"`
	PhotoURL string        `json:"photoURL" binding:"omitempty,url"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name     *string        `json:"name" binding:"omitempty,max=120"`
	Role     *domain.Role   `json:"role" binding:"omitempty,role"`
	Status   *domain.Status `json:"status" binding:"omitempty,status"`
	OfficeID *string        `json:"officeId" binding:"omitempty,max=64"`
	PhotoURL *string        `json:"photoURL" binding:"omitempty,url"`
}

// ListOfficeUsersParams defines query parameters for GET /users/office.
type ListOfficeUsersParams struct {
	OfficeID string `form:"officeId"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        string        `json:"_id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Role      domain.Role   `json:"role"`
	Status    domain.Status `json:"status"`
	OfficeID  string        `json:"officeId"`
	PhotoURL  string        `json:"photoURL,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ActiveResponse answers GET /users/status/:email.
type ActiveResponse struct {
	Active bool `json:"active"`
}

// AdminResponse answers GET /users/admin/:email.
type AdminResponse struct {
	Admin bool `json:"admin"`
}

// SuperAdminResponse answers GET /users/super-admin/:email.
type SuperAdminResponse struct {
	IsSuperAdmin bool `json:"isSuperAdmin"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		OfficeID:  u.OfficeID,
		PhotoURL:  u.PhotoURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserResponses converts a slice of domain.User.
func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
