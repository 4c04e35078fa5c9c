package domain

import (
	"strings"

	"github.com/quickway/travels_backoffice/internal/apperrors"
)

// Role defines the privilege level of a user.
type Role string

const (
	RoleSales      Role = "sales"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleSales, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// Principal is the authenticated caller as decoded from a session token.
// It is a snapshot of the user record at token issuance and is never persisted.
type Principal struct {
	Email    string
	Role     Role
	Status   Status
	OfficeID string
}

// IsSuperAdmin reports whether the principal bypasses tenant scoping.
func (p Principal) IsSuperAdmin() bool {
	return p.Role == RoleSuperAdmin
}

// RequireActive rejects principals whose status is not active.
func RequireActive(p Principal) error {
	if p.Status != StatusActive {
		return apperrors.ErrInactive
	}
	return nil
}

// RequireRole passes iff the principal's role is one of allowed.
func RequireRole(p Principal, allowed ...Role) error {
	for _, r := range allowed {
		if p.Role == r {
			return nil
		}
	}
	return apperrors.NewForbiddenError("role " + string(p.Role) + " is not permitted")
}

// RequireSameTenant passes for super-admins or when the record belongs to the principal's office.
func RequireSameTenant(p Principal, officeID string) error {
	if p.IsSuperAdmin() {
		return nil
	}
	if p.OfficeID == "" || p.OfficeID != officeID {
		return apperrors.NewForbiddenError("unauthorized office")
	}
	return nil
}

// RequireSelfOrPrivileged passes when the principal targets its own identity or is a super-admin.
func RequireSelfOrPrivileged(p Principal, email string) error {
	if p.IsSuperAdmin() || strings.EqualFold(p.Email, email) {
		return nil
	}
	return apperrors.NewForbiddenError("unverified identity")
}

// Scope narrows a list query. A nil field means no restriction on that column.
type Scope struct {
	OfficeID  *string
	CreatedBy *string
}

// Unrestricted reports whether the scope filters nothing.
func (s Scope) Unrestricted() bool {
	return s.OfficeID == nil && s.CreatedBy == nil
}

// Allows reports whether a record with the given stamp falls inside the scope.
// An office restriction with no office matches nothing.
func (s Scope) Allows(stamp Provenance) bool {
	if s.OfficeID != nil && (*s.OfficeID == "" || *s.OfficeID != stamp.OfficeID) {
		return false
	}
	if s.CreatedBy != nil && !strings.EqualFold(*s.CreatedBy, stamp.CreatedBy) {
		return false
	}
	return true
}

// TenantScope restricts to the principal's office unless it is a super-admin.
func TenantScope(p Principal) Scope {
	if p.IsSuperAdmin() {
		return Scope{}
	}
	office := p.OfficeID
	return Scope{OfficeID: &office}
}

// OwnerScope restricts to records created by the principal.
func OwnerScope(p Principal) Scope {
	email := p.Email
	return Scope{CreatedBy: &email}
}

// Resource names a protected record type.
type Resource string

const (
	ResourceUser     Resource = "user"
	ResourceOffice   Resource = "office"
	ResourceAirline  Resource = "airline"
	ResourceSupplier Resource = "supplier"
	ResourceSale     Resource = "sale"
	ResourcePayment  Resource = "payment"
)

// Action is an operation on a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)
