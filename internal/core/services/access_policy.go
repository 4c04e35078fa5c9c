package services

import (
	"github.com/quickway/travels_backoffice/internal/apperrors"
	"github.com/quickway/travels_backoffice/internal/core/domain"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
)

var (
	anyRole    = []domain.Role{domain.RoleSales, domain.RoleAdmin, domain.RoleSuperAdmin}
	privileged = []domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin}
	superOnly  = []domain.Role{domain.RoleSuperAdmin}
)

// actionRoles lists, per resource and action, the roles allowed to attempt it.
var actionRoles = map[domain.Resource]map[domain.Action][]domain.Role{
	domain.ResourceUser: {
		domain.ActionRead:   anyRole,
		domain.ActionCreate: privileged,
		domain.ActionUpdate: privileged,
		domain.ActionDelete: privileged,
	},
	domain.ResourceOffice: {
		domain.ActionRead:   superOnly,
		domain.ActionCreate: superOnly,
		domain.ActionUpdate: superOnly,
		domain.ActionDelete: superOnly,
	},
	domain.ResourceAirline: {
		domain.ActionRead:   anyRole,
		domain.ActionCreate: privileged,
		domain.ActionUpdate: privileged,
		domain.ActionDelete: privileged,
	},
	domain.ResourceSupplier: {
		domain.ActionRead:   anyRole,
		domain.ActionCreate: anyRole,
		domain.ActionUpdate: anyRole,
		domain.ActionDelete: privileged,
	},
	domain.ResourceSale: {
		domain.ActionRead:   anyRole,
		domain.ActionCreate: anyRole,
		domain.ActionUpdate: anyRole,
		domain.ActionDelete: privileged,
	},
	domain.ResourcePayment: {
		domain.ActionRead:   privileged,
		domain.ActionCreate: anyRole,
		domain.ActionUpdate: privileged,
		domain.ActionDelete: privileged,
	},
}

// globalResources carry no tenant.
var globalResources = map[domain.Resource]bool{
	domain.ResourceOffice:  true,
	domain.ResourceAirline: true,
}

// ownerScoped resources are narrowed to the caller's own records for the sales role.
// For users, "own" means the caller's directory entry.
var ownerScoped = map[domain.Resource]bool{
	domain.ResourceUser: true,
	domain.ResourceSale: true,
}

type accessPolicy struct{}

// NewAccessPolicy returns the role/tenant policy for every resource type.
func NewAccessPolicy() portssvc.AccessPolicySvc {
	return accessPolicy{}
}

var _ portssvc.AccessPolicySvc = accessPolicy{}

func (accessPolicy) AuthorizeAction(p domain.Principal, resource domain.Resource, action domain.Action) error {
	if err := domain.RequireActive(p); err != nil {
		return err
	}
	roles, ok := actionRoles[resource][action]
	if !ok {
		return apperrors.NewForbiddenError("unknown operation")
	}
	return domain.RequireRole(p, roles...)
}

func (a accessPolicy) AuthorizeRecord(p domain.Principal, resource domain.Resource, action domain.Action, stamp domain.Provenance) error {
	if err := a.AuthorizeAction(p, resource, action); err != nil {
		return err
	}
	if globalResources[resource] {
		return nil
	}
	scope := recordScope(p, resource)
	if scope.Allows(stamp) {
		return nil
	}
	if scope.CreatedBy != nil {
		return apperrors.NewForbiddenError("record belongs to another user")
	}
	return domain.RequireSameTenant(p, stamp.OfficeID)
}

func (a accessPolicy) ListScope(p domain.Principal, resource domain.Resource) (domain.Scope, error) {
	if err := a.AuthorizeAction(p, resource, domain.ActionRead); err != nil {
		return domain.Scope{}, err
	}
	scope := recordScope(p, resource)
	if scope.OfficeID != nil && *scope.OfficeID == "" {
		return domain.Scope{}, apperrors.NewForbiddenError("unauthorized office")
	}
	return scope, nil
}

func recordScope(p domain.Principal, resource domain.Resource) domain.Scope {
	if globalResources[resource] {
		return domain.Scope{}
	}
	if p.Role == domain.RoleSales && ownerScoped[resource] {
		return domain.OwnerScope(p)
	}
	return domain.TenantScope(p)
}
