package domain_test

import (
	"testing"

	"github.com/quickway/travels_backoffice/internal/apperrors"
	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRequireSameTenant(t *testing.T) {
	admin := domain.Principal{Email: "a@a.test", Role: domain.RoleAdmin, Status: domain.StatusActive, OfficeID: "A"}
	super := domain.Principal{Email: "s@hq.test", Role: domain.RoleSuperAdmin, Status: domain.StatusActive}
	homeless := domain.Principal{Email: "h@x.test", Role: domain.RoleAdmin, Status: domain.StatusActive}

	assert.NoError(t, domain.RequireSameTenant(admin, "A"))
	assert.ErrorIs(t, domain.RequireSameTenant(admin, "B"), apperrors.ErrForbidden)
	assert.NoError(t, domain.RequireSameTenant(super, "B"))
	assert.ErrorIs(t, domain.RequireSameTenant(homeless, ""), apperrors.ErrForbidden)
}

func TestRequireSelfOrPrivileged(t *testing.T) {
	sales := domain.Principal{Email: "Agent@A.test", Role: domain.RoleSales}
	admin := domain.Principal{Email: "boss@a.test", Role: domain.RoleAdmin}
	super := domain.Principal{Email: "root@hq.test", Role: domain.RoleSuperAdmin}

	assert.NoError(t, domain.RequireSelfOrPrivileged(sales, "agent@a.test"))
	assert.ErrorIs(t, domain.RequireSelfOrPrivileged(sales, "other@a.test"), apperrors.ErrForbidden)
	assert.ErrorIs(t, domain.RequireSelfOrPrivileged(admin, "agent@a.test"), apperrors.ErrForbidden)
	assert.NoError(t, domain.RequireSelfOrPrivileged(super, "agent@a.test"))
}

func TestRequireActive(t *testing.T) {
	assert.NoError(t, domain.RequireActive(domain.Principal{Status: domain.StatusActive}))
	assert.ErrorIs(t, domain.RequireActive(domain.Principal{Status: domain.StatusInactive}), apperrors.ErrInactive)
	assert.ErrorIs(t, domain.RequireActive(domain.Principal{}), apperrors.ErrForbidden)
}

func TestScopeAllows(t *testing.T) {
	p := domain.Principal{Email: "agent@a.test", Role: domain.RoleSales, OfficeID: "A"}
	own := domain.Provenance{OfficeID: "A", CreatedBy: "AGENT@a.test"}
	colleague := domain.Provenance{OfficeID: "A", CreatedBy: "other@a.test"}
	foreign := domain.Provenance{OfficeID: "B", CreatedBy: "agent@a.test"}

	tenant := domain.TenantScope(p)
	assert.True(t, tenant.Allows(own))
	assert.True(t, tenant.Allows(colleague))
	assert.False(t, tenant.Allows(foreign))

	owner := domain.OwnerScope(p)
	assert.True(t, owner.Allows(own))
	assert.False(t, owner.Allows(colleague))

	super := domain.TenantScope(domain.Principal{Role: domain.RoleSuperAdmin})
	assert.True(t, super.Unrestricted())
	assert.True(t, super.Allows(foreign))
}

func TestScopeAllows_EmptyOfficeMatchesNothing(t *testing.T) {
	homeless := domain.Principal{Email: "h@x.test", Role: domain.RoleAdmin, Status: domain.StatusActive}
	unstamped := domain.Provenance{CreatedBy: "root@hq.test"}

	assert.False(t, domain.TenantScope(homeless).Allows(unstamped))
	assert.ErrorIs(t, domain.RequireSameTenant(homeless, unstamped.OfficeID), apperrors.ErrForbidden)
}
