package services

import (
	"github.com/quickway/travels_backoffice/internal/core/domain"
)

// AccessPolicySvc decides what a principal may do with each resource type.
type AccessPolicySvc interface {
	// AuthorizeAction gates an action on a resource by role alone.
	AuthorizeAction(p domain.Principal, resource domain.Resource, action domain.Action) error

	// AuthorizeRecord gates an action on one record by role and by the record's provenance stamp.
	AuthorizeRecord(p domain.Principal, resource domain.Resource, action domain.Action, stamp domain.Provenance) error

	// ListScope returns the filter list queries of resource must apply for p.
	ListScope(p domain.Principal, resource domain.Resource) (domain.Scope, error)
}
