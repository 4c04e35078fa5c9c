package services

import (
	portsrepo "github.com/quickway/travels_backoffice/internal/core/ports/repositories"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/platform/config"
	"github.com/quickway/travels_backoffice/internal/platform/events"
)

// containerDeps holds the optional collaborators of the service container.
type containerDeps struct {
	verifier  portssvc.IdentityVerifier
	publisher events.Publisher
	policy    portssvc.AccessPolicySvc
}

// ContainerOption configures optional collaborators of NewServiceContainer.
type ContainerOption func(*containerDeps)

// WithIdentityVerifier requires an ID token on token issuance.
func WithIdentityVerifier(v portssvc.IdentityVerifier) ContainerOption {
	return func(d *containerDeps) {
		d.verifier = v
	}
}

// WithPublisher sends lifecycle events to p.
func WithPublisher(p events.Publisher) ContainerOption {
	return func(d *containerDeps) {
		d.publisher = p
	}
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...ContainerOption) *portssvc.ServiceContainer {
	deps := &containerDeps{
		publisher: events.NoopPublisher{},
		policy:    NewAccessPolicy(),
	}
	for _, opt := range opts {
		opt(deps)
	}

	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(cfg, repos.UserRepo, deps.verifier)
	container.User = NewUserService(repos.UserRepo, deps.policy)
	container.Office = NewOfficeService(repos.OfficeRepo, deps.policy)
	container.Airline = NewAirlineService(repos.AirlineRepo, deps.policy)
	container.Supplier = NewSupplierService(repos.SupplierRepo, deps.policy)
	container.Payment = NewPaymentService(repos.PaymentRepo, deps.policy, deps.publisher)

	container.Sale = NewSaleService(
		repos.SaleRepo,
		WithAccessPolicy(deps.policy),
		WithEventPublisher(deps.publisher),
	)

	// Exports read through the sale service to share its visibility rules
	container.Export = NewExportService(container.Sale)

	return container
}
