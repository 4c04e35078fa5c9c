package pgsql

import (
	portsrepo "github.com/quickway/travels_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		OfficeRepo:   newPgxOfficeRepository(dbPool),
		AirlineRepo:  newPgxAirlineRepository(dbPool),
		SupplierRepo: newPgxSupplierRepository(dbPool),
		SaleRepo:     newPgxSaleRepository(dbPool),
		PaymentRepo:  newPgxPaymentRepository(dbPool),
	}
}
