package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quickway/travels_backoffice/internal/core/domain"
	portsrepo "github.com/quickway/travels_backoffice/internal/core/ports/repositories"
	"github.com/quickway/travels_backoffice/internal/models"
	"github.com/quickway/travels_backoffice/internal/utils/mapping"
)

const supplierColumns = `id, supplier_name, mobile, address, total_due, status, office_id, created_by, created_at, updated_at`

type PgxSupplierRepository struct {
	BaseRepository
}

func newPgxSupplierRepository(pool *pgxpool.Pool) *PgxSupplierRepository {
	return &PgxSupplierRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

func (r *PgxSupplierRepository) collectOne(rows pgx.Rows, err error) (*domain.Supplier, error) {
	if err != nil {
		return nil, wrapReadErr(err, "supplier")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Supplier])
	if err != nil {
		return nil, wrapReadErr(err, "supplier")
	}
	s := mapping.ToDomainSupplier(m)
	return &s, nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, id string) (*domain.Supplier, error) {
	return r.collectOne(r.Pool.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
}

// FindSupplierByName returns the oldest match when the scope spans several offices.
func (r *PgxSupplierRepository) FindSupplierByName(ctx context.Context, scope domain.Scope, name string) (*domain.Supplier, error) {
	officeID, createdBy := scopeArgs(scope)
	return r.collectOne(r.Pool.Query(ctx, `
		SELECT `+supplierColumns+`
		FROM suppliers
		WHERE supplier_name = $1
		  AND ($2::text IS NULL OR office_id = $2)
		  AND ($3::text IS NULL OR lower(created_by) = lower($3))
		ORDER BY created_at
		LIMIT 1`, name, officeID, createdBy))
}

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, scope domain.Scope) ([]domain.Supplier, error) {
	officeID, createdBy := scopeArgs(scope)
	rows, err := r.Pool.Query(ctx, `
		SELECT `+supplierColumns+`
		FROM suppliers
		WHERE ($1::text IS NULL OR office_id = $1)
		  AND ($2::text IS NULL OR lower(created_by) = lower($2))
		ORDER BY supplier_name`, officeID, createdBy)
	if err != nil {
		return nil, wrapReadErr(err, "suppliers")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Supplier])
	if err != nil {
		return nil, wrapReadErr(err, "suppliers")
	}
	return mapping.ToDomainSupplierSlice(ms), nil
}

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO suppliers (id, supplier_name, mobile, address, total_due, status, office_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.SupplierName, m.Mobile, m.Address, m.TotalDue, m.Status, m.OfficeID, m.CreatedBy, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return wrapWriteErr(err, "supplier")
	}
	return nil
}

// UpdateSupplier never touches the provenance columns.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE suppliers
		SET supplier_name = $1, mobile = $2, address = $3, total_due = $4, status = $5, updated_at = $6
		WHERE id = $7`,
		m.SupplierName, m.Mobile, m.Address, m.TotalDue, m.Status, m.UpdatedAt, m.ID)
	if err != nil {
		return wrapWriteErr(err, "supplier")
	}
	return expectOne(tag, "supplier")
}

func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr(err, "supplier")
	}
	return expectOne(tag, "supplier")
}
