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

const paymentColumns = `id, supplier_name, amount, payment_method, payment_date, reference, remarks, office_id, created_by, created_at, updated_at`

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) *PgxPaymentRepository {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, id string) (*domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	if err != nil {
		return nil, wrapReadErr(err, "payment")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Payment])
	if err != nil {
		return nil, wrapReadErr(err, "payment")
	}
	p := mapping.ToDomainPayment(m)
	return &p, nil
}

func (r *PgxPaymentRepository) ListPayments(ctx context.Context, scope domain.Scope) ([]domain.Payment, error) {
	officeID, createdBy := scopeArgs(scope)
	rows, err := r.Pool.Query(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE ($1::text IS NULL OR office_id = $1)
		  AND ($2::text IS NULL OR lower(created_by) = lower($2))
		ORDER BY payment_date DESC, created_at DESC`, officeID, createdBy)
	if err != nil {
		return nil, wrapReadErr(err, "payments")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Payment])
	if err != nil {
		return nil, wrapReadErr(err, "payments")
	}
	return mapping.ToDomainPaymentSlice(ms), nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO payments (id, supplier_name, amount, payment_method, payment_date, reference, remarks, office_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		m.ID, m.SupplierName, m.Amount, m.PaymentMethod, m.PaymentDate, m.Reference, m.Remarks,
		m.OfficeID, m.CreatedBy, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return wrapWriteErr(err, "payment")
	}
	return nil
}

func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE payments
		SET supplier_name = $1, amount = $2, payment_method = $3, payment_date = $4, reference = $5, remarks = $6, updated_at = $7
		WHERE id = $8`,
		m.SupplierName, m.Amount, m.PaymentMethod, m.PaymentDate, m.Reference, m.Remarks, m.UpdatedAt, m.ID)
	if err != nil {
		return wrapWriteErr(err, "payment")
	}
	return expectOne(tag, "payment")
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr(err, "payment")
	}
	return expectOne(tag, "payment")
}
