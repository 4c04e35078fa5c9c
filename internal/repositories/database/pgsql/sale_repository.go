package pgsql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quickway/travels_backoffice/internal/core/domain"
	portsrepo "github.com/quickway/travels_backoffice/internal/core/ports/repositories"
	"github.com/quickway/travels_backoffice/internal/middleware"
	"github.com/quickway/travels_backoffice/internal/models"
	"github.com/quickway/travels_backoffice/internal/utils/mapping"
)

const saleColumns = `id, document_number, rv_number, airline_code, supplier_name, sell_price, buying_price,
	mode, remarks, passenger_name, sector, sale_date, post_status, payment_status,
	is_refunded, refund_date, refund_charge, service_charge, refund_from_airline, refund_amount,
	office_id, created_by, created_at, updated_at`

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) *PgxSaleRepository {
	return &PgxSaleRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, id string) (*domain.Sale, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
	if err != nil {
		return nil, wrapReadErr(err, "sale")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Sale])
	if err != nil {
		return nil, wrapReadErr(err, "sale")
	}
	s := mapping.ToDomainSale(m)
	return &s, nil
}

func (r *PgxSaleRepository) ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	officeID, createdBy := scopeArgs(filter.Scope)
	var supplierName *string
	if filter.SupplierName != "" {
		supplierName = &filter.SupplierName
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT `+saleColumns+`
		FROM sales
		WHERE ($1::text IS NULL OR office_id = $1)
		  AND ($2::text IS NULL OR lower(created_by) = lower($2))
		  AND ($3::text IS NULL OR supplier_name = $3)
		  AND ($4::text[] IS NULL OR payment_status = ANY($4))
		  AND ($5::date IS NULL OR sale_date >= $5)
		  AND ($6::date IS NULL OR sale_date <= $6)
		ORDER BY created_at DESC`,
		officeID, createdBy, supplierName, filter.PaymentStatuses, filter.From, filter.To)
	if err != nil {
		return nil, wrapReadErr(err, "sales")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Sale])
	if err != nil {
		return nil, wrapReadErr(err, "sales")
	}
	return mapping.ToDomainSaleSlice(ms), nil
}

// CheckDocumentNumber reads the existence flag and the counter from one snapshot.
func (r *PgxSaleRepository) CheckDocumentNumber(ctx context.Context, documentNumber string) (exists bool, lastIssued int64, err error) {
	tx, err := r.BeginReadOnly(ctx)
	if err != nil {
		return false, 0, err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to close read-only transaction", slog.String("error", rbErr.Error()))
		}
	}()

	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sales WHERE document_number = $1)`, documentNumber,
	).Scan(&exists); err != nil {
		return false, 0, fmt.Errorf("failed to check document number: %w", err)
	}
	if err := tx.QueryRow(ctx, `SELECT last_value FROM rv_sequence WHERE id = 1`).Scan(&lastIssued); err != nil {
		return false, 0, wrapReadErr(err, "rv sequence")
	}
	return exists, lastIssued, nil
}

// CreateSale increments the RV counter and inserts the sale in one transaction.
// The counter row lock serialises concurrent creators.
func (r *PgxSaleRepository) CreateSale(ctx context.Context, sale domain.Sale) (string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to roll back sale creation", slog.String("error", rbErr.Error()))
		}
	}()

	var seq int64
	if err := tx.QueryRow(ctx,
		`UPDATE rv_sequence SET last_value = last_value + 1 WHERE id = 1 RETURNING last_value`,
	).Scan(&seq); err != nil {
		return "", wrapReadErr(err, "rv sequence")
	}
	sale.RVNumber = domain.FormatRVNumber(seq)

	m := mapping.ToModelSale(sale)
	_, err = tx.Exec(ctx, `
		INSERT INTO sales (`+saleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`,
		m.ID, m.DocumentNumber, m.RVNumber, m.AirlineCode, m.SupplierName, m.SellPrice, m.BuyingPrice,
		m.Mode, m.Remarks, m.PassengerName, m.Sector, m.SaleDate, m.PostStatus, m.PaymentStatus,
		m.IsRefunded, m.RefundDate, m.RefundCharge, m.ServiceCharge, m.RefundFromAirline, m.RefundAmount,
		m.OfficeID, m.CreatedBy, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return "", wrapWriteErr(err, "sale")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return "", err
	}
	return sale.RVNumber, nil
}

// UpdateSale writes business, status and refund fields. RV number and provenance are immutable.
func (r *PgxSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE sales SET
			document_number = $1, airline_code = $2, supplier_name = $3, sell_price = $4, buying_price = $5,
			mode = $6, remarks = $7, passenger_name = $8, sector = $9, sale_date = $10,
			post_status = $11, payment_status = $12,
			is_refunded = $13, refund_date = $14, refund_charge = $15, service_charge = $16,
			refund_from_airline = $17, refund_amount = $18, updated_at = $19
		WHERE id = $20`,
		m.DocumentNumber, m.AirlineCode, m.SupplierName, m.SellPrice, m.BuyingPrice,
		m.Mode, m.Remarks, m.PassengerName, m.Sector, m.SaleDate,
		m.PostStatus, m.PaymentStatus,
		m.IsRefunded, m.RefundDate, m.RefundCharge, m.ServiceCharge,
		m.RefundFromAirline, m.RefundAmount, m.UpdatedAt,
		m.ID)
	if err != nil {
		return wrapWriteErr(err, "sale")
	}
	return expectOne(tag, "sale")
}

func (r *PgxSaleRepository) DeleteSale(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr(err, "sale")
	}
	return expectOne(tag, "sale")
}
