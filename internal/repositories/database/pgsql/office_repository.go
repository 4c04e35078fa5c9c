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

const officeColumns = `id, office_name, office_id, office_address, status, created_at, created_by`

type PgxOfficeRepository struct {
	BaseRepository
}

func newPgxOfficeRepository(pool *pgxpool.Pool) *PgxOfficeRepository {
	return &PgxOfficeRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.OfficeRepositoryFacade = (*PgxOfficeRepository)(nil)

func (r *PgxOfficeRepository) FindOfficeByID(ctx context.Context, id string) (*domain.Office, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+officeColumns+` FROM offices WHERE id = $1`, id)
	if err != nil {
		return nil, wrapReadErr(err, "office")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Office])
	if err != nil {
		return nil, wrapReadErr(err, "office")
	}
	o := mapping.ToDomainOffice(m)
	return &o, nil
}

func (r *PgxOfficeRepository) ListOffices(ctx context.Context) ([]domain.Office, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+officeColumns+` FROM offices ORDER BY office_name`)
	if err != nil {
		return nil, wrapReadErr(err, "offices")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Office])
	if err != nil {
		return nil, wrapReadErr(err, "offices")
	}
	return mapping.ToDomainOfficeSlice(ms), nil
}

func (r *PgxOfficeRepository) SaveOffice(ctx context.Context, office domain.Office) error {
	m := mapping.ToModelOffice(office)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO offices (id, office_name, office_id, office_address, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.OfficeName, m.OfficeID, m.OfficeAddress, m.Status, m.CreatedAt, m.CreatedBy)
	if err != nil {
		return wrapWriteErr(err, "office")
	}
	return nil
}

func (r *PgxOfficeRepository) UpdateOfficeStatus(ctx context.Context, id string, status domain.Status) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE offices SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return wrapWriteErr(err, "office")
	}
	return expectOne(tag, "office")
}

func (r *PgxOfficeRepository) DeleteOffice(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM offices WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr(err, "office")
	}
	return expectOne(tag, "office")
}
