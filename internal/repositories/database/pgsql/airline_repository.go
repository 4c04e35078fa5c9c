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

const airlineColumns = `id, code, name, status, created_at, updated_at`

type PgxAirlineRepository struct {
	BaseRepository
}

func newPgxAirlineRepository(pool *pgxpool.Pool) *PgxAirlineRepository {
	return &PgxAirlineRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AirlineRepositoryFacade = (*PgxAirlineRepository)(nil)

func (r *PgxAirlineRepository) FindAirlineByID(ctx context.Context, id string) (*domain.Airline, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+airlineColumns+` FROM airlines WHERE id = $1`, id)
	if err != nil {
		return nil, wrapReadErr(err, "airline")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Airline])
	if err != nil {
		return nil, wrapReadErr(err, "airline")
	}
	a := mapping.ToDomainAirline(m)
	return &a, nil
}

func (r *PgxAirlineRepository) ListAirlines(ctx context.Context) ([]domain.Airline, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+airlineColumns+` FROM airlines ORDER BY code`)
	if err != nil {
		return nil, wrapReadErr(err, "airlines")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Airline])
	if err != nil {
		return nil, wrapReadErr(err, "airlines")
	}
	return mapping.ToDomainAirlineSlice(ms), nil
}

func (r *PgxAirlineRepository) SaveAirline(ctx context.Context, airline domain.Airline) error {
	m := mapping.ToModelAirline(airline)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO airlines (id, code, name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.Code, m.Name, m.Status, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return wrapWriteErr(err, "airline")
	}
	return nil
}

func (r *PgxAirlineRepository) UpdateAirline(ctx context.Context, airline domain.Airline) error {
	m := mapping.ToModelAirline(airline)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE airlines SET code = $1, name = $2, status = $3, updated_at = $4
		WHERE id = $5`,
		m.Code, m.Name, m.Status, m.UpdatedAt, m.ID)
	if err != nil {
		return wrapWriteErr(err, "airline")
	}
	return expectOne(tag, "airline")
}

func (r *PgxAirlineRepository) DeleteAirline(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM airlines WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr(err, "airline")
	}
	return expectOne(tag, "airline")
}
