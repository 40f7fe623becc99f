package readstore

import (
	"context"
	"fmt"
	"time"

	"vetclinic-booking-api/internal/infra"
	"vetclinic-booking-api/internal/infra/pgconv"
	"vetclinic-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AppointmentReadStore struct {
	pool *pgxpool.Pool
}

func NewAppointmentReadStore(pool *pgxpool.Pool) *AppointmentReadStore {
	return &AppointmentReadStore{pool: pool}
}

const appointmentViewColumns = `
	a.id, a.date, a.reason, a.status, a.pet_id, a.user_id,
	a.created_at, a.updated_at, p.name AS pet_name, p.species AS pet_species`

func (r *AppointmentReadStore) FindByID(ctx context.Context, id, userID uuid.UUID) (*queries.AppointmentView, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM appointments a
		JOIN pets p ON p.id = a.pet_id
		WHERE a.id = $1 AND a.user_id = $2`, appointmentViewColumns)

	row := r.pool.QueryRow(ctx, query, id, userID)
	view, err := scanAppointmentView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return view, nil
}

func (r *AppointmentReadStore) FindByUser(ctx context.Context, userID uuid.UUID, filter queries.StoreFilter, limit, offset int32) ([]*queries.AppointmentView, error) {
	where, args := buildAppointmentWhere(userID, filter)
	query := fmt.Sprintf(`
		SELECT %s
		FROM appointments a
		JOIN pets p ON p.id = a.pet_id
		%s
		ORDER BY a.date ASC
		LIMIT $%d OFFSET $%d`, appointmentViewColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	views := make([]*queries.AppointmentView, 0)
	for rows.Next() {
		view, scanErr := scanAppointmentView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", err)
	}
	return views, nil
}

func (r *AppointmentReadStore) CountByUser(ctx context.Context, userID uuid.UUID, filter queries.StoreFilter) (int64, error) {
	where, args := buildAppointmentWhere(userID, filter)
	query := fmt.Sprintf(`SELECT count(*) FROM appointments a %s`, where)

	var total int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count appointments", err)
	}
	return total, nil
}

func (r *AppointmentReadStore) ActiveExistsAt(ctx context.Context, at time.Time, excludeID *uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE date = $1 AND status IN ('PENDING', 'CONFIRMED')`
	args := []any{at}
	if excludeID != nil {
		query += ` AND id <> $2`
		args = append(args, *excludeID)
	}
	query += `)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check slot occupancy", err)
	}
	return exists, nil
}

// buildAppointmentWhere assembles the user-scoped WHERE clause; the user_id
// predicate is always present so a caller can never see another user's rows.
func buildAppointmentWhere(userID uuid.UUID, filter queries.StoreFilter) (string, []any) {
	where := `WHERE a.user_id = $1`
	args := []any{userID}

	if filter.From != nil && filter.To != nil {
		where += fmt.Sprintf(` AND a.date >= $%d AND a.date <= $%d`, len(args)+1, len(args)+2)
		args = append(args, *filter.From, *filter.To)
	}
	if filter.PetID != nil {
		where += fmt.Sprintf(` AND a.pet_id = $%d`, len(args)+1)
		args = append(args, *filter.PetID)
	}
	if filter.Status != nil {
		where += fmt.Sprintf(` AND a.status = $%d`, len(args)+1)
		args = append(args, *filter.Status)
	}
	return where, args
}

func scanAppointmentView(row pgx.Row) (*queries.AppointmentView, error) {
	var v queries.AppointmentView
	err := row.Scan(
		&v.ID, &v.Date, &v.Reason, &v.Status, &v.PetID, &v.UserID,
		&v.CreatedAt, &v.UpdatedAt, &v.Pet.Name, &v.Pet.Species,
	)
	if err != nil {
		return nil, err
	}
	v.Pet.ID = v.PetID
	return &v, nil
}
