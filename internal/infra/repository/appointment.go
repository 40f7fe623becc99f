package repository

import (
	"context"
	"time"

	"vetclinic-booking-api/internal/domain/appointment"
	"vetclinic-booking-api/internal/infra"
	"vetclinic-booking-api/internal/infra/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

func (r *AppointmentRepository) Create(ctx context.Context, appt *appointment.Appointment) error {
	const query = `
		INSERT INTO appointments (id, date, reason, status, pet_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		appt.ID(),
		appt.Date(),
		appt.Reason().String(),
		appt.Status().String(),
		appt.PetID(),
		appt.UserID(),
		appt.CreatedAt(),
		appt.UpdatedAt(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("active appointment already occupies slot", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("appointment references missing pet or user", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*appointment.Appointment, error) {
	const query = `
		SELECT id, date, reason, status, pet_id, user_id, created_at, updated_at
		FROM appointments
		WHERE id = $1 AND user_id = $2`

	row := r.pool.QueryRow(ctx, query, id, userID)

	var rec appointmentRow
	err := row.Scan(&rec.ID, &rec.Date, &rec.Reason, &rec.Status, &rec.PetID, &rec.UserID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}

	return appointment.Reconstruct(
		rec.ID,
		rec.Date,
		rec.Reason,
		appointment.Status(rec.Status),
		rec.PetID,
		rec.UserID,
		rec.CreatedAt,
		rec.UpdatedAt,
	), nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appt *appointment.Appointment) error {
	const query = `
		UPDATE appointments
		SET date = $2, reason = $3, status = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		appt.ID(),
		appt.Date(),
		appt.Reason().String(),
		appt.Status().String(),
		appt.UpdatedAt(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("active appointment already occupies slot", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

type appointmentRow struct {
	ID        uuid.UUID
	Date      time.Time
	Reason    string
	Status    string
	PetID     uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
