package repository

import (
	"context"
	"time"

	"salon-booking/internal/infra"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  shared.JobStatusQueued,
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDue locks up to limit queued jobs due at now. Rows locked by another
// dispatcher are skipped.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int) ([]shared.NotificationJob, error) {
	batch, err := pgconv.IntToInt32(limit)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid batch size", err, infra.KindDBFailure)
	}

	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: batch,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Payload:   row.Payload,
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
			Attempts:  int(row.Attempts),
			Status:    row.Status,
			LastError: pgconv.StringFromPgtype(row.LastError),
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) UpdateJob(ctx context.Context, tx sqlc.DBTX, update shared.NotificationJobUpdate) error {
	attempts, err := pgconv.IntToInt32(update.Attempts)
	if err != nil {
		return infra.WrapRepoErr("invalid attempt count", err, infra.KindDBFailure)
	}

	params := sqlc.UpdateNotificationJobStatusParams{
		ID:       update.ID,
		Status:   update.Status,
		Attempts: attempts,
		RunAt:    pgconv.TimeToPgtype(update.RunAt),
	}
	if update.LastError != nil {
		params.LastError = pgtype.Text{String: *update.LastError, Valid: true}
	} else {
		params.LastError = pgtype.Text{Valid: false}
	}

	n, err := r.queries.UpdateNotificationJobStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("notification job not found", nil, infra.KindNotFound)
	}

	return nil
}
