package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// StatusLogRepository reads the audit trail. Writes happen inside the
// complaint repository's transition transaction, never here.
type StatusLogRepository interface {
	ListByComplaint(ctx context.Context, complaintID int64) ([]domain.StatusLog, error)
}

type statusLogRepository struct {
	pool *pgxpool.Pool
}

// NewStatusLogRepository builds repository.
func NewStatusLogRepository(pool *pgxpool.Pool) StatusLogRepository {
	return &statusLogRepository{pool: pool}
}

func (r *statusLogRepository) ListByComplaint(ctx context.Context, complaintID int64) ([]domain.StatusLog, error) {
	const query = `
        SELECT id, complaint_id, changed_by, old_status, new_status, remarks, created_at
        FROM status_logs WHERE complaint_id=$1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, complaintID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StatusLog
	for rows.Next() {
		var log domain.StatusLog
		if err := rows.Scan(
			&log.ID,
			&log.ComplaintID,
			&log.ChangedBy,
			&log.OldStatus,
			&log.NewStatus,
			&log.Remarks,
			&log.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, log)
	}
	return result, rows.Err()
}
