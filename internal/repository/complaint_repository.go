package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// ComplaintFilter captures scoped query parameters. The visibility
// scoper produces these; repositories never apply role logic themselves.
type ComplaintFilter struct {
	UserID       *int64
	DepartmentID *int64
	Statuses     []domain.ComplaintStatus
	NotStatuses  []domain.ComplaintStatus
	Priority     *domain.ComplaintPriority
	Limit        int
	Offset       int
}

// ComplaintRepository encapsulates complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id int64) (*domain.Complaint, error)
	GetByReferenceKey(ctx context.Context, key string) (*domain.Complaint, error)
	ListWithFilter(ctx context.Context, filter ComplaintFilter) ([]domain.Complaint, error)
	CountWithFilter(ctx context.Context, filter ComplaintFilter) (int64, error)
	// TransitionStatus applies a compare-and-swap status update and the
	// matching status log row in one transaction. It reports false when
	// the complaint's status no longer equals expected, leaving the row
	// untouched. resolvedAt is only coalesced in, so a value set by an
	// earlier transition is never overwritten.
	TransitionStatus(ctx context.Context, complaintID int64, expected, next domain.ComplaintStatus, resolvedAt *time.Time, log *domain.StatusLog) (bool, error)
	UpdatePriority(ctx context.Context, complaintID int64, priority domain.ComplaintPriority) error
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

const complaintColumns = `id, reference_key, user_id, category_id, zone_id, department_id,
               title, description, location_lat, location_lng, address, status, priority,
               sla_deadline, resolved_at, created_at, updated_at`

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (reference_key, user_id, category_id, zone_id, department_id,
            title, description, location_lat, location_lng, address, status, priority, sla_deadline)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		complaint.ReferenceKey,
		complaint.UserID,
		complaint.CategoryID,
		complaint.ZoneID,
		complaint.DepartmentID,
		complaint.Title,
		complaint.Description,
		complaint.LocationLat,
		complaint.LocationLng,
		complaint.Address,
		complaint.Status,
		complaint.Priority,
		complaint.SLADeadline,
	).Scan(&complaint.ID, &complaint.CreatedAt, &complaint.UpdatedAt)
}

func (r *complaintRepository) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	query := fmt.Sprintf(`SELECT %s FROM complaints WHERE id=$1`, complaintColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *complaintRepository) GetByReferenceKey(ctx context.Context, key string) (*domain.Complaint, error) {
	query := fmt.Sprintf(`SELECT %s FROM complaints WHERE reference_key=$1`, complaintColumns)
	return r.fetchSingle(ctx, query, key)
}

func (r *complaintRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Complaint, error) {
	var complaint domain.Complaint
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&complaint.ID,
		&complaint.ReferenceKey,
		&complaint.UserID,
		&complaint.CategoryID,
		&complaint.ZoneID,
		&complaint.DepartmentID,
		&complaint.Title,
		&complaint.Description,
		&complaint.LocationLat,
		&complaint.LocationLng,
		&complaint.Address,
		&complaint.Status,
		&complaint.Priority,
		&complaint.SLADeadline,
		&complaint.ResolvedAt,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func buildFilterClauses(filter ComplaintFilter) ([]string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		clauses = append(clauses, fmt.Sprintf("user_id=$%d", len(args)))
	}
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		clauses = append(clauses, fmt.Sprintf("department_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if len(filter.NotStatuses) > 0 {
		placeholders := make([]string, len(filter.NotStatuses))
		for i, status := range filter.NotStatuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status NOT IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.Priority != nil {
		args = append(args, *filter.Priority)
		clauses = append(clauses, fmt.Sprintf("priority=$%d", len(args)))
	}
	return clauses, args
}

func (r *complaintRepository) ListWithFilter(ctx context.Context, filter ComplaintFilter) ([]domain.Complaint, error) {
	clauses, args := buildFilterClauses(filter)

	query := fmt.Sprintf(`SELECT %s FROM complaints WHERE %s ORDER BY created_at DESC`,
		complaintColumns, strings.Join(clauses, " AND "))
	// Caps come from the visibility scoper; an absent limit means the
	// caller's scope is already bounded.
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepository) CountWithFilter(ctx context.Context, filter ComplaintFilter) (int64, error) {
	clauses, args := buildFilterClauses(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM complaints WHERE %s`, strings.Join(clauses, " AND "))

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *complaintRepository) TransitionStatus(ctx context.Context, complaintID int64, expected, next domain.ComplaintStatus, resolvedAt *time.Time, log *domain.StatusLog) (bool, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const update = `
        UPDATE complaints
        SET status=$1, resolved_at=COALESCE(resolved_at, $2), updated_at=NOW()
        WHERE id=$3 AND status=$4`
	cmd, err := tx.Exec(ctx, update, next, resolvedAt, complaintID, expected)
	if err != nil {
		return false, err
	}
	if cmd.RowsAffected() == 0 {
		return false, nil
	}

	const insertLog = `
        INSERT INTO status_logs (complaint_id, changed_by, old_status, new_status, remarks)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	if err := tx.QueryRow(ctx, insertLog,
		log.ComplaintID,
		log.ChangedBy,
		log.OldStatus,
		log.NewStatus,
		log.Remarks,
	).Scan(&log.ID, &log.CreatedAt); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (r *complaintRepository) UpdatePriority(ctx context.Context, complaintID int64, priority domain.ComplaintPriority) error {
	const query = `UPDATE complaints SET priority=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, priority, complaintID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanComplaints(rows pgx.Rows) ([]domain.Complaint, error) {
	var result []domain.Complaint
	for rows.Next() {
		var complaint domain.Complaint
		if err := rows.Scan(
			&complaint.ID,
			&complaint.ReferenceKey,
			&complaint.UserID,
			&complaint.CategoryID,
			&complaint.ZoneID,
			&complaint.DepartmentID,
			&complaint.Title,
			&complaint.Description,
			&complaint.LocationLat,
			&complaint.LocationLng,
			&complaint.Address,
			&complaint.Status,
			&complaint.Priority,
			&complaint.SLADeadline,
			&complaint.ResolvedAt,
			&complaint.CreatedAt,
			&complaint.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, complaint)
	}
	return result, rows.Err()
}
