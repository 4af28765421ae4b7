package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// ComplaintImageRepository manages image URL child records. The files
// themselves live elsewhere; only references are stored.
type ComplaintImageRepository interface {
	Create(ctx context.Context, image *domain.ComplaintImage) error
	ListByComplaint(ctx context.Context, complaintID int64) ([]domain.ComplaintImage, error)
}

type complaintImageRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintImageRepository builds the repository.
func NewComplaintImageRepository(pool *pgxpool.Pool) ComplaintImageRepository {
	return &complaintImageRepository{pool: pool}
}

func (r *complaintImageRepository) Create(ctx context.Context, image *domain.ComplaintImage) error {
	const query = `
        INSERT INTO complaint_images (complaint_id, image_url)
        VALUES ($1,$2)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		image.ComplaintID,
		image.ImageURL,
	).Scan(&image.ID, &image.CreatedAt)
}

func (r *complaintImageRepository) ListByComplaint(ctx context.Context, complaintID int64) ([]domain.ComplaintImage, error) {
	const query = `
        SELECT id, complaint_id, image_url, created_at
        FROM complaint_images WHERE complaint_id=$1 ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, query, complaintID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ComplaintImage
	for rows.Next() {
		var image domain.ComplaintImage
		if err := rows.Scan(&image.ID, &image.ComplaintID, &image.ImageURL, &image.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, image)
	}
	return result, rows.Err()
}
