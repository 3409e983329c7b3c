package repository

import (
	"context"

	"github.com/spec-kit/employee-board/internal/domain"
	"github.com/spec-kit/employee-board/internal/persistence"
)

// UploadRepository records upload attempts for auditing.
type UploadRepository interface {
	Create(ctx context.Context, rec *domain.UploadRecord) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.UploadRecord, error)
}

type uploadRepository struct {
	db persistence.Queryer
}

// NewUploadRepository builds the repository.
func NewUploadRepository(db persistence.Queryer) UploadRepository {
	return &uploadRepository{db: db}
}

func (r *uploadRepository) Create(ctx context.Context, rec *domain.UploadRecord) error {
	const query = `
        INSERT INTO dataset_uploads (id, session_id, file_name, format, size_bytes, row_count, fingerprint, outcome, error_detail)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING created_at`
	return r.db.QueryRow(ctx, query,
		rec.ID,
		rec.SessionID,
		rec.FileName,
		rec.Format,
		rec.SizeBytes,
		rec.RowCount,
		rec.Fingerprint,
		rec.Outcome,
		rec.ErrorDetail,
	).Scan(&rec.CreatedAt)
}

func (r *uploadRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.UploadRecord, error) {
	const query = `
        SELECT id, session_id, file_name, format, size_bytes, row_count, fingerprint, outcome, error_detail, created_at
        FROM dataset_uploads WHERE session_id=$1
        ORDER BY created_at DESC
        LIMIT $2`
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(ctx, query, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.UploadRecord, 0)
	for rows.Next() {
		var rec domain.UploadRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.SessionID,
			&rec.FileName,
			&rec.Format,
			&rec.SizeBytes,
			&rec.RowCount,
			&rec.Fingerprint,
			&rec.Outcome,
			&rec.ErrorDetail,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}
