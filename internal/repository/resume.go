package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sanketsmane/portfolio-api/internal/model"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	// InsertActive deactivates every existing record and inserts the given
	// record as the active one, in a single transaction.
	InsertActive(resume *model.Resume) error
	ByID(id string) (*model.Resume, error)
	Active() (*model.Resume, error)
	// Activate deactivates every record and marks the given id active, in a
	// single transaction.
	Activate(id string) error
	IncrementDownloadCount(id string) error
	Delete(id string) error
	List(limit, offset int) ([]*model.Resume, error)
	Count() (int, error)
}

type resumeRepository struct {
	db *sqlx.DB
}

func NewResumeRepository(db *sqlx.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) InsertActive(resume *model.Resume) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`UPDATE resumes SET is_active = FALSE, updated_at = $1 WHERE is_active = TRUE`, time.Now())
	if err != nil {
		return err
	}

	query := `INSERT INTO resumes (id, filename, original_name, mime_type, size, storage_path, is_active, download_count, version, description, tags, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = tx.Exec(query,
		resume.ID,
		resume.Filename,
		resume.OriginalName,
		resume.MimeType,
		resume.Size,
		resume.StoragePath,
		resume.IsActive,
		resume.DownloadCount,
		resume.Version,
		resume.Description,
		resume.Tags,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *resumeRepository) ByID(id string) (*model.Resume, error) {
	resume := &model.Resume{}
	query := `SELECT * FROM resumes WHERE id = $1`

	err := r.db.Get(resume, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrResumeNotFound
	}

	return resume, err
}

func (r *resumeRepository) Active() (*model.Resume, error) {
	resume := &model.Resume{}
	query := `SELECT * FROM resumes WHERE is_active = TRUE ORDER BY created_at DESC LIMIT 1`

	err := r.db.Get(resume, query)
	if err == sql.ErrNoRows {
		return nil, ErrResumeNotFound
	}

	return resume, err
}

func (r *resumeRepository) Activate(id string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()

	_, err = tx.Exec(`UPDATE resumes SET is_active = FALSE, updated_at = $1 WHERE is_active = TRUE`, now)
	if err != nil {
		return err
	}

	result, err := tx.Exec(`UPDATE resumes SET is_active = TRUE, updated_at = $1 WHERE id = $2`, now, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrResumeNotFound
	}

	return tx.Commit()
}

func (r *resumeRepository) IncrementDownloadCount(id string) error {
	result, err := r.db.Exec(`UPDATE resumes SET download_count = download_count + 1, updated_at = $1 WHERE id = $2`, time.Now(), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrResumeNotFound
	}

	return nil
}

func (r *resumeRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrResumeNotFound
	}

	return nil
}

func (r *resumeRepository) List(limit, offset int) ([]*model.Resume, error) {
	var resumes []*model.Resume
	query := `SELECT * FROM resumes ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	err := r.db.Select(&resumes, query, limit, offset)
	if err != nil {
		return nil, err
	}

	return resumes, nil
}

func (r *resumeRepository) Count() (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM resumes`)
	return count, err
}
