package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sanketsmane/portfolio-api/internal/model"
)

var (
	ErrAdminNotFound  = errors.New("admin not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

type AdminRepository interface {
	Create(admin *model.Admin) error
	ByID(id string) (*model.Admin, error)
	ByEmail(email string) (*model.Admin, error)
	UpdateLastLogin(id string, at time.Time) error
	DeleteAll() error
}

type adminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(admin *model.Admin) error {
	query := `INSERT INTO admins (id, email, password_hash, is_active, last_login, created_at) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query, admin.ID, admin.Email, admin.PasswordHash, admin.IsActive, admin.LastLogin, admin.CreatedAt)
	if err != nil {
		// Unique constraint violation (works for both SQLite and PostgreSQL)
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (r *adminRepository) ByID(id string) (*model.Admin, error) {
	admin := &model.Admin{}
	query := `SELECT * FROM admins WHERE id = $1`

	err := r.db.Get(admin, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrAdminNotFound
	}

	return admin, err
}

func (r *adminRepository) ByEmail(email string) (*model.Admin, error) {
	admin := &model.Admin{}
	query := `SELECT * FROM admins WHERE email = $1`

	err := r.db.Get(admin, query, email)
	if err == sql.ErrNoRows {
		return nil, ErrAdminNotFound
	}

	return admin, err
}

func (r *adminRepository) UpdateLastLogin(id string, at time.Time) error {
	_, err := r.db.Exec(`UPDATE admins SET last_login = $1 WHERE id = $2`, at, id)
	return err
}

func (r *adminRepository) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM admins`)
	return err
}
