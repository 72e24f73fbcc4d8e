package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sanketsmane/portfolio-api/internal/model"
)

var ErrPortfolioNotFound = errors.New("portfolio data not found")

type PortfolioRepository interface {
	Create(data *model.PortfolioData) error
	Active() (*model.PortfolioData, error)
	Update(data *model.PortfolioData) error
	DeleteAll() error
}

type portfolioRepository struct {
	db *sqlx.DB
}

func NewPortfolioRepository(db *sqlx.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) Create(data *model.PortfolioData) error {
	query := `INSERT INTO portfolio_data (id, personal_info, experience, skills, projects, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		data.ID,
		data.PersonalInfo,
		data.Experience,
		data.Skills,
		data.Projects,
		data.IsActive,
		data.CreatedAt,
		data.UpdatedAt,
	)
	return err
}

func (r *portfolioRepository) Active() (*model.PortfolioData, error) {
	data := &model.PortfolioData{}
	query := `SELECT * FROM portfolio_data WHERE is_active = TRUE ORDER BY created_at DESC LIMIT 1`

	err := r.db.Get(data, query)
	if err == sql.ErrNoRows {
		return nil, ErrPortfolioNotFound
	}

	return data, err
}

func (r *portfolioRepository) Update(data *model.PortfolioData) error {
	query := `UPDATE portfolio_data SET personal_info = $1, experience = $2, skills = $3, projects = $4, updated_at = $5 WHERE id = $6`

	result, err := r.db.Exec(query,
		data.PersonalInfo,
		data.Experience,
		data.Skills,
		data.Projects,
		data.UpdatedAt,
		data.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPortfolioNotFound
	}

	return nil
}

func (r *portfolioRepository) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM portfolio_data`)
	return err
}
