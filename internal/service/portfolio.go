package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sanketsmane/portfolio-api/internal/model"
	"github.com/sanketsmane/portfolio-api/internal/repository"
)

var ErrSectionsRequired = errors.New("all portfolio sections are required")

// PortfolioSections is the payload of a portfolio write. All four sections
// are required; nil marks a missing section.
type PortfolioSections struct {
	PersonalInfo *model.PersonalInfo   `json:"personalInfo"`
	Experience   *model.ExperienceList `json:"experience"`
	Skills       *model.SkillList      `json:"skills"`
	Projects     *model.ProjectList    `json:"projects"`
}

// PortfolioService owns the single-active-record semantics for portfolio
// content. The is_active flag is the canonical "current record" rule for both
// public and admin reads.
type PortfolioService struct {
	portfolioRepository repository.PortfolioRepository
}

func NewPortfolioService(portfolioRepository repository.PortfolioRepository) *PortfolioService {
	return &PortfolioService{portfolioRepository: portfolioRepository}
}

// Public returns the portfolio record served to unauthenticated readers.
func (s *PortfolioService) Public() (*model.PortfolioData, error) {
	return s.portfolioRepository.Active()
}

// Active returns the record admin reads operate on.
func (s *PortfolioService) Active() (*model.PortfolioData, error) {
	return s.portfolioRepository.Active()
}

// Upsert overwrites the active record's sections, or creates a new active
// record when none exists. All four sections must be present.
func (s *PortfolioService) Upsert(sections PortfolioSections) (*model.PortfolioData, error) {
	if sections.PersonalInfo == nil || sections.Experience == nil || sections.Skills == nil || sections.Projects == nil {
		return nil, ErrSectionsRequired
	}

	now := time.Now()

	data, err := s.portfolioRepository.Active()
	if err != nil {
		if !errors.Is(err, repository.ErrPortfolioNotFound) {
			return nil, fmt.Errorf("failed to get portfolio data: %w", err)
		}

		data = &model.PortfolioData{
			ID:           uuid.New().String(),
			PersonalInfo: *sections.PersonalInfo,
			Experience:   *sections.Experience,
			Skills:       *sections.Skills,
			Projects:     *sections.Projects,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		err = s.portfolioRepository.Create(data)
		if err != nil {
			return nil, fmt.Errorf("failed to create portfolio data: %w", err)
		}
		return data, nil
	}

	data.PersonalInfo = *sections.PersonalInfo
	data.Experience = *sections.Experience
	data.Skills = *sections.Skills
	data.Projects = *sections.Projects
	data.UpdatedAt = now

	err = s.portfolioRepository.Update(data)
	if err != nil {
		return nil, fmt.Errorf("failed to update portfolio data: %w", err)
	}

	return data, nil
}

// Reset clears every portfolio record and installs the given one as the
// active record. Used by the seed routine only.
func (s *PortfolioService) Reset(data *model.PortfolioData) error {
	err := s.portfolioRepository.DeleteAll()
	if err != nil {
		return fmt.Errorf("failed to clear portfolio data: %w", err)
	}

	if data.ID == "" {
		data.ID = uuid.New().String()
	}
	now := time.Now()
	if data.CreatedAt.IsZero() {
		data.CreatedAt = now
	}
	data.UpdatedAt = now
	data.IsActive = true

	return s.portfolioRepository.Create(data)
}
