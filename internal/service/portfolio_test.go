package service

import (
	"testing"

	"github.com/sanketsmane/portfolio-api/internal/model"
	"github.com/sanketsmane/portfolio-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPortfolioService(t *testing.T) *PortfolioService {
	t.Helper()
	return NewPortfolioService(repository.NewPortfolioRepository(newTestDB(t)))
}

func testSections() PortfolioSections {
	return PortfolioSections{
		PersonalInfo: &model.PersonalInfo{
			Name:  "Sanket Mane",
			Email: "contactsanket1@gmail.com",
			Title: "Full Stack Developer",
			Education: model.Education{
				Degree:     "BTech. Computer Science & Engineering",
				University: "Shivaji University",
			},
		},
		Experience: &model.ExperienceList{
			{ID: 1, Company: "Formonex Solutions Pvt Ltd", Position: "Software Developer Trainee", Technologies: []string{"React", "Node.js"}},
		},
		Skills: &model.SkillList{
			{Name: "React", Level: 90, Category: "Frontend"},
		},
		Projects: &model.ProjectList{
			{ID: 1, Title: "E-Commerce Platform", Technologies: []string{"React"}, GitHub: "https://github.com/SanketsMane/ecommerce-platform"},
		},
	}
}

func TestPortfolioPublicEmpty(t *testing.T) {
	svc := newTestPortfolioService(t)

	_, err := svc.Public()
	assert.ErrorIs(t, err, repository.ErrPortfolioNotFound)
}

func TestPortfolioUpsertCreates(t *testing.T) {
	svc := newTestPortfolioService(t)

	created, err := svc.Upsert(testSections())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)

	got, err := svc.Public()
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Sanket Mane", got.PersonalInfo.Name)
	assert.Equal(t, "Shivaji University", got.PersonalInfo.Education.University)
	require.Len(t, got.Experience, 1)
	assert.Equal(t, []string{"React", "Node.js"}, got.Experience[0].Technologies)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, "E-Commerce Platform", got.Projects[0].Title)
}

func TestPortfolioUpsertOverwritesActive(t *testing.T) {
	svc := newTestPortfolioService(t)

	created, err := svc.Upsert(testSections())
	require.NoError(t, err)

	updated := testSections()
	updated.PersonalInfo.Name = "Updated Name"

	after, err := svc.Upsert(updated)
	require.NoError(t, err)
	assert.Equal(t, created.ID, after.ID)

	got, err := svc.Active()
	require.NoError(t, err)
	assert.Equal(t, "Updated Name", got.PersonalInfo.Name)
}

func TestPortfolioUpsertRequiresAllSections(t *testing.T) {
	svc := newTestPortfolioService(t)

	sections := testSections()
	sections.Skills = nil

	_, err := svc.Upsert(sections)
	assert.ErrorIs(t, err, ErrSectionsRequired)
}

func TestPortfolioResetReplacesEverything(t *testing.T) {
	svc := newTestPortfolioService(t)

	_, err := svc.Upsert(testSections())
	require.NoError(t, err)

	err = svc.Reset(&model.PortfolioData{
		PersonalInfo: model.PersonalInfo{Name: "Fresh Start"},
		Experience:   model.ExperienceList{},
		Skills:       model.SkillList{},
		Projects:     model.ProjectList{},
	})
	require.NoError(t, err)

	got, err := svc.Active()
	require.NoError(t, err)
	assert.Equal(t, "Fresh Start", got.PersonalInfo.Name)
	assert.Empty(t, got.Projects)
}
