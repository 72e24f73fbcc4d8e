package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// PortfolioData is the single logical "current" portfolio record. The four
// section columns are stored as JSON documents.
type PortfolioData struct {
	ID           string         `db:"id" json:"id"`
	PersonalInfo PersonalInfo   `db:"personal_info" json:"personalInfo"`
	Experience   ExperienceList `db:"experience" json:"experience"`
	Skills       SkillList      `db:"skills" json:"skills"`
	Projects     ProjectList    `db:"projects" json:"projects"`
	IsActive     bool           `db:"is_active" json:"isActive"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updatedAt"`
}

type PersonalInfo struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	LinkedIn  string    `json:"linkedin"`
	GitHub    string    `json:"github"`
	Location  string    `json:"location"`
	Title     string    `json:"title"`
	Bio       string    `json:"bio"`
	Education Education `json:"education"`
}

type Education struct {
	Degree     string `json:"degree"`
	University string `json:"university"`
	Location   string `json:"location"`
	Duration   string `json:"duration"`
	Grade      string `json:"grade"`
}

type Experience struct {
	ID           int      `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GitHub       string   `json:"github"`
	Live         string   `json:"live"`
	Image        string   `json:"image"`
}

type (
	ExperienceList []Experience
	SkillList      []Skill
	ProjectList    []Project
)

// scanJSON unmarshals a TEXT/BLOB column into dest.
func scanJSON(src, dest any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

func (p PersonalInfo) Value() (driver.Value, error) { return json.Marshal(p) }
func (p *PersonalInfo) Scan(src any) error          { return scanJSON(src, p) }

func (l ExperienceList) Value() (driver.Value, error) { return json.Marshal(l) }
func (l *ExperienceList) Scan(src any) error          { return scanJSON(src, l) }

func (l SkillList) Value() (driver.Value, error) { return json.Marshal(l) }
func (l *SkillList) Scan(src any) error          { return scanJSON(src, l) }

func (l ProjectList) Value() (driver.Value, error) { return json.Marshal(l) }
func (l *ProjectList) Scan(src any) error          { return scanJSON(src, l) }
