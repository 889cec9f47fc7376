package models

import "time"

// PersonalInfo is the resume header block.
type PersonalInfo struct {
	FullName string `bson:"fullName" json:"fullName"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	Website  string `bson:"website,omitempty" json:"website,omitempty"`
	LinkedIn string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub   string `bson:"github,omitempty" json:"github,omitempty"`
	Summary  string `bson:"summary,omitempty" json:"summary,omitempty"`
}

type Experience struct {
	Company      string   `bson:"company" json:"company"`
	Position     string   `bson:"position" json:"position"`
	StartDate    string   `bson:"startDate" json:"startDate"`
	EndDate      string   `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Current      bool     `bson:"current" json:"current"`
	Description  string   `bson:"description,omitempty" json:"description,omitempty"`
	Achievements []string `bson:"achievements" json:"achievements"`
}

type Education struct {
	Institution string `bson:"institution" json:"institution"`
	Degree      string `bson:"degree" json:"degree"`
	Field       string `bson:"field" json:"field"`
	StartDate   string `bson:"startDate" json:"startDate"`
	EndDate     string `bson:"endDate,omitempty" json:"endDate,omitempty"`
	GPA         string `bson:"gpa,omitempty" json:"gpa,omitempty"`
}

// SkillGroup is a named category with its skills, e.g. "Backend: Go, Python".
type SkillGroup struct {
	Category string   `bson:"category" json:"category"`
	Skills   []string `bson:"skills" json:"skills"`
}

type Certification struct {
	Name   string `bson:"name" json:"name"`
	Issuer string `bson:"issuer" json:"issuer"`
	Date   string `bson:"date" json:"date"`
	URL    string `bson:"url,omitempty" json:"url,omitempty"`
}

type Language struct {
	Language    string `bson:"language" json:"language"`
	Proficiency string `bson:"proficiency" json:"proficiency"`
}

// Resume is the compound CV document. Entry order within each list is the
// order the administrator entered; renderers must not re-sort.
type Resume struct {
	ID             string          `bson:"_id,omitempty" json:"id"`
	PersonalInfo   PersonalInfo    `bson:"personalInfo" json:"personalInfo"`
	Experience     []Experience    `bson:"experience" json:"experience"`
	Education      []Education     `bson:"education" json:"education"`
	Skills         []SkillGroup    `bson:"skills" json:"skills"`
	Certifications []Certification `bson:"certifications" json:"certifications"`
	Languages      []Language      `bson:"languages" json:"languages"`
	IsActive       bool            `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time       `bson:"updatedAt" json:"updatedAt"`
}
