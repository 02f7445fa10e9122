package portfolio

import "errors"

var (
	ErrUnknownSection = errors.New("unknown portfolio section")
	ErrNotSeeded      = errors.New("portfolio not seeded")
)

// Sections lists the section names in display order.
var Sections = []string{"about", "education", "skills", "experience", "projects", "certifications", "contact", "resume"}

// Portfolio is the single document describing the portfolio owner.
type Portfolio struct {
	ID             string         `bson:"_id,omitempty" json:"-" yaml:"-"`
	About          About          `bson:"about" json:"about" yaml:"about"`
	Education      Education      `bson:"education" json:"education" yaml:"education"`
	Skills         Skills         `bson:"skills" json:"skills" yaml:"skills"`
	Experience     Experience     `bson:"experience" json:"experience" yaml:"experience"`
	Projects       Projects       `bson:"projects" json:"projects" yaml:"projects"`
	Certifications Certifications `bson:"certifications" json:"certifications" yaml:"certifications"`
	Contact        Contact        `bson:"contact" json:"contact" yaml:"contact"`
	Resume         Resume         `bson:"resume" json:"resume" yaml:"resume"`
}

type About struct {
	Name        string      `bson:"name" json:"name" yaml:"name"`
	Title       string      `bson:"title" json:"title" yaml:"title"`
	Bio         []string    `bson:"bio" json:"bio" yaml:"bio"`
	PersonalBio []string    `bson:"personal_bio" json:"personalBio" yaml:"personal_bio"`
	QuickFacts  []QuickFact `bson:"quick_facts" json:"quickFacts" yaml:"quick_facts"`
}

type QuickFact struct {
	Label string `bson:"label" json:"label" yaml:"label"`
	Value string `bson:"value" json:"value" yaml:"value"`
}

type Education struct {
	Education []School `bson:"education" json:"education" yaml:"education"`
}

type School struct {
	Institution string `bson:"institution" json:"institution" yaml:"institution"`
	Degree      string `bson:"degree" json:"degree" yaml:"degree"`
	GPA         string `bson:"gpa" json:"gpa" yaml:"gpa"`
	Date        string `bson:"date" json:"date" yaml:"date"`
}

type Skills struct {
	Categories []SkillCategory `bson:"categories" json:"categories" yaml:"categories"`
}

type SkillCategory struct {
	Name   string  `bson:"name" json:"name" yaml:"name"`
	Skills []Skill `bson:"skills" json:"skills" yaml:"skills"`
}

type Skill struct {
	Name       string `bson:"name" json:"name" yaml:"name"`
	Percentage int    `bson:"percentage" json:"percentage" yaml:"percentage"`
}

// Stars maps a percentage onto a 1-3 rating.
func (s Skill) Stars() int {
	switch {
	case s.Percentage >= 85:
		return 3
	case s.Percentage >= 75:
		return 2
	default:
		return 1
	}
}

type Experience struct {
	Jobs []Job `bson:"jobs" json:"jobs" yaml:"jobs"`
}

type Job struct {
	Title            string   `bson:"title" json:"title" yaml:"title"`
	Company          string   `bson:"company" json:"company" yaml:"company"`
	Location         string   `bson:"location" json:"location" yaml:"location"`
	Period           string   `bson:"period" json:"period" yaml:"period"`
	Responsibilities []string `bson:"responsibilities" json:"responsibilities" yaml:"responsibilities"`
}

type Projects struct {
	Projects []Project `bson:"projects" json:"projects" yaml:"projects"`
}

type Project struct {
	Title        string `bson:"title" json:"title" yaml:"title"`
	Diagram      string `bson:"diagram" json:"diagram" yaml:"diagram"`
	Description  string `bson:"description" json:"description" yaml:"description"`
	Technologies string `bson:"technologies" json:"technologies" yaml:"technologies"`
}

type Certifications struct {
	Certifications []Certification `bson:"certifications" json:"certifications" yaml:"certifications"`
	Competitions   []string        `bson:"competitions" json:"competitions" yaml:"competitions"`
	Initiatives    []string        `bson:"initiatives" json:"initiatives" yaml:"initiatives"`
}

type Certification struct {
	Name   string `bson:"name" json:"name" yaml:"name"`
	Issuer string `bson:"issuer" json:"issuer" yaml:"issuer"`
}

type Contact struct {
	Email    string `bson:"email" json:"email" yaml:"email"`
	Phone    string `bson:"phone" json:"phone" yaml:"phone"`
	Address  string `bson:"address" json:"address" yaml:"address"`
	LinkedIn string `bson:"linkedin" json:"linkedin" yaml:"linkedin"`
	GitHub   string `bson:"github" json:"github" yaml:"github"`
}

type Resume struct {
	URL      string `bson:"url" json:"url" yaml:"url"`
	FileName string `bson:"file_name" json:"fileName" yaml:"file_name"`
}

// Section returns the named part of p.
func (p *Portfolio) Section(name string) (any, error) {
	switch name {
	case "about":
		return p.About, nil
	case "education":
		return p.Education, nil
	case "skills":
		return p.Skills, nil
	case "experience":
		return p.Experience, nil
	case "projects":
		return p.Projects, nil
	case "certifications":
		return p.Certifications, nil
	case "contact":
		return p.Contact, nil
	case "resume":
		return p.Resume, nil
	}
	return nil, ErrUnknownSection
}
