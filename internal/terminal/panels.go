package terminal

import (
	"fmt"
	"strings"

	"github.com/bthakur/termfolio/internal/portfolio"
)

var panelTitles = map[string]string{
	"about":          "About",
	"education":      "Education",
	"skills":         "Skills",
	"experience":     "Experience",
	"projects":       "Projects",
	"certifications": "Certifications",
	"contact":        "Contact",
	"resume":         "Resume",
}

// Panel renders one portfolio section as plain lines.
func Panel(p *portfolio.Portfolio, section string) Result {
	result := Result{Kind: KindPanel, Title: panelTitles[section], Section: section}
	if p == nil {
		result.Lines = []string{"Portfolio data unavailable."}
		return result
	}

	switch section {
	case "about":
		result.Lines = aboutLines(p.About)
	case "education":
		for _, school := range p.Education.Education {
			result.Lines = append(result.Lines,
				school.Institution,
				fmt.Sprintf("  %s | GPA: %s", school.Degree, school.GPA),
				"  "+school.Date,
				"")
		}
	case "skills":
		for _, category := range p.Skills.Categories {
			result.Lines = append(result.Lines, category.Name)
			for _, skill := range category.Skills {
				result.Lines = append(result.Lines, fmt.Sprintf("  %-20s %s", skill.Name, strings.Repeat("★", skill.Stars())))
			}
			result.Lines = append(result.Lines, "")
		}
	case "experience":
		for _, job := range p.Experience.Jobs {
			result.Lines = append(result.Lines,
				fmt.Sprintf("%s @ %s", job.Title, job.Company),
				fmt.Sprintf("  %s | %s", job.Location, job.Period))
			for _, item := range job.Responsibilities {
				result.Lines = append(result.Lines, "  • "+strings.ReplaceAll(item, "**", ""))
			}
			result.Lines = append(result.Lines, "")
		}
	case "projects":
		for _, project := range p.Projects.Projects {
			result.Lines = append(result.Lines, project.Title)
			for _, line := range strings.Split(strings.TrimRight(project.Diagram, "\n"), "\n") {
				result.Lines = append(result.Lines, "  "+line)
			}
			result.Lines = append(result.Lines,
				"  "+project.Description,
				"  Technologies: "+project.Technologies,
				"")
		}
	case "certifications":
		result.Lines = append(result.Lines, "Certifications")
		for _, cert := range p.Certifications.Certifications {
			result.Lines = append(result.Lines, fmt.Sprintf("  • %s (%s)", cert.Name, cert.Issuer))
		}
		result.Lines = append(result.Lines, "", "Competitions")
		for _, competition := range p.Certifications.Competitions {
			result.Lines = append(result.Lines, "  • "+competition)
		}
		result.Lines = append(result.Lines, "", "Cybersecurity Initiatives")
		for _, initiative := range p.Certifications.Initiatives {
			result.Lines = append(result.Lines, "  • "+initiative)
		}
	case "contact":
		c := p.Contact
		result.Lines = []string{
			"Email:    " + c.Email,
			"Phone:    " + c.Phone,
			"Address:  " + c.Address,
			"LinkedIn: https://www." + c.LinkedIn,
			"GitHub:   https://" + c.GitHub,
		}
	case "resume":
		result.Lines = []string{"Download my resume:", "  " + p.Resume.URL}
	default:
		result.Lines = []string{"Unknown section: " + section}
	}

	result.Lines = trimTrailingBlank(result.Lines)
	return result
}

func aboutLines(about portfolio.About) []string {
	lines := []string{about.Name, about.Title, ""}
	lines = append(lines, about.Bio...)
	lines = append(lines, "", "Personal Bio:")
	for _, paragraph := range about.PersonalBio {
		lines = append(lines, "  "+paragraph)
	}
	lines = append(lines, "", "Quick Facts:")
	for _, fact := range about.QuickFacts {
		lines = append(lines, fmt.Sprintf("  %s: %s", fact.Label, fact.Value))
	}
	return lines
}

func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
