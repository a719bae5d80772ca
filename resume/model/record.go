package model

import (
	"errors"
	"strings"
)

// ErrNameRequired is returned by Validate when the record has no name.
var ErrNameRequired = errors.New("name is required")

// ResumeRecord is the structured resume consumed by the renderer.
// Every field is optional for rendering; an empty value suppresses its section.
type ResumeRecord struct {
	Name         string        `json:"name" yaml:"name"`
	Address      string        `json:"address" yaml:"address"`
	Contact      string        `json:"contact" yaml:"contact"`
	Objective    string        `json:"objective" yaml:"objective"`
	CoreSkills   string        `json:"core_skills" yaml:"core_skills"`
	Education    []Education   `json:"education" yaml:"education"`
	Experience   []Experience  `json:"experience" yaml:"experience"`
	Projects     []Project     `json:"projects" yaml:"projects"`
	Publications []Publication `json:"publications" yaml:"publications"`
	Awards       []Award       `json:"awards" yaml:"awards"`
	Scholarship  string        `json:"scholarship" yaml:"scholarship"`
	Languages    string        `json:"languages" yaml:"languages"`
	References   []Reference   `json:"references" yaml:"references"`
	// Affiliations is kept for the editing surface and is not rendered.
	Affiliations string `json:"MoU" yaml:"MoU"`
}

type Education struct {
	Degree     string `json:"degree" yaml:"degree"`
	University string `json:"university" yaml:"university"`
	Year       string `json:"year" yaml:"year"`
	Grade      string `json:"grade" yaml:"grade"`
}

type Experience struct {
	Company string   `json:"company" yaml:"company"`
	Role    string   `json:"role" yaml:"role"`
	Dates   string   `json:"dates" yaml:"dates"`
	Bullets []string `json:"bullets" yaml:"bullets"`
}

type Project struct {
	Name    string   `json:"name" yaml:"name"`
	Tech    string   `json:"tech" yaml:"tech"`
	Role    string   `json:"role" yaml:"role"`
	Bullets []string `json:"bullets" yaml:"bullets"`
}

type Publication struct {
	Title   string `json:"title" yaml:"title"`
	Journal string `json:"journal" yaml:"journal"`
	Year    string `json:"year" yaml:"year"`
}

type Award struct {
	Name string `json:"name" yaml:"name"`
	Year string `json:"year" yaml:"year"`
}

type Reference struct {
	Name    string `json:"name" yaml:"name"`
	Title   string `json:"title" yaml:"title"`
	Contact string `json:"contact" yaml:"contact"`
}

// Validate enforces the fields the download flow requires.
func (r ResumeRecord) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// Normalized returns a copy with trimmed strings and non-nil slices.
// Bullets that are blank after trimming are dropped.
func (r ResumeRecord) Normalized() ResumeRecord {
	out := ResumeRecord{
		Name:         strings.TrimSpace(r.Name),
		Address:      strings.TrimSpace(r.Address),
		Contact:      strings.TrimSpace(r.Contact),
		Objective:    strings.TrimSpace(r.Objective),
		CoreSkills:   strings.TrimSpace(r.CoreSkills),
		Scholarship:  strings.TrimSpace(r.Scholarship),
		Languages:    strings.TrimSpace(r.Languages),
		Affiliations: strings.TrimSpace(r.Affiliations),
		Education:    make([]Education, 0, len(r.Education)),
		Experience:   make([]Experience, 0, len(r.Experience)),
		Projects:     make([]Project, 0, len(r.Projects)),
		Publications: make([]Publication, 0, len(r.Publications)),
		Awards:       make([]Award, 0, len(r.Awards)),
		References:   make([]Reference, 0, len(r.References)),
	}
	for _, e := range r.Education {
		out.Education = append(out.Education, Education{
			Degree:     strings.TrimSpace(e.Degree),
			University: strings.TrimSpace(e.University),
			Year:       strings.TrimSpace(e.Year),
			Grade:      strings.TrimSpace(e.Grade),
		})
	}
	for _, e := range r.Experience {
		out.Experience = append(out.Experience, Experience{
			Company: strings.TrimSpace(e.Company),
			Role:    strings.TrimSpace(e.Role),
			Dates:   strings.TrimSpace(e.Dates),
			Bullets: trimBullets(e.Bullets),
		})
	}
	for _, p := range r.Projects {
		out.Projects = append(out.Projects, Project{
			Name:    strings.TrimSpace(p.Name),
			Tech:    strings.TrimSpace(p.Tech),
			Role:    strings.TrimSpace(p.Role),
			Bullets: trimBullets(p.Bullets),
		})
	}
	for _, p := range r.Publications {
		out.Publications = append(out.Publications, Publication{
			Title:   strings.TrimSpace(p.Title),
			Journal: strings.TrimSpace(p.Journal),
			Year:    strings.TrimSpace(p.Year),
		})
	}
	for _, a := range r.Awards {
		out.Awards = append(out.Awards, Award{
			Name: strings.TrimSpace(a.Name),
			Year: strings.TrimSpace(a.Year),
		})
	}
	for _, ref := range r.References {
		out.References = append(out.References, Reference{
			Name:    strings.TrimSpace(ref.Name),
			Title:   strings.TrimSpace(ref.Title),
			Contact: strings.TrimSpace(ref.Contact),
		})
	}
	return out
}

func trimBullets(in []string) []string {
	out := make([]string, 0, len(in))
	for _, b := range in {
		if trimmed := strings.TrimSpace(b); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
