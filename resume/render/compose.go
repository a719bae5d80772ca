package render

import "resume-styler/resume/model"

// DefaultName is shown when the record has no name.
const DefaultName = "Name Not Provided"

const (
	experienceGap  = 10
	educationGap   = 8
	projectGap     = 8
	publicationGap = 6
	awardGap       = 6
	paragraphGap   = 8
	referenceGap   = 8
	ruleGap        = 8
	rowLeftShare   = 0.75
)

type composer struct {
	profile Profile
	geom    Geometry
	blocks  []Block
}

// Compose walks the header and the eleven sections in their fixed order and
// returns the story for rec under profile p. Sections with no data are
// skipped entirely.
func Compose(rec model.ResumeRecord, p Profile, g Geometry) []Block {
	c := &composer{profile: p, geom: g}
	c.header(rec)
	if present(rec.Objective) {
		c.section("Professional Summary")
		c.para(StyleBody, plain(rec.Objective))
	}
	if len(rec.Experience) > 0 {
		c.experience(rec.Experience)
	}
	if len(rec.Education) > 0 {
		c.education(rec.Education)
	}
	if len(rec.Projects) > 0 {
		c.projects(rec.Projects)
	}
	if len(rec.Publications) > 0 {
		c.publications(rec.Publications)
	}
	if present(rec.CoreSkills) {
		c.section("Skills")
		c.para(StyleBody, plain(rec.CoreSkills))
	}
	if len(rec.Awards) > 0 {
		c.awards(rec.Awards)
	}
	if present(rec.Scholarship) {
		c.section("Scholarship / Fellowship")
		c.para(StyleBody, plain(rec.Scholarship))
		c.space(paragraphGap)
	}
	if present(rec.Languages) {
		c.section("Languages")
		c.para(StyleBody, plain(rec.Languages))
		c.space(paragraphGap)
	}
	if len(rec.References) > 0 {
		c.references(rec.References)
	}
	return c.blocks
}

func (c *composer) header(rec model.ResumeRecord) {
	name := rec.Name
	if !present(name) {
		name = DefaultName
	}
	c.para(StyleName, plain(name))
	c.para(StyleContact, plain(ContactLine(rec.Address, rec.Contact, c.profile.Separator)))
}

func (c *composer) section(title string) {
	c.para(StyleHeading, plain(c.profile.Heading(title)))
	if c.profile.RuleLines {
		c.blocks = append(c.blocks, Rule{Width: c.geom.ContentWidth()})
		c.space(ruleGap)
	}
}

func (c *composer) experience(jobs []model.Experience) {
	c.section("Work Experience")
	for _, job := range jobs {
		switch c.profile.Template {
		case IvyLeague:
			c.row([]Span{bold(job.Company)}, []Span{plain(job.Dates)})
			c.para(StyleBody, italic(job.Role))
		case Executive:
			c.row([]Span{bold(job.Company)}, []Span{bold(job.Dates)})
			c.para(StyleBody, plain(job.Role))
		case ClassicSerif:
			c.para(StyleBody, bold(job.Role), plain(", "), plain(job.Company), plain(" -- "), italic(job.Dates))
		case ModernSans, Minimalist, TemplateFallback:
			c.para(StyleBody, bold(job.Role), plain(" | "), plain(job.Company), plain(" "),
				Span{Text: "(" + job.Dates + ")", Size: 9, Color: Grey})
		}
		c.bullets(job.Bullets)
		c.space(experienceGap)
	}
}

func (c *composer) education(entries []model.Education) {
	c.section("Education")
	for _, edu := range entries {
		switch c.profile.Template {
		case IvyLeague, Executive:
			c.row([]Span{bold(edu.University)}, []Span{plain(edu.Year)})
			c.para(StyleBody, plain(edu.Degree))
		case ClassicSerif, ModernSans, Minimalist, TemplateFallback:
			spans := []Span{bold(edu.Degree), plain(", "), plain(edu.University)}
			if present(edu.Year) {
				spans = append(spans, plain(", "), plain(edu.Year))
			}
			c.para(StyleBody, spans...)
		}
		if present(edu.Grade) {
			c.para(StyleBody, plain(GradeLine(edu.Grade)))
		}
		c.space(educationGap)
	}
}

func (c *composer) projects(entries []model.Project) {
	c.section("Projects")
	for _, proj := range entries {
		switch c.profile.Template {
		case IvyLeague, Executive, ClassicSerif:
			c.para(StyleBody, bold(proj.Name), plain(" ["), plain(proj.Tech), plain("]"))
		case ModernSans, Minimalist, TemplateFallback:
			c.para(StyleBody, bold(proj.Name), plain(" | "), plain(proj.Tech))
		}
		if present(proj.Role) {
			c.para(StyleBody, plain("Role: "), plain(proj.Role))
		}
		c.bullets(proj.Bullets)
		c.space(projectGap)
	}
}

func (c *composer) publications(entries []model.Publication) {
	c.section("Publications")
	for _, pub := range entries {
		if present(pub.Title) {
			c.para(StyleBody, bold(pub.Title))
		}
		var detail []Span
		if present(pub.Journal) {
			detail = append(detail, plain(pub.Journal))
		}
		if present(pub.Year) {
			if len(detail) > 0 {
				detail = append(detail, plain(", "))
			}
			detail = append(detail, plain(pub.Year))
		}
		if len(detail) > 0 {
			c.para(StyleBody, detail...)
		}
		c.space(publicationGap)
	}
}

func (c *composer) awards(entries []model.Award) {
	c.section("Awards & Honors")
	for _, award := range entries {
		switch {
		case present(award.Name) && present(award.Year):
			c.row([]Span{bold(award.Name)}, []Span{plain(award.Year)})
		case present(award.Name):
			c.para(StyleBody, bold(award.Name))
		}
		// The gap is emitted even for an award with neither field.
		c.space(awardGap)
	}
}

func (c *composer) references(entries []model.Reference) {
	c.section("References")
	for _, ref := range entries {
		if present(ref.Name) {
			c.para(StyleBody, bold(ref.Name))
		}
		if present(ref.Title) {
			c.para(StyleBody, plain(ref.Title))
		}
		if present(ref.Contact) {
			c.para(StyleBody, plain(ref.Contact))
		}
		c.space(referenceGap)
	}
}

func (c *composer) bullets(items []string) {
	for _, b := range items {
		c.para(StyleBullet, plain("• "), plain(b))
	}
}

func (c *composer) para(style ParagraphStyle, spans ...Span) {
	c.blocks = append(c.blocks, Paragraph{Style: style, Spans: spans})
}

func (c *composer) row(left, right []Span) {
	width := c.geom.ContentWidth()
	c.blocks = append(c.blocks, Row{
		Left:       Paragraph{Style: StyleLeftCol, Spans: left},
		Right:      Paragraph{Style: StyleRightCol, Spans: right},
		LeftWidth:  width * rowLeftShare,
		RightWidth: width * (1 - rowLeftShare),
	})
}

func (c *composer) space(h float64) {
	c.blocks = append(c.blocks, Spacer{Height: h})
}
