package generatedresumes

import "resume-styler/resume/render"

// GeneratedResume is a rendered document ready for download.
type GeneratedResume struct {
	TemplateID  string
	Format      render.Format
	FileName    string
	ContentType string
	Bytes       []byte
}

// TemplateInfo describes a selectable template.
type TemplateInfo struct {
	ID          string  `json:"id"`
	HeaderFont  string  `json:"headerFont"`
	BodyFont    string  `json:"bodyFont"`
	HeaderAlign string  `json:"headerAlign"`
	NameSize    float64 `json:"nameSize"`
	HeadingCase string  `json:"headingCase"`
	RuleLines   bool    `json:"ruleLines"`
	Separator   string  `json:"separator"`
}

func toTemplateInfo(p render.Profile) TemplateInfo {
	return TemplateInfo{
		ID:          p.Template.String(),
		HeaderFont:  p.HeaderFont.String(),
		BodyFont:    p.BodyFont.String(),
		HeaderAlign: p.HeaderAlign.String(),
		NameSize:    p.NameSize,
		HeadingCase: p.HeadingCase.String(),
		RuleLines:   p.RuleLines,
		Separator:   p.Separator,
	}
}
