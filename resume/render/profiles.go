package render

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Template is one of the fixed visual templates. Unknown identifiers resolve
// to TemplateFallback.
type Template int

const (
	TemplateFallback Template = iota
	ClassicSerif
	ModernSans
	Minimalist
	IvyLeague
	Executive
)

var templateNames = map[Template]string{
	ClassicSerif: "Classic Serif",
	ModernSans:   "Modern Sans",
	Minimalist:   "Minimalist",
	IvyLeague:    "Ivy League",
	Executive:    "Executive",
}

// Templates lists the selectable templates in menu order.
func Templates() []Template {
	return []Template{IvyLeague, Executive, ClassicSerif, ModernSans, Minimalist}
}

// ParseTemplate maps an identifier to its template. It is total: anything
// unrecognized yields TemplateFallback.
func ParseTemplate(id string) Template {
	for t, name := range templateNames {
		if name == id {
			return t
		}
	}
	return TemplateFallback
}

func (t Template) String() string {
	if name, ok := templateNames[t]; ok {
		return name
	}
	return "Fallback"
}

type Family string

const (
	Serif Family = "Times"
	Sans  Family = "Helvetica"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// HeadingCase is the transform applied to section titles.
type HeadingCase int

const (
	CaseNone HeadingCase = iota
	CaseUpper
	CaseTitle
)

func (c HeadingCase) String() string {
	switch c {
	case CaseUpper:
		return "upper"
	case CaseTitle:
		return "title"
	default:
		return "none"
	}
}

// Font is a core font face.
type Font struct {
	Family Family
	Bold   bool
}

// String names the face the way the PDF core fonts do, e.g. "Times-Bold".
func (f Font) String() string {
	if f.Bold {
		return string(f.Family) + "-Bold"
	}
	return string(f.Family)
}

// Profile is the immutable styling bundle for a template.
type Profile struct {
	Template    Template
	HeaderFont  Font
	BodyFont    Font
	HeaderAlign Align
	NameSize    float64
	HeadingCase HeadingCase
	RuleLines   bool
	Separator   string
}

var (
	serifBold = Font{Family: Serif, Bold: true}
	serifBody = Font{Family: Serif}
	sansBold  = Font{Family: Sans, Bold: true}
	sansBody  = Font{Family: Sans}
)

// ResolveProfile returns the profile for a template identifier.
func ResolveProfile(id string) Profile {
	return ParseTemplate(id).Profile()
}

// Profile returns the styling bundle of t.
func (t Template) Profile() Profile {
	switch t {
	case ClassicSerif:
		return Profile{Template: t, HeaderFont: serifBold, BodyFont: serifBody, HeaderAlign: AlignCenter, NameSize: 24, HeadingCase: CaseTitle, RuleLines: true, Separator: " | "}
	case ModernSans:
		return Profile{Template: t, HeaderFont: sansBold, BodyFont: sansBody, HeaderAlign: AlignLeft, NameSize: 26, HeadingCase: CaseUpper, RuleLines: false, Separator: "  •  "}
	case Minimalist:
		return Profile{Template: t, HeaderFont: sansBold, BodyFont: sansBody, HeaderAlign: AlignLeft, NameSize: 20, HeadingCase: CaseUpper, RuleLines: true, Separator: " | "}
	case IvyLeague:
		return Profile{Template: t, HeaderFont: serifBold, BodyFont: serifBody, HeaderAlign: AlignCenter, NameSize: 26, HeadingCase: CaseTitle, RuleLines: true, Separator: " • "}
	case Executive:
		return Profile{Template: t, HeaderFont: serifBold, BodyFont: serifBody, HeaderAlign: AlignLeft, NameSize: 28, HeadingCase: CaseUpper, RuleLines: true, Separator: " | "}
	default:
		return Profile{Template: TemplateFallback, HeaderFont: sansBold, BodyFont: sansBody, HeaderAlign: AlignLeft, NameSize: 22, HeadingCase: CaseTitle, RuleLines: true, Separator: " | "}
	}
}

// Heading applies the profile's heading case to a section title.
func (p Profile) Heading(title string) string {
	switch p.HeadingCase {
	case CaseUpper:
		return cases.Upper(language.English).String(title)
	case CaseTitle:
		return cases.Title(language.English).String(title)
	default:
		return title
	}
}

// ParagraphStyle names the paragraph roles the composer emits.
type ParagraphStyle int

const (
	StyleBody ParagraphStyle = iota
	StyleName
	StyleContact
	StyleHeading
	StyleBullet
	StyleLeftCol
	StyleRightCol
)

// TextStyle is the resolved typography for a paragraph role.
type TextStyle struct {
	Font        Font
	Size        float64
	Leading     float64
	Align       Align
	SpaceBefore float64
	SpaceAfter  float64
	LeftIndent  float64
}

// TextStyle resolves a paragraph role against the profile.
func (p Profile) TextStyle(s ParagraphStyle) TextStyle {
	switch s {
	case StyleName:
		return TextStyle{Font: p.HeaderFont, Size: p.NameSize, Leading: p.NameSize + 4, Align: p.HeaderAlign, SpaceAfter: 6}
	case StyleContact:
		return TextStyle{Font: p.BodyFont, Size: 10, Leading: 12, Align: p.HeaderAlign, SpaceAfter: 10}
	case StyleHeading:
		return TextStyle{Font: p.HeaderFont, Size: 12, Leading: 12, Align: AlignLeft, SpaceBefore: 12, SpaceAfter: 4}
	case StyleBullet:
		return TextStyle{Font: p.BodyFont, Size: 10.5, Leading: 14, Align: AlignLeft, LeftIndent: 15}
	case StyleRightCol:
		return TextStyle{Font: p.BodyFont, Size: 10.5, Leading: 14, Align: AlignRight}
	default:
		return TextStyle{Font: p.BodyFont, Size: 10.5, Leading: 14, Align: AlignLeft}
	}
}
