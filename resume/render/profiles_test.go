package render

import "testing"

func TestResolveProfileTable(t *testing.T) {
	tests := []struct {
		id        string
		template  Template
		header    Font
		body      Font
		align     Align
		nameSize  float64
		heading   HeadingCase
		rules     bool
		separator string
	}{
		{"Classic Serif", ClassicSerif, Font{Serif, true}, Font{Serif, false}, AlignCenter, 24, CaseTitle, true, " | "},
		{"Modern Sans", ModernSans, Font{Sans, true}, Font{Sans, false}, AlignLeft, 26, CaseUpper, false, "  •  "},
		{"Minimalist", Minimalist, Font{Sans, true}, Font{Sans, false}, AlignLeft, 20, CaseUpper, true, " | "},
		{"Ivy League", IvyLeague, Font{Serif, true}, Font{Serif, false}, AlignCenter, 26, CaseTitle, true, " • "},
		{"Executive", Executive, Font{Serif, true}, Font{Serif, false}, AlignLeft, 28, CaseUpper, true, " | "},
		{"Neon Retro", TemplateFallback, Font{Sans, true}, Font{Sans, false}, AlignLeft, 22, CaseTitle, true, " | "},
		{"", TemplateFallback, Font{Sans, true}, Font{Sans, false}, AlignLeft, 22, CaseTitle, true, " | "},
		{"ivy league", TemplateFallback, Font{Sans, true}, Font{Sans, false}, AlignLeft, 22, CaseTitle, true, " | "},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p := ResolveProfile(tt.id)
			if p.Template != tt.template {
				t.Fatalf("expected template %v, got %v", tt.template, p.Template)
			}
			if p.HeaderFont != tt.header || p.BodyFont != tt.body {
				t.Fatalf("unexpected fonts %+v %+v", p.HeaderFont, p.BodyFont)
			}
			if p.HeaderAlign != tt.align || p.NameSize != tt.nameSize {
				t.Fatalf("unexpected align/size %v/%v", p.HeaderAlign, p.NameSize)
			}
			if p.HeadingCase != tt.heading || p.RuleLines != tt.rules || p.Separator != tt.separator {
				t.Fatalf("unexpected heading/rules/separator %v/%v/%q", p.HeadingCase, p.RuleLines, p.Separator)
			}
		})
	}
}

func TestTemplatesRoundTripNames(t *testing.T) {
	if len(Templates()) != 5 {
		t.Fatalf("expected 5 templates, got %d", len(Templates()))
	}
	for _, tmpl := range Templates() {
		if got := ParseTemplate(tmpl.String()); got != tmpl {
			t.Fatalf("expected %v, got %v", tmpl, got)
		}
	}
}

func TestProfileHeading(t *testing.T) {
	upper := ResolveProfile("Executive")
	if got := upper.Heading("Awards & Honors"); got != "AWARDS & HONORS" {
		t.Fatalf("unexpected upper heading %q", got)
	}
	title := ResolveProfile("Ivy League")
	if got := title.Heading("Scholarship / Fellowship"); got != "Scholarship / Fellowship" {
		t.Fatalf("unexpected title heading %q", got)
	}
	if got := title.Heading("work experience"); got != "Work Experience" {
		t.Fatalf("unexpected title heading %q", got)
	}
}

func TestFontString(t *testing.T) {
	tests := []struct {
		font Font
		want string
	}{
		{font: Font{Family: Serif}, want: "Times"},
		{font: Font{Family: Serif, Bold: true}, want: "Times-Bold"},
		{font: Font{Family: Sans, Bold: true}, want: "Helvetica-Bold"},
	}
	for _, tt := range tests {
		if got := tt.font.String(); got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got)
		}
	}
	if got := ResolveProfile("Ivy League").HeaderFont.String(); got != "Times-Bold" {
		t.Fatalf("expected Ivy League header font Times-Bold, got %q", got)
	}
}
