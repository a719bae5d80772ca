package render

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain", in: "Built X", want: "Built X"},
		{name: "markup", in: "<b>A&B</b>", want: "&lt;b&gt;A&amp;B&lt;/b&gt;"},
		{name: "ampersand first", in: "&lt;", want: "&amp;lt;"},
		{name: "quotes untouched", in: `"R&D" 'x'`, want: `"R&amp;D" 'x'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSanitizeNeverUnescapes(t *testing.T) {
	once := Sanitize("<b>A&B</b>")
	twice := Sanitize(once)
	if twice != "&amp;lt;b&amp;gt;A&amp;amp;B&amp;lt;/b&amp;gt;" {
		t.Fatalf("unexpected second pass %q", twice)
	}
	for _, s := range []string{once, twice} {
		for i := 0; i < len(s); i++ {
			if s[i] == '<' || s[i] == '>' {
				t.Fatalf("raw reserved character in %q", s)
			}
		}
	}
}
