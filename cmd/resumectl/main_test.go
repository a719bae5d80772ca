package main

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const janeYAML = `name: Jane Doe
contact: "email:jane@example.com"
experience:
  - company: Acme
    role: Engineer
    dates: 2020-2022
    bullets:
      - Built X
awards:
  - name: Best Paper
    year: 2021
`

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LLM_PROVIDER", "none")
	t.Setenv("RENDER_ENGINE", "native")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRenderOutlineFromYAML(t *testing.T) {
	path := writeFile(t, "jane.yaml", janeYAML)
	out, err := runCmd(t, "render", path, "--template", "Classic Serif", "--format", "outline", "--out", "-")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{"# Jane Doe\n", "jane@example.com\n", "**Engineer**, Acme -- *2020-2022*\n", "## Awards & Honors\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderPDFToDefaultFileName(t *testing.T) {
	path := writeFile(t, "jane.json", `{"name":"Jane Doe"}`)
	chdir(t, t.TempDir())
	out, err := runCmd(t, "render", path, "--template", "Modern Sans")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "wrote Professional_Resume_Modern_Sans.pdf") {
		t.Fatalf("unexpected output %q", out)
	}
	data, err := os.ReadFile("Professional_Resume_Modern_Sans.pdf")
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected pdf output")
	}
}

func TestRenderRejectsMalformedRecord(t *testing.T) {
	path := writeFile(t, "bad.json", `{"name":"Jane","education":"MIT"}`)
	if _, err := runCmd(t, "render", path, "--out", "-"); err == nil {
		t.Fatalf("expected schema error")
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	path := writeFile(t, "jane.json", `{"name":"Jane"}`)
	if _, err := runCmd(t, "render", path, "--format", "docx"); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestTemplatesTable(t *testing.T) {
	out, err := runCmd(t, "templates")
	if err != nil {
		t.Fatalf("templates failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header plus 5 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "Ivy League") || !strings.Contains(lines[1], "Times-Bold") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
}

func TestPreviewWritesBundle(t *testing.T) {
	path := writeFile(t, "jane.yml", janeYAML)
	dest := filepath.Join(t.TempDir(), "bundle.zip")
	if _, err := runCmd(t, "preview", path, "--out", dest); err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	zr, err := zip.OpenReader(dest)
	if err != nil {
		t.Fatalf("open bundle: %v", err)
	}
	defer zr.Close()
	if len(zr.File) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(zr.File))
	}
}

func TestExtractWithoutProviderFails(t *testing.T) {
	path := writeFile(t, "cv.txt", "Jane Doe\njane@example.com")
	_, err := runCmd(t, "extract", path)
	if err == nil || !strings.Contains(err.Error(), "not configured") {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestYAMLToJSON(t *testing.T) {
	got, err := yamlToJSON([]byte("name: Jane\nawards:\n  - year: 2021\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"awards":[{"year":2021}],"name":"Jane"}` {
		t.Fatalf("unexpected json %s", got)
	}
	empty, err := yamlToJSON(nil)
	if err != nil || string(empty) != "{}" {
		t.Fatalf("expected empty object, got %s %v", empty, err)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
