package generatedresumes

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-styler/resume/render"
)

const janeRecord = `{
	"name": "Jane Doe",
	"contact": "{email:jane@example.com}",
	"experience": [{"company": "Acme", "role": "Engineer", "dates": "2020-2022", "bullets": ["Built X"]}]
}`

func newRouter(renderer render.Renderer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(&Service{Renderer: renderer}).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRenderPDFDownload(t *testing.T) {
	router := newRouter(render.Renderer{})
	resp := postJSON(router, "/api/v1/resumes/render", `{"template":"Ivy League","record":`+janeRecord+`}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	want := `attachment; filename="Professional_Resume_Ivy_League.pdf"`
	if cd := resp.Header().Get("Content-Disposition"); cd != want {
		t.Fatalf("expected %q, got %q", want, cd)
	}
	if !bytes.HasPrefix(resp.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected pdf body")
	}
}

func TestRenderOutlineCleansContact(t *testing.T) {
	router := newRouter(render.Renderer{})
	resp := postJSON(router, "/api/v1/resumes/render", `{"template":"Classic Serif","format":"outline","record":`+janeRecord+`}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if cd := resp.Header().Get("Content-Disposition"); !strings.Contains(cd, "Professional_Resume_Classic_Serif.md") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	lines := strings.Split(resp.Body.String(), "\n")
	if lines[0] != "# Jane Doe" || lines[1] != "jane@example.com" {
		t.Fatalf("unexpected header lines %q", lines[:2])
	}
}

func TestRenderUnknownTemplateFallsBack(t *testing.T) {
	router := newRouter(render.Renderer{})
	resp := postJSON(router, "/api/v1/resumes/render", `{"template":"Neon Retro","format":"outline","record":{"name":"Jane"}}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if cd := resp.Header().Get("Content-Disposition"); !strings.Contains(cd, "Professional_Resume_Neon_Retro.md") {
		t.Fatalf("unexpected disposition %q", cd)
	}
}

type failingWriter struct{}

func (failingWriter) WriteDocument(context.Context, render.Document) ([]byte, error) {
	return nil, errors.New("disk full")
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name       string
		renderer   render.Renderer
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "bad body", body: `{`, wantStatus: http.StatusBadRequest, wantCode: "validation_error"},
		{name: "missing template", body: `{"record":{"name":"Jane"}}`, wantStatus: http.StatusBadRequest, wantCode: "validation_error"},
		{name: "missing record", body: `{"template":"Executive"}`, wantStatus: http.StatusBadRequest, wantCode: "validation_error"},
		{name: "bad format", body: `{"template":"Executive","format":"docx","record":{"name":"Jane"}}`, wantStatus: http.StatusBadRequest, wantCode: "validation_error"},
		{name: "malformed record", body: `{"template":"Executive","record":{"name":"Jane","experience":"not a list"}}`, wantStatus: http.StatusUnprocessableEntity, wantCode: "invalid_record"},
		{name: "writer failure", renderer: render.Renderer{PDF: failingWriter{}}, body: `{"template":"Executive","record":{"name":"Jane"}}`, wantStatus: http.StatusInternalServerError, wantCode: "render_failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(newRouter(tt.renderer), "/api/v1/resumes/render", tt.body)
			if resp.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, resp.Code, resp.Body.String())
			}
			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body.Error.Code != tt.wantCode {
				t.Fatalf("expected code %q, got %q", tt.wantCode, body.Error.Code)
			}
		})
	}
}

func TestTemplatesListing(t *testing.T) {
	router := newRouter(render.Renderer{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var body struct {
		Templates []TemplateInfo `json:"templates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Templates) != 5 {
		t.Fatalf("expected 5 templates, got %d", len(body.Templates))
	}
	ivy := body.Templates[0]
	if ivy.ID != "Ivy League" || ivy.HeaderFont != "Times-Bold" || ivy.HeaderAlign != "center" || ivy.NameSize != 26 || ivy.Separator != " • " {
		t.Fatalf("unexpected ivy profile %+v", ivy)
	}
	if body.Templates[3].ID != "Modern Sans" || body.Templates[3].RuleLines {
		t.Fatalf("unexpected modern profile %+v", body.Templates[3])
	}
}

func TestPreviewBundle(t *testing.T) {
	router := newRouter(render.Renderer{})
	resp := postJSON(router, "/api/v1/resumes/preview", `{"record":`+janeRecord+`}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/zip" {
		t.Fatalf("unexpected content type %q", ct)
	}
	data := resp.Body.Bytes()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	if len(zr.File) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(zr.File))
	}
}
