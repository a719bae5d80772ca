package generatedresumes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-styler/internal/shared/metrics"
	"resume-styler/resume/render"
)

func scrapeMetrics(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", metrics.Handler())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics, got %d", w.Code)
	}
	return w.Body.String()
}

func TestPreviewRecordsRenderMetrics(t *testing.T) {
	ok := &Service{Renderer: render.Renderer{}}
	if _, err := ok.Preview(context.Background(), []byte(janeRecord)); err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	failing := &Service{Renderer: render.Renderer{PDF: failingWriter{}}}
	if _, err := failing.Preview(context.Background(), []byte(janeRecord)); err == nil {
		t.Fatalf("expected preview error with failing writer")
	}

	body := scrapeMetrics(t)
	for _, want := range []string{
		`resume_render_total{format="zip",outcome="success",template="bundle"}`,
		`resume_render_total{format="zip",outcome="failure",template="bundle"}`,
		`resume_render_duration_seconds_count{format="zip"}`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}
