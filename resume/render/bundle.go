package render

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"resume-styler/resume/model"
)

// RenderBundle renders rec in every template concurrently and packs the PDFs
// into a zip archive in menu order.
func (r Renderer) RenderBundle(ctx context.Context, rec model.ResumeRecord) ([]byte, error) {
	templates := Templates()
	outputs := make([][]byte, len(templates))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range templates {
		i, t := i, t
		g.Go(func() error {
			out, err := r.Render(gctx, rec, t.String(), FormatPDF)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, t := range templates {
		f, err := zw.Create(DownloadFileName(t.String(), FormatPDF.Extension()))
		if err != nil {
			return nil, fmt.Errorf("create bundle entry: %w", err)
		}
		if _, err := f.Write(outputs[i]); err != nil {
			return nil, fmt.Errorf("write bundle entry: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close bundle: %w", err)
	}
	return buf.Bytes(), nil
}
