package renderer

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

var documentTemplate = template.Must(template.New("cv").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; font-size: 11pt; margin: 18mm; color: #222; }
  h1 { font-size: 16pt; border-bottom: 1px solid #999; padding-bottom: 4px; }
  pre { white-space: pre-wrap; font-family: inherit; line-height: 1.45; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<pre>{{.Body}}</pre>
</body>
</html>`))

// BuildHTML wraps plain CV text in a printable, escaped HTML page.
func BuildHTML(title, text string) (string, error) {
	var buf bytes.Buffer
	err := documentTemplate.Execute(&buf, struct {
		Title string
		Body  string
	}{Title: title, Body: strings.TrimSpace(text)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

type ChromedpRenderer struct {
	Timeout time.Duration
}

func NewChromedpRenderer() *ChromedpRenderer {
	return &ChromedpRenderer{Timeout: 60 * time.Second}
}

func (r *ChromedpRenderer) RenderTextToPDF(ctx context.Context, title, text string) ([]byte, error) {
	html, err := BuildHTML(title, text)
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, r.Timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "cv-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
