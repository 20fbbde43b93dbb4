package report

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ChromiumPDFRenderer converts an advisory report (markdown or envelope
// JSON) into an A4 PDF through headless Chromium.
type ChromiumPDFRenderer struct {
	webDir     string
	chromePath string
	styleOnce  sync.Once
	styleCSS   string
}

// NewChromiumPDFRenderer builds a renderer. webDir may point at a directory
// with a style.css override; when empty or missing the built-in style is
// used.
func NewChromiumPDFRenderer(webDir string) *ChromiumPDFRenderer {
	return &ChromiumPDFRenderer{
		webDir:     webDir,
		chromePath: detectChromePath(),
	}
}

func detectChromePath() string {
	for _, p := range []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Render converts the report to PDF bytes.
func (r *ChromiumPDFRenderer) Render(ctx context.Context, report string) ([]byte, error) {
	htmlDoc, err := r.buildHTML(report)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;">` +
				`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.5).
				WithMarginBottom(0.75).
				WithMarginLeft(0.45).
				WithMarginRight(0.45).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, err
	}
	return pdf, nil
}

func (r *ChromiumPDFRenderer) buildHTML(report string) (string, error) {
	metaHTML := ""
	badgeHTML := ""
	markdown := report

	// Accept either raw markdown or a serialized envelope.
	var env map[string]any
	if json.Unmarshal([]byte(report), &env) == nil {
		if s, ok := env["report_markdown"].(string); ok && strings.TrimSpace(s) != "" {
			markdown = s
		}
		metaHTML = buildMetaHTML(env)
		badgeHTML = buildBadgeHTML(env)
	}

	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	contentHTML := applyPrintLayoutHooks(content.String())

	return "<!doctype html><html><head><meta charset='utf-8'><title>Strategic Advisory Report</title>" +
		"<style>" + r.loadStyleCSS() + "\n" +
		"html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;} " +
		`h2[data-page-break-before="true"]{break-before:page;page-break-before:always;} ` +
		"@media print{ @page{size:auto;margin:12mm;} body{padding:0;} }" +
		"</style></head><body>" +
		"<div class='report-wrap'><div class='report-header'>" +
		"<div class='report-meta'>" + metaHTML + "</div>" +
		"<div class='report-badges'>" + badgeHTML + "</div>" +
		"</div><div class='report-html'>" + contentHTML + "</div></div>" +
		"</body></html>", nil
}

// applyPrintLayoutHooks starts each per-framework analysis section on a
// fresh page.
func applyPrintLayoutHooks(contentHTML string) string {
	reAnalysis := regexp.MustCompile(`(?i)<h2([^>]*)>\s*(Analysis:[^<]*)\s*</h2>`)
	return reAnalysis.ReplaceAllString(contentHTML, `<h2$1 data-page-break-before="true">$2</h2>`)
}

const defaultStyleCSS = `body{font-family:Georgia,serif;color:#1c1917;max-width:1000px;margin:0 auto;padding:0.6rem;}
.report-header{display:flex;justify-content:space-between;border-bottom:2px solid #1e3a5f;padding-bottom:0.5rem;margin-bottom:1rem;}
.report-meta{color:#44403c;font-size:0.85rem;}
.report-meta strong{color:#1c1917;}
.report-badges span{background:#e0e7ff;color:#312e81;border:1px solid #a5b4fc;border-radius:3px;padding:0.15rem 0.5rem;margin-left:0.3rem;font-size:0.75rem;}
.report-html h1,.report-html h2{font-family:Helvetica,Arial,sans-serif;color:#1e3a5f;}
.report-html a{color:#1d4ed8;text-decoration:underline;}
.report-html table{width:100%;border-collapse:collapse;border:1px solid #a8a29e;font-size:0.85rem;}
.report-html th,.report-html td{border:1px solid #a8a29e;padding:0.35rem 0.45rem;text-align:left;vertical-align:top;}
.report-html thead th{background:#f1f5f9;font-weight:700;}`

func (r *ChromiumPDFRenderer) loadStyleCSS() string {
	r.styleOnce.Do(func() {
		r.styleCSS = defaultStyleCSS
		if r.webDir == "" {
			return
		}
		if b, err := os.ReadFile(filepath.Join(r.webDir, "style.css")); err == nil {
			r.styleCSS = string(b)
		}
	})
	return r.styleCSS
}

func buildMetaHTML(env map[string]any) string {
	var out strings.Builder
	if name := stringValue(env["company_name"]); name != "" {
		out.WriteString("<div><strong>Company:</strong> " + html.EscapeString(name) + "</div>")
	}
	if id := stringValue(env["run_id"]); id != "" {
		out.WriteString("<div><strong>Run:</strong> " + html.EscapeString(id) + "</div>")
	}
	if generated := stringValue(env["generated_at"]); generated != "" {
		if ts, err := time.Parse(time.RFC3339Nano, generated); err == nil {
			out.WriteString("<div><strong>Date:</strong> " + html.EscapeString(ts.In(time.Local).Format("January 2, 2006 at 3:04 PM MST")) + "</div>")
		} else {
			out.WriteString("<div><strong>Date:</strong> " + html.EscapeString(generated) + "</div>")
		}
	}
	return out.String()
}

func buildBadgeHTML(env map[string]any) string {
	var out strings.Builder
	if ctx, ok := env["context"].(map[string]any); ok {
		if infl := stringValue(ctx["inflection"]); infl != "" {
			out.WriteString("<span>" + html.EscapeString(infl) + "</span>")
		}
	}
	if degraded, ok := env["degraded"].(bool); ok && degraded {
		out.WriteString("<span>degraded</span>")
	}
	return out.String()
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
