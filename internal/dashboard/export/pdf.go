package export

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

var reportTemplate = template.Must(template.New("report").Parse(`<html><head><meta charset="utf-8"><style>
body{font-family:sans-serif;margin:24px;color:#0f172a}h1{font-size:20px}
table{width:100%;border-collapse:collapse;margin-bottom:16px}
th,td{border:1px solid #cbd5e1;padding:6px;text-align:right}th{background:#f1f5f9}
td.label,th.label{text-align:left}.muted{color:#64748b}
</style></head><body>
<h1>{{.Title}}</h1>
{{if not .GeneratedAt.IsZero}}<p class="muted">Generated {{.GeneratedAt.UTC.Format "02 Jan 2006 15:04 MST"}}</p>{{end}}
{{range .Cards}}<section><h2>{{.Title}} <small class="muted">{{.Value}} · {{.Growth}}</small></h2>
{{if not .Available}}<p class="muted">Trend unavailable, showing flat placeholder.</p>{{end}}
<table><thead><tr><th class="label">Month</th><th>Value</th><th>Change</th></tr></thead><tbody>
{{range .Points}}<tr><td class="label">{{.Month}}</td><td>{{.Value}}</td><td>{{.Change}}</td></tr>{{end}}
</tbody></table></section>{{end}}
</body></html>`))

// PDFExporter converts the report HTML to PDF through a Gotenberg server.
type PDFExporter struct {
	Endpoint string
	Client   *http.Client
}

// RenderReport posts the report HTML to Gotenberg and returns the PDF bytes.
func (p *PDFExporter) RenderReport(ctx context.Context, report Report) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("pdf exporter not initialised")
	}
	endpoint := strings.TrimRight(p.Endpoint, "/")
	if endpoint == "" {
		return nil, fmt.Errorf("gotenberg endpoint required")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, err
	}
	if err := reportTemplate.Execute(part, report); err != nil {
		return nil, fmt.Errorf("export: render report html: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/forms/chromium/convert/html", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("gotenberg response %d: %s", resp.StatusCode, string(data))
	}
	return io.ReadAll(resp.Body)
}

// Ping checks that the Gotenberg server is reachable.
func (p *PDFExporter) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(p.Endpoint, "/")+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := p.client().Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("gotenberg returned status %d", resp.StatusCode)
	}
	return nil
}

func (p *PDFExporter) client() *http.Client {
	if p.Client != nil {
		return p.Client
	}
	return http.DefaultClient
}
