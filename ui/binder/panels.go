package binder

import (
	"bytes"
	"encoding/json"
	"html/template"
	"strings"
)

const tmplPanels = `
{{define "error_panel"}}<div class="alert alert-danger" role="alert">
  <h5 class="alert-heading">Error Loading Data</h5>
  <p class="mb-0">{{.Message}}</p>
  {{- if .Debug}}
  <hr>
  <pre class="debug-dump small mb-0">{{.Debug}}</pre>
  {{- end}}
</div>{{end}}

{{define "network_error_panel"}}<div class="alert alert-warning" role="alert">
  <h5 class="alert-heading">Network Error</h5>
  <p class="mb-0">{{.Message}}</p>
  {{- if .Stack}}
  <hr>
  <pre class="stack-trace small mb-0">{{.Stack}}</pre>
  {{- end}}
</div>{{end}}
`

var panels = template.Must(template.New("panels").Parse(tmplPanels))

type errorPanelData struct {
	Message string
	Debug   string
}

type networkErrorPanelData struct {
	Message string
	Stack   string
}

// renderPanel executes a panel template; panel data is plain strings so a
// failure here can only come from a broken template.
func renderPanel(name string, data interface{}) template.HTML {
	var buf bytes.Buffer
	if err := panels.ExecuteTemplate(&buf, name, data); err != nil {
		return template.HTML(template.HTMLEscapeString(err.Error()))
	}
	return template.HTML(buf.String())
}

// indentJSON pretty-prints raw JSON with two-space indentation, keeping key order
func indentJSON(raw string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(strings.TrimSpace(raw)), "", "  "); err != nil {
		return raw
	}
	return buf.String()
}
