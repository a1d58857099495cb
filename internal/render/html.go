package render

import (
	"bytes"
	"html/template"
)

// Math is left as TeX source; the print page loads KaTeX auto-render when
// it is reachable and shows the source otherwise.
const printHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/katex.min.css">
<script defer src="https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/katex.min.js"></script>
<script defer src="https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/contrib/auto-render.min.js"
  onload="renderMathInElement(document.body,{delimiters:[{left:'$$',right:'$$',display:true},{left:'$',right:'$',display:false}]})"></script>
<style>
@page { size: A4 {{if .Landscape}}landscape{{else}}portrait{{end}}; margin: 12mm; }
body { font-family: serif; font-size: 11pt; margin: 0; }
.side { display: flex; gap: 8mm; break-after: page; }
.side.last { break-after: auto; }
.side.blank { display: block; min-height: 1mm; }
.col { flex: 1; }
.col h2 { font-size: 12pt; margin: 0 0 3mm; }
.col h2 small { font-weight: normal; }
.col ol { margin: 0; padding-left: 7mm; }
.col li { margin-bottom: 2mm; white-space: pre-wrap; }
.ans-inline { display: none; }
.ans-short { height: 8mm; }
.ans-medium { height: 18mm; }
</style>
</head>
<body>
{{- range .Sides}}
{{- if .Blank}}
<div class="side blank">&nbsp;</div>
{{- else}}
<div class="side{{if .Last}} last{{end}}">
{{- range .Columns}}
<div class="col">
{{- if not .Empty}}
<h2>{{.Title}}{{if .Continued}} <small>(continued)</small>{{end}}</h2>
<ol start="{{inc .Offset}}">
{{- range .Tasks}}
<li>{{.Statement}}<div class="ans-{{.Answer}}"></div></li>
{{- end}}
</ol>
{{- end}}
</div>
{{- end}}
</div>
{{- end}}
{{- end}}
</body>
</html>
`

var htmlTemplate = template.Must(template.New("print").Funcs(template.FuncMap{
	"inc": func(n int) int { return n + 1 },
}).Parse(printHTML))

// HTML renders the print view of a job.
func HTML(job Job) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, newSheetView(job)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
