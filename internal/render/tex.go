package render

import (
	"bytes"
	"regexp"
	"strings"
	"text/template"
)

var mathSpanRe = regexp.MustCompile(`(?s)\$\$.+?\$\$|\$[^$\n]+\$`)

var texEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`_`, `\_`,
	`$`, `\$`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
	"\n", "\\par ",
)

// EscapeTeX escapes statement text for LaTeX. Inline and display math
// spans pass through untouched.
func EscapeTeX(s string) string {
	var b strings.Builder
	last := 0
	for _, loc := range mathSpanRe.FindAllStringIndex(s, -1) {
		b.WriteString(texEscaper.Replace(s[last:loc[0]]))
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(texEscaper.Replace(s[last:]))
	return b.String()
}

// Preamble is shared with the measurement engine so measured heights match
// the typeset output.
func Preamble(landscape bool) string {
	orientation := "portrait"
	if landscape {
		orientation = "landscape"
	}
	return `\documentclass[11pt]{article}
\usepackage[utf8]{inputenc}
\usepackage[a4paper,` + orientation + `,margin=12mm]{geometry}
\usepackage{amsmath,amssymb}
\pagestyle{empty}
\setlength{\parindent}{0pt}
`
}

// ColumnWidth is the LaTeX width of one task column.
func ColumnWidth(twoUp bool) string {
	if twoUp {
		return `0.48\textwidth`
	}
	return `\textwidth`
}

const printTeX = `<<preamble .Landscape>>\begin{document}
<<- range .Sides>>
<<if .Blank>>\null<<else>>
<<- range $i, $c := .Columns>><<if $i>>\hfill<<end>>
\begin{minipage}[t]{<<width $.TwoUp>>}
<<- if $c.Empty>>\mbox{}<<else>>
\textbf{<<esc $c.Title>>}<<if $c.Continued>> \textit{(continued)}<<end>>
<<- if $c.Tasks>>
\begin{enumerate}\setcounter{enumi}{<<$c.Offset>>}
<<- range $c.Tasks>>
\item <<esc .Statement>><<space .Answer>>
<<- end>>
\end{enumerate}
<<- end>>
<<- end>>
\end{minipage}
<<- end>>
<<- end>>
<<if not .Last>>\newpage<<end>>
<<- end>>
\end{document}
`

var texTemplate = template.Must(template.New("print").Delims("<<", ">>").Funcs(template.FuncMap{
	"preamble": Preamble,
	"width":    ColumnWidth,
	"esc":      EscapeTeX,
	"space": func(hint string) string {
		switch hint {
		case "short":
			return `\par\vspace{8mm}`
		case "medium":
			return `\par\vspace{18mm}`
		}
		return ""
	},
}).Parse(printTeX))

// TeX renders the LaTeX source of a job.
func TeX(job Job) ([]byte, error) {
	var buf bytes.Buffer
	if err := texTemplate.Execute(&buf, newSheetView(job)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
