package templates

import (
	"embed"
	"html/template"
	"time"

	"inkwell-backend/utils"
)

//go:embed *.html
var files embed.FS

// Load parses the embedded template set with the blog filters installed.
func Load() *template.Template {
	funcs := template.FuncMap{
		"markdown":      utils.RenderMarkdown,
		"truncatewords": utils.TruncateWords,
		"longdate": func(t time.Time) string {
			return t.UTC().Format("Jan 2, 2006")
		},
	}
	return template.Must(template.New("blog").Funcs(funcs).ParseFS(files, "*.html"))
}
