package utils

import (
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
)

// RenderMarkdown converts a post body to HTML for the templates. The output
// is marked safe, so post bodies are trusted author content.
func RenderMarkdown(text string) template.HTML {
	return template.HTML(markdown.ToHTML([]byte(text), nil, nil))
}

// TruncateWords cuts text after n words, appending an ellipsis when
// something was dropped.
func TruncateWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return text
	}
	return strings.Join(words[:n], " ") + " ..."
}
