package tplimpl

import (
	"time"

	"github.com/aiono/blogbuild/common/text"
	"github.com/aiono/blogbuild/deps"
	"github.com/aiono/blogbuild/helpers"
	"github.com/aiono/blogbuild/resources/page"
)

// createFuncMap returns the functions available to both template engines.
func createFuncMap(d *deps.Deps) map[string]any {
	funcMap := map[string]any{
		"title":         helpers.GetTitleFunc(d.Cfg.GetString("titleCaseStyle")),
		"removeAccents": text.RemoveAccentsString,
		"plainText":     helpers.PlainText,
		"summary":       helpers.ExtractSummary,
		"chomp":         text.Chomp,
		"now":           d.Clock.Now,
		"rfc822": func(t time.Time) string {
			return page.FormatRFC822(t.UTC())
		},
	}

	if d.ContentSpec != nil {
		funcMap["highlight"] = d.ContentSpec.Converters.GetHighlighter().Highlight
	}

	return funcMap
}
