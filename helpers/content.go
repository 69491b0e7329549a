package helpers

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// summarySentences is the number of sentence fragments kept by ExtractSummary.
const summarySentences = 3

// PlainText returns the concatenated visible text of the HTML fragment s.
// Entities are unescaped; comments and the bodies of script and style
// elements are dropped.
func PlainText(s string) string {
	var (
		b      strings.Builder
		hidden int
	)

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input, either way we're done.
			return b.String()
		case html.TextToken:
			if hidden == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken:
			if isHiddenElement(z) {
				hidden++
			}
		case html.EndTagToken:
			if hidden > 0 && isHiddenElement(z) {
				hidden--
			}
		}
	}
}

func isHiddenElement(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	a := atom.Lookup(name)
	return a == atom.Script || a == atom.Style
}

// ExtractSummary returns roughly the first three sentences of the rendered
// HTML content: the visible text is split on ".", at most three fragments
// are kept and joined again with a trailing "." appended.
// Periods in abbreviations or numbers are treated as sentence ends.
func ExtractSummary(content string) string {
	fragments := strings.Split(PlainText(content), ".")
	if len(fragments) > summarySentences {
		fragments = fragments[:summarySentences]
	}
	fragments = append(fragments, "")
	return strings.Join(fragments, ".")
}
