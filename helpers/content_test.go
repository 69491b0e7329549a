package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlainText(t *testing.T) {
	require.Equal(t, "Hello world & friends", PlainText(`<p>Hello <em>world</em> &amp; friends</p>`))
	require.Equal(t, "ab", PlainText(`a<script>var x = "no.";</script><!-- c. -->b`))
	require.Equal(t, "plain", PlainText("plain"))
	require.Equal(t, "", PlainText(""))
}

func TestExtractSummary(t *testing.T) {
	for _, test := range []struct {
		in     string
		expect string
	}{
		{"A. B. C. D.", "A. B. C."},
		{"Only one sentence", "Only one sentence."},
		{"<p>A. B. C. D. E.</p>", "A. B. C."},
		// Fewer than three fragments keep their punctuation and get one more.
		{"A. B.", "A. B.."},
		{"A. B", "A. B."},
		{"", "."},
		// Periods in numbers split like any other.
		{"Pi is 3.14. Or so. Maybe.", "Pi is 3.14. Or so."},
	} {
		require.Equal(t, test.expect, ExtractSummary(test.in), test.in)
	}
}
