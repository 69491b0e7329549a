package goldmark

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmojify(t *testing.T) {
	for _, test := range []struct {
		in     string
		expect string
	}{
		{"No emoji here", "No emoji here"},
		{":beer:", "🍺"},
		{"Cheers :beer: and :smile:!", "Cheers 🍺 and 😄!"},
		{":not-an-emoji:", ":not-an-emoji:"},
		{"10:30 to 11:00", "10:30 to 11:00"},
		{"::", "::"},
	} {
		require.Equal(t, test.expect, string(emojify([]byte(test.in))), test.in)
	}
}
