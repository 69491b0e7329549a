package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveAccents(t *testing.T) {
	require.Equal(t, "Resume", RemoveAccentsString("Résumé"))
	require.Equal(t, "hello", RemoveAccentsString("hello"))
}

func TestChomp(t *testing.T) {
	require.Equal(t, "<header/>", Chomp("<header/>\r\n\n"))
	require.Equal(t, "a\nb", Chomp("a\nb"))
}
