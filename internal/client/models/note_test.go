package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNote_IsBlank(t *testing.T) {
	tests := []struct {
		name string
		note Note
		want bool
	}{
		{"empty", Note{}, true},
		{"whitespace only", Note{Title: "  ", Content: "\n\t"}, true},
		{"title set", Note{Title: "Shopping"}, false},
		{"content set", Note{Content: "milk"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.note.IsBlank())
		})
	}
}

func TestNote_PersistedAndModifiedAt(t *testing.T) {
	require.False(t, Note{}.Persisted())
	require.True(t, Note{ID: 1}.Persisted())

	ts := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	n := Note{Timestamp: ts.UnixMilli()}
	require.True(t, ts.Equal(n.ModifiedAt()))
}

func TestPreferenceKeys(t *testing.T) {
	require.Equal(t, []PreferenceKey{PreferenceTheme, PreferenceLanguage}, PreferenceKeys())
	require.True(t, PreferenceTheme.Known())
	require.False(t, PreferenceKey("font").Known())

	require.True(t, ValidPreferenceValue(PreferenceTheme, "dark"))
	require.False(t, ValidPreferenceValue(PreferenceTheme, "ru"))
	require.True(t, ValidPreferenceValue(PreferenceLanguage, "ru"))
	require.False(t, ValidPreferenceValue(PreferenceKey("font"), "system"))

	choices := PreferenceLanguage.Choices()
	choices[0] = "mutated"
	require.Equal(t, "system", PreferenceLanguage.Choices()[0])
}
