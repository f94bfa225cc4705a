package i18n

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranslator_SystemLanguage(t *testing.T) {
	tests := []struct {
		system string
		want   string
	}{
		{"ru_RU.UTF-8", "ru"},
		{"en-US", "en"},
		{"RU", "ru"},
		{"de_DE", "en"},
		{"", "en"},
		{"C", "en"},
		{"ru_RU@euro", "ru"},
		{"uk_UA.UTF-8", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.system, func(t *testing.T) {
			assert.Equal(t, tt.want, NewTranslator(tt.system).Language())
		})
	}
}

func TestBaseLanguage(t *testing.T) {
	assert.Equal(t, "ru", baseLanguage("ru_RU.UTF-8"))
	assert.Equal(t, "en", baseLanguage(" en-GB "))
	assert.Equal(t, "de", baseLanguage("de"))
	assert.Empty(t, baseLanguage(""))
}

func TestApply_Resolution(t *testing.T) {
	tr := NewTranslator("ru_RU")

	tr.Apply("en")
	assert.Equal(t, "en", tr.Language())

	tr.Apply("system")
	assert.Equal(t, "ru", tr.Language())

	tr.Apply("fr")
	assert.Equal(t, "en", tr.Language(), "unsupported saved value falls back to English")
}

func TestT_LooksUpOrReturnsKey(t *testing.T) {
	tr := NewTranslator("en")
	assert.Equal(t, "Delete", tr.T("delete"))
	assert.Equal(t, "nonexistent_key", tr.T("nonexistent_key"))

	tr.Apply("ru")
	assert.Equal(t, "Удалить", tr.T("delete"))
	assert.Equal(t, "Вы уверены?", tr.T("delete_confirmation_title"))
}

func TestTables_HaveSameKeys(t *testing.T) {
	for key := range translations["en"] {
		_, ok := translations["ru"][key]
		assert.True(t, ok, "ru is missing %q", key)
	}
	assert.Len(t, translations["ru"], len(translations["en"]))
}

func TestOnChange_CalledOnlyOnSwitch(t *testing.T) {
	tr := NewTranslator("en")
	var got []string
	tr.OnChange(func(lang string) { got = append(got, lang) })

	tr.Apply("en")
	tr.Apply("system")
	tr.Apply("ru")
	tr.Apply("ru")
	tr.Apply("system")

	assert.Equal(t, []string{"ru", "en"}, got)
}

func TestFollow_AppliesStreamUntilClosed(t *testing.T) {
	tr := NewTranslator("en")
	stream := make(chan string)
	done := make(chan struct{})

	var mu sync.Mutex
	var seen []string
	tr.OnChange(func(lang string) {
		mu.Lock()
		seen = append(seen, lang)
		mu.Unlock()
	})

	go func() {
		tr.Follow(context.Background(), stream)
		close(done)
	}()

	stream <- "system"
	stream <- "ru"
	close(stream)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Follow did not return after stream closed")
	}
	assert.Equal(t, "ru", tr.Language())
	mu.Lock()
	assert.Equal(t, []string{"ru"}, seen)
	mu.Unlock()
}

func TestFollow_StopsOnContext(t *testing.T) {
	tr := NewTranslator("en")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		tr.Follow(ctx, make(chan string))
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.Fail(t, "Follow ignored cancellation")
	}
}
