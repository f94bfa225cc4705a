// Package i18n resolves localized UI strings for the active language.
package i18n

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/crystalpad/internal/client/models"
	"golang.org/x/text/language"
)

const fallbackLanguage = models.LanguageEnglish

// Translator holds the active language and looks strings up in it.
// A zero Translator is not usable; construct one with NewTranslator.
type Translator struct {
	system string

	mu        sync.RWMutex
	lang      string
	listeners []func(lang string)
}

// NewTranslator starts in the system language, or English when the system
// language is not supported. systemLang may be a locale such as "ru_RU.UTF-8".
func NewTranslator(systemLang string) *Translator {
	t := &Translator{system: baseLanguage(systemLang)}
	t.lang = t.resolve(models.LanguageSystem)
	return t
}

// Supported reports whether there is a string table for lang.
func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}

// T returns the string for key in the active language, or key itself.
func (t *Translator) T(key string) string {
	t.mu.RLock()
	lang := t.lang
	t.mu.RUnlock()

	if s, ok := translations[lang][key]; ok {
		return s
	}
	return key
}

func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// Apply switches to the language named by a stored preference value and
// notifies listeners when the active language changes.
func (t *Translator) Apply(saved string) {
	next := t.resolve(saved)

	t.mu.Lock()
	if next == t.lang {
		t.mu.Unlock()
		return
	}
	t.lang = next
	listeners := append([]func(string){}, t.listeners...)
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}

// OnChange registers fn to be called with the new language after each switch.
func (t *Translator) OnChange(fn func(lang string)) {
	t.mu.Lock()
	t.listeners = append(t.listeners, fn)
	t.mu.Unlock()
}

// Follow applies every value read from stream until the stream closes or
// ctx is done. It blocks; run it in its own goroutine.
func (t *Translator) Follow(ctx context.Context, stream <-chan string) {
	for {
		select {
		case v, ok := <-stream:
			if !ok {
				return
			}
			t.Apply(v)
		case <-ctx.Done():
			return
		}
	}
}

func (t *Translator) resolve(saved string) string {
	switch {
	case saved == models.LanguageSystem:
		if Supported(t.system) {
			return t.system
		}
		return fallbackLanguage
	case Supported(saved):
		return saved
	default:
		return fallbackLanguage
	}
}

// baseLanguage reduces a POSIX locale ("ru_RU.UTF-8") or BCP 47 tag
// ("en-US") to its base language. Unparsable locales such as "C" give "".
func baseLanguage(locale string) string {
	l := strings.TrimSpace(locale)
	if i := strings.IndexAny(l, ".@"); i >= 0 {
		l = l[:i]
	}
	tag, err := language.Parse(l)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}
