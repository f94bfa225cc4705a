package models

// PreferenceKey names one of the independent string settings.
type PreferenceKey string

const (
	PreferenceTheme    PreferenceKey = "theme"
	PreferenceLanguage PreferenceKey = "language"
)

// DefaultPreference is what an unset preference reads as.
const DefaultPreference = "system"

const (
	ThemeSystem = "system"
	ThemeDark   = "dark"
	ThemeLight  = "light"

	LanguageSystem  = "system"
	LanguageEnglish = "en"
	LanguageRussian = "ru"
)

var preferenceValues = map[PreferenceKey][]string{
	PreferenceTheme:    {ThemeSystem, ThemeDark, ThemeLight},
	PreferenceLanguage: {LanguageSystem, LanguageEnglish, LanguageRussian},
}

// PreferenceKeys lists the known keys in a stable order.
func PreferenceKeys() []PreferenceKey {
	return []PreferenceKey{PreferenceTheme, PreferenceLanguage}
}

// Known reports whether k is one of the supported preference keys.
func (k PreferenceKey) Known() bool {
	_, ok := preferenceValues[k]
	return ok
}

// Choices returns the values a user may pick for k.
func (k PreferenceKey) Choices() []string {
	return append([]string(nil), preferenceValues[k]...)
}

// ValidPreferenceValue reports whether v is an offered choice for k.
func ValidPreferenceValue(k PreferenceKey, v string) bool {
	for _, c := range preferenceValues[k] {
		if c == v {
			return true
		}
	}
	return false
}
