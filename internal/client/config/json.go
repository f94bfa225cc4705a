package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/crystalpad/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// leave the corresponding Config value untouched.
type JsonConfig struct {
	DatabasePath   string `json:"database_path"`
	SystemLanguage string `json:"system_language"`
	LogLevel       string `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. It does nothing when neither flag is given and panics on
// read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SystemLanguage != "" {
		cfg.SystemLanguage = jc.SystemLanguage
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
