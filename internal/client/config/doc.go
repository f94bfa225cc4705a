// Package config loads runtime configuration for the crystalpad shell.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment (see parseEnv), including a .env file in the working directory.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the notes database
//	-l string   system language
//	-v string   log level
//
// # JSON schema
//
//	{
//	  "database_path": "/home/me/.local/share/crystalpad.db",
//	  "system_language": "ru",
//	  "log_level": "debug"
//	}
//
// # Environment
//
//	CRYSTALPAD_DB          database path
//	CRYSTALPAD_LANG        system language (falls back to LANG)
//	CRYSTALPAD_LOG_LEVEL   log level
package config
