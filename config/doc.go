// Package config provides configuration loading and validation for qtkit.
//
// It uses Viper to load configuration from files and environment variables
// and godotenv to pick up .env files. Two settings drive binding
// resolution: the rendering surface target (which constrains the
// acceptable binding generation) and the QT_API environment override
// (which names a preferred binding dialect).
//
// # Usage
//
//	cfg, err := config.Load("config.yml")
//
// Environment variables override file values using the QTKIT_ prefix
// (e.g., QTKIT_SURFACE). The binding override is read from the plain
// QT_API variable for compatibility with existing tooling that sets it.
package config
