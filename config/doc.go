// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The feed credential is merged in from the environment so it never lives
// in the configuration file.
package config
