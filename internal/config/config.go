// Package config resolves tool configuration from (in precedence
// order) command-line flags, TK_* environment variables, and a
// config.yaml inside the ticket directory.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// TicketDirName is the per-project directory holding ticket files.
const TicketDirName = ".tickets"

var v *viper.Viper

// Initialize sets up the viper configuration singleton. Called once at
// application startup, before any command runs.
func Initialize() error {
	v = viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// The project ticket directory may hold a config.yaml. Walk up
	// from the CWD so commands work from subdirectories.
	if dir := FindTicketDir(); dir != "" {
		v.AddConfigPath(dir)
	}

	// User-level config (~/.config/tk/)
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "tk"))
	}

	// Environment variables take precedence over the config file:
	// TK_DIR, TK_PREFIX, TK_ACTOR, TK_JSON.
	v.SetEnvPrefix("TK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("dir", "")
	v.SetDefault("prefix", "")
	v.SetDefault("actor", "")
	v.SetDefault("json", false)

	// A missing config file is fine; only report real read errors.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool returns a boolean config value.
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// FindTicketDir walks up from the CWD looking for a .tickets directory.
// Returns "" if none is found.
func FindTicketDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for dir := cwd; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, TicketDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		if dir == filepath.Dir(dir) {
			return ""
		}
	}
}
