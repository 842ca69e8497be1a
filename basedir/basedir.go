// Package basedir resolves the configuration directories of the
// [XDG Base Directory Specification] that are searched for mime.types and configuration files.
//
// [XDG Base Directory Specification]: https://specifications.freedesktop.org/basedir-spec/0.8/
package basedir

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	// ConfigHome is the single base directory relative to which user-specific configuration files
	// should be written. This directory is defined by the environment variable $XDG_CONFIG_HOME.
	ConfigHome string

	// ConfigDirs is a set of preference ordered base directories relative to which configuration
	// files should be searched. This set of directories is defined by the environment
	// variable $XDG_CONFIG_DIRS.
	ConfigDirs []string

	// Home is the equivalent of $HOME. It will always be non-empty.
	Home string
)

func init() {
	Reinit()
}

// Reinit reinitializes the basedir values. Use this if you change XDG environment variables.
func Reinit() {
	home := os.Getenv("HOME")
	if home == "" {
		// $HOME must always be set in a POSIX environment.
		panic("$HOME environment variable not set")
	}

	ConfigHome = singleVar("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	ConfigDirs = listVar("XDG_CONFIG_DIRS", []string{"/etc/xdg"})
	Home = home
}

// singleVar returns the value of the environment variable if it is an absolute path.
func singleVar(envName string, defaultValue string) string {
	envValue := os.Getenv(envName)
	if envValue == "" || !filepath.IsAbs(envValue) {
		return defaultValue
	}

	return envValue
}

// listVar returns the absolute paths of a colon separated environment variable.
// Relative paths are dropped. If none remain, defaultValue is returned.
func listVar(envName string, defaultValue []string) []string {
	envValue := os.Getenv(envName)
	if envValue == "" {
		return defaultValue
	}

	result := make([]string, 0)
	for _, path := range strings.Split(envValue, ":") {
		if path == "" || !filepath.IsAbs(path) {
			continue
		}

		result = append(result, path)
	}

	if len(result) == 0 {
		return defaultValue
	}

	return result
}
