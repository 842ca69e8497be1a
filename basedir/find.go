package basedir

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigPaths returns the candidate paths of a configuration file, highest precedence first.
// $XDG_CONFIG_HOME comes first, followed by each directory in $XDG_CONFIG_DIRS.
// Existence of the files is not checked.
// Example for suffix: mimetype/config.yaml.
func ConfigPaths(suffix string) []string {
	paths := make([]string, 0, len(ConfigDirs)+1)
	paths = append(paths, filepath.Join(ConfigHome, suffix))
	for _, dir := range ConfigDirs {
		paths = append(paths, filepath.Join(dir, suffix))
	}

	return paths
}

// FindConfigFile returns the first path of [ConfigPaths] that exists.
// If none exists, an empty string and no error are returned.
func FindConfigFile(suffix string) (string, error) {
	for _, path := range ConfigPaths(suffix) {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			return path, nil
		case os.IsNotExist(err):
		default:
			return "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	return "", nil
}
