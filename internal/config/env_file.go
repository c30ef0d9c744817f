package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnvFile reads the dotenv file referenced by the config, resolved
// against root when relative. An empty path yields no overlay; a configured
// but unreadable file is a load error.
func LoadEnvFile(root, path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	p := path
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	env, err := godotenv.Read(p)
	if err != nil {
		return nil, loadErrorf("failed to read env file %s: %v", path, err)
	}
	return env, nil
}
