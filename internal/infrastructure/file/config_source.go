package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	app "github.com/sqlplayground/playground/internal/application/seed"
	domain "github.com/sqlplayground/playground/internal/domain/seed"
)

// ConfigSource loads generation configs from JSON files for the CLI.
type ConfigSource struct {
	BaseDir string
}

func NewConfigSource(baseDir string) *ConfigSource {
	if baseDir == "" {
		baseDir = "."
	}
	return &ConfigSource{BaseDir: baseDir}
}

func (s *ConfigSource) Load(sourcePath string, now time.Time) (domain.Config, error) {
	path := sourcePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.BaseDir, sourcePath)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var request app.ConfigRequest
	if err := json.Unmarshal(raw, &request); err != nil {
		return domain.Config{}, fmt.Errorf("%w: config file %s: %v", domain.ErrInvalidConfig, path, err)
	}

	return request.ToConfig(now)
}
