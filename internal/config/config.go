// Package config loads headerstamp configuration from YAML files and fills
// in the documented defaults for absent fields.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samber/headerstamp/internal/engine"
)

// File mirrors the on-disk YAML shape. Pointer fields distinguish "absent"
// from zero values so defaults are only applied when a key is missing.
type File struct {
	Template          *string  `yaml:"template"`
	TemplatePath      string   `yaml:"template_path"`
	IncludeTimestamp  bool     `yaml:"include_timestamp"`
	TimestampFormat   *string  `yaml:"timestamp_format"`
	IncludeUpdateTime bool     `yaml:"include_update_time"`
	UpdateTimeFormat  *string  `yaml:"update_time_format"`
	Languages         []string `yaml:"languages"`
	FileExtensions    []string `yaml:"file_extensions"`
	ExcludedFiles     []string `yaml:"excluded_files"`
}

// Load reads configuration from an explicit path or the first of the common
// candidates under root. A missing file is not an error: the result is the
// default configuration.
func Load(explicitPath string, root string) (engine.Config, error) {
	cfg := engine.DefaultConfig()

	var candidates []string
	if explicitPath != "" {
		if !filepath.IsAbs(explicitPath) {
			explicitPath = filepath.Join(root, explicitPath)
		}
		candidates = []string{explicitPath}
	} else {
		candidates = []string{
			filepath.Join(root, ".headerstamp.yaml"),
			filepath.Join(root, ".headerstamp.yml"),
			filepath.Join(root, "headerstamp.yaml"),
			filepath.Join(root, "headerstamp.yml"),
		}
	}

	var (
		loadedPath string
		file       File
	)
	for _, p := range candidates {
		b, err := os.ReadFile(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return cfg, fmt.Errorf("read config %s: %w", p, err)
		}
		if err := yaml.Unmarshal(b, &file); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", p, err)
		}
		loadedPath = p
		break
	}
	if loadedPath == "" {
		return cfg, nil
	}

	if file.Template != nil {
		cfg.Template = *file.Template
	} else if strings.TrimSpace(file.TemplatePath) != "" {
		p := file.TemplatePath
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, p)
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return cfg, fmt.Errorf("read template %s: %w", p, err)
		}
		cfg.Template = string(normalizeNewlines(b))
	}
	cfg.IncludeTimestamp = file.IncludeTimestamp
	cfg.IncludeUpdateTime = file.IncludeUpdateTime
	if file.TimestampFormat != nil {
		cfg.TimestampFormat = *file.TimestampFormat
	}
	if file.UpdateTimeFormat != nil {
		cfg.UpdateTimeFormat = *file.UpdateTimeFormat
	}
	if file.Languages != nil {
		cfg.Languages = file.Languages
	}
	if file.FileExtensions != nil {
		cfg.FileExtensions = file.FileExtensions
	}
	if file.ExcludedFiles != nil {
		cfg.ExcludedFiles = file.ExcludedFiles
	}

	return cfg, nil
}

// normalizeNewlines converts CRLF to LF.
func normalizeNewlines(b []byte) []byte {
	return bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
}
