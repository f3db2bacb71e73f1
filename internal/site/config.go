package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/brain-hol/notes/internal/nav"
)

// DefaultConfigFile is looked up in the working directory when no
// config path is given.
const DefaultConfigFile = "notes.yaml"

// Config is the site configuration.
type Config struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Base        string       `yaml:"base"`
	SrcDir      string       `yaml:"src_dir"`
	OutDir      string       `yaml:"out_dir"`
	BaseURL     string       `yaml:"base_url"`
	Ignore      []string     `yaml:"ignore"`
	Markdown    Markdown     `yaml:"markdown"`
	SocialLinks []SocialLink `yaml:"social_links"`
}

// Markdown holds rendering options.
type Markdown struct {
	Theme string `yaml:"theme"`
}

// SocialLink is an icon link shown in the site header.
type SocialLink struct {
	Icon string `yaml:"icon"`
	Link string `yaml:"link"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Title:    "Notes",
		Base:     "/",
		SrcDir:   "./",
		OutDir:   ".site",
		Ignore:   []string{".git", "node_modules"},
		Markdown: Markdown{Theme: "nord"},
	}
}

// LoadConfig reads the config at path. An empty path tries
// DefaultConfigFile and falls back to DefaultConfig when it is missing.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML over the defaults. Fields left out keep their
// default value.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if strings.TrimSpace(cfg.SrcDir) == "" {
		return Config{}, fmt.Errorf("%w: src_dir is empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.OutDir) == "" {
		return Config{}, fmt.Errorf("%w: out_dir is empty", ErrInvalidConfig)
	}
	if !strings.HasPrefix(cfg.Base, "/") {
		cfg.Base = "/" + cfg.Base
	}
	if !strings.HasSuffix(cfg.Base, "/") {
		cfg.Base += "/"
	}
	return cfg, nil
}

// ContentRoot resolves the absolute content directory against cwd.
func (c Config) ContentRoot(cwd string) string {
	if filepath.IsAbs(c.SrcDir) {
		return filepath.Clean(c.SrcDir)
	}
	return filepath.Join(cwd, c.SrcDir)
}

// OutputDir resolves the absolute output directory against cwd.
func (c Config) OutputDir(cwd string) string {
	if filepath.IsAbs(c.OutDir) {
		return filepath.Clean(c.OutDir)
	}
	return filepath.Join(cwd, c.OutDir)
}

// IgnoreSet returns the configured ignore names. When the output directory
// lives inside the content root, the top-level directory holding it is
// ignored as well so a build never shows up as a category.
func (c Config) IgnoreSet(cwd string) nav.IgnoreSet {
	s := nav.NewIgnoreSet(c.Ignore...)
	if top, ok := outputTop(c.ContentRoot(cwd), c.OutputDir(cwd)); ok {
		s[top] = struct{}{}
	}
	return s
}

// outputTop returns the first path segment of out relative to root, if out
// is below root.
func outputTop(root, out string) (string, bool) {
	rel, err := filepath.Rel(root, out)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	top, _, _ := strings.Cut(filepath.ToSlash(rel), "/")
	return top, true
}
