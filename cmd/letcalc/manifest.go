package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"letcalc/internal/driver"
)

const (
	manifestName        = "letcalc.toml"
	noManifestMessage   = "no letcalc.toml found\nplease specify the program explicitly, e.g.:\n  letcalc run path/to/main.calc"
	missingMainTemplate = "%s: missing [run].main\nset it or pass the program explicitly"
)

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
	meta   toml.MetaData
}

type projectConfig struct {
	Package packageConfig `toml:"package"`
	Run     runConfig     `toml:"run"`
	Limits  limitsConfig  `toml:"limits"`
	Output  outputConfig  `toml:"output"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type runConfig struct {
	Main string `toml:"main"`
}

type limitsConfig struct {
	MaxDepth int `toml:"max_depth"`
}

type outputConfig struct {
	Format string `toml:"format"`
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, meta, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
		meta:   meta,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, toml.MetaData, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, meta, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return projectConfig{}, meta, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if !meta.IsDefined("package") {
		return projectConfig{}, meta, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return projectConfig{}, meta, fmt.Errorf("%s: missing [package].name", path)
	}
	if meta.IsDefined("limits", "max_depth") && cfg.Limits.MaxDepth < 0 {
		return projectConfig{}, meta, fmt.Errorf("%s: [limits].max_depth must be >= 0", path)
	}
	if meta.IsDefined("output", "format") {
		switch cfg.Output.Format {
		case "pretty", "json":
		default:
			return projectConfig{}, meta, fmt.Errorf("%s: [output].format must be pretty or json, got %q", path, cfg.Output.Format)
		}
	}
	return cfg, meta, nil
}

// maxDepth returns [limits].max_depth if the manifest sets it.
func (m *projectManifest) maxDepth() (int, bool) {
	if m == nil || !m.meta.IsDefined("limits", "max_depth") {
		return 0, false
	}
	return m.Config.Limits.MaxDepth, true
}

// outputFormat returns [output].format if the manifest sets it.
func (m *projectManifest) outputFormat() (string, bool) {
	if m == nil || !m.meta.IsDefined("output", "format") {
		return "", false
	}
	return m.Config.Output.Format, true
}

// resolveManifestTarget turns [run].main into a file or directory path.
func resolveManifestTarget(manifest *projectManifest) (string, error) {
	if manifest == nil {
		return "", errors.New(noManifestMessage)
	}
	mainRel := strings.TrimSpace(manifest.Config.Run.Main)
	if mainRel == "" {
		return "", fmt.Errorf(missingMainTemplate, manifest.Path)
	}
	mainPath := filepath.Join(manifest.Root, filepath.FromSlash(mainRel))
	info, err := os.Stat(mainPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: [run].main path does not exist: %s", manifest.Path, mainPath)
		}
		return "", fmt.Errorf("%s: failed to stat [run].main: %w", manifest.Path, err)
	}
	if !info.IsDir() && filepath.Ext(mainPath) != driver.SourceExt {
		return "", fmt.Errorf("%s: [run].main must be a %s file or directory", manifest.Path, driver.SourceExt)
	}
	return mainPath, nil
}
