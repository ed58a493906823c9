package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"asm09/internal/trace"
)

const manifestName = "asm09.toml"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Workspace workspaceConfig `toml:"workspace"`
	Trace     traceConfig     `toml:"trace"`
	Opcodes   opcodesConfig   `toml:"opcodes"`
}

type workspaceConfig struct {
	Root       string   `toml:"root"`
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
	Jobs       int      `toml:"jobs"`
}

type traceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
}

type opcodesConfig struct {
	Table string `toml:"table"`
}

// commandManifest and commandConfig hold the manifest loaded for the running
// command; both are nil when none was found.
var (
	commandManifest *projectManifest
	commandConfig   *projectConfig
)

func loadCommandConfig(cmd *cobra.Command) error {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	var manifest *projectManifest
	if path != "" {
		manifest, err = loadManifestFile(path)
	} else {
		manifest, _, err = loadProjectManifest(".")
	}
	if err != nil {
		return err
	}
	if manifest != nil {
		commandManifest = manifest
		commandConfig = &manifest.Config
	}
	return nil
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
	m, err := loadManifestFile(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

func loadManifestFile(path string) (*projectManifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	cfg, err := loadProjectConfig(abs)
	if err != nil {
		return nil, err
	}
	return &projectManifest{
		Path:   abs,
		Root:   filepath.Dir(abs),
		Config: cfg,
	}, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return projectConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("workspace", "jobs") && cfg.Workspace.Jobs < 0 {
		return projectConfig{}, fmt.Errorf("%s: [workspace].jobs must not be negative", path)
	}
	if meta.IsDefined("trace", "level") {
		if _, err := trace.ParseLevel(cfg.Trace.Level); err != nil {
			return projectConfig{}, fmt.Errorf("%s: [trace].level: %w", path, err)
		}
	}
	for i, ext := range cfg.Workspace.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.Workspace.Extensions[i] = ext
	}
	return cfg, nil
}

// workspaceRoot returns the directory to index: the argument when given,
// else [workspace].root relative to the manifest, else the working directory.
func workspaceRoot(args []string) (string, error) {
	if len(args) > 0 {
		return filepath.Abs(args[0])
	}
	if m := commandManifest; m != nil {
		root := m.Config.Workspace.Root
		if root == "" {
			return m.Root, nil
		}
		if !filepath.IsAbs(root) {
			root = filepath.Join(m.Root, filepath.FromSlash(root))
		}
		return filepath.Clean(root), nil
	}
	return filepath.Abs(".")
}

// resolveOpcodeTable returns the extra documentation table path, relative
// paths resolved against the manifest directory.
func resolveOpcodeTable() string {
	m := commandManifest
	if m == nil || m.Config.Opcodes.Table == "" {
		return ""
	}
	table := m.Config.Opcodes.Table
	if !filepath.IsAbs(table) {
		table = filepath.Join(m.Root, filepath.FromSlash(table))
	}
	return table
}
