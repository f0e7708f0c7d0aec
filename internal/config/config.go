package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"vaultsync/internal/domain"
)

// EnvConfig names the environment variable that overrides config discovery.
const EnvConfig = "VAULTSYNC_CONFIG"

// DefaultNames are the config file names probed, in order, when no explicit
// path is given.
var DefaultNames = []string{".vaultsync.json", ".vaultsync.yaml", "vaultsync.json"}

// File is the parsed sync configuration. It is read once per invocation and
// never written back.
type File struct {
	TargetVault string    `json:"targetVault" yaml:"targetVault"`
	Mappings    []Mapping `json:"mappings" yaml:"mappings"`
	Options     Options   `json:"options,omitempty" yaml:"options,omitempty"`

	// Path is the file the configuration was loaded from. Not part of the
	// document itself.
	Path string `json:"-" yaml:"-"`
}

// Mapping is one source-to-destination rule. RepoPath and VaultPath are
// accepted as aliases for Source and Target; normalize folds them into the
// canonical fields, with the canonical key winning when both are present.
type Mapping struct {
	Source          string `json:"source,omitempty" yaml:"source,omitempty"`
	Target          string `json:"target,omitempty" yaml:"target,omitempty"`
	RepoPath        string `json:"repoPath,omitempty" yaml:"repoPath,omitempty"`
	VaultPath       string `json:"vaultPath,omitempty" yaml:"vaultPath,omitempty"`
	PreserveDirName bool   `json:"preserveDirName,omitempty" yaml:"preserveDirName,omitempty"`
}

// Options holds the sync toggles. Everything defaults to off.
type Options struct {
	AddMetadata      bool             `json:"addMetadata,omitempty" yaml:"addMetadata,omitempty"`
	MetadataTemplate MetadataTemplate `json:"metadataTemplate,omitempty" yaml:"metadataTemplate,omitempty"`
	StrictCollisions bool             `json:"strictCollisions,omitempty" yaml:"strictCollisions,omitempty"`
}

// MetadataTemplate selects which lines the provenance block carries.
type MetadataTemplate struct {
	AddGitMetadata   bool `json:"addGitMetadata,omitempty" yaml:"addGitMetadata,omitempty"`
	AddSyncTimestamp bool `json:"addSyncTimestamp,omitempty" yaml:"addSyncTimestamp,omitempty"`
}

// Load reads and parses the configuration at path. YAML is used for .yaml
// and .yml files, JSON for everything else.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	f, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	f.Path = path
	return f, nil
}

// Parse parses config data. The path argument is only used to pick the
// codec and to label parse errors.
func Parse(data []byte, path string) (*File, error) {
	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	f.Normalize()

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &f, nil
}

// Normalize folds mapping aliases into the canonical fields and expands a
// leading ~ in targetVault and mapping sources. Parse runs it before
// validating; hand-built configurations must call it themselves.
func (f *File) Normalize() {
	f.TargetVault = expandHome(f.TargetVault)

	for i := range f.Mappings {
		m := &f.Mappings[i]
		if m.Source == "" {
			m.Source = m.RepoPath
		}
		if m.Target == "" {
			m.Target = m.VaultPath
		}
		m.RepoPath = ""
		m.VaultPath = ""
		m.Source = expandHome(m.Source)
	}
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}

// Validate checks the document-level invariants. Normalize must have run
// first so aliases are already folded.
func (f *File) Validate() error {
	err := validation.ValidateStruct(f,
		validation.Field(&f.TargetVault,
			validation.Required.Error("targetVault is required"),
			validation.By(absolutePath),
		),
	)
	if err != nil {
		return err
	}

	if len(f.Mappings) == 0 {
		return validation.NewError("validation_mappings", "at least one mapping is required")
	}

	for i, m := range f.Mappings {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("mapping %d: %w", i+1, err)
		}
	}
	return nil
}

// Validate checks that one mapping carries both a source and a target.
func (m Mapping) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Source, validation.Required.Error("source (or repoPath) is required")),
		validation.Field(&m.Target, validation.Required.Error("target (or vaultPath) is required")),
	)
}

func absolutePath(value any) error {
	s, _ := value.(string)
	if s != "" && !filepath.IsAbs(s) {
		return validation.NewError("validation_abs_path", "must be an absolute path")
	}
	return nil
}

// DefaultPath resolves the config file to use when the CLI got no explicit
// path: the VAULTSYNC_CONFIG environment variable if set, otherwise the
// first of DefaultNames that exists in dir. Returns an error naming the
// probed candidates when nothing is found.
func DefaultPath(dir string) (string, error) {
	if env := os.Getenv(EnvConfig); env != "" {
		return env, nil
	}
	for _, name := range DefaultNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no config file found (looked for %s)", strings.Join(DefaultNames, ", "))
}

// WriteFile serializes a configuration to path, picking the codec from the
// extension the same way Load does. Used by init to scaffold a new config.
func WriteFile(f *File, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(f)
	default:
		data, err = json.MarshalIndent(f, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// DomainMappings converts the configured mappings into their domain form,
// preserving order.
func (f *File) DomainMappings() []domain.Mapping {
	out := make([]domain.Mapping, len(f.Mappings))
	for i, m := range f.Mappings {
		out[i] = domain.Mapping{
			Source:          m.Source,
			Target:          m.Target,
			PreserveDirName: m.PreserveDirName,
		}
	}
	return out
}

// DomainOptions converts the configured options into their domain form.
func (f *File) DomainOptions() domain.SyncOptions {
	return domain.SyncOptions{
		AddMetadata: f.Options.AddMetadata,
		Metadata: domain.MetadataOptions{
			AddGitMetadata:   f.Options.MetadataTemplate.AddGitMetadata,
			AddSyncTimestamp: f.Options.MetadataTemplate.AddSyncTimestamp,
		},
		StrictCollisions: f.Options.StrictCollisions,
	}
}
