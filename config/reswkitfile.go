// .reswkit.yaml configuration file support.
//
// When a .reswkit.yaml file exists in the project root, reswkit compiles
// exactly the resources it declares. Project metadata missing from the
// file is still read from the .csproj.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/minios-linux/reswkit/generator"
	"github.com/minios-linux/reswkit/plural"
	"github.com/minios-linux/reswkit/reswfile"
)

// ---------------------------------------------------------------------------
// YAML schema
// ---------------------------------------------------------------------------

// ReswkitFile is the top-level .reswkit.yaml structure.
type ReswkitFile struct {
	// Name is the module name (default: .csproj name or directory name).
	Name string `yaml:"name,omitempty"`
	// Namespace is the root namespace (default: Name).
	Namespace string `yaml:"namespace,omitempty"`
	// Library marks a reusable library; its resource ids get a "Name/" prefix.
	Library *bool `yaml:"library,omitempty"`
	// DefaultLanguage selects which translation a class is generated from.
	DefaultLanguage string `yaml:"default_language,omitempty"`
	// AppType is one of unknown, microsoft-resource-loader,
	// windows-resource-loader, resource-manager.
	AppType string `yaml:"app_type,omitempty"`
	// Basic disables plural, variant and #Format support.
	Basic bool `yaml:"basic,omitempty"`
	// OutputDir is relative to .reswkit.yaml (default "generated").
	OutputDir string `yaml:"output_dir,omitempty"`
	// Resources is the list of resource files to compile.
	Resources []Target `yaml:"resources"`
}

// Target describes a single resource file.
type Target struct {
	// Path is the default-language .resw file relative to .reswkit.yaml.
	Path string `yaml:"path"`
	// Namespace overrides the namespace derived from the folder layout.
	Namespace string `yaml:"namespace,omitempty"`
	// ClassName overrides the class name derived from the file name.
	ClassName string `yaml:"class_name,omitempty"`
	// Basic disables plural, variant and #Format support for this file.
	Basic bool `yaml:"basic,omitempty"`
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// ReswkitFileName is the default config file name.
const ReswkitFileName = ".reswkit.yaml"

// LoadReswkitFile loads and validates .reswkit.yaml from the given directory.
// Returns nil if no .reswkit.yaml exists.
func LoadReswkitFile(rootDir string) (*ReswkitFile, error) {
	path := filepath.Join(rootDir, ReswkitFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	// Unknown keys are rejected so that typos do not silently fall back
	// to defaults.
	var rf ReswkitFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if rf.OutputDir == "" {
		rf.OutputDir = DefaultOutputDir
	}
	if _, err := generator.ParseAppType(rf.AppType); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rf.Resources) == 0 {
		return nil, fmt.Errorf("%s: no resources declared", path)
	}

	seen := make(map[string]bool)
	for i, t := range rf.Resources {
		if t.Path == "" {
			return nil, fmt.Errorf("%s: resource #%d has no path", path, i+1)
		}
		if !reswfile.IsResourceFile(t.Path) {
			return nil, fmt.Errorf("%s: resource %q is not a %s file", path, t.Path, reswfile.Extension)
		}
		clean := filepath.Clean(t.Path)
		if seen[clean] {
			return nil, fmt.Errorf("%s: resource %q declared twice", path, t.Path)
		}
		seen[clean] = true
	}

	return &rf, nil
}

// ---------------------------------------------------------------------------
// Resolving to a Project
// ---------------------------------------------------------------------------

// Resolve builds the Project described by rf. Metadata the file leaves out
// comes from the .csproj in projectRoot.
func (rf *ReswkitFile) Resolve(projectRoot string) (*Project, error) {
	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, err
	}

	p := &Project{Root: absRoot, AppType: generator.AppTypeUnknown}
	p.detectProjectFile()

	if rf.Name != "" {
		p.Name = rf.Name
		if rf.Namespace == "" {
			p.RootNamespace = rf.Name
		}
	}
	if rf.Namespace != "" {
		p.RootNamespace = rf.Namespace
	}
	if rf.Library != nil {
		p.IsLibrary = *rf.Library
	}
	if rf.DefaultLanguage != "" {
		p.DefaultLanguage = rf.DefaultLanguage
	}
	if rf.AppType != "" {
		p.AppType, _ = generator.ParseAppType(rf.AppType)
	}
	p.Basic = rf.Basic
	p.OutputDir = filepath.Join(absRoot, rf.OutputDir)

	var files []string
	for _, t := range rf.Resources {
		abs := filepath.Join(absRoot, t.Path)
		if _, err := os.Stat(abs); err != nil {
			return nil, fmt.Errorf("resource %s: %w", t.Path, err)
		}

		r := Resource{
			Path:      abs,
			Namespace: t.Namespace,
			ClassName: t.ClassName,
			Basic:     t.Basic,
			Languages: siblingLanguages(abs),
		}
		if r.Namespace == "" {
			r.Namespace = p.namespaceFor(abs)
		}
		p.Resources = append(p.Resources, r)
		files = append(files, p.Files(r)...)
	}
	p.Languages = plural.LanguagesFromPaths(files)

	return p, nil
}

// Load returns the project in rootDir: the one declared by .reswkit.yaml
// when present, otherwise the detected one, with the RESWKIT_* environment
// overrides applied.
func Load(rootDir string) (*Project, error) {
	rf, err := LoadReswkitFile(rootDir)
	if err != nil {
		return nil, err
	}

	var p *Project
	if rf == nil {
		p = Detect(rootDir)
	} else if p, err = rf.Resolve(rootDir); err != nil {
		return nil, err
	}

	e, err := LoadEnv(rootDir)
	if err != nil {
		return nil, err
	}
	if err := e.Apply(p); err != nil {
		return nil, err
	}
	return p, nil
}
