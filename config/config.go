// Package config implements auto-detection of project settings
// from the .csproj file and the layout of the .resw resource tree.
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/minios-linux/reswkit/generator"
	"github.com/minios-linux/reswkit/plural"
	"github.com/minios-linux/reswkit/reswfile"
)

// DefaultOutputDir receives the compiled descriptors.
const DefaultOutputDir = "generated"

// skipDirs are never scanned for resource files.
var skipDirs = map[string]bool{
	"bin":          true,
	"obj":          true,
	".git":         true,
	".vs":          true,
	"node_modules": true,
}

// Project holds the detected (or declared) project configuration.
type Project struct {
	// Name is the module name, used as the resource prefix of libraries.
	Name string
	// Root is the absolute project directory.
	Root string
	// ProjectFile is the .csproj file the metadata came from, if any.
	ProjectFile string
	// RootNamespace prefixes the namespace of every resource.
	RootNamespace string
	IsLibrary     bool
	// DefaultLanguage picks the resource file a class is generated from.
	DefaultLanguage string
	AppType         generator.AppType
	// Basic disables plural, variant and #Format support for all resources.
	Basic bool
	// OutputDir is absolute.
	OutputDir string
	// Resources are the compilation units, one per resource group.
	Resources []Resource
	// Languages are the primary subtags present anywhere in the tree.
	Languages []string
}

// Resource is one resource file to compile, together with its
// translations.
type Resource struct {
	// Path is the absolute path of the default-language file.
	Path string
	// Namespace is the dotted namespace, possibly ending with the
	// language folder.
	Namespace string
	// ClassName overrides the class name derived from the file name.
	ClassName string
	Basic     bool
	// Languages are the language folders holding this resource.
	Languages []string
}

// Name returns the class name of the resource.
func (r Resource) Name() string {
	if r.ClassName != "" {
		return r.ClassName
	}
	return reswfile.ClassName(r.Path)
}

// RelPath returns the resource path relative to the project root.
func (p *Project) RelPath(r Resource) string {
	rel, err := filepath.Rel(p.Root, r.Path)
	if err != nil {
		return r.Path
	}
	return filepath.ToSlash(rel)
}

// Settings returns the generator settings for r.
func (p *Project) Settings(r Resource) generator.Settings {
	return generator.Settings{
		FilePath:         r.Path,
		ClassName:        r.ClassName,
		DefaultNamespace: r.Namespace,
		IsLibrary:        p.IsLibrary,
		ModuleName:       p.Name,
		AppType:          p.AppType,
		Basic:            p.Basic || r.Basic,
	}
}

// Detect auto-detects project settings from the working directory.
func Detect(rootDir string) *Project {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		absRoot = rootDir
	}

	p := &Project{
		Root:      absRoot,
		AppType:   generator.AppTypeUnknown,
		OutputDir: filepath.Join(absRoot, DefaultOutputDir),
	}
	p.detectProjectFile()

	files := findResourceFiles(absRoot, p.OutputDir)
	p.Resources = p.groupResources(files)
	p.Languages = plural.LanguagesFromPaths(files)
	return p
}

// ---------------------------------------------------------------------------
// .csproj metadata
// ---------------------------------------------------------------------------

var (
	assemblyNameRe    = regexp.MustCompile(`<AssemblyName>\s*([^<]+?)\s*</AssemblyName>`)
	rootNamespaceRe   = regexp.MustCompile(`<RootNamespace>\s*([^<]+?)\s*</RootNamespace>`)
	outputTypeRe      = regexp.MustCompile(`<OutputType>\s*([^<]+?)\s*</OutputType>`)
	defaultLanguageRe = regexp.MustCompile(`<DefaultLanguage>\s*([^<]+?)\s*</DefaultLanguage>`)
)

// detectProjectFile fills the project metadata from the first .csproj in
// the root, falling back to the directory name.
func (p *Project) detectProjectFile() {
	matches, _ := filepath.Glob(filepath.Join(p.Root, "*.csproj"))
	sort.Strings(matches)

	if len(matches) > 0 {
		p.ProjectFile = matches[0]
		p.Name = strings.TrimSuffix(filepath.Base(matches[0]), filepath.Ext(matches[0]))
		if data, err := os.ReadFile(matches[0]); err == nil {
			p.applyProjectFile(string(data))
		}
	}

	if p.Name == "" {
		p.Name = filepath.Base(p.Root)
	}
	if p.RootNamespace == "" {
		p.RootNamespace = p.Name
	}
}

func (p *Project) applyProjectFile(content string) {
	if m := assemblyNameRe.FindStringSubmatch(content); m != nil {
		p.Name = m[1]
	}
	if m := rootNamespaceRe.FindStringSubmatch(content); m != nil {
		p.RootNamespace = m[1]
	}
	if m := outputTypeRe.FindStringSubmatch(content); m != nil {
		switch strings.ToLower(m[1]) {
		case "library", "module", "winmdobj":
			p.IsLibrary = true
		}
	}
	if m := defaultLanguageRe.FindStringSubmatch(content); m != nil {
		p.DefaultLanguage = m[1]
	}

	lower := strings.ToLower(content)
	switch {
	case strings.Contains(lower, "microsoft.windowsappsdk"):
		p.AppType = generator.AppTypeMicrosoftResourceLoader
	case strings.Contains(lower, "microsoft.netcore.universalwindowsplatform"),
		strings.Contains(lower, "<targetplatformidentifier>uap</targetplatformidentifier>"):
		p.AppType = generator.AppTypeWindowsResourceLoader
	}
}

// ---------------------------------------------------------------------------
// Resource tree
// ---------------------------------------------------------------------------

// findResourceFiles returns every .resw file under root, sorted.
func findResourceFiles(root, outputDir string) []string {
	var files []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != root && (skipDirs[d.Name()] || path == outputDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if reswfile.IsResourceFile(path) {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files
}

// groupKey identifies the translations of one resource: files with the
// same name in sibling language folders share a key.
func groupKey(path string) (key, lang string) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if name := filepath.Base(dir); plural.IsLanguageTag(name) {
		return filepath.Join(filepath.Dir(dir), strings.ToLower(base)), name
	}
	return path, ""
}

// groupResources turns the file list into one Resource per group, built
// from the default-language file.
func (p *Project) groupResources(files []string) []Resource {
	type group struct {
		files []string
		langs []string
	}
	var order []string
	groups := make(map[string]*group)
	for _, f := range files {
		key, lang := groupKey(f)
		g := groups[key]
		if g == nil {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.files = append(g.files, f)
		if lang != "" {
			g.langs = append(g.langs, lang)
		}
	}

	var out []Resource
	for _, key := range order {
		g := groups[key]
		path := SelectDefaultFile(g.files, p.DefaultLanguage)
		sort.Strings(g.langs)
		out = append(out, Resource{
			Path:      path,
			Namespace: p.namespaceFor(path),
			Languages: g.langs,
		})
	}
	return out
}

// SelectDefaultFile returns the file of files whose parent folder names
// the default language, then "en-US", then "en". Falls back to the first
// file.
func SelectDefaultFile(files []string, defaultLanguage string) string {
	if len(files) == 0 {
		return ""
	}
	candidates := []string{}
	if defaultLanguage != "" {
		candidates = append(candidates, defaultLanguage)
	}
	for _, l := range []string{"en-US", "en"} {
		if !strings.EqualFold(l, defaultLanguage) {
			candidates = append(candidates, l)
		}
	}

	for _, lang := range candidates {
		for _, f := range files {
			if strings.EqualFold(filepath.Base(filepath.Dir(f)), lang) {
				return f
			}
		}
	}
	return files[0]
}

// reselectDefaults points every resource at its file for the current
// default language. Namespaces derived from the old folder follow.
func (p *Project) reselectDefaults() {
	for i := range p.Resources {
		r := &p.Resources[i]
		if len(r.Languages) == 0 {
			continue
		}
		path := SelectDefaultFile(append([]string{r.Path}, p.Files(*r)...), p.DefaultLanguage)
		if r.Namespace == p.namespaceFor(r.Path) {
			r.Namespace = p.namespaceFor(path)
		}
		r.Path = path
	}
}

// namespaceFor appends the directory of path, relative to the project
// root, to the root namespace.
func (p *Project) namespaceFor(path string) string {
	ns := p.RootNamespace
	rel, err := filepath.Rel(p.Root, filepath.Dir(path))
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ns
	}
	extra := strings.ReplaceAll(filepath.ToSlash(rel), "/", ".")
	if ns == "" {
		return extra
	}
	return ns + "." + extra
}

// siblingLanguages lists the language folders next to the folder of path
// that hold a file with the same name.
func siblingLanguages(path string) []string {
	dir := filepath.Dir(path)
	if !plural.IsLanguageTag(filepath.Base(dir)) {
		return nil
	}
	parent := filepath.Dir(dir)
	entries, err := os.ReadDir(parent)
	if err != nil {
		return nil
	}

	var langs []string
	for _, e := range entries {
		if !e.IsDir() || !plural.IsLanguageTag(e.Name()) {
			continue
		}
		if _, err := os.Stat(filepath.Join(parent, e.Name(), filepath.Base(path))); err == nil {
			langs = append(langs, e.Name())
		}
	}
	sort.Strings(langs)
	return langs
}

// AllFiles returns the paths of every language version of every resource.
func (p *Project) AllFiles() []string {
	var files []string
	for _, r := range p.Resources {
		files = append(files, p.Files(r)...)
	}
	return files
}

// Files returns the paths of every language version of r. A resource
// outside a language folder has only its own path.
func (p *Project) Files(r Resource) []string {
	if len(r.Languages) == 0 {
		return []string{r.Path}
	}
	root := filepath.Dir(filepath.Dir(r.Path))
	files := make([]string, 0, len(r.Languages))
	for _, lang := range r.Languages {
		files = append(files, filepath.Join(root, lang, filepath.Base(r.Path)))
	}
	return files
}
