// reswkit: .resw resource compiler front-end with plural and variant support.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/minios-linux/reswkit/config"
	"github.com/minios-linux/reswkit/diag"
	"github.com/minios-linux/reswkit/export"
	"github.com/minios-linux/reswkit/generator"
	"github.com/minios-linux/reswkit/i18n"
	"github.com/minios-linux/reswkit/lockfile"
	"github.com/minios-linux/reswkit/plural"
	"github.com/minios-linux/reswkit/reswfile"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// logDiagnostic prints d with the helper matching its severity, prefixed
// with the resource it belongs to.
func logDiagnostic(resource string, d diag.Diagnostic) {
	switch d.Severity {
	case diag.SeverityError:
		logError("%s: %s", resource, d)
	case diag.SeverityWarning:
		logWarning("%s: %s", resource, d)
	default:
		logInfo("%s: %s", resource, d)
	}
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "reswkit",
		Short: "Compile .resw resources into typed accessor descriptors",
		Long: `reswkit compiles .resw localization resources into descriptors of
strongly-typed accessor classes: plain strings, pluralized strings, variants
and plural variants, with call signatures taken from #Format directives.

Projects are detected from the .csproj and the resource tree, or declared
in .reswkit.yaml. RESWKIT_* environment variables (also read from .env)
override both.

Commands:
  status      Show project info and resources
  compile     Compile resources into descriptors
  inspect     Compile one resource file and print its descriptor
  plurals     Show the plural rules the project languages need
  version     Show version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			i18n.Init("")
		},
	}

	// Global persistent flag, inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")

	root.AddCommand(
		newStatusCmd(),
		newCompileCmd(),
		newInspectCmd(),
		newPluralsCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("reswkit version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// Shared project flags
// ---------------------------------------------------------------------------

// projectFlags override the loaded project on the command line. They win
// over .reswkit.yaml and the environment.
type projectFlags struct {
	defaultLanguage string
	appType         string
	output          string
	basic           bool
}

func (pf *projectFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&pf.defaultLanguage, "default-language", "", "Language folder the classes are generated from")
	fs.StringVar(&pf.appType, "app-type", "", "Resource loader: "+appTypeNames())
	fs.StringVar(&pf.output, "output", "", "Output directory (default: generated)")
	fs.BoolVar(&pf.basic, "basic", false, "Disable plural, variant and #Format support")
}

// apply reuses the environment override path, so flags and RESWKIT_*
// variables share validation.
func (pf *projectFlags) apply(fs *pflag.FlagSet, proj *config.Project) error {
	e := config.Env{
		DefaultLanguage: pf.defaultLanguage,
		AppType:         pf.appType,
		OutputDir:       pf.output,
	}
	if fs.Changed("basic") {
		e.Basic = &pf.basic
	}
	if pf.appType != "" {
		if _, err := generator.ParseAppType(pf.appType); err != nil {
			return fmt.Errorf("--app-type: %w", err)
		}
	}
	return e.Apply(proj)
}

func appTypeNames() string {
	names := []string{string(generator.AppTypeUnknown)}
	for _, t := range generator.AppTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func loadProject(fs *pflag.FlagSet, pf *projectFlags) (*config.Project, error) {
	proj, err := config.Load(rootDir)
	if err != nil {
		return nil, err
	}
	if pf != nil {
		if err := pf.apply(fs, proj); err != nil {
			return nil, err
		}
	}
	return proj, nil
}

// ---------------------------------------------------------------------------
// status (read-only: project info + resources)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show project info and resources",
		Long: `Show the detected (or declared) project settings, the resources that
would be compiled with their translations, and the lock file state.
Does not modify any files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := loadProject(cmd.Flags(), nil)
			if err != nil {
				return err
			}
			runStatus(proj)
			return nil
		},
	}

	return cmd
}

func runStatus(proj *config.Project) {
	fmt.Fprintf(os.Stderr, "\n%s%s%s\n", colorBlue, i18n.T("Project"), colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))

	fmt.Fprintf(os.Stderr, "  Name:       %s\n", proj.Name)
	fmt.Fprintf(os.Stderr, "  Root:       %s\n", proj.Root)
	if proj.ProjectFile != "" {
		fmt.Fprintf(os.Stderr, "  Project:    %s\n", filepath.Base(proj.ProjectFile))
	}
	fmt.Fprintf(os.Stderr, "  Namespace:  %s\n", proj.RootNamespace)

	kind := "Application"
	if proj.IsLibrary {
		kind = "Library"
	}
	fmt.Fprintf(os.Stderr, "  Type:       %s\n", kind)
	fmt.Fprintf(os.Stderr, "  Loader:     %s\n", proj.AppType)
	if proj.DefaultLanguage != "" {
		fmt.Fprintf(os.Stderr, "  Default:    %s\n", proj.DefaultLanguage)
	}
	if proj.Basic {
		fmt.Fprintf(os.Stderr, "  Mode:       basic\n")
	}
	fmt.Fprintf(os.Stderr, "  Output:     %s\n", proj.OutputDir)

	if fileExists(filepath.Join(proj.Root, config.ReswkitFileName)) {
		fmt.Fprintf(os.Stderr, "  Config:     %s\n", config.ReswkitFileName)
	}

	fmt.Fprintln(os.Stderr)

	if len(proj.Languages) > 0 {
		fmt.Fprintf(os.Stderr, "  Languages:  %s\n", strings.Join(proj.Languages, ", "))
	} else {
		fmt.Fprintf(os.Stderr, "  Languages:  %s\n", i18n.T("none detected"))
	}

	fmt.Fprintln(os.Stderr)

	if len(proj.Resources) == 0 {
		logWarning("%s", i18n.T("No resource files found"))
		printSuggestedCommands()
		return
	}

	showResourcesTable(proj)

	if lf, err := lockfile.Load(proj.Root); err == nil {
		fmt.Fprintf(os.Stderr, "  Lock file:  %s\n\n", lf.Summary())
	}

	printSuggestedCommands()
}

func showResourcesTable(proj *config.Project) {
	rows := make([][3]string, 0, len(proj.Resources))
	width := len("Resource")
	for _, r := range proj.Resources {
		rel := proj.RelPath(r)
		if len(rel) > width {
			width = len(rel)
		}
		langs := "-"
		if len(r.Languages) > 0 {
			langs = strings.Join(r.Languages, ", ")
		}
		rows = append(rows, [3]string{rel, r.Name(), langs})
	}

	fmt.Fprintf(os.Stderr, "%s%s%s\n", colorBlue, i18n.T("Resources"), colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintf(os.Stderr, "\n%-*s  %-20s %s\n", width, "Resource", "Class", "Languages")
	for _, row := range rows {
		fmt.Fprintf(os.Stderr, "%-*s  %-20s %s\n", width, row[0], row[1], row[2])
	}
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintf(os.Stderr, i18n.N("%d resource", "%d resources", len(rows))+"\n", len(rows))
	fmt.Fprintln(os.Stderr)
}

func printSuggestedCommands() {
	fmt.Fprintf(os.Stderr, "%sSuggested Commands%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "  # Compile every changed resource\n")
	fmt.Fprintf(os.Stderr, "  reswkit compile\n\n")
	fmt.Fprintf(os.Stderr, "  # Rebuild everything as JSON\n")
	fmt.Fprintf(os.Stderr, "  reswkit compile --force --format json\n\n")
	fmt.Fprintf(os.Stderr, "  # Show the plural rules of the project languages\n")
	fmt.Fprintf(os.Stderr, "  reswkit plurals\n\n")
}

// ---------------------------------------------------------------------------
// compile (resources -> descriptors)
// ---------------------------------------------------------------------------

func newCompileCmd() *cobra.Command {
	var (
		pf            projectFlags
		format        string
		force         bool
		dryRun        bool
		parallel      bool
		maxConcurrent int
	)

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile resources into descriptors",
		Long: `Compile every resource of the project into a descriptor document.

Resources whose file, translations and settings are unchanged since the last
run are skipped (see reswkit.lock). Diagnostics are printed per resource; an
error diagnostic fails the command and keeps the resource out of the lock
file so it is rebuilt next time.

Examples:
  # Compile changed resources as YAML
  reswkit compile

  # Rebuild everything as JSON into out/
  reswkit compile --force --format json --output out

  # Generate from the French files of a multi-language tree
  reswkit compile --default-language fr`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			proj, err := loadProject(cmd.Flags(), &pf)
			if err != nil {
				return err
			}
			workers := 1
			if parallel {
				workers = maxConcurrent
			}
			return runCompile(proj, compileOptions{format: f, force: force, dryRun: dryRun, workers: workers})
		},
	}

	pf.register(cmd.Flags())
	cmd.Flags().StringVar(&format, "format", "yaml", "Descriptor format: yaml, json")
	cmd.Flags().BoolVar(&force, "force", false, "Recompile unchanged resources")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compile and report without writing files")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Compile resources in parallel")
	cmd.Flags().IntVar(&maxConcurrent, "max-concurrent", 4, "Maximum concurrent compilations (with --parallel)")

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(export.FormatYAML), string(export.FormatJSON)}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("app-type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return strings.Split(appTypeNames(), ", "), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

type compileOptions struct {
	format  export.Format
	force   bool
	dryRun  bool
	workers int
}

// compileResult is the outcome of one resource.
type compileResult struct {
	resource string
	path     string
	skipped  bool
	diags    []diag.Diagnostic
	err      error
}

func (r compileResult) failed() bool {
	if r.err != nil {
		return true
	}
	for _, d := range r.diags {
		if d.Severity == diag.SeverityError {
			return true
		}
	}
	return false
}

func runCompile(proj *config.Project, opts compileOptions) error {
	if len(proj.Resources) == 0 {
		logWarning("%s", i18n.T("No resource files found"))
		return nil
	}

	lf, err := lockfile.Load(proj.Root)
	if err != nil {
		return err
	}

	results := compileAll(proj, lf, opts)

	var compiled, skipped, failed int
	for _, r := range results {
		for _, d := range r.diags {
			logDiagnostic(r.resource, d)
		}
		switch {
		case r.err != nil:
			logError("%s: %v", r.resource, r.err)
			failed++
		case r.failed():
			failed++
		case r.skipped:
			skipped++
		case opts.dryRun:
			logInfo("%s: %s", r.resource, i18n.T("would be compiled"))
			compiled++
		default:
			logSuccess("%s -> %s", r.resource, relTo(proj.Root, r.path))
			compiled++
		}
	}

	if !opts.dryRun {
		targets := make([]string, 0, len(proj.Resources))
		for _, r := range proj.Resources {
			targets = append(targets, lockfile.TargetKey(proj.RelPath(r)))
		}
		lf.Prune(targets)
		if err := lf.Save(); err != nil {
			return err
		}
	}

	if skipped > 0 {
		logInfo(i18n.N("%d resource unchanged", "%d resources unchanged", skipped), skipped)
	}
	if failed > 0 {
		return fmt.Errorf(i18n.N("%d resource failed to compile", "%d resources failed to compile", failed), failed)
	}
	logSuccess(i18n.N("Compiled %d resource", "Compiled %d resources", compiled), compiled)
	return nil
}

// compileAll compiles every resource with up to opts.workers goroutines.
// Results keep the resource order.
func compileAll(proj *config.Project, lf *lockfile.LockFile, opts compileOptions) []compileResult {
	results := make([]compileResult, len(proj.Resources))
	workers := opts.workers
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, r := range proj.Resources {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, r config.Resource) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = compileResource(proj, r, lf, opts)
		}(i, r)
	}
	wg.Wait()
	return results
}

// resourceInputs returns the lock file inputs of r: its settings and the
// content of every language version.
func resourceInputs(proj *config.Project, r config.Resource, f export.Format) (map[string]string, error) {
	s := proj.Settings(r)
	inputs := map[string]string{
		lockfile.SettingsKey: lockfile.SettingsContent(s, proj.Languages) + "\x00" + string(f),
	}
	for _, path := range proj.Files(r) {
		data, err := os.ReadFile(path)
		if err != nil {
			// A translation may be named differently on case-sensitive
			// file systems; only the default file is required.
			if path != r.Path && os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		inputs[lockfile.FileEntryKey(relTo(proj.Root, path))] = string(data)
	}
	return inputs, nil
}

func compileResource(proj *config.Project, r config.Resource, lf *lockfile.LockFile, opts compileOptions) compileResult {
	rel := proj.RelPath(r)
	res := compileResult{resource: rel}
	target := lockfile.TargetKey(rel)

	inputs, err := resourceInputs(proj, r, opts.format)
	if err != nil {
		res.err = err
		return res
	}

	s := proj.Settings(r)
	expected := filepath.Join(proj.OutputDir, export.FileName(&export.Document{
		Class:     r.Name(),
		Namespace: generator.ExtractNamespace(s.DefaultNamespace),
	}, opts.format))

	if !opts.force && len(lf.FilterChanged(target, inputs)) == 0 && fileExists(expected) {
		res.skipped = true
		res.path = expected
		return res
	}

	file, err := reswfile.ParseFile(r.Path)
	if err != nil {
		res.err = err
		return res
	}

	col := &diag.Collector{}
	built := generator.Build(file.Entries, s, col)
	res.diags = col.Diagnostics

	doc := export.New(built, proj.AppType, proj.Languages)
	if opts.dryRun {
		return res
	}

	path, err := export.WriteFile(proj.OutputDir, doc, opts.format)
	if err != nil {
		res.err = err
		return res
	}
	res.path = path

	if col.HasErrors() {
		lf.RemoveTarget(target)
		return res
	}

	keys := make([]string, 0, len(inputs))
	for k := range inputs {
		keys = append(keys, k)
	}
	lf.UpdateBatch(target, inputs)
	lf.Clean(target, keys)
	return res
}

// ---------------------------------------------------------------------------
// inspect (one resource file -> stdout)
// ---------------------------------------------------------------------------

func newInspectCmd() *cobra.Command {
	var (
		format    string
		namespace string
		className string
		library   string
		basic     bool
	)

	cmd := &cobra.Command{
		Use:   "inspect FILE.resw",
		Short: "Compile one resource file and print its descriptor",
		Long: `Compile a single resource file and print its descriptor to stdout.
Diagnostics go to stderr. Nothing is written and the lock file is untouched.

When FILE belongs to the project under --root, the project settings apply;
otherwise the file is compiled on its own.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			proj := config.Detect(rootDir)
			s, languages := inspectSettings(proj, args[0])
			if namespace != "" {
				s.DefaultNamespace = namespace
			}
			if className != "" {
				s.ClassName = className
			}
			if library != "" {
				s.IsLibrary, s.ModuleName = true, library
			}
			if cmd.Flags().Changed("basic") {
				s.Basic = basic
			}

			file, err := reswfile.ParseFile(args[0])
			if err != nil {
				return err
			}

			failed := false
			sink := diag.SinkFunc(func(d diag.Diagnostic) {
				logDiagnostic(filepath.Base(args[0]), d)
				if d.Severity == diag.SeverityError {
					failed = true
				}
			})
			built := generator.Build(file.Entries, s, sink)

			data, err := export.Marshal(export.New(built, s.AppType, languages), f)
			if err != nil {
				return err
			}
			if _, err := os.Stdout.Write(data); err != nil {
				return err
			}
			if failed {
				return fmt.Errorf("%s", i18n.T("compilation reported errors"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Descriptor format: yaml, json")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Namespace of the generated class")
	cmd.Flags().StringVar(&className, "class", "", "Class name (default: file name)")
	cmd.Flags().StringVar(&library, "library", "", "Compile as part of the named library")
	cmd.Flags().BoolVar(&basic, "basic", false, "Disable plural, variant and #Format support")

	return cmd
}

// inspectSettings returns the settings of path within proj, or standalone
// settings when the file is not one of the project's resources.
func inspectSettings(proj *config.Project, path string) (generator.Settings, []string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	for _, r := range proj.Resources {
		for _, f := range proj.Files(r) {
			if f == abs {
				r.Path = abs
				return proj.Settings(r), proj.Languages
			}
		}
	}
	return generator.Settings{FilePath: abs, AppType: generator.AppTypeUnknown},
		plural.LanguagesFromPaths([]string{abs})
}

// ---------------------------------------------------------------------------
// plurals (language -> rule dispatch)
// ---------------------------------------------------------------------------

func newPluralsCmd() *cobra.Command {
	var (
		all   bool
		check bool
	)

	cmd := &cobra.Command{
		Use:   "plurals [LANG...]",
		Short: "Show the plural rules the project languages need",
		Long: `Show which plural rule families must be materialized for a set of
languages and how each language dispatches to them. Without arguments the
languages of the project resource tree are used.

Examples:
  # Rules of the project languages
  reswkit plurals

  # Rules of explicit languages (full tags accepted)
  reswkit plurals ru pt-BR zh-Hans

  # List the whole catalog
  reswkit plurals --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if check {
				if dups := plural.Validate(); len(dups) > 0 {
					return fmt.Errorf("languages listed in more than one rule: %s", strings.Join(dups, ", "))
				}
				logSuccess("%s", i18n.T("Plural rule catalog is consistent"))
				return nil
			}
			if all {
				showCatalog()
				return nil
			}

			langs := splitLanguages(args)
			if len(langs) == 0 {
				proj, err := loadProject(cmd.Flags(), nil)
				if err != nil {
					return err
				}
				langs = proj.Languages
			}
			if len(langs) == 0 {
				logWarning("%s", i18n.T("No languages detected"))
				return nil
			}
			showDispatch(langs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every rule family of the catalog")
	cmd.Flags().BoolVar(&check, "check", false, "Verify that no language belongs to two rules")

	return cmd
}

func showDispatch(langs []string) {
	table := plural.Dispatch(langs)

	fmt.Fprintf(os.Stderr, "\n%s%s%s\n", colorBlue, i18n.T("Plural Rules"), colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	for _, m := range table.Rules {
		fmt.Printf("%-20s %s\n", m.ID, strings.Join(m.Languages, ", "))
	}
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))

	if unknown := unknownLanguages(langs, table); len(unknown) > 0 {
		logInfo("%s: %s -> %s", i18n.T("Default rule"), strings.Join(unknown, ", "), table.Default)
	}
	fmt.Fprintln(os.Stderr)
}

func showCatalog() {
	for _, f := range plural.Families() {
		tags := make([]string, 0, len(f.Languages))
		for _, l := range f.Languages {
			tags = append(tags, l.Tag)
		}
		fmt.Printf("%-20s %s\n", f.ID, strings.Join(tags, " "))
	}
	fmt.Printf("%-20s %s\n", plural.DefaultRuleID, "*")
}

// unknownLanguages returns the primary subtags of langs that fall back to
// the default rule.
func unknownLanguages(langs []string, table plural.Table) []string {
	routed := make(map[string]bool, len(table.Routes))
	for _, r := range table.Routes {
		routed[r.Language] = true
	}
	seen := make(map[string]bool)
	var out []string
	for _, l := range langs {
		tag := plural.PrimarySubtag(l)
		if tag == "" || routed[tag] || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// ---------------------------------------------------------------------------
// Shared helpers
// ---------------------------------------------------------------------------

// splitLanguages accepts both "ru de" and "ru,de", trimming and
// deduplicating entries.
func splitLanguages(args []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, arg := range args {
		for _, l := range strings.Split(arg, ",") {
			l = strings.TrimSpace(l)
			if l == "" || seen[strings.ToLower(l)] {
				continue
			}
			seen[strings.ToLower(l)] = true
			out = append(out, l)
		}
	}
	return out
}

// relTo returns path relative to root, or path itself when it is outside.
func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

// fileExists returns true if the file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
