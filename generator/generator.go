// Package generator builds the semantic model of one resource file: it
// filters and groups the raw entries, resolves each #Format directive and
// assembles the class model handed to a code emitter.
package generator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/minios-linux/reswkit/diag"
	"github.com/minios-linux/reswkit/formattag"
	"github.com/minios-linux/reswkit/grouping"
	"github.com/minios-linux/reswkit/model"
	"github.com/minios-linux/reswkit/plural"
	"github.com/minios-linux/reswkit/reswfile"
)

// AppType selects the runtime resource loader the emitted code targets.
// It does not change the model.
type AppType string

const (
	AppTypeUnknown                 AppType = "unknown"
	AppTypeMicrosoftResourceLoader AppType = "microsoft-resource-loader"
	AppTypeWindowsResourceLoader   AppType = "windows-resource-loader"
	AppTypeResourceManager         AppType = "resource-manager"
)

// AppTypes lists the known app types.
var AppTypes = []AppType{
	AppTypeMicrosoftResourceLoader,
	AppTypeWindowsResourceLoader,
	AppTypeResourceManager,
}

// ParseAppType resolves an app type name case-insensitively. An empty name
// is AppTypeUnknown.
func ParseAppType(s string) (AppType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(AppTypeUnknown) {
		return AppTypeUnknown, nil
	}
	for _, t := range AppTypes {
		if s == string(t) {
			return t, nil
		}
	}
	return AppTypeUnknown, fmt.Errorf("unknown app type %q", s)
}

// Settings describes the resource file being compiled and its project.
type Settings struct {
	// FilePath is the resource file; ClassName defaults to its base name.
	FilePath  string
	ClassName string
	// DefaultNamespace is the dotted namespace of the generated class.
	// A trailing culture segment is removed, see ExtractNamespace.
	DefaultNamespace string
	IsLibrary        bool
	ModuleName       string
	AppType          AppType
	// Basic disables plural/variant grouping and directive parsing: every
	// entry becomes a plain property.
	Basic bool
}

func (s Settings) className() string {
	if s.ClassName != "" {
		return s.ClassName
	}
	return reswfile.ClassName(s.FilePath)
}

// ResourceID returns the name the runtime loader resolves the resource
// file by. Resources of a library live under the library's name.
func (s Settings) ResourceID() string {
	name := s.className()
	if s.IsLibrary && s.ModuleName != "" {
		return s.ModuleName + "/" + name
	}
	return name
}

// Result is the compiled model of one resource file.
type Result struct {
	Model *model.ClassModel
	// ContainsPlural is set when a localization selects plural forms.
	ContainsPlural bool
	// ContainsMacro is set when a parameter references a macro.
	ContainsMacro bool
}

const (
	summaryPlural  = "Get the pluralized version of the string similar to: "
	summaryVariant = "Get the variant version of the string similar to: "
	summaryPlain   = "Looks up a localized string similar to: "
)

var reSpace = regexp.MustCompile(`\s+`)

func singleLine(s string) string {
	return strings.TrimSpace(reSpace.ReplaceAllString(s, " "))
}

// ExtractNamespace splits a dotted namespace into segments. A last segment
// naming a culture (e.g. "fr" or "en_US") is dropped, since default
// namespaces derived from folder layouts end with the language folder.
func ExtractNamespace(ns string) []string {
	ns = strings.TrimSpace(ns)
	if ns == "" {
		return nil
	}
	parts := strings.Split(ns, ".")
	if plural.IsLanguageTag(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Build compiles entries into a class model. Problems with individual
// entries are reported to sink; they never abort the build.
func Build(entries []model.RawEntry, s Settings, sink diag.Sink) *Result {
	sink = diag.OrDiscard(sink)

	cm := &model.ClassModel{
		ClassName:  s.className(),
		Namespaces: ExtractNamespace(s.DefaultNamespace),
		ResourceID: s.ResourceID(),
	}
	res := &Result{Model: cm}

	valid := grouping.Filter(entries)

	if s.Basic {
		for _, e := range valid {
			cm.Localizations = append(cm.Localizations,
				model.NewLocalization(model.KindPlain, e.Key, summaryPlain+singleLine(e.Value)))
		}
		return res
	}

	reportDeprecated(valid, sink)

	families, standalone := grouping.Group(valid)
	b := builder{resourceID: cm.ResourceID, siblings: standalone, sink: sink}

	for _, f := range families {
		if l := b.family(f); l != nil {
			cm.Localizations = append(cm.Localizations, l)
		}
	}
	for _, e := range standalone {
		cm.Localizations = append(cm.Localizations, b.plain(e))
	}

	for _, l := range cm.Localizations {
		if model.KindOf(l).SupportsPlural() {
			res.ContainsPlural = true
		}
		for _, p := range l.Base().Parameters {
			if _, ok := p.(*model.MacroParameter); ok {
				res.ContainsMacro = true
			}
		}
	}
	return res
}

func reportDeprecated(entries []model.RawEntry, sink diag.Sink) {
	for _, e := range entries {
		if !formattag.IsDeprecated(e.Comment) {
			continue
		}
		sink.Report(diag.Diagnostic{
			Code:     diag.CodeDeprecatedTag,
			Severity: diag.SeverityError,
			Key:      e.Key,
			Message:  fmt.Sprintf("%s is no longer supported, use %s instead", formattag.TagDeprecatedTyped, formattag.TagFormat),
		})
	}
}

type builder struct {
	resourceID string
	// siblings are the entries parameters may reference by key.
	siblings []model.RawEntry
	sink     diag.Sink
}

func (b *builder) family(f model.Family) model.Localization {
	rep, ok := grouping.Representative(f)
	if !ok {
		return nil
	}

	prefix := summaryPlain
	switch {
	case f.Kind.SupportsPlural():
		prefix = summaryPlural
	case f.Kind.SupportsVariants():
		prefix = summaryVariant
	}

	l := model.NewLocalization(f.Kind, f.BaseKey, prefix+singleLine(f.Members[0].Value))
	b.resolve(l, f.Kind, rep.Comment)

	switch v := l.(type) {
	case *model.PluralLocalization:
		v.SupportNoneState = f.HasNoneForm
	case *model.PluralVariantLocalization:
		v.SupportNoneState = f.HasNoneForm
	}
	return l
}

func (b *builder) plain(e model.RawEntry) model.Localization {
	l := model.NewLocalization(model.KindPlain, e.Key, summaryPlain+singleLine(e.Value))
	b.resolve(l, model.KindPlain, e.Comment)
	return l
}

// resolve attaches the parameters declared in comment, plus the plural
// quantifier and variant discriminator the kind requires.
func (b *builder) resolve(l model.Localization, kind model.Kind, comment string) {
	spec, dotNet, ok := formattag.ParseTag(comment)
	c := l.Base()
	c.IsDotNetFormatting = ok && dotNet

	r := formattag.Resolve(formattag.Request{
		Key:          c.Key,
		Kind:         kind,
		Spec:         spec,
		HasDirective: ok,
		Siblings:     b.siblings,
		ResourceID:   b.resourceID,
	}, b.sink)

	c.Parameters = r.Parameters
	c.ExtraParameters = r.Extra

	switch v := l.(type) {
	case *model.PluralLocalization:
		v.PluralParameter = r.Plural
	case *model.VariantLocalization:
		v.VariantParameter = r.Variant
	case *model.PluralVariantLocalization:
		v.PluralParameter = r.Plural
		v.VariantParameter = r.Variant
	}
}
