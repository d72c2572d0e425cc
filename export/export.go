// Package export writes the compiled model of a resource file as a
// descriptor document, the hand-off format for code emitters.
//
// A descriptor carries the class model, the support flags and the plural
// dispatch table. It is written as YAML or JSON.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/minios-linux/reswkit/generator"
	"github.com/minios-linux/reswkit/model"
	"github.com/minios-linux/reswkit/plural"
)

// SchemaVersion is bumped on incompatible descriptor changes.
const SchemaVersion = 1

// Format is a descriptor encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat resolves a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown format %q (valid: yaml, json)", s)
}

// Ext returns the file extension of f.
func (f Format) Ext() string {
	if f == FormatJSON {
		return ".json"
	}
	return ".yaml"
}

// ---------------------------------------------------------------------------
// Document schema
// ---------------------------------------------------------------------------

// Document is the descriptor of one compiled resource file.
type Document struct {
	Version        int            `yaml:"version" json:"version"`
	Class          string         `yaml:"class" json:"class"`
	Namespace      []string       `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	ResourceID     string         `yaml:"resource_id" json:"resource_id"`
	AppType        string         `yaml:"app_type" json:"app_type"`
	ContainsPlural bool           `yaml:"contains_plural" json:"contains_plural"`
	ContainsMacro  bool           `yaml:"contains_macro" json:"contains_macro"`
	Localizations  []Localization `yaml:"localizations" json:"localizations"`
	// Plurals is only set when a localization selects plural forms.
	Plurals *PluralTable `yaml:"plurals,omitempty" json:"plurals,omitempty"`
}

// Localization is one accessor of the class.
type Localization struct {
	Key              string      `yaml:"key" json:"key"`
	Kind             string      `yaml:"kind" json:"kind"`
	Summary          string      `yaml:"summary" json:"summary"`
	Property         bool        `yaml:"property" json:"property"`
	DotNetFormatting bool        `yaml:"dotnet_formatting,omitempty" json:"dotnet_formatting,omitempty"`
	SupportNoneState bool        `yaml:"none_state,omitempty" json:"none_state,omitempty"`
	PluralParameter  string      `yaml:"plural_parameter,omitempty" json:"plural_parameter,omitempty"`
	VariantParameter string      `yaml:"variant_parameter,omitempty" json:"variant_parameter,omitempty"`
	Signature        []Argument  `yaml:"signature,omitempty" json:"signature,omitempty"`
	Parameters       []Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// Argument is one caller-supplied argument, in call order.
type Argument struct {
	Name      string `yaml:"name" json:"name"`
	Type      string `yaml:"type" json:"type"`
	Cast      string `yaml:"cast,omitempty" json:"cast,omitempty"`
	VariantID bool   `yaml:"variant_id,omitempty" json:"variant_id,omitempty"`
	// Synthesized arguments are not declared by the #Format directive.
	Synthesized bool `yaml:"synthesized,omitempty" json:"synthesized,omitempty"`
}

// Parameter kinds.
const (
	ParamFunction = "function"
	ParamLiteral  = "literal"
	ParamResource = "resource"
	ParamMacro    = "macro"
)

// Parameter is one positional format argument.
type Parameter struct {
	Kind string `yaml:"kind" json:"kind"`
	// Name refers to an Argument of the signature (function parameters).
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Value string `yaml:"value,omitempty" json:"value,omitempty"`
	Key   string `yaml:"key,omitempty" json:"key,omitempty"`
	Macro string `yaml:"macro,omitempty" json:"macro,omitempty"`
}

// PluralTable is the language dispatch of the plural rules.
type PluralTable struct {
	Default string       `yaml:"default" json:"default"`
	Rules   []PluralRule `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// PluralRule is one rule family to materialize.
type PluralRule struct {
	ID        string   `yaml:"id" json:"id"`
	Languages []string `yaml:"languages" json:"languages"`
}

// ---------------------------------------------------------------------------
// Building
// ---------------------------------------------------------------------------

// New builds the descriptor of res. languages feeds the plural table and
// is ignored when nothing is pluralized.
func New(res *generator.Result, appType generator.AppType, languages []string) *Document {
	cm := res.Model
	doc := &Document{
		Version:        SchemaVersion,
		Class:          cm.ClassName,
		Namespace:      cm.Namespaces,
		ResourceID:     cm.ResourceID,
		AppType:        string(appType),
		ContainsPlural: res.ContainsPlural,
		ContainsMacro:  res.ContainsMacro,
		Localizations:  make([]Localization, 0, len(cm.Localizations)),
	}
	if doc.AppType == "" {
		doc.AppType = string(generator.AppTypeUnknown)
	}

	for _, l := range cm.Localizations {
		doc.Localizations = append(doc.Localizations, newLocalization(l))
	}

	if res.ContainsPlural {
		table := plural.Dispatch(languages)
		doc.Plurals = &PluralTable{Default: table.Default}
		for _, r := range table.Rules {
			doc.Plurals.Rules = append(doc.Plurals.Rules, PluralRule{ID: r.ID, Languages: r.Languages})
		}
	}
	return doc
}

func newLocalization(l model.Localization) Localization {
	c := l.Base()
	out := Localization{
		Key:              c.Key,
		Kind:             model.KindOf(l).String(),
		Summary:          c.Summary,
		Property:         c.IsProperty(),
		DotNetFormatting: c.IsDotNetFormatting,
		SupportNoneState: model.SupportsNoneState(l),
	}
	if p := model.PluralParameterOf(l); p != nil {
		out.PluralParameter = p.Name
	}
	if p := model.VariantParameterOf(l); p != nil {
		out.VariantParameter = p.Name
	}

	for _, fp := range c.ExtraParameters {
		arg := newArgument(fp)
		arg.Synthesized = true
		out.Signature = append(out.Signature, arg)
	}
	for _, p := range c.Parameters {
		switch v := p.(type) {
		case *model.FunctionParameter:
			out.Signature = append(out.Signature, newArgument(v))
			out.Parameters = append(out.Parameters, Parameter{Kind: ParamFunction, Name: v.Name})
		case *model.LiteralStringParameter:
			out.Parameters = append(out.Parameters, Parameter{Kind: ParamLiteral, Value: v.Value})
		case *model.ResourceRefParameter:
			out.Parameters = append(out.Parameters, Parameter{Kind: ParamResource, Key: v.Key})
		case *model.MacroParameter:
			out.Parameters = append(out.Parameters, Parameter{Kind: ParamMacro, Macro: v.ID})
		}
	}
	return out
}

func newArgument(fp *model.FunctionParameter) Argument {
	arg := Argument{Name: fp.Name, Type: fp.Type.String(), VariantID: fp.IsVariantID}
	if fp.CastType != nil {
		arg.Cast = fp.CastType.String()
	}
	return arg
}

// ---------------------------------------------------------------------------
// Encoding
// ---------------------------------------------------------------------------

// Marshal encodes doc in format f.
func Marshal(doc *Document, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(doc)
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

// Unmarshal decodes a descriptor in format f.
func Unmarshal(data []byte, f Format) (*Document, error) {
	var doc Document
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = fmt.Errorf("unknown format %q", f)
	}
	if err != nil {
		return nil, err
	}
	if doc.Version != SchemaVersion {
		return nil, fmt.Errorf("unsupported descriptor version %d", doc.Version)
	}
	return &doc, nil
}

// FileName returns the descriptor file name of doc: the namespace-qualified
// class name, so classes of different folders do not collide.
func FileName(doc *Document, f Format) string {
	parts := append(append([]string{}, doc.Namespace...), doc.Class)
	return strings.Join(parts, ".") + ".resw" + f.Ext()
}

// WriteFile writes doc into dir and returns the written path.
func WriteFile(dir string, doc *Document, f Format) (string, error) {
	data, err := Marshal(doc, f)
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", doc.Class, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, FileName(doc, f))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// ReadFile reads a descriptor, inferring the format from the extension.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		f = FormatJSON
	}
	doc, err := Unmarshal(data, f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}
