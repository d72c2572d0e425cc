package formattag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/minios-linux/reswkit/diag"
	"github.com/minios-linux/reswkit/model"
)

// Names of the synthesized parameters.
const (
	VariantParameterName = "variantId"
	PluralParameterName  = "pluralizationReferenceNumber"
)

// Qualifiers that mark a typed parameter as structural.
const (
	qualifierPlural  = "plural"
	qualifierVariant = "variant"
)

// Resolution errors.
var (
	ErrEmptyToken       = errors.New("empty parameter")
	ErrUnknownToken     = errors.New("unknown parameter")
	ErrInvalidName      = errors.New("invalid parameter name")
	ErrDuplicateName    = errors.New("duplicate parameter name")
	ErrDuplicatePlural  = errors.New("more than one plural parameter")
	ErrDuplicateVariant = errors.New("more than one variant parameter")
	ErrPluralType       = errors.New("plural parameter must be numeric")
	ErrVariantType      = errors.New("variant parameter must be an integer")
	ErrSelfReference    = errors.New("parameter references its own key")
	ErrBadLiteral       = errors.New("malformed string literal")
)

// Macros lists the runtime constants a directive may reference by name.
var Macros = map[string]bool{
	"APP_NAME":             true,
	"APP_VERSION":          true,
	"APP_VERSION_FULL":     true,
	"APP_VERSION_MAJOR":    true,
	"APP_VERSION_MINOR":    true,
	"APP_VERSION_BUILD":    true,
	"APP_VERSION_REVISION": true,
	"ARCHITECTURE":         true,
	"DEVICE_FAMILY":        true,
	"DEVICE_MANUFACTURER":  true,
	"DEVICE_MODEL":         true,
	"LOCALE_NAME":          true,
	"OS_VERSION":           true,
	"SHORT_DATE":           true,
	"LONG_DATE":            true,
	"SHORT_TIME":           true,
	"LONG_TIME":            true,
}

// ParametersInfo is the result of resolving a directive's tokens.
type ParametersInfo struct {
	Parameters []model.Parameter
	// Plural is the declared pluralization quantifier, if any.
	Plural *model.FunctionParameter
	// Variant is the declared variant discriminator, if any.
	Variant *model.FunctionParameter
}

// ParseParameters resolves tokens in order. siblings are the entries a
// token may reference by key; key is the localization being resolved.
func ParseParameters(key string, tokens []string, siblings []model.RawEntry) (*ParametersInfo, error) {
	keys := make(map[string]bool, len(siblings))
	for _, e := range siblings {
		keys[e.Key] = true
	}

	info := &ParametersInfo{}
	names := make(map[string]bool)

	for i, tok := range tokens {
		p, err := parseToken(key, tok, i+1, keys)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}

		if fp, ok := p.(*model.FunctionParameter); ok {
			if names[fp.Name] {
				return nil, fmt.Errorf("parameter %d: %w %q", i+1, ErrDuplicateName, fp.Name)
			}
			names[fp.Name] = true

			if fp.IsVariantID {
				if info.Variant != nil {
					return nil, fmt.Errorf("parameter %d: %w", i+1, ErrDuplicateVariant)
				}
				info.Variant = fp
			}
			if isPluralToken(tok) {
				if info.Plural != nil {
					return nil, fmt.Errorf("parameter %d: %w", i+1, ErrDuplicatePlural)
				}
				info.Plural = fp
			}
		}
		info.Parameters = append(info.Parameters, p)
	}

	return info, nil
}

func isPluralToken(tok string) bool {
	fields := strings.Fields(tok)
	return len(fields) > 0 && strings.EqualFold(fields[0], qualifierPlural)
}

// parseToken resolves a single token. Precedence: literal, typed
// parameter, macro, resource reference.
func parseToken(key, tok string, position int, siblingKeys map[string]bool) (model.Parameter, error) {
	if tok == "" {
		return nil, ErrEmptyToken
	}

	if strings.HasPrefix(tok, `"`) {
		value, err := unquote(tok)
		if err != nil {
			return nil, err
		}
		return &model.LiteralStringParameter{Value: value}, nil
	}

	fp, ok, err := parseTyped(tok, position)
	if err != nil {
		return nil, err
	}
	if ok {
		return fp, nil
	}

	if Macros[tok] {
		return &model.MacroParameter{ID: tok}, nil
	}

	if model.IsIdentifier(tok) && siblingKeys[tok] {
		if tok == key {
			return nil, fmt.Errorf("%w %q", ErrSelfReference, tok)
		}
		return &model.ResourceRefParameter{Key: tok}, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownToken, tok)
}

// parseTyped reads "[Plural|Variant] [Type] [Name]". ok is false when tok
// is not a typed parameter at all.
func parseTyped(tok string, position int) (*model.FunctionParameter, bool, error) {
	fields := strings.Fields(tok)

	qualifier := ""
	if q := strings.ToLower(fields[0]); q == qualifierPlural || q == qualifierVariant {
		qualifier = q
		fields = fields[1:]
	}

	fp := &model.FunctionParameter{Name: "p" + strconv.Itoa(position)}

	switch {
	case len(fields) == 0 && qualifier == qualifierPlural:
		fp.Type = model.TypeDouble
	case len(fields) == 0 && qualifier == qualifierVariant:
		fp.Type = model.TypeLong
	case len(fields) == 0:
		return nil, false, nil
	default:
		t, ok := model.ParseScalarType(fields[0])
		if !ok {
			if qualifier != "" {
				return nil, false, fmt.Errorf("%w %q", ErrUnknownToken, tok)
			}
			return nil, false, nil
		}
		fp.Type = t
		fields = fields[1:]
	}

	switch len(fields) {
	case 0:
	case 1:
		if !model.IsIdentifier(fields[0]) {
			return nil, false, fmt.Errorf("%w %q", ErrInvalidName, fields[0])
		}
		fp.Name = fields[0]
	default:
		return nil, false, fmt.Errorf("%w %q", ErrUnknownToken, tok)
	}

	switch qualifier {
	case qualifierPlural:
		if !fp.Type.IsNumeric() {
			return nil, false, fmt.Errorf("%w, got %s", ErrPluralType, fp.Type)
		}
		if fp.Type != model.TypeDouble {
			cast := model.TypeDouble
			fp.CastType = &cast
		}
	case qualifierVariant:
		if !fp.Type.IsInteger() {
			return nil, false, fmt.Errorf("%w, got %s", ErrVariantType, fp.Type)
		}
		fp.IsVariantID = true
	}

	return fp, true, nil
}

// unquote decodes a "..." literal with \" and \\ escapes.
func unquote(tok string) (string, error) {
	if len(tok) < 2 || !strings.HasSuffix(tok, `"`) {
		return "", fmt.Errorf("%w %s", ErrBadLiteral, tok)
	}

	body := tok[1 : len(tok)-1]
	var b strings.Builder
	escaped := false
	for _, r := range body {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			return "", fmt.Errorf("%w %s", ErrBadLiteral, tok)
		default:
			b.WriteRune(r)
		}
	}
	if escaped {
		return "", fmt.Errorf("%w %s", ErrBadLiteral, tok)
	}
	return b.String(), nil
}

// ---------------------------------------------------------------------------
// Resolver
// ---------------------------------------------------------------------------

// Request describes the localization whose signature is being resolved.
type Request struct {
	Key  string
	Kind model.Kind
	// Spec is the directive content; HasDirective is false when the
	// localization had none.
	Spec         string
	HasDirective bool
	// Siblings are the entries that may be referenced by key.
	Siblings []model.RawEntry
	// ResourceID names the resource file in diagnostics.
	ResourceID string
}

// Resolution is the call signature of a localization.
type Resolution struct {
	Parameters []model.Parameter
	// Extra holds the synthesized parameters, variant discriminator first.
	Extra   []*model.FunctionParameter
	Plural  *model.FunctionParameter
	Variant *model.FunctionParameter
	// Declared is true when a directive was present and resolved.
	Declared bool
}

// Resolve turns req into a call signature. A directive that fails to
// resolve is reported to sink and treated as absent. Plural and variant
// kinds always get a quantifier and a discriminator, synthesized when the
// directive does not declare them.
func Resolve(req Request, sink diag.Sink) Resolution {
	var res Resolution

	if req.HasDirective {
		info, err := resolveDirective(req)
		if err != nil {
			diag.OrDiscard(sink).Report(diag.Diagnostic{
				Code:     diag.CodeInvalidFormat,
				Severity: diag.SeverityWarning,
				Key:      req.Key,
				Message:  fmt.Sprintf("%s: invalid %s directive on %q: %v", req.ResourceID, TagFormat, req.Key, err),
			})
		} else {
			res.Parameters = info.Parameters
			res.Plural = info.Plural
			res.Variant = info.Variant
			res.Declared = true
		}
	}

	if req.Kind.SupportsVariants() && res.Variant == nil {
		res.Variant = &model.FunctionParameter{Name: VariantParameterName, Type: model.TypeLong, IsVariantID: true}
		res.Extra = append(res.Extra, res.Variant)
	}
	if req.Kind.SupportsPlural() && res.Plural == nil {
		res.Plural = &model.FunctionParameter{Name: PluralParameterName, Type: model.TypeDouble}
		res.Extra = append(res.Extra, res.Plural)
	}

	return res
}

func resolveDirective(req Request) (*ParametersInfo, error) {
	info, err := ParseParameters(req.Key, SplitParameters(req.Spec), req.Siblings)
	if err != nil {
		return nil, err
	}

	// Declared names must not shadow the parameters that will be synthesized.
	for _, fp := range model.FunctionParameters(info.Parameters) {
		if req.Kind.SupportsVariants() && info.Variant == nil && fp.Name == VariantParameterName {
			return nil, fmt.Errorf("%w %q", ErrDuplicateName, fp.Name)
		}
		if req.Kind.SupportsPlural() && info.Plural == nil && fp.Name == PluralParameterName {
			return nil, fmt.Errorf("%w %q", ErrDuplicateName, fp.Name)
		}
	}
	return info, nil
}
