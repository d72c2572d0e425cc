package model

// Localization is one accessor of the generated class.
type Localization interface {
	Base() *Common
	isLocalization()
}

// Common holds the fields shared by every localization kind.
type Common struct {
	Key     string
	Summary string
	// Parameters follow the positional placeholders of the directive.
	Parameters []Parameter
	// ExtraParameters are synthesized and precede Parameters in the call
	// signature.
	ExtraParameters    []*FunctionParameter
	IsDotNetFormatting bool
}

// Base returns c itself so embedding types satisfy Localization.
func (c *Common) Base() *Common { return c }

// IsProperty reports whether the accessor takes no arguments at all.
func (c *Common) IsProperty() bool {
	return len(FunctionParameters(c.Parameters)) == 0 && len(c.ExtraParameters) == 0
}

// Signature returns the full call signature: extra parameters first,
// then the function parameters of the directive.
func (c *Common) Signature() []*FunctionParameter {
	out := make([]*FunctionParameter, 0, len(c.ExtraParameters)+len(c.Parameters))
	out = append(out, c.ExtraParameters...)
	return append(out, FunctionParameters(c.Parameters)...)
}

// RegularLocalization is a plain string.
type RegularLocalization struct {
	Common
}

// PluralLocalization selects a form from a quantity.
type PluralLocalization struct {
	Common
	SupportNoneState bool
	PluralParameter  *FunctionParameter
}

// VariantLocalization selects an alternate phrasing from a variant id.
type VariantLocalization struct {
	Common
	VariantParameter *FunctionParameter
}

// PluralVariantLocalization selects a variant, then a plural form within it.
type PluralVariantLocalization struct {
	Common
	SupportNoneState bool
	PluralParameter  *FunctionParameter
	VariantParameter *FunctionParameter
}

func (*RegularLocalization) isLocalization()       {}
func (*PluralLocalization) isLocalization()        {}
func (*VariantLocalization) isLocalization()       {}
func (*PluralVariantLocalization) isLocalization() {}

// KindOf returns the kind of l.
func KindOf(l Localization) Kind {
	switch l.(type) {
	case *RegularLocalization:
		return KindPlain
	case *PluralLocalization:
		return KindPlural
	case *VariantLocalization:
		return KindVariant
	case *PluralVariantLocalization:
		return KindPluralVariant
	}
	return KindPlain
}

// NewLocalization creates an empty localization of the given kind.
func NewLocalization(kind Kind, key, summary string) Localization {
	c := Common{Key: key, Summary: summary}
	switch kind {
	case KindPlural:
		return &PluralLocalization{Common: c}
	case KindVariant:
		return &VariantLocalization{Common: c}
	case KindPluralVariant:
		return &PluralVariantLocalization{Common: c}
	}
	return &RegularLocalization{Common: c}
}

// PluralParameterOf returns the quantifier of l, or nil when l is not
// pluralized.
func PluralParameterOf(l Localization) *FunctionParameter {
	switch v := l.(type) {
	case *PluralLocalization:
		return v.PluralParameter
	case *PluralVariantLocalization:
		return v.PluralParameter
	}
	return nil
}

// VariantParameterOf returns the discriminator of l, or nil when l has no
// variants.
func VariantParameterOf(l Localization) *FunctionParameter {
	switch v := l.(type) {
	case *VariantLocalization:
		return v.VariantParameter
	case *PluralVariantLocalization:
		return v.VariantParameter
	}
	return nil
}

// SupportsNoneState reports whether l has a dedicated zero-quantity form.
func SupportsNoneState(l Localization) bool {
	switch v := l.(type) {
	case *PluralLocalization:
		return v.SupportNoneState
	case *PluralVariantLocalization:
		return v.SupportNoneState
	}
	return false
}
