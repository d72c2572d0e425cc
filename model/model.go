// Package model defines the semantic model produced by compiling a .resw
// resource file: raw entries, plural/variant families, typed parameters and
// the localizations of a strongly-typed accessor class.
//
// Localization and Parameter are closed sets. Each is a sealed interface
// implemented only by the pointer types in this package, so consumers switch
// over the concrete types and a new variant forces every switch to be
// revisited.
package model

// RawEntry is a key/value/comment triple read from a resource file.
type RawEntry struct {
	Key     string
	Value   string
	Comment string
}

// Kind classifies a localization family.
type Kind int

const (
	// KindPlain is a regular string with no plural or variant forms.
	KindPlain Kind = iota
	// KindPlural is a string with quantity-selected forms.
	KindPlural
	// KindVariant is a string with discriminator-selected alternates.
	KindVariant
	// KindPluralVariant combines variants and plural forms.
	KindPluralVariant
)

// SupportsPlural reports whether the kind selects forms by quantity.
func (k Kind) SupportsPlural() bool {
	return k == KindPlural || k == KindPluralVariant
}

// SupportsVariants reports whether the kind selects forms by variant id.
func (k Kind) SupportsVariants() bool {
	return k == KindVariant || k == KindPluralVariant
}

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindPlural:
		return "plural"
	case KindVariant:
		return "variant"
	case KindPluralVariant:
		return "plural-variant"
	}
	return "unknown"
}

// KindFor returns the kind matching the given capabilities.
func KindFor(plural, variants bool) Kind {
	switch {
	case plural && variants:
		return KindPluralVariant
	case plural:
		return KindPlural
	case variants:
		return KindVariant
	}
	return KindPlain
}

// Family groups the entries that share a base key.
type Family struct {
	BaseKey string
	Kind    Kind
	// Members are in resource file order.
	Members []RawEntry
	// HasNoneForm is set when a "<base>_None" sibling exists.
	HasNoneForm bool
}

// ClassModel is the compiled form of one resource file.
type ClassModel struct {
	ClassName string
	// Namespaces is the dotted namespace split into segments.
	Namespaces []string
	// ResourceID is the name the runtime resource loader resolves.
	ResourceID    string
	Localizations []Localization
}
