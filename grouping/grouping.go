// Package grouping partitions resource entries into plural and variant
// families using key naming conventions.
//
// Key grammar:
//
//	key  = base [ "_Variant" digits ] [ "_" form ]
//	form = "Zero" | "One" | "Two" | "Few" | "Many" | "Other" | "Plural" | "None"
//
// Only the last form suffix, and at most one variant suffix directly before
// it, are significant: "A_One_Other" is the Other form of base "A_One".
// Suffixes are case-sensitive.
//
// A base becomes a family when at least one entry carries a form other than
// None or a variant suffix. The bare base entry joins its family as the
// default form. None entries only join families that support plural forms;
// they never create one.
package grouping

import (
	"strings"

	"github.com/minios-linux/reswkit/formattag"
	"github.com/minios-linux/reswkit/model"
)

// FormNone is the optional zero-quantity form.
const FormNone = "None"

const variantMarker = "_Variant"

// Forms lists the recognised plural form suffixes.
var Forms = []string{"Zero", "One", "Two", "Few", "Many", "Other", "Plural", FormNone}

var formSet = func() map[string]bool {
	m := make(map[string]bool, len(Forms))
	for _, f := range Forms {
		m[f] = true
	}
	return m
}()

// IsValidKey reports whether key can name a generated accessor.
func IsValidKey(key string) bool {
	return model.IsIdentifier(key)
}

// Filter drops entries with invalid keys or an ignore marker. Nothing is
// reported for dropped entries.
func Filter(entries []model.RawEntry) []model.RawEntry {
	out := make([]model.RawEntry, 0, len(entries))
	for _, e := range entries {
		if !IsValidKey(e.Key) || formattag.IsIgnored(e.Comment) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// KeyParts is a key split along the grammar above.
type KeyParts struct {
	Base string
	// Variant holds the digits of a _Variant suffix.
	Variant string
	// Form is the plural form suffix.
	Form string
}

// Suffixed reports whether any suffix was found.
func (p KeyParts) Suffixed() bool {
	return p.Variant != "" || p.Form != ""
}

// indicates reports whether the key can establish a family on its own.
func (p KeyParts) indicates() bool {
	return p.Suffixed() && p.Form != FormNone
}

// ParseKey splits key into base, variant and form. A key without suffixes
// comes back as its own base.
func ParseKey(key string) KeyParts {
	parts := KeyParts{Base: key}

	rest := key
	if i := strings.LastIndexByte(rest, '_'); i > 0 && formSet[rest[i+1:]] {
		parts.Form = rest[i+1:]
		rest = rest[:i]
	}

	if i := strings.LastIndex(rest, variantMarker); i > 0 {
		digits := rest[i+len(variantMarker):]
		if isDigits(digits) {
			parts.Variant = digits
			rest = rest[:i]
		}
	}

	if rest == key {
		return parts
	}
	parts.Base = rest
	return parts
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Group splits entries into families and standalone entries. Families are
// ordered by the first appearance of a member; every entry ends up in
// exactly one family or in standalone.
func Group(entries []model.RawEntry) (families []model.Family, standalone []model.RawEntry) {
	type caps struct{ plural, variants bool }

	parsed := make([]KeyParts, len(entries))
	shape := make(map[string]*caps)
	for i, e := range entries {
		p := ParseKey(e.Key)
		parsed[i] = p
		if !p.indicates() {
			continue
		}
		c := shape[p.Base]
		if c == nil {
			c = &caps{}
			shape[p.Base] = c
		}
		if p.Form != "" {
			c.plural = true
		}
		if p.Variant != "" {
			c.variants = true
		}
	}

	index := make(map[string]int)
	claim := func(base string, e model.RawEntry) {
		i, ok := index[base]
		if !ok {
			c := shape[base]
			i = len(families)
			index[base] = i
			families = append(families, model.Family{
				BaseKey: base,
				Kind:    model.KindFor(c.plural, c.variants),
			})
		}
		families[i].Members = append(families[i].Members, e)
	}

	for i, e := range entries {
		p := parsed[i]
		if c := shape[p.Base]; c != nil && p.Suffixed() {
			if p.indicates() || c.plural {
				claim(p.Base, e)
				continue
			}
		}
		if shape[e.Key] != nil {
			claim(e.Key, e)
			continue
		}
		standalone = append(standalone, e)
	}

	for i := range families {
		f := &families[i]
		if !f.Kind.SupportsPlural() {
			continue
		}
		for _, m := range f.Members {
			if ParseKey(m.Key).Form == FormNone {
				f.HasNoneForm = true
				break
			}
		}
	}

	return families, standalone
}

// Representative returns the member that supplies a family's directive: the
// first member with a #Format comment, or the first member.
func Representative(f model.Family) (model.RawEntry, bool) {
	if len(f.Members) == 0 {
		return model.RawEntry{}, false
	}
	for _, m := range f.Members {
		if formattag.HasTag(m.Comment) {
			return m, true
		}
	}
	return f.Members[0], true
}

// Flatten concatenates family members and standalone entries.
func Flatten(families []model.Family, standalone []model.RawEntry) []model.RawEntry {
	var out []model.RawEntry
	for _, f := range families {
		out = append(out, f.Members...)
	}
	return append(out, standalone...)
}
