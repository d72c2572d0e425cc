// Package plural maps languages to the plural rule family that selects
// their grammatical plural forms.
//
// The catalog only names families; evaluating a rule against a number is
// left to the generated runtime code. Languages outside the catalog use the
// DefaultRuleID rule.
package plural

import (
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// DefaultRuleID is the fallback rule for languages outside the catalog.
const DefaultRuleID = "Other"

// Language is a primary language subtag with its English name.
type Language struct {
	Tag  string
	Name string
}

// Family is a named plural rule shared by a set of languages.
type Family struct {
	ID        string
	Languages []Language
}

// Match is a family together with the requested languages it covers.
type Match struct {
	ID        string
	Languages []string
}

// Route sends one language to a rule.
type Route struct {
	Language string
	RuleID   string
}

// Table is a language to rule dispatch table for code emission.
type Table struct {
	// Rules lists the families that must be materialized, in catalog order.
	Rules []Match
	// Routes flattens Rules into one entry per language.
	Routes  []Route
	Default string
}

// byTag maps a lower-cased subtag to its index in catalog.
var byTag = func() map[string]int {
	m := make(map[string]int)
	for i, f := range catalog {
		for _, l := range f.Languages {
			if _, dup := m[l.Tag]; !dup {
				m[l.Tag] = i
			}
		}
	}
	return m
}()

// PrimarySubtag returns the lower-cased primary language subtag of tag,
// e.g. "pt" for "pt_BR". BCP-47 parsing is tried first; tags it rejects
// are split by hand.
func PrimarySubtag(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	if t, err := language.Raw.Parse(tag); err == nil {
		if base, _ := t.Base(); base.String() != "und" {
			return base.String()
		}
	}
	primary := strings.FieldsFunc(tag, func(r rune) bool { return r == '-' || r == '_' })
	if len(primary) == 0 {
		return ""
	}
	return strings.ToLower(primary[0])
}

// IsLanguageTag reports whether s names a language, as a folder or
// namespace segment would ("fr", "en-US", "zh_Hans"). Well-formed tags
// must also be known, and bare three-letter codes must be in the catalog:
// words such as "App" are valid ISO 639-3 codes.
func IsLanguageTag(s string) bool {
	tag := strings.ReplaceAll(strings.TrimSpace(s), "_", "-")
	if tag == "" {
		return false
	}
	if _, err := language.Parse(tag); err != nil {
		return false
	}
	if strings.Contains(tag, "-") || len(tag) == 2 {
		return true
	}
	_, ok := byTag[strings.ToLower(tag)]
	return ok
}

// Families returns the catalog in order.
func Families() []Family {
	out := make([]Family, len(catalog))
	copy(out, catalog)
	return out
}

// RuleFor returns the rule family for lang, or DefaultRuleID.
func RuleFor(lang string) string {
	if i, ok := byTag[PrimarySubtag(lang)]; ok {
		return catalog[i].ID
	}
	return DefaultRuleID
}

// RulesFor returns, in catalog order, every family that covers at least one
// of languages, along with the covered subset. Matching is on primary
// subtags and ignores case.
func RulesFor(languages []string) []Match {
	wanted := make(map[string]bool, len(languages))
	for _, l := range languages {
		if s := PrimarySubtag(l); s != "" {
			wanted[s] = true
		}
	}

	var out []Match
	for _, f := range catalog {
		var matched []string
		for _, l := range f.Languages {
			if wanted[l.Tag] {
				matched = append(matched, l.Tag)
			}
		}
		if len(matched) > 0 {
			out = append(out, Match{ID: f.ID, Languages: matched})
		}
	}
	return out
}

// Dispatch builds the dispatch table for languages.
func Dispatch(languages []string) Table {
	t := Table{Rules: RulesFor(languages), Default: DefaultRuleID}
	for _, m := range t.Rules {
		for _, l := range m.Languages {
			t.Routes = append(t.Routes, Route{Language: l, RuleID: m.ID})
		}
	}
	return t
}

// Validate returns the subtags listed in more than one family.
func Validate() []string {
	seen := make(map[string]string)
	var dups []string
	for _, f := range catalog {
		for _, l := range f.Languages {
			if prev, ok := seen[l.Tag]; ok && prev != f.ID {
				dups = append(dups, l.Tag)
				continue
			}
			seen[l.Tag] = f.ID
		}
	}
	sort.Strings(dups)
	return dups
}

// LanguagesFromPaths derives the language list of a resource tree from the
// names of the directories holding each resource file, e.g. "fr" for
// "Strings/fr-FR/Resources.resw". Directories that are not language tags
// are skipped. The result is sorted and deduplicated.
func LanguagesFromPaths(paths []string) []string {
	seen := make(map[string]bool)
	var langs []string
	for _, p := range paths {
		dir := filepath.Base(filepath.Dir(p))
		if dir == "." || dir == string(filepath.Separator) {
			continue
		}
		if !IsLanguageTag(dir) {
			continue
		}
		lang := PrimarySubtag(dir)
		if lang == "" || seen[lang] {
			continue
		}
		seen[lang] = true
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
