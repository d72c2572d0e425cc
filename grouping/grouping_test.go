package grouping

import (
	"reflect"
	"sort"
	"testing"

	"github.com/minios-linux/reswkit/model"
)

func entries(keys ...string) []model.RawEntry {
	out := make([]model.RawEntry, 0, len(keys))
	for _, k := range keys {
		out = append(out, model.RawEntry{Key: k, Value: "v:" + k})
	}
	return out
}

func keysOf(es []model.RawEntry) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Key)
	}
	return out
}

func TestIsValidKey(t *testing.T) {
	cases := map[string]bool{
		"Hello":         true,
		"_private":      true,
		"Héllo_2":       true,
		"":              false,
		"2fast":         false,
		"Button.Text":   false,
		"with space":    false,
		"dash-key":      false,
		"CamelCase_123": true,
	}
	for key, want := range cases {
		if got := IsValidKey(key); got != want {
			t.Fatalf("IsValidKey(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestFilter(t *testing.T) {
	in := []model.RawEntry{
		{Key: "Keep", Value: "a"},
		{Key: "Button.Content", Value: "b"},
		{Key: "Hidden", Value: "c", Comment: "debug only #ReswPlusIgnore"},
		{Key: "9Lives", Value: "d"},
		{Key: "AlsoKeep", Value: "e", Comment: "#Format[int]"},
	}
	got := keysOf(Filter(in))
	want := []string{"Keep", "AlsoKeep"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter() keys = %v, want %v", got, want)
	}
}

func TestParseKey(t *testing.T) {
	cases := []struct {
		key  string
		want KeyParts
	}{
		{key: "Greeting", want: KeyParts{Base: "Greeting"}},
		{key: "Greeting_Plural", want: KeyParts{Base: "Greeting", Form: "Plural"}},
		{key: "Files_One", want: KeyParts{Base: "Files", Form: "One"}},
		{key: "Files_None", want: KeyParts{Base: "Files", Form: "None"}},
		{key: "Title_Variant2", want: KeyParts{Base: "Title", Variant: "2"}},
		{key: "Items_Variant10_Few", want: KeyParts{Base: "Items", Variant: "10", Form: "Few"}},
		{key: "A_One_Other", want: KeyParts{Base: "A_One", Form: "Other"}},
		{key: "A_Variant1_Variant2", want: KeyParts{Base: "A_Variant1", Variant: "2"}},
		{key: "Files_one", want: KeyParts{Base: "Files_one"}},
		{key: "Title_Variant", want: KeyParts{Base: "Title_Variant"}},
		{key: "Title_VariantX", want: KeyParts{Base: "Title_VariantX"}},
		{key: "_One", want: KeyParts{Base: "_One"}},
	}
	for _, tc := range cases {
		if got := ParseKey(tc.key); got != tc.want {
			t.Fatalf("ParseKey(%q) = %+v, want %+v", tc.key, got, tc.want)
		}
	}
}

func TestGroupPluralWithBareKey(t *testing.T) {
	in := []model.RawEntry{
		{Key: "Greeting", Value: "Hi"},
		{Key: "Greeting_Plural", Value: "Hi all", Comment: "#Format[int]"},
		{Key: "Title", Value: "Home"},
	}
	families, standalone := Group(in)

	if len(families) != 1 {
		t.Fatalf("got %d families, want 1", len(families))
	}
	f := families[0]
	if f.BaseKey != "Greeting" || f.Kind != model.KindPlural || f.HasNoneForm {
		t.Fatalf("family = %+v", f)
	}
	if got := keysOf(f.Members); !reflect.DeepEqual(got, []string{"Greeting", "Greeting_Plural"}) {
		t.Fatalf("members = %v", got)
	}
	if got := keysOf(standalone); !reflect.DeepEqual(got, []string{"Title"}) {
		t.Fatalf("standalone = %v", got)
	}

	rep, ok := Representative(f)
	if !ok || rep.Key != "Greeting_Plural" {
		t.Fatalf("Representative() = %q, want Greeting_Plural", rep.Key)
	}
}

func TestGroupKinds(t *testing.T) {
	in := entries(
		"Files_One", "Files_Other", "Files_None",
		"Title_Variant1", "Title_Variant2",
		"Items_Variant1_One", "Items_Variant1_Other", "Items_Variant2_Other",
		"Plain",
	)
	families, standalone := Group(in)

	type summary struct {
		base string
		kind model.Kind
		none bool
		n    int
	}
	var got []summary
	for _, f := range families {
		got = append(got, summary{f.BaseKey, f.Kind, f.HasNoneForm, len(f.Members)})
	}
	want := []summary{
		{"Files", model.KindPlural, true, 3},
		{"Title", model.KindVariant, false, 2},
		{"Items", model.KindPluralVariant, false, 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("families = %+v, want %+v", got, want)
	}
	if gotKeys := keysOf(standalone); !reflect.DeepEqual(gotKeys, []string{"Plain"}) {
		t.Fatalf("standalone = %v", gotKeys)
	}
}

func TestGroupNoneForm(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		families, _ := Group(entries("Files_One", "Files_Other"))
		if families[0].HasNoneForm {
			t.Fatal("HasNoneForm = true without a None sibling")
		}
	})

	t.Run("variant none", func(t *testing.T) {
		families, _ := Group(entries("Items_Variant1_One", "Items_Variant1_None"))
		if !families[0].HasNoneForm {
			t.Fatal("HasNoneForm = false with a variant None sibling")
		}
	})

	t.Run("none alone is standalone", func(t *testing.T) {
		families, standalone := Group(entries("Files_None"))
		if len(families) != 0 {
			t.Fatalf("got %d families, want 0", len(families))
		}
		if got := keysOf(standalone); !reflect.DeepEqual(got, []string{"Files_None"}) {
			t.Fatalf("standalone = %v", got)
		}
	})

	t.Run("none does not join variant-only family", func(t *testing.T) {
		families, standalone := Group(entries("Title_Variant1", "Title_None"))
		if len(families) != 1 || families[0].Kind != model.KindVariant || families[0].HasNoneForm {
			t.Fatalf("families = %+v", families)
		}
		if got := keysOf(standalone); !reflect.DeepEqual(got, []string{"Title_None"}) {
			t.Fatalf("standalone = %v", got)
		}
	})
}

func TestGroupNestedSuffixes(t *testing.T) {
	families, standalone := Group(entries("A_One", "A_One_Other"))
	if len(standalone) != 0 {
		t.Fatalf("standalone = %v, want none", keysOf(standalone))
	}
	var bases []string
	for _, f := range families {
		bases = append(bases, f.BaseKey)
	}
	if !reflect.DeepEqual(bases, []string{"A", "A_One"}) {
		t.Fatalf("bases = %v, want [A A_One]", bases)
	}
	if got := keysOf(families[0].Members); !reflect.DeepEqual(got, []string{"A_One"}) {
		t.Fatalf("A members = %v", got)
	}
}

func TestGroupRoundTrip(t *testing.T) {
	in := Filter(entries(
		"Zeta", "Files_Other", "Files", "Title_Variant1", "Files_None",
		"Bad.Key", "Items_Variant3_Many", "Alone_None", "Title", "Other_Key",
	))
	families, standalone := Group(in)
	out := Flatten(families, standalone)

	want := keysOf(in)
	got := keysOf(out)
	if len(got) != len(want) {
		t.Fatalf("flattened %d entries, want %d: %v", len(got), len(want), got)
	}
	sort.Strings(want)
	sort.Strings(got)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("flattened keys = %v, want %v", got, want)
	}
}

func TestRepresentativeFallsBackToFirst(t *testing.T) {
	f := model.Family{Members: entries("B_One", "B_Other")}
	rep, ok := Representative(f)
	if !ok || rep.Key != "B_One" {
		t.Fatalf("Representative() = %q, want B_One", rep.Key)
	}
	if _, ok := Representative(model.Family{}); ok {
		t.Fatal("Representative(empty) reported a member")
	}
}
