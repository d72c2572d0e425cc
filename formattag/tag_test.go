package formattag

import (
	"reflect"
	"testing"
)

func TestParseTag(t *testing.T) {
	cases := []struct {
		name    string
		comment string
		spec    string
		dotNet  bool
		ok      bool
	}{
		{name: "simple", comment: "#Format[int]", spec: "int", ok: true},
		{name: "dotnet", comment: "#FormatNet[String name]", spec: "String name", dotNet: true, ok: true},
		{name: "surrounding text", comment: "Shown on the home page. #Format[ Int count ] thanks", spec: "Int count", ok: true},
		{name: "quoted comma and bracket", comment: `#Format["a,b]", Int] see [notes]`, spec: `"a,b]", Int`, ok: true},
		{name: "escaped quote", comment: `#Format["say \"hi\"", int]`, spec: `"say \"hi\"", int`, ok: true},
		{name: "empty comment", comment: "", ok: false},
		{name: "no tag", comment: "just a note", ok: false},
		{name: "empty brackets", comment: "#Format[]", ok: false},
		{name: "unclosed", comment: "#Format[int", ok: false},
		{name: "deprecated marker", comment: "#ReswPlusTyped[int]", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec, dotNet, ok := ParseTag(tc.comment)
			if ok != tc.ok || spec != tc.spec || dotNet != tc.dotNet {
				t.Fatalf("ParseTag(%q) = (%q, %v, %v), want (%q, %v, %v)",
					tc.comment, spec, dotNet, ok, tc.spec, tc.dotNet, tc.ok)
			}
			if got := HasTag(tc.comment); got != tc.ok {
				t.Fatalf("HasTag(%q) = %v, want %v", tc.comment, got, tc.ok)
			}
		})
	}
}

func TestMarkers(t *testing.T) {
	if !IsIgnored("internal #ReswPlusIgnore") {
		t.Fatal("IsIgnored missed marker")
	}
	if IsIgnored("#Format[int]") {
		t.Fatal("IsIgnored matched a format directive")
	}
	if !IsDeprecated("#ReswPlusTyped[int]") {
		t.Fatal("IsDeprecated missed marker")
	}
}

func TestSplitParameters(t *testing.T) {
	cases := []struct {
		spec string
		want []string
	}{
		{spec: "", want: nil},
		{spec: "int", want: []string{"int"}},
		{spec: " Int count , String ", want: []string{"Int count", "String"}},
		{spec: `"a, b", int`, want: []string{`"a, b"`, "int"}},
		{spec: `"say \"x, y\"", Double`, want: []string{`"say \"x, y\""`, "Double"}},
		{spec: "int,,string", want: []string{"int", "", "string"}},
	}

	for _, tc := range cases {
		if got := SplitParameters(tc.spec); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitParameters(%q) = %#v, want %#v", tc.spec, got, tc.want)
		}
	}
}
