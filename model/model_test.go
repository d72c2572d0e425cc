package model

import (
	"reflect"
	"testing"
)

func TestKindFor(t *testing.T) {
	tests := []struct {
		plural, variants bool
		want             Kind
	}{
		{false, false, KindPlain},
		{true, false, KindPlural},
		{false, true, KindVariant},
		{true, true, KindPluralVariant},
	}
	for _, tt := range tests {
		k := KindFor(tt.plural, tt.variants)
		if k != tt.want {
			t.Fatalf("KindFor(%v, %v) = %s, want %s", tt.plural, tt.variants, k, tt.want)
		}
		if k.SupportsPlural() != tt.plural || k.SupportsVariants() != tt.variants {
			t.Fatalf("%s: SupportsPlural = %v, SupportsVariants = %v", k, k.SupportsPlural(), k.SupportsVariants())
		}
	}
}

func TestNewLocalization(t *testing.T) {
	for _, k := range []Kind{KindPlain, KindPlural, KindVariant, KindPluralVariant} {
		l := NewLocalization(k, "Key", "summary")
		if got := KindOf(l); got != k {
			t.Fatalf("KindOf(NewLocalization(%s)) = %s", k, got)
		}
		if l.Base().Key != "Key" || l.Base().Summary != "summary" {
			t.Fatalf("%s: Base() = %#v", k, l.Base())
		}
		if !l.Base().IsProperty() {
			t.Fatalf("%s: empty localization is not a property", k)
		}
	}
}

func TestSignature(t *testing.T) {
	q := &FunctionParameter{Name: "pluralizationReferenceNumber", Type: TypeDouble}
	name := &FunctionParameter{Name: "name", Type: TypeString}
	l := &PluralLocalization{
		Common: Common{
			Key: "Files",
			Parameters: []Parameter{
				&LiteralStringParameter{Value: "x"},
				name,
				&MacroParameter{ID: "APP_NAME"},
			},
			ExtraParameters: []*FunctionParameter{q},
		},
		PluralParameter:  q,
		SupportNoneState: true,
	}

	if got, want := l.Signature(), []*FunctionParameter{q, name}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Signature() = %#v, want %#v", got, want)
	}
	if l.IsProperty() {
		t.Fatal("IsProperty() = true")
	}
	if PluralParameterOf(l) != q || VariantParameterOf(l) != nil || !SupportsNoneState(l) {
		t.Fatal("accessors disagree with fields")
	}
}

func TestParseScalarType(t *testing.T) {
	tests := []struct {
		in   string
		want ScalarType
		ok   bool
	}{
		{"int", TypeInt, true},
		{" Int64 ", TypeLong, true},
		{"DOUBLE", TypeDouble, true},
		{"decimal", TypeDecimal, true},
		{"float", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseScalarType(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseScalarType(%q) = %s, %v, want %s, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if !TypeDecimal.IsNumeric() || TypeDecimal.IsInteger() || TypeString.IsNumeric() {
		t.Fatal("numeric classification is wrong")
	}
}

func TestIsIdentifier(t *testing.T) {
	for in, want := range map[string]bool{
		"Name":      true,
		"_x1":       true,
		"Привет":    true,
		"":          false,
		"1abc":      false,
		"has-dash":  false,
		"two words": false,
	} {
		if got := IsIdentifier(in); got != want {
			t.Fatalf("IsIdentifier(%q) = %v, want %v", in, got, want)
		}
	}
}
