package model

// Parameter is one positional argument of a formatted localization.
type Parameter interface {
	isParameter()
}

// FunctionParameter is an argument supplied by the caller.
type FunctionParameter struct {
	Name string
	Type ScalarType
	// CastType is set when the value must be converted before use,
	// e.g. an integer quantifier handed to a double-based plural rule.
	CastType    *ScalarType
	IsVariantID bool
}

// LiteralStringParameter is a fixed string baked into the call.
type LiteralStringParameter struct {
	Value string
}

// ResourceRefParameter is the value of another entry of the same file.
type ResourceRefParameter struct {
	Key string
}

// MacroParameter is a runtime constant resolved by the emitted support code.
type MacroParameter struct {
	ID string
}

func (*FunctionParameter) isParameter()      {}
func (*LiteralStringParameter) isParameter() {}
func (*ResourceRefParameter) isParameter()   {}
func (*MacroParameter) isParameter()         {}

// FunctionParameters returns the caller-supplied parameters of params in order.
func FunctionParameters(params []Parameter) []*FunctionParameter {
	var out []*FunctionParameter
	for _, p := range params {
		if fp, ok := p.(*FunctionParameter); ok {
			out = append(out, fp)
		}
	}
	return out
}
