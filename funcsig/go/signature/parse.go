package signature

import (
	"regexp"
	"strings"

	"github.com/interviewkickstart/funcsig/funcsig/go/types"
)

// signatureRegex matches "type0 fun_name(args*)". Both leading groups are
// greedy, so the function name is whatever follows the last space that still
// leaves a parenthesized argument list.
var signatureRegex = regexp.MustCompile(`^(.+) (.+)\((.*)\)$`)

// field is a name and the text of its type, before validation. The first
// field of a signature is the function name and its return type.
type field struct {
	name     string
	typeText string
}

// Parse parses a string like "int32 f(x:int32,y:int32)" into a Signature using
// DefaultOptions.
//
// All returned errors are *ValidationError and match ErrValidation as well as
// one of ErrMalformedSignature, ErrInvalidName or ErrInvalidType.
func Parse(text string) (*Signature, error) {
	return ParseWithOptions(text, DefaultOptions())
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(text string, opts Options) (*Signature, error) {
	fields, err := split(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	return validate(fields, opts)
}

// split breaks the signature into the function field followed by one field
// per argument.
//
// The argument list is split on ':' first, which gives
// ["arg1", "type1, arg2", "type2, arg3", ..., "typeN"], and each inner chunk is
// then split at its last comma. Commas inside brackets of a type therefore stay
// with the type and are reported by type validation.
func split(text string) ([]field, error) {
	match := signatureRegex.FindStringSubmatch(text)
	if match == nil {
		return nil, newError(MalformedSignature, "Malformed function signature")
	}
	fields := []field{{
		name:     strings.TrimSpace(match[2]),
		typeText: strings.TrimSpace(match[1]),
	}}

	argText := match[3]
	if strings.TrimSpace(argText) == "" {
		return fields, nil
	}
	chunks := strings.Split(argText, ":")
	if len(chunks) == 1 {
		return nil, errMalformedArguments()
	}

	pieces := make([]string, 0, 2*(len(chunks)-1))
	pieces = append(pieces, chunks[0])
	for _, chunk := range chunks[1 : len(chunks)-1] {
		i := strings.LastIndex(chunk, ",")
		if i < 0 {
			return nil, errMalformedArguments()
		}
		pieces = append(pieces, chunk[:i], chunk[i+1:])
	}
	pieces = append(pieces, chunks[len(chunks)-1])

	for i := 0; i < len(pieces); i += 2 {
		f := field{
			name:     strings.TrimSpace(pieces[i]),
			typeText: strings.TrimSpace(pieces[i+1]),
		}
		// A comma outside brackets here means an argument without ":type".
		if hasTopLevelComma(f.name) || hasTopLevelComma(f.typeText) {
			return nil, errMalformedArguments()
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func errMalformedArguments() *ValidationError {
	return newError(MalformedSignature, "Invalid format of function arguments")
}

func hasTopLevelComma(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth <= 0 {
				return true
			}
		}
	}
	return false
}

// validate checks names and types of the function and its arguments, in
// order, and builds the Signature.
func validate(fields []field, opts Options) (*Signature, error) {
	fn := fields[0]
	if !opts.validName(fn.name) {
		return nil, newError(InvalidName, "Invalid function name: %s", fn.name)
	}
	returnType, err := validateType(fn.typeText, opts)
	if err != nil {
		return nil, err
	}

	args := make([]Argument, 0, len(fields)-1)
	for _, f := range fields[1:] {
		if !opts.validName(f.name) {
			return nil, newError(InvalidName, "Invalid argument name: %s", f.name)
		}
		typ, err := validateType(f.typeText, opts)
		if err != nil {
			return nil, err
		}
		args = append(args, Argument{Name: f.name, Type: typ})
	}

	names := make([]string, 0, len(fields))
	allTypes := make([]*types.Type, 0, len(fields))
	names = append(names, fn.name)
	allTypes = append(allTypes, returnType)
	for _, a := range args {
		names = append(names, a.Name)
		allTypes = append(allTypes, a.Type)
	}

	// Argument names cannot repeat, and no argument can be named like the
	// function.
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if names[i] == names[j] {
				return nil, newError(InvalidName, "%q appears more than once among function and argument names", names[i])
			}
		}
	}

	if err := checkCustomTypes(allTypes); err != nil {
		return nil, err
	}

	typeNames := types.AllTypeNames()
	for _, name := range names {
		for _, typeName := range typeNames {
			if name == typeName {
				return nil, newError(InvalidName, "%q matches a type name; that is not acceptable for a name", typeName)
			}
		}
	}

	return &Signature{
		name:       fn.name,
		returnType: returnType,
		args:       args,
	}, nil
}

func validateType(text string, opts Options) (*types.Type, error) {
	typ, ok := types.ValidateWithDepth(text, opts.MaxTypeDepth)
	if ok {
		return typ, nil
	}
	if types.IsCompositeName(text) {
		return nil, newError(InvalidType, "%s is an invalid type declaration. Did you mean %s[%s]?", text, text, types.Int32)
	}
	if suggestion, ok := types.Suggest(text); ok {
		return nil, newError(InvalidType, "%s is an invalid type declaration. Did you mean %s?", text, suggestion)
	}
	return nil, newError(InvalidType, "%s is an invalid type declaration.", text)
}

// checkCustomTypes rejects a function whose return and argument types use one
// custom type with two different element types, since generated code declares
// each custom type once. Only the outermost custom type of each field counts,
// looking through lists, so a custom type may nest inside itself.
func checkCustomTypes(all []*types.Type) error {
	seen := map[string]*types.Type{}
	for _, t := range all {
		cur := outermostCustom(t)
		if cur == nil {
			continue
		}
		first, ok := seen[cur.Name()]
		if !ok {
			seen[cur.Name()] = cur
			continue
		}
		if !first.Equal(cur) {
			return newError(InvalidType, "Two declarations of custom type %s", cur.Name())
		}
	}
	return nil
}

// outermostCustom returns the first custom type found walking down from t, or
// nil if there is none.
func outermostCustom(t *types.Type) *types.Type {
	for cur := t; cur != nil; cur = cur.Elem() {
		if cur.IsCustom() {
			return cur
		}
	}
	return nil
}
