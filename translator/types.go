package translator

// cppType returns the C++ type used in the emitted program for the
// given Rebeca type. Unknown types pass through unchanged.
func cppType(typ string) string {
	switch typ {
	case "int", "byte", "short":
		return "int"
	case "boolean":
		return "bool"
	case "double":
		return "double"
	default:
		return typ
	}
}

// cppDefault returns the default value literal for the given Rebeca
// type.
func cppDefault(typ string) string {
	switch typ {
	case "int", "byte", "short":
		return "0"
	case "boolean":
		return "false"
	case "double":
		return "0.0"
	default:
		return "{}"
	}
}
