package domain

// Flag is a tri-state boolean parsed from scan output, where booleans are
// serialized as the literal strings "True" and "False". Any other value,
// including the empty string, is FlagUnknown.
type Flag int8

const (
	// FlagUnknown indicates the source cell was neither "True" nor "False".
	FlagUnknown Flag = iota
	// FlagFalse is the literal "False".
	FlagFalse
	// FlagTrue is the literal "True".
	FlagTrue
)

// ParseFlag converts a scan cell into a Flag. Matching is exact and case-sensitive.
func ParseFlag(s string) Flag {
	switch s {
	case "True":
		return FlagTrue
	case "False":
		return FlagFalse
	default:
		return FlagUnknown
	}
}

// IsTrue reports whether the flag was explicitly "True".
func (f Flag) IsTrue() bool { return f == FlagTrue }

// IsFalse reports whether the flag was explicitly "False".
func (f Flag) IsFalse() bool { return f == FlagFalse }

// Bool returns the flag as an optional bool; unknown values yield nil.
func (f Flag) Bool() *bool {
	var b bool
	switch f {
	case FlagTrue:
		b = true
	case FlagFalse:
		b = false
	default:
		return nil
	}

	return &b
}

func (f Flag) String() string {
	switch f {
	case FlagTrue:
		return "True"
	case FlagFalse:
		return "False"
	default:
		return "Unknown"
	}
}
