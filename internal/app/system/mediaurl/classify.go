package mediaurl

import "strings"

// Kind is the shape of a URL string as far as resolution cares.
type Kind int

const (
	// Bare has neither a scheme nor a leading slash ("photo.jpg").
	Bare Kind = iota
	// RootRelative starts with "/" ("/media/photo.jpg").
	RootRelative
	// Absolute carries an http or https scheme.
	Absolute
)

func (k Kind) String() string {
	switch k {
	case Absolute:
		return "absolute"
	case RootRelative:
		return "root-relative"
	default:
		return "bare"
	}
}

// Classify reports whether s is absolute, root-relative or bare.
func Classify(s string) Kind {
	if hasPrefixFold(s, "http://") || hasPrefixFold(s, "https://") {
		return Absolute
	}
	if strings.HasPrefix(s, "/") {
		return RootRelative
	}
	return Bare
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
