// Package layers maps path segments and import paths onto the clean
// architecture layer vocabulary.
package layers

import "strings"

// Layer is the ordinal rank of an architectural layer. Lower ranks are
// further inside; dependencies must always point toward lower ranks.
type Layer int

const (
	Domain Layer = iota
	Application
	Infrastructure
	Frameworks
)

// Unclassified marks a file whose path matches no vocabulary entry.
// External marks an import that does not belong to the project.
const (
	Unclassified Layer = -1
	External     Layer = -2
)

func (l Layer) String() string {
	switch l {
	case Domain:
		return "domain"
	case Application:
		return "application"
	case Infrastructure:
		return "infrastructure"
	case Frameworks:
		return "frameworks"
	case External:
		return "external"
	default:
		return "unclassified"
	}
}

// Classified reports whether l is one of the four real layers.
func (l Layer) Classified() bool {
	return l >= Domain && l <= Frameworks
}

// vocabulary maps a lowercase path segment to its layer. Synonyms sit next
// to the canonical names; adding an alias is a table addition, not a code
// change.
var vocabulary = map[string]Layer{
	"domain":         Domain,
	"entities":       Domain,
	"application":    Application,
	"use_cases":      Application,
	"infrastructure": Infrastructure,
	"adapters":       Infrastructure,
	"frameworks":     Frameworks,
	"framework":      Frameworks,
}

// FromSegment resolves a single path segment to a layer, canonicalizing
// synonyms. The second return is false when the segment is not in the
// vocabulary.
func FromSegment(segment string) (Layer, bool) {
	l, ok := vocabulary[strings.ToLower(segment)]
	return l, ok
}

// Classify determines the layer of a file from its project-relative path.
// The first path segment that matches the vocabulary wins; deeper segments
// are not considered once a match is found.
func Classify(relPath string) Layer {
	for _, segment := range strings.Split(relPath, "/") {
		if l, ok := FromSegment(segment); ok {
			return l
		}
	}
	return Unclassified
}

// ClassifyImport resolves a dotted module path to a layer. The first dotted
// segment must itself be a vocabulary token for the module to count as a
// project import at all; everything else is External (stdlib or third-party,
// never checked). A third-party distribution literally named after a layer
// is therefore misclassified as project-internal; that is a deliberate
// approximation since imports are never resolved against an installed
// package set.
func ClassifyImport(module string) Layer {
	first, _, _ := strings.Cut(module, ".")
	if l, ok := FromSegment(first); ok {
		return l
	}
	return External
}
