package chess

// MoveAnnotation is the semantic meaning of a textual annotation glyph
// attached to a move, such as "!!" or "+/-".
type MoveAnnotation int

const (
	NoAnnotation MoveAnnotation = iota
	Good
	Mistake
	Brilliant
	Blunder
	Interesting
	Dubious
	MindBlowing
	Abysmal
	FascinatingButUnsound
	Unclear
	WithCompensation
	EvenPosition
	SlightAdvantageWhite
	SlightAdvantageBlack
	AdvantageWhite
	AdvantageBlack
	DecisiveAdvantageWhite
	DecisiveAdvantageBlack
	Space
	Initiative
	Development
	Counterplay
	Countering
	Idea
	TheoreticalNovelty
	UnknownAnnotation
)

// annotationNames maps annotations to their semantic names.
var annotationNames = [...]string{
	NoAnnotation:           "NoAnnotation",
	Good:                   "Good",
	Mistake:                "Mistake",
	Brilliant:              "Brilliant",
	Blunder:                "Blunder",
	Interesting:            "Interesting",
	Dubious:                "Dubious",
	MindBlowing:            "MindBlowing",
	Abysmal:                "Abysmal",
	FascinatingButUnsound:  "FascinatingButUnsound",
	Unclear:                "Unclear",
	WithCompensation:       "WithCompensation",
	EvenPosition:           "EvenPosition",
	SlightAdvantageWhite:   "SlightAdvantageWhite",
	SlightAdvantageBlack:   "SlightAdvantageBlack",
	AdvantageWhite:         "AdvantageWhite",
	AdvantageBlack:         "AdvantageBlack",
	DecisiveAdvantageWhite: "DecisiveAdvantageWhite",
	DecisiveAdvantageBlack: "DecisiveAdvantageBlack",
	Space:                  "Space",
	Initiative:             "Initiative",
	Development:            "Development",
	Counterplay:            "Counterplay",
	Countering:             "Countering",
	Idea:                   "Idea",
	TheoreticalNovelty:     "TheoreticalNovelty",
	UnknownAnnotation:      "UnknownAnnotation",
}

// annotationGlyphs maps annotations to their canonical glyph text.
var annotationGlyphs = [...]string{
	Good:                   "!",
	Mistake:                "?",
	Brilliant:              "!!",
	Blunder:                "??",
	Interesting:            "!?",
	Dubious:                "?!",
	MindBlowing:            "!!!",
	Abysmal:                "???",
	FascinatingButUnsound:  "!!?",
	Unclear:                "∞",
	WithCompensation:       "=/∞",
	EvenPosition:           "=",
	SlightAdvantageWhite:   "+/=",
	SlightAdvantageBlack:   "=/+",
	AdvantageWhite:         "+/-",
	AdvantageBlack:         "-/+",
	DecisiveAdvantageWhite: "+-",
	DecisiveAdvantageBlack: "-+",
	Space:                  "○",
	Initiative:             "↑",
	Development:            "↑↑",
	Counterplay:            "⇄",
	Countering:             "∇",
	Idea:                   "Δ",
	TheoreticalNovelty:     "N",
}

// glyphAnnotations is the reverse lookup built from annotationGlyphs.
var glyphAnnotations = func() map[string]MoveAnnotation {
	m := make(map[string]MoveAnnotation, len(annotationGlyphs))
	for a, g := range annotationGlyphs {
		if g != "" {
			m[g] = MoveAnnotation(a)
		}
	}
	return m
}()

// String returns the semantic name of the annotation.
func (a MoveAnnotation) String() string {
	if int(a) >= 0 && int(a) < len(annotationNames) {
		return annotationNames[a]
	}
	return "Unknown"
}

// Glyph returns the canonical glyph text of the annotation.
// NoAnnotation and UnknownAnnotation have no canonical glyph.
func (a MoveAnnotation) Glyph() string {
	if int(a) >= 0 && int(a) < len(annotationGlyphs) {
		return annotationGlyphs[a]
	}
	return ""
}

// NAG returns the standard numeric annotation glyph code for the
// annotation, or 0 when no standard code is assigned.
func (a MoveAnnotation) NAG() int {
	switch a {
	case Good:
		return 1
	case Mistake:
		return 2
	case Brilliant:
		return 3
	case Blunder:
		return 4
	case Interesting:
		return 5
	case Dubious:
		return 6
	case EvenPosition:
		return 10
	case Unclear:
		return 13
	case SlightAdvantageWhite:
		return 14
	case SlightAdvantageBlack:
		return 15
	case AdvantageWhite:
		return 16
	case AdvantageBlack:
		return 17
	case DecisiveAdvantageWhite:
		return 18
	case DecisiveAdvantageBlack:
		return 19
	case Space:
		return 26
	case Development:
		return 32
	case Initiative:
		return 36
	case WithCompensation:
		return 44
	case Counterplay:
		return 132
	case Idea:
		return 140
	case TheoreticalNovelty:
		return 146
	}
	return 0
}

// ParseAnnotation maps annotation text to its semantic meaning.
// Recognized glyphs map per the fixed table; any other non-empty text
// yields UnknownAnnotation and the empty string yields NoAnnotation.
func ParseAnnotation(text string) MoveAnnotation {
	if text == "" {
		return NoAnnotation
	}
	if a, ok := glyphAnnotations[text]; ok {
		return a
	}
	return UnknownAnnotation
}
