package similarity

import "fmt"

// New builds the named strategy. Stop words apply to the lexical variants;
// semantic options apply only when name is "semantic".
func New(name string, stop *StopWordSet, semanticOpts ...SemanticOption) (Strategy, error) {
	switch name {
	case NameLexical:
		return NewLexical(stop), nil
	case NameFrequencyVector, "":
		return NewFrequencyVector(stop), nil
	case NameSemantic:
		return NewSemantic(semanticOpts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
