package domain

// VaguenessWeights holds the penalty and bonus magnitudes used by the
// vagueness classifier. The defaults are empirically tuned; treat them as
// adjustable knobs, not fixed law. Relative ordering of the penalties
// should be preserved when changing them.
type VaguenessWeights struct {
	VeryShortLength  int `json:"very_short_length"`  // input under 15 chars
	ShortLength      int `json:"short_length"`       // input under 30 chars
	VeryFewWords     int `json:"very_few_words"`     // fewer than 3 words
	FewWords         int `json:"few_words"`          // fewer than 5 words
	VagueKeyword     int `json:"vague_keyword"`      // per vague-keyword match
	VagueKeywordCap  int `json:"vague_keyword_cap"`  // cap on vague-keyword penalty
	GenericTerm      int `json:"generic_term"`       // generic noun in a short input
	SpecificKeyword  int `json:"specific_keyword"`   // bonus per technical term
	NumericBonus     int `json:"numeric_bonus"`      // bonus when digits present
	VaguenessCutoff  int `json:"vagueness_cutoff"`   // score at or above => vague
}

// GenerationSettings defines the parameters for a provider text-generation call.
type GenerationSettings struct {
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	TopP        float32 `json:"top_p,omitempty"`
}

// Tuning represents the full set of tunable constants for the amplifier.
type Tuning struct {
	Vagueness     VaguenessWeights   `json:"vagueness"`
	Amplification GenerationSettings `json:"amplification"`
	Clarification GenerationSettings `json:"clarification"`
}

// DefaultVaguenessWeights returns the weights used by the classifier when
// no tuning file overrides them.
func DefaultVaguenessWeights() VaguenessWeights {
	return VaguenessWeights{
		VeryShortLength: 40,
		ShortLength:     25,
		VeryFewWords:    35,
		FewWords:        20,
		VagueKeyword:    8,
		VagueKeywordCap: 25,
		GenericTerm:     15,
		SpecificKeyword: 12,
		NumericBonus:    10,
		VaguenessCutoff: 40,
	}
}

// DefaultTuning returns the compiled-in tuning values.
func DefaultTuning() Tuning {
	return Tuning{
		Vagueness:     DefaultVaguenessWeights(),
		Amplification: GenerationSettings{Temperature: 0.7, MaxTokens: 2000, TopP: 0.9},
		Clarification: GenerationSettings{Temperature: 0.7, MaxTokens: 500},
	}
}
