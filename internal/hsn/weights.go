package hsn

// Weights holds every bonus, penalty and threshold the matcher applies.
// The defaults were tuned by hand against real queries; override them through
// a tuning file rather than editing the constants.
type Weights struct {
	Goods          int `mapstructure:"goods" json:"goods"`
	ServicePenalty int `mapstructure:"service_penalty" json:"service_penalty"`

	ExactDescription     int `mapstructure:"exact_description" json:"exact_description"`
	DescriptionPrefix    int `mapstructure:"description_prefix" json:"description_prefix"`
	DescriptionSubstring int `mapstructure:"description_substring" json:"description_substring"`

	CodePrefix     int `mapstructure:"code_prefix" json:"code_prefix"`
	WholeWord      int `mapstructure:"whole_word" json:"whole_word"`
	WordPrefix     int `mapstructure:"word_prefix" json:"word_prefix"`
	TokenSubstring int `mapstructure:"token_substring" json:"token_substring"`

	FuzzyHigh          int     `mapstructure:"fuzzy_high" json:"fuzzy_high"`
	FuzzyHighThreshold float64 `mapstructure:"fuzzy_high_threshold" json:"fuzzy_high_threshold"`
	FuzzyLow           int     `mapstructure:"fuzzy_low" json:"fuzzy_low"`
	FuzzyLowThreshold  float64 `mapstructure:"fuzzy_low_threshold" json:"fuzzy_low_threshold"`
	FuzzyWindow        int     `mapstructure:"fuzzy_window" json:"fuzzy_window"`

	MaxResults        int `mapstructure:"max_results" json:"max_results"`
	ConfidenceBase    int `mapstructure:"confidence_base" json:"confidence_base"`
	ConfidenceDivisor int `mapstructure:"confidence_divisor" json:"confidence_divisor"`
	ConfidenceCap     int `mapstructure:"confidence_cap" json:"confidence_cap"`
}

// DefaultWeights returns the production scoring table.
func DefaultWeights() Weights {
	return Weights{
		Goods:                50,
		ServicePenalty:       20,
		ExactDescription:     250,
		DescriptionPrefix:    120,
		DescriptionSubstring: 80,
		CodePrefix:           200,
		WholeWord:            90,
		WordPrefix:           60,
		TokenSubstring:       15,
		FuzzyHigh:            15,
		FuzzyHighThreshold:   0.9,
		FuzzyLow:             8,
		FuzzyLowThreshold:    0.8,
		FuzzyWindow:          40,
		MaxResults:           10,
		ConfidenceBase:       60,
		ConfidenceDivisor:    20,
		ConfidenceCap:        100,
	}
}

// confidence maps a raw score onto the display range [base, cap].
func (w *Weights) confidence(score int) int {
	divisor := w.ConfidenceDivisor
	if divisor <= 0 {
		divisor = 1
	}
	c := w.ConfidenceBase + score/divisor
	if c > w.ConfidenceCap {
		return w.ConfidenceCap
	}
	return c
}
