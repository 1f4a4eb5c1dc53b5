package config

import (
	"fmt"

	"github.com/spf13/viper"

	"gstbook/internal/hsn"
)

// LoadHSNWeights reads matcher weight overrides from path. Keys absent from
// the file keep their default value. An empty path returns the defaults.
func LoadHSNWeights(path string) (hsn.Weights, error) {
	w := hsn.DefaultWeights()
	if path == "" {
		return w, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return hsn.Weights{}, fmt.Errorf("config: reading hsn tuning file: %w", err)
	}
	if err := v.Unmarshal(&w); err != nil {
		return hsn.Weights{}, fmt.Errorf("config: decoding hsn tuning file: %w", err)
	}
	if err := validateWeights(&w); err != nil {
		return hsn.Weights{}, err
	}
	return w, nil
}

func validateWeights(w *hsn.Weights) error {
	switch {
	case w.MaxResults <= 0:
		return fmt.Errorf("config: hsn max_results must be positive, got %d", w.MaxResults)
	case w.ConfidenceDivisor <= 0:
		return fmt.Errorf("config: hsn confidence_divisor must be positive, got %d", w.ConfidenceDivisor)
	case w.FuzzyLowThreshold < 0 || w.FuzzyHighThreshold > 1 || w.FuzzyLowThreshold > w.FuzzyHighThreshold:
		return fmt.Errorf("config: hsn fuzzy thresholds out of order: low %.2f high %.2f", w.FuzzyLowThreshold, w.FuzzyHighThreshold)
	}
	return nil
}
