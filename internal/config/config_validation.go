// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Validation.FuzzyThreshold < 0 || cfg.Validation.FuzzyThreshold > 100 {
		return ErrInvalidValidationConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Validation.FuzzyThreshold < 0 || cfg.Validation.FuzzyThreshold > 100 {
		return ErrInvalidValidationConfigs
	}

	if cfg.Workers.AutosaveInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
