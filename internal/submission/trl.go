package submission

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	minTransmissionRiskLevel = 1
	maxTransmissionRiskLevel = 8
)

// TRLDerivations maps submitted transmission risk levels to the levels that are stored.
type TRLDerivations struct {
	mapping  map[int32]int32
	fallback int32
}

type trlDerivationsFile struct {
	Mapping map[int32]int32 `yaml:"trl-mapping"`
	Default int32           `yaml:"default"`
}

// NewTRLDerivations builds a derivation table. Submitted levels missing from
// mapping are stored as fallback.
func NewTRLDerivations(mapping map[int32]int32, fallback int32) (*TRLDerivations, error) {
	if len(mapping) == 0 {
		return nil, errors.New("trl mapping is empty")
	}
	if !validStoredLevel(fallback) {
		return nil, fmt.Errorf("fallback trl %d out of range", fallback)
	}
	copied := make(map[int32]int32, len(mapping))
	for submitted, stored := range mapping {
		if !validStoredLevel(stored) {
			return nil, fmt.Errorf("stored trl %d for submitted %d out of range", stored, submitted)
		}
		copied[submitted] = stored
	}
	return &TRLDerivations{mapping: copied, fallback: fallback}, nil
}

// DefaultTRLDerivations returns the identity table for levels 1..8.
func DefaultTRLDerivations() *TRLDerivations {
	mapping := make(map[int32]int32, maxTransmissionRiskLevel)
	for level := int32(minTransmissionRiskLevel); level <= maxTransmissionRiskLevel; level++ {
		mapping[level] = level
	}
	return &TRLDerivations{mapping: mapping, fallback: minTransmissionRiskLevel}
}

// LoadTRLDerivations reads a derivation table from a YAML file:
//
//	trl-mapping:
//	  1: 1
//	  2: 2
//	default: 1
func LoadTRLDerivations(path string) (*TRLDerivations, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trl derivations: %w", err)
	}

	var file trlDerivationsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode trl derivations: %w", err)
	}
	if file.Default == 0 {
		file.Default = minTransmissionRiskLevel
	}
	return NewTRLDerivations(file.Mapping, file.Default)
}

// Derive returns the level to store for a submitted level.
func (d *TRLDerivations) Derive(submitted int32) int32 {
	if stored, ok := d.mapping[submitted]; ok {
		return stored
	}
	return d.fallback
}

func validStoredLevel(level int32) bool {
	return level >= minTransmissionRiskLevel && level <= maxTransmissionRiskLevel
}
