package submission

import (
	"crypto/rand"
	"fmt"
	"slices"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

// PadKeys returns the genuine keys followed, per key, by multiplier-1 synthetic
// keys with random payloads and otherwise identical fields.
func PadKeys(keys []model.DiagnosisKey, multiplier int) ([]model.DiagnosisKey, error) {
	if multiplier <= 1 {
		return keys, nil
	}

	padded := make([]model.DiagnosisKey, 0, len(keys)*multiplier)
	for _, key := range keys {
		padded = append(padded, key)
		for i := 1; i < multiplier; i++ {
			fake, err := syntheticKey(key)
			if err != nil {
				return nil, err
			}
			padded = append(padded, fake)
		}
	}
	return padded, nil
}

func syntheticKey(genuine model.DiagnosisKey) (model.DiagnosisKey, error) {
	keyData := make([]byte, model.KeyDataLength)
	if _, err := rand.Read(keyData); err != nil {
		return model.DiagnosisKey{}, fmt.Errorf("generate random key data: %w", err)
	}

	fake := genuine
	fake.KeyData = keyData
	fake.VisitedCountries = slices.Clone(genuine.VisitedCountries)
	if genuine.DaysSinceOnsetOfSymptoms != nil {
		dsos := *genuine.DaysSinceOnsetOfSymptoms
		fake.DaysSinceOnsetOfSymptoms = &dsos
	}
	return fake, nil
}
