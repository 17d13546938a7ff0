package checkin

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

// DefaultMaxIntervalOffset bounds the shift of synthetic start intervals (two hours).
const DefaultMaxIntervalOffset = 12

// Padder converts genuine check-ins into warnings and adds synthetic ones.
type Padder struct {
	maxOffset uint32
}

// NewPadder constructs a Padder shifting synthetic start intervals by at most maxOffset.
func NewPadder(maxOffset uint32) *Padder {
	return &Padder{maxOffset: maxOffset}
}

// Pad returns the genuine warnings plus multiplier synthetic warnings per
// genuine check-in, in a shuffled order. The output only depends on the
// inputs: the pseudorandom stream is keyed by pepper and hour.
func (p *Padder) Pad(
	checkIns []model.CheckIn,
	multiplier int,
	pepper []byte,
	hour uint32,
	submissionType model.SubmissionType,
) []model.CheckInWarning {
	if len(checkIns) == 0 {
		return nil
	}
	if multiplier < 0 {
		multiplier = 0
	}

	rng := rand.New(rand.NewChaCha8(seed(pepper, hour)))
	warnings := make([]model.CheckInWarning, 0, len(checkIns)*(multiplier+1))

	for _, c := range checkIns {
		genuineID := sha256.Sum256(c.LocationID)
		warnings = append(warnings, model.CheckInWarning{
			TraceLocationID:       genuineID[:],
			StartIntervalNumber:   c.StartIntervalNumber,
			Period:                c.EndIntervalNumber - c.StartIntervalNumber,
			TransmissionRiskLevel: c.TransmissionRiskLevel,
			SubmissionHour:        hour,
			SubmissionType:        submissionType,
		})

		for i := 0; i < multiplier; i++ {
			warnings = append(warnings, model.CheckInWarning{
				TraceLocationID:       syntheticLocationID(pepper, hour, c.LocationID, i),
				StartIntervalNumber:   p.shift(rng, c.StartIntervalNumber),
				Period:                c.EndIntervalNumber - c.StartIntervalNumber,
				TransmissionRiskLevel: c.TransmissionRiskLevel,
				SubmissionHour:        hour,
				SubmissionType:        submissionType,
			})
		}
	}

	rng.Shuffle(len(warnings), func(i, j int) {
		warnings[i], warnings[j] = warnings[j], warnings[i]
	})
	return warnings
}

func (p *Padder) shift(rng *rand.Rand, start uint32) uint32 {
	if p.maxOffset == 0 {
		return start
	}
	offset := int64(rng.Uint32N(2*p.maxOffset+1)) - int64(p.maxOffset)
	shifted := int64(start) + offset
	if shifted < 0 {
		return 0
	}
	return uint32(shifted)
}

func seed(pepper []byte, hour uint32) [32]byte {
	mac := hmac.New(sha256.New, pepper)
	_ = binary.Write(mac, binary.BigEndian, hour)

	var out [32]byte
	copy(out[:], mac.Sum(nil))
	return out
}

func syntheticLocationID(pepper []byte, hour uint32, locationID []byte, index int) []byte {
	mac := hmac.New(sha256.New, pepper)
	_ = binary.Write(mac, binary.BigEndian, hour)
	_ = binary.Write(mac, binary.BigEndian, uint32(index))
	mac.Write(locationID)
	return mac.Sum(nil)
}
