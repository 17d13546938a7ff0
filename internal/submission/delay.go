package submission

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// poissonNormalThreshold is the mean above which Poisson sampling switches to
// the normal approximation.
const poissonNormalThreshold = 30

// FakeDelayManager estimates how long real submissions take so that fake
// requests can wait a statistically matching time.
type FakeDelayManager struct {
	mu         sync.Mutex
	delayMs    float64
	sampleSize float64
	rnd        *rand.Rand
}

// NewFakeDelayManager constructs a manager starting at initial with a moving
// average over sampleSize requests.
func NewFakeDelayManager(initial time.Duration, sampleSize int) *FakeDelayManager {
	if sampleSize < 1 {
		sampleSize = 1
	}
	return &FakeDelayManager{
		delayMs:    float64(initial.Milliseconds()),
		sampleSize: float64(sampleSize),
		rnd:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Update feeds the observed duration of a real request into the average.
func (m *FakeDelayManager) Update(observed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.delayMs
	m.delayMs = current + (float64(observed.Milliseconds())-current)/m.sampleSize
}

// Delay returns the current mean delay.
func (m *FakeDelayManager) Delay() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return time.Duration(m.delayMs * float64(time.Millisecond))
}

// JitteredDelay samples a Poisson distributed delay (in milliseconds) around the current mean.
func (m *FakeDelayManager) JitteredDelay() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return time.Duration(m.samplePoisson(m.delayMs)) * time.Millisecond
}

func (m *FakeDelayManager) samplePoisson(lambda float64) int64 {
	if lambda <= 0 {
		return 0
	}
	if lambda > poissonNormalThreshold {
		v := math.Round(lambda + m.rnd.NormFloat64()*math.Sqrt(lambda))
		if v < 0 {
			return 0
		}
		return int64(v)
	}

	limit := math.Exp(-lambda)
	product := m.rnd.Float64()
	var k int64
	for product > limit {
		k++
		product *= m.rnd.Float64()
	}
	return k
}
