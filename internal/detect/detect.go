// Package detect defines the object detection capability used by the camera
// flow. The only implementation is a simulation; no model inference happens.
package detect

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
)

// Detector reports the labels it sees when looking for query.
type Detector interface {
	Detect(ctx context.Context, query string) ([]string, error)
}

// commonLostItems are the labels the simulation samples from.
var commonLostItems = []string{
	"wallet", "keys", "phone", "backpack", "laptop",
	"umbrella", "water bottle", "glasses", "headphones",
	"smartphone", "tablet", "id card", "purse",
}

const queryHitRate = 0.7

// Simulated returns the query with a fixed probability plus random common
// items, one or two labels in total.
type Simulated struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulated builds a simulated detector. A nil source seeds from the
// runtime's random state.
func NewSimulated(src rand.Source) *Simulated {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Simulated{rng: rand.New(src)}
}

// Detect implements Detector.
func (s *Simulated) Detect(ctx context.Context, query string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	want := s.rng.IntN(2) + 1
	seen := make(map[string]bool, want)
	labels := make([]string, 0, want)

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" && s.rng.Float64() < queryHitRate {
		seen[q] = true
		labels = append(labels, q)
	}
	for len(labels) < want {
		label := commonLostItems[s.rng.IntN(len(commonLostItems))]
		if seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return labels, nil
}

// Matches reports whether any label equals query, ignoring case and
// surrounding space.
func Matches(labels []string, query string) bool {
	q := strings.TrimSpace(query)
	for _, label := range labels {
		if strings.EqualFold(strings.TrimSpace(label), q) {
			return true
		}
	}
	return false
}
