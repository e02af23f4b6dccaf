// Package fixture fabricates schema-shaped random records for the mock API.
// Generation is pure: it never touches process state and cannot fail on valid
// input. A non-zero seed makes the output reproducible.
package fixture

import (
	"math/rand"
	"strings"
	"time"
)

// Generator produces randomized records of every supported kind.
type Generator struct {
	r   *rand.Rand
	now time.Time
}

// New builds a generator. seed == 0 picks a time-based seed, so successive
// calls produce different data; any other seed is reproducible.
func New(seed int64) *Generator {
	return NewAt(seed, time.Now().UTC())
}

// NewAt fixes the reference time as well as the seed. Dates are drawn from
// recent-day windows relative to now.
func NewAt(seed int64, now time.Time) *Generator {
	if seed == 0 {
		seed = now.UnixNano()
	}
	return &Generator{r: rand.New(rand.NewSource(seed)), now: now}
}

func (g *Generator) id() string {
	buf := make([]byte, 12)
	for i := range buf {
		buf[i] = "0123456789abcdef"[g.r.Intn(16)]
	}
	return string(buf)
}

func (g *Generator) pick(values []string) string {
	return values[g.r.Intn(len(values))]
}

// intBetween returns a uniform integer in [min, max].
func (g *Generator) intBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.r.Intn(max-min+1)
}

// floatBetween returns a uniform float in [min, max).
func (g *Generator) floatBetween(min, max float64) float64 {
	return min + g.r.Float64()*(max-min)
}

// recentTime returns an instant within the past `days` days.
func (g *Generator) recentTime(days int) time.Time {
	window := time.Duration(days) * 24 * time.Hour
	return g.now.Add(-time.Duration(g.r.Int63n(int64(window))))
}

func (g *Generator) fullName() string {
	return g.pick(firstNames) + " " + g.pick(lastNames)
}

func (g *Generator) email() string {
	name := strings.ToLower(g.pick(firstNames)) + "." + strings.ToLower(g.pick(lastNames))
	return name + "@" + g.pick(emailDomains)
}

func (g *Generator) tourTitle() string {
	return g.pick(cities) + " " + g.pick(tourThemes)
}
