package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-admin-api/internal/service"
)

// parseSeed reads the optional seed query parameter. Absent or unparsable
// values mean time-seeded randomness.
func parseSeed(c *gin.Context) int64 {
	raw := strings.TrimSpace(c.Query("seed"))
	if raw == "" {
		return 0
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return seed
}

// parseFixtureOptions reads the seed/count generation knobs.
func parseFixtureOptions(c *gin.Context) service.FixtureOptions {
	opts := service.FixtureOptions{Seed: parseSeed(c)}
	if raw := strings.TrimSpace(c.Query("count")); raw != "" {
		if count, err := strconv.Atoi(raw); err == nil {
			opts.Count = count
		}
	}
	return opts
}
