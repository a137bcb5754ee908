package impl

import (
	"io"
	"log/slog"

	"github.com/ahmedabdelhady55/cafe-ordering-system/config"
)

// newTestLogger returns a logger that swallows output.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestConfig returns the ordering parameters the tests assume.
func newTestConfig() *config.Config {
	cfg := &config.Config{
		Cafe: &config.CafeConfig{
			TenantID:       "cafe_001",
			ServiceFeeRate: 0.10,
			MaxTableNumber: 999,
		},
	}

	return cfg
}
