// Package numerator provides document auto-numbering.
//
// Only the strict strategy is implemented: every number comes from an
// UPSERT ... RETURNING over sys_sequences, guaranteeing a gap-free sequence.
// That is the right trade-off for invoices, and it also makes the generated
// number a collision-proof identity for the invoice artifact.
package numerator

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// Querier interface for database operations.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g., "INV")
	Prefix string

	// IncludeYear adds year to the number
	IncludeYear bool

	// PadWidth is the minimum number width (default 5)
	PadWidth int
}

// DefaultConfig returns sensible defaults: PREFIX-YEAR-XXXXX, yearly reset.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		IncludeYear: true,
		PadWidth:    5,
	}
}

// Service provides document numbering functionality.
type Service struct {
	querier Querier
}

// New creates a new numerator service.
func New(querier Querier) *Service {
	return &Service{querier: querier}
}

// GetNextNumber generates the next document number for the period.
// Pattern: PREFIX-YEAR-XXXXX (e.g., INV-2026-00001).
func (s *Service) GetNextNumber(ctx context.Context, cfg Config, period time.Time) (string, error) {
	if s == nil || s.querier == nil {
		return "", fmt.Errorf("numerator service is not initialized")
	}

	var num int64
	err := s.querier.QueryRow(ctx, `
        INSERT INTO sys_sequences (sequence_type, year, current_val)
        VALUES ($1, $2, 1)
        ON CONFLICT (sequence_type, year) DO UPDATE SET current_val = sys_sequences.current_val + 1
        RETURNING current_val
	`, cfg.Prefix, period.Year()).Scan(&num)
	if err != nil {
		return "", fmt.Errorf("next number: %w", err)
	}

	return FormatNumber(cfg, period, num), nil
}

// FormatNumber renders a sequence value using the configuration.
func FormatNumber(cfg Config, period time.Time, num int64) string {
	pad := cfg.PadWidth
	if pad <= 0 {
		pad = 5
	}

	if cfg.IncludeYear {
		return fmt.Sprintf("%s-%d-%0*d", cfg.Prefix, period.Year(), pad, num)
	}
	return fmt.Sprintf("%s-%0*d", cfg.Prefix, pad, num)
}
