package numerator

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	period := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cfg  Config
		num  int64
		want string
	}{
		{
			name: "default with year",
			cfg:  DefaultConfig("INV"),
			num:  1,
			want: "INV-2026-00001",
		},
		{
			name: "large sequence exceeds pad width",
			cfg:  DefaultConfig("INV"),
			num:  123456,
			want: "INV-2026-123456",
		},
		{
			name: "without year",
			cfg:  Config{Prefix: "PO", PadWidth: 4},
			num:  42,
			want: "PO-0042",
		},
		{
			name: "zero pad width falls back to 5",
			cfg:  Config{Prefix: "X", IncludeYear: true},
			num:  7,
			want: "X-2026-00007",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatNumber(tt.cfg, period, tt.num)
			if got != tt.want {
				t.Errorf("FormatNumber() = %q, want %q", got, tt.want)
			}
		})
	}
}
