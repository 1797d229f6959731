package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name   string
		raw    any
		want   int
		wantOK bool
	}{
		{name: "nil", raw: nil, wantOK: false},
		{name: "numeric hours", raw: float64(3), want: 180, wantOK: true},
		{name: "numeric fractional hours", raw: 2.5, want: 150, wantOK: true},
		{name: "numeric zero", raw: float64(0), wantOK: false},
		{name: "numeric negative", raw: -1.0, wantOK: false},
		{name: "int hours", raw: 2, want: 120, wantOK: true},
		{name: "range in hours", raw: "4-10 hours", want: 420, wantOK: true},
		{name: "range in minutes", raw: "30-60 min", want: 45, wantOK: true},
		{name: "single hours", raw: "2 hours", want: 120, wantOK: true},
		{name: "single short hour unit", raw: "2h", want: 120, wantOK: true},
		{name: "single minutes", raw: "120 minutes", want: 120, wantOK: true},
		{name: "single mins", raw: "45 mins", want: 45, wantOK: true},
		{name: "single short minute unit", raw: "90m", want: 90, wantOK: true},
		{name: "plain number below cutoff is hours", raw: "4", want: 240, wantOK: true},
		{name: "plain number at cutoff is minutes", raw: "10", want: 10, wantOK: true},
		{name: "plain number above cutoff is minutes", raw: "120", want: 120, wantOK: true},
		{name: "uppercase with padding", raw: "  2 Hours ", want: 120, wantOK: true},
		{name: "free text", raw: "depends on the apartment", wantOK: false},
		{name: "empty string", raw: "", wantOK: false},
		{name: "unsupported type", raw: []string{"2"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDuration(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
