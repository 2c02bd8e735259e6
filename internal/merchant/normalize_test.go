package merchant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "uppercases and strips store number",
			raw:  "Starbucks #1234",
			want: "STARBUCKS",
		},
		{
			name: "strips business suffix",
			raw:  "ACME WIDGETS LLC",
			want: "ACME WIDGETS",
		},
		{
			name: "strips punctuation",
			raw:  "AT&T* PAYMENT",
			want: "AT T PAYMENT",
		},
		{
			name: "strips trailing state code",
			raw:  "SHELL OIL SEATTLE WA",
			want: "SHELL OIL SEATTLE",
		},
		{
			name: "keeps leading two letter word",
			raw:  "WA STATE FERRIES",
			want: "WA STATE FERRIES",
		},
		{
			name: "collapses whitespace",
			raw:  "  WHOLE   FOODS   MARKET  ",
			want: "WHOLE FOODS MARKET",
		},
		{
			name: "empty input",
			raw:  "   ",
			want: "",
		},
		{
			name: "only noise tokens",
			raw:  "#4411 INC",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}
