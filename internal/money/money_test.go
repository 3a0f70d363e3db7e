package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyvernhall/snackcupboard/internal/money"
)

func TestParsePounds(t *testing.T) {
	type testCase struct {
		name  string
		input string
		want  int64
	}

	tests := []testCase{
		{name: "WholePounds", input: "2", want: 200},
		{name: "PoundsAndPence", input: "1.50", want: 150},
		{name: "PenceOnly", input: "0.05", want: 5},
		{name: "Zero", input: "0", want: 0},
		{name: "RoundsSubPenny", input: "0.999", want: 100},
		{name: "Negative", input: "-1.50", want: -150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ParsePounds(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePounds_Invalid(t *testing.T) {
	for _, input := range []string{"", "free", "1,50 EUR"} {
		_, err := money.ParsePounds(input)
		assert.Error(t, err, input)
	}
}

func TestPounds(t *testing.T) {
	assert.Equal(t, "1.50", money.Pounds(150))
	assert.Equal(t, "0.05", money.Pounds(5))
	assert.Equal(t, "0.00", money.Pounds(0))
	assert.Equal(t, "12.00", money.Pounds(1200))
}
