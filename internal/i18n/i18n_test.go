package i18n_test

import (
	"testing"

	"github.com/mathpict/mathpict/internal/i18n"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	require.Equal(t, "error.parse_failed", i18n.Default(i18n.KeyParseFailed, nil))

	// Arguments render in stable alphabetical order.
	got := i18n.Default(i18n.KeyUnevenDivision, map[string]any{
		"divisor":  2,
		"dividend": 7,
	})
	require.Equal(t, "error.uneven_division (dividend=7, divisor=2)", got)
}
