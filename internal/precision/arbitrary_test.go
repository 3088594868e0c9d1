//go:build !nodecimal

package precision

import (
	"testing"

	"github.com/stretchr/testify/require"

	numkiterrors "github.com/alexisbeaulieu97/numkit/pkg/errors"
)

func TestValidateArbitrary(t *testing.T) {
	t.Parallel()

	class := ArbitraryDecimal{}

	t.Run("keeps the typed digits", func(t *testing.T) {
		t.Parallel()
		for raw, want := range map[string]string{
			"1234.5678":             "1234.5678",
			"-0.000001":             "-0.000001",
			"1_000.10":              "1000.10",
			"9999999999999999999":   "9999999999999999999",
			"0.1234567890123456789": "0.1234567890123456789",
			"1.83e5":                "1.83e5",
			"  +42 ":                "+42",
			"1e6144":                "1e6144",
		} {
			got, err := Validate(raw, class)
			require.NoError(t, err, "raw %q", raw)
			require.Equal(t, want, got)
		}
	})

	t.Run("wraps parser rejections", func(t *testing.T) {
		t.Parallel()
		_, err := Validate("12abc", class)
		require.ErrorIs(t, err, numkiterrors.ErrInvalidFormat)

		var parseErr *numkiterrors.ParseError
		require.ErrorAs(t, err, &parseErr)
		require.Error(t, parseErr.Err)
		require.Contains(t, err.Error(), "expected end of string")

		for _, raw := range []string{"inf", "-Inf", "0x1p3", "1p3", "1e6145", "1e-6145"} {
			_, err := Validate(raw, class)
			require.ErrorIs(t, err, numkiterrors.ErrInvalidFormat, "raw %q", raw)
		}
	})

	t.Run("holds values wider than a 64-bit coefficient", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{
			"1234567890123456789012345678",
			"0.1234567890123456789012",
			"12345678901234567890.5",
			"18446744073709551615",
			"340282366920938463463374607431768211455",
			"-170141183460469231731687303715884105728",
		} {
			got, err := Validate(raw, class)
			require.NoError(t, err, "raw %q", raw)
			require.Equal(t, raw, got)
		}
	})

	t.Run("rejects values past the precision ceiling", func(t *testing.T) {
		t.Parallel()
		_, err := Validate("12345678901234567890123456789012345678901", class)
		require.ErrorIs(t, err, numkiterrors.ErrInvalidFormat)
		require.Contains(t, err.Error(), "more than 39 significant digits")

		_, err = Validate("0.1234567890123456789012345678901234567891", class)
		require.ErrorIs(t, err, numkiterrors.ErrInvalidFormat)
		require.Contains(t, err.Error(), "significant digits")
	})
}
