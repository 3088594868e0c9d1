package precision

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	numkiterrors "github.com/alexisbeaulieu97/numkit/pkg/errors"
)

func TestClean(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1234567", Clean("  1,234,567 "))
	require.Equal(t, "1000000", Clean("1_000_000"))
	require.Equal(t, "-12.5", Clean("\t-1_2.5\n"))
	require.Equal(t, "", Clean(" , _ "))
}

func TestValidateEmpty(t *testing.T) {
	t.Parallel()

	classes := []Class{
		UnsignedFixed{Bits: 64},
		UnsignedFixed{Bits: 128},
		SignedFixed{Bits: 64},
		SignedFixed{Bits: 128},
		FixedDecimal{MaxDecimals: 2},
	}
	if ArbitraryAvailable {
		classes = append(classes, ArbitraryDecimal{})
	}

	for _, class := range classes {
		class := class
		t.Run(class.String(), func(t *testing.T) {
			t.Parallel()
			for _, raw := range []string{"", "   ", ",,", "_"} {
				_, err := Validate(raw, class)
				require.ErrorIs(t, err, numkiterrors.ErrEmpty, "raw %q", raw)
			}
		})
	}
}

func TestValidateUnsigned(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		raw   string
		class UnsignedFixed
		want  string
		kind  numkiterrors.Kind
	}{
		{name: "u64 max", raw: "18446744073709551615", class: UnsignedFixed{Bits: 64}, want: "18446744073709551615"},
		{name: "u64 max plus one", raw: "18446744073709551616", class: UnsignedFixed{Bits: 64}, kind: numkiterrors.KindOverflow},
		{name: "u64 grouped", raw: "18,446,744,073,709,551,615", class: UnsignedFixed{Bits: 64}, want: "18446744073709551615"},
		{name: "zero", raw: "0", class: UnsignedFixed{Bits: 64}, want: "0"},
		{name: "leading zeros kept", raw: "007", class: UnsignedFixed{Bits: 64}, want: "007"},
		{name: "explicit plus kept", raw: "+42", class: UnsignedFixed{Bits: 64}, want: "+42"},
		{name: "negative", raw: "-1", class: UnsignedFixed{Bits: 64}, kind: numkiterrors.KindInvalidFormat},
		{name: "negative zero", raw: "-0", class: UnsignedFixed{Bits: 64}, kind: numkiterrors.KindInvalidFormat},
		{name: "decimal point", raw: "1.5", class: UnsignedFixed{Bits: 64}, kind: numkiterrors.KindInvalidFormat},
		{name: "text", raw: "abc", class: UnsignedFixed{Bits: 64}, kind: numkiterrors.KindInvalidFormat},
		{name: "u128 max", raw: "340282366920938463463374607431768211455", class: UnsignedFixed{Bits: 128}, want: "340282366920938463463374607431768211455"},
		{name: "u128 max plus one", raw: "340282366920938463463374607431768211456", class: UnsignedFixed{Bits: 128}, kind: numkiterrors.KindOverflow},
		{name: "u8 max", raw: "255", class: UnsignedFixed{Bits: 8}, want: "255"},
		{name: "u8 overflow", raw: "256", class: UnsignedFixed{Bits: 8}, kind: numkiterrors.KindOverflow},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Validate(tc.raw, tc.class)
			if tc.kind != numkiterrors.KindUnknown {
				require.Error(t, err)
				require.Equal(t, tc.kind, numkiterrors.KindOf(err))
				require.Empty(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestValidateUnsignedOverflowReportsMaximum(t *testing.T) {
	t.Parallel()

	_, err := Validate("18446744073709551616", UnsignedFixed{Bits: 64})

	var parseErr *numkiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "18446744073709551615", parseErr.Bound)
	require.Equal(t, "u64", parseErr.Class)
	require.Contains(t, err.Error(), "exceeds u64 maximum 18446744073709551615")
}

func TestValidateSigned(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		raw   string
		class SignedFixed
		want  string
		kind  numkiterrors.Kind
	}{
		{name: "i64 max", raw: "9223372036854775807", class: SignedFixed{Bits: 64}, want: "9223372036854775807"},
		{name: "i64 min", raw: "-9223372036854775808", class: SignedFixed{Bits: 64}, want: "-9223372036854775808"},
		{name: "i64 above max", raw: "9223372036854775808", class: SignedFixed{Bits: 64}, kind: numkiterrors.KindOverflow},
		{name: "i64 below min", raw: "-9223372036854775809", class: SignedFixed{Bits: 64}, kind: numkiterrors.KindUnderflow},
		{name: "i128 min", raw: "-170141183460469231731687303715884105728", class: SignedFixed{Bits: 128}, want: "-170141183460469231731687303715884105728"},
		{name: "i128 below min", raw: "-170141183460469231731687303715884105729", class: SignedFixed{Bits: 128}, kind: numkiterrors.KindUnderflow},
		{name: "i128 above max", raw: "170141183460469231731687303715884105728", class: SignedFixed{Bits: 128}, kind: numkiterrors.KindOverflow},
		{name: "grouped negative", raw: " -1_000 ", class: SignedFixed{Bits: 64}, want: "-1000"},
		{name: "text", raw: "twelve", class: SignedFixed{Bits: 64}, kind: numkiterrors.KindInvalidFormat},
		{name: "signed text", raw: "-abc", class: SignedFixed{Bits: 64}, kind: numkiterrors.KindInvalidFormat},
		{name: "lone sign", raw: "-", class: SignedFixed{Bits: 64}, kind: numkiterrors.KindInvalidFormat},
		{name: "fraction", raw: "-1.0", class: SignedFixed{Bits: 64}, kind: numkiterrors.KindInvalidFormat},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Validate(tc.raw, tc.class)
			if tc.kind != numkiterrors.KindUnknown {
				require.Error(t, err)
				require.Equal(t, tc.kind, numkiterrors.KindOf(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestValidateFixedDecimal(t *testing.T) {
	t.Parallel()

	class := FixedDecimal{MaxDecimals: 2}

	t.Run("accepts fractions within the limit", func(t *testing.T) {
		t.Parallel()
		for raw, want := range map[string]string{
			"0":          "0",
			"1.5":        "1.5",
			"1.50":       "1.50",
			"-0.01":      "-0.01",
			"1,234.56":   "1234.56",
			" 1_000.0 ":  "1000.0",
			".5":         ".5",
			"5.":         "5.",
			"+3.14":      "+3.14",
			"0000012.30": "0000012.30",
		} {
			got, err := Validate(raw, class)
			require.NoError(t, err, "raw %q", raw)
			require.Equal(t, want, got, "raw %q", raw)
		}
	})

	t.Run("rejects long fractions regardless of magnitude", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"1.234", "0.001", "-99999999999999999999.999", "1" + strings.Repeat("0", 400) + ".123"} {
			_, err := Validate(raw, class)
			require.ErrorIs(t, err, numkiterrors.ErrTooManyDecimals, "raw %q", raw)

			var parseErr *numkiterrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, 2, parseErr.Limit)
		}
	})

	t.Run("fraction length is checked before syntax", func(t *testing.T) {
		t.Parallel()
		_, err := Validate("12x.345", class)
		require.ErrorIs(t, err, numkiterrors.ErrTooManyDecimals)
	})

	t.Run("malformed literals are format errors, not digit counts", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"1.2.3", "1.2.3.4.5", "abc.defg", "1.2e10"} {
			_, err := Validate(raw, class)
			require.ErrorIs(t, err, numkiterrors.ErrInvalidFormat, "raw %q", raw)
		}
	})

	t.Run("rejects non numeric text", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"abc", "1.2.3", "1e5", "inf", "NaN", "0x10", "-", "."} {
			_, err := Validate(raw, FixedDecimal{MaxDecimals: 4})
			require.ErrorIs(t, err, numkiterrors.ErrInvalidFormat, "raw %q", raw)
		}
	})

	t.Run("zero decimals rejects any fraction digit", func(t *testing.T) {
		t.Parallel()
		_, err := Validate("1.0", FixedDecimal{MaxDecimals: 0})
		require.ErrorIs(t, err, numkiterrors.ErrTooManyDecimals)

		got, err := Validate("10", FixedDecimal{MaxDecimals: 0})
		require.NoError(t, err)
		require.Equal(t, "10", got)
	})

	t.Run("magnitude beyond float64", func(t *testing.T) {
		t.Parallel()
		huge := "1" + strings.Repeat("0", 400)
		_, err := Validate(huge, class)
		require.ErrorIs(t, err, numkiterrors.ErrOverflow)

		_, err = Validate("-"+huge, class)
		require.ErrorIs(t, err, numkiterrors.ErrUnderflow)
	})
}

func TestValidateIsDeterministic(t *testing.T) {
	t.Parallel()

	class := SignedFixed{Bits: 64}
	for i := 0; i < 3; i++ {
		got, err := Validate(" 1,024 ", class)
		require.NoError(t, err)
		require.Equal(t, "1024", got)
	}
	require.True(t, IsValid("1", class))
	require.False(t, IsValid("x", class))
}

func TestValidateRejectsMisconfiguredClass(t *testing.T) {
	t.Parallel()

	for _, class := range []Class{nil, UnsignedFixed{Bits: 12}, SignedFixed{Bits: 0}, FixedDecimal{MaxDecimals: -1}} {
		_, err := Validate("1", class)

		var validationErr *numkiterrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Equal(t, numkiterrors.KindUnknown, numkiterrors.KindOf(err))
	}
}

func TestFractionDigits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want int
	}{
		{raw: "12", want: 0},
		{raw: "1.", want: 0},
		{raw: "1.50", want: 2},
		{raw: ".125", want: 3},
		{raw: "1.2.3", want: 1},
		{raw: "1.25e3", want: 2},
		{raw: "abc.defg", want: 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, FractionDigits(tc.raw))
		})
	}
}
