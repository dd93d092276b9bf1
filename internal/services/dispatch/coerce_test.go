package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringToBool(t *testing.T) {
	truthy := []string{"true", "True", "TRUE", "1", "t", "y", "yes", "YES"}
	for _, s := range truthy {
		v, err := StringToBool(s)
		require.NoError(t, err, "значение %q должно быть истинным", s)
		require.True(t, v)
	}

	falsy := []string{"false", "False", "0", "f", "n", "no", "NO"}
	for _, s := range falsy {
		v, err := StringToBool(s)
		require.NoError(t, err, "значение %q должно быть ложным", s)
		require.False(t, v)
	}

	_, err := StringToBool("maybe")
	require.Error(t, err)
	require.Contains(t, err.Error(), "maybe")
}

func TestStringToState(t *testing.T) {
	cases := map[string]int{
		"0":     0,
		"1":     1,
		"2":     2,
		"close": 1,
		"on":    1,
		"On":    1,
		"open":  0,
		"off":   0,
		"OFF":   0,
	}
	for in, want := range cases {
		got, err := StringToState(in)
		require.NoError(t, err, "состояние %q должно разрешаться", in)
		require.Equal(t, want, got, "состояние %q", in)
	}

	for _, bad := range []string{"3", "-1", "high", ""} {
		_, err := StringToState(bad)
		require.Error(t, err, "значение %q не является состоянием", bad)
	}
}

func TestParseIntList(t *testing.T) {
	states, err := ParseIntList("[0, 1, 2]")
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, states)

	states, err = ParseIntList("[1]")
	require.NoError(t, err)
	require.Equal(t, []int{1}, states)

	_, err = ParseIntList("[0, red]")
	require.Error(t, err)
	require.Contains(t, err.Error(), "red")
}

func TestParseStringList(t *testing.T) {
	require.Equal(t, []string{"Off", "Red", "Green"}, ParseStringList("[Off, Red, Green]"))
	require.Empty(t, ParseStringList("[]"))
}
