package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel_AcceptsAllTiers(t *testing.T) {
	for _, lvl := range Levels() {
		got, err := ParseLevel(string(lvl))
		require.NoError(t, err)
		require.Equal(t, lvl, got)
	}
}

func TestParseLevel_Normalizes(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"b2", LevelB2},
		{" B2 ", LevelB2},
		{"c1", LevelC1},
		{"a1\n", LevelA1},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err, "input=%q", tc.in)
		require.Equal(t, tc.want, got, "input=%q", tc.in)
	}
}

func TestParseLevel_Missing(t *testing.T) {
	for _, in := range []string{"", "   ", "\t"} {
		_, err := ParseLevel(in)
		require.ErrorIs(t, err, ErrLevelMissing, "input=%q", in)
	}
}

func TestParseLevel_RejectsUnknownValues(t *testing.T) {
	for _, in := range []string{"A3", "B", "beginner", "C2+", "1A", "native"} {
		_, err := ParseLevel(in)
		require.ErrorIs(t, err, ErrLevelUnknown, "input=%q", in)
	}
}
