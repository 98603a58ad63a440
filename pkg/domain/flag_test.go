package domain_test

import (
	"pulse/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFlag(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Flag
	}{
		{in: "True", want: domain.FlagTrue},
		{in: "False", want: domain.FlagFalse},
		{in: "", want: domain.FlagUnknown},
		{in: "true", want: domain.FlagUnknown},
		{in: "FALSE", want: domain.FlagUnknown},
		{in: "1", want: domain.FlagUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, domain.ParseFlag(tc.in))
		})
	}
}

func TestFlag_Bool(t *testing.T) {
	require.Nil(t, domain.FlagUnknown.Bool())
	require.NotNil(t, domain.FlagTrue.Bool())
	require.True(t, *domain.FlagTrue.Bool())
	require.NotNil(t, domain.FlagFalse.Bool())
	require.False(t, *domain.FlagFalse.Bool())
}

func TestFlag_NonFalseIsNotTrue(t *testing.T) {
	f := domain.ParseFlag("no")
	require.False(t, f.IsTrue())
	require.False(t, f.IsFalse())
}

func TestParticipationOf(t *testing.T) {
	require.Equal(t, domain.ParticipationYes, domain.ParticipationOf(domain.FlagTrue))
	require.Equal(t, domain.ParticipationNo, domain.ParticipationOf(domain.FlagFalse))
	require.Equal(t, domain.ParticipationUnknown, domain.ParticipationOf(domain.FlagUnknown))
}

func TestSplit_Table(t *testing.T) {
	got := domain.Split{Active: 87, Inactive: 13}.Table()
	require.Equal(t, [][]string{
		{"status", "value"},
		{"active", "87"},
		{"inactive", "13"},
	}, got)
}
