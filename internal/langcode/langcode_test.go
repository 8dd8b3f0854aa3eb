package langcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "lowercase base", in: "fr", want: "fr", ok: true},
		{name: "uppercase", in: "EN", want: "en", ok: true},
		{name: "region", in: "zh-cn", want: "zh-CN", ok: true},
		{name: "padded", in: "  de ", want: "de", ok: true},
		{name: "empty", in: "", ok: false},
		{name: "garbage", in: "not a tag", ok: false},
		{name: "undetermined", in: "und", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.in)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeOr(t *testing.T) {
	require.Equal(t, "es", NormalizeOr("ES", Default))
	require.Equal(t, Default, NormalizeOr("", Default))
}

func TestSupported(t *testing.T) {
	langs := Supported()
	require.Len(t, langs, 6)
	require.Equal(t, Language{Code: "en", Name: "English"}, langs[0])
	require.Equal(t, Language{Code: "fr", Name: "French"}, langs[2])
	require.True(t, IsSupported("PT"))
	require.False(t, IsSupported("ja"))
}
