package request

import (
	"testing"

	"github.com/bastiangx/wordfind/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestResolveDefaults(t *testing.T) {
	got, err := Resolve(Params{Query: "ca"}, config.DefaultConfig(), 2)
	require.NoError(t, err)
	assert.Equal(t, Resolved{Query: "ca", Limit: 10, MaxDistance: 2}, got)
}

func TestResolveDistanceFallback(t *testing.T) {
	got, err := Resolve(Params{Query: "ca", Fuzzy: true}, config.DefaultConfig(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.MaxDistance)
}

func TestResolveOverridesAndClamp(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxLimit = 20

	got, err := Resolve(Params{Query: "ca", Limit: intPtr(500), Fuzzy: true, MaxDistance: intPtr(0)}, cfg, 2)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Limit)
	assert.Equal(t, 0, got.MaxDistance)
	assert.True(t, got.Fuzzy)

	got, err = Resolve(Params{Query: "ca", Limit: intPtr(0)}, cfg, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Limit)
}

func TestResolveErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxQueryLen = 4

	tests := []struct {
		name   string
		params Params
		want   error
	}{
		{"empty", Params{}, ErrMissingQuery},
		{"blank", Params{Query: " \t "}, ErrMissingQuery},
		{"control chars", Params{Query: "ca\x00t"}, ErrInvalidQuery},
		{"too long", Params{Query: "abcde"}, ErrQueryTooLong},
		{"negative limit", Params{Query: "ca", Limit: intPtr(-3)}, ErrInvalidLimit},
		{"negative distance", Params{Query: "ca", MaxDistance: intPtr(-1)}, ErrInvalidDistance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.params, cfg, 2)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestResolveCountsRunes(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxQueryLen = 4

	_, err := Resolve(Params{Query: "café"}, cfg, 2)
	assert.NoError(t, err)
}
