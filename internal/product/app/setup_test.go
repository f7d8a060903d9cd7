package app

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/abgdnv/inventory/internal/config"
	perrors "github.com/abgdnv/inventory/internal/product/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SetupDependencies_Seed(t *testing.T) {
	testCases := []struct {
		name        string
		seed        bool
		expectCount int
		expectError error
	}{
		{name: "seeded", seed: true, expectCount: 1},
		{name: "empty", seed: false, expectError: perrors.ErrNoProducts},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			cfg := &config.Config{}
			cfg.Seed.Enabled = tc.seed
			// when
			deps, err := SetupDependencies(context.Background(), cfg, slog.New(slog.DiscardHandler))
			// then
			require.NoError(t, err)
			products, err := deps.ProductService.FindAll(context.Background())
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			require.Len(t, products, tc.expectCount)
			assert.Equal(t, "Phone S", products[0].Name)
			assert.Equal(t, "Samsung", products[0].Brand)
			assert.Equal(t, 1000.5, products[0].Price)
			assert.Equal(t, int32(10), products[0].Stock)
		})
	}
}

func Test_SetupConsole_RunsAgainstSeededStore(t *testing.T) {
	// given
	cfg := &config.Config{}
	cfg.Seed.Enabled = true
	deps, err := SetupDependencies(context.Background(), cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	var out bytes.Buffer
	c := SetupConsole(deps, cfg, strings.NewReader("2\nphone s\n6\n"), &out)

	// when
	err = c.Run(context.Background())

	// then
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Name: Phone S - Brand: Samsung.")
}
