package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simweave/simweave"
)

func TestBuildWalkersGenerated(t *testing.T) {
	walkers, err := buildWalkers("", 3)
	require.NoError(t, err)
	require.Len(t, walkers, 3)
	assert.Equal(t, "Walker.walker-0", walkers[0].Ident().String())
	assert.Equal(t, 100.0, walkers[0].Wealth)
}

func TestBuildWalkersFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "population.csv")
	csv := "name,wealth\nada,50\ngrace,75\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	walkers, err := buildWalkers(path, 0)
	require.NoError(t, err)
	require.Len(t, walkers, 2)
	assert.Equal(t, "ada", walkers[0].Ident().Raw)
	assert.Equal(t, 75.0, walkers[1].Wealth)
}

func TestBuildWalkersRejectsNegativeWealth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "population.csv")
	csv := "name,wealth\nada,-1\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	_, err := buildWalkers(path, 0)
	assert.Error(t, err)
}

func TestWalkerRunDeterministic(t *testing.T) {
	run := func() map[string]float64 {
		sim := simweave.New(func(o *simweave.Options) {
			o.Seed = 99
		})
		walkers, err := buildWalkers("", 5)
		require.NoError(t, err)
		require.NoError(t, sim.Add(walkers))
		require.NoError(t, sim.Run(context.Background(), 10))

		final := map[string]float64{}
		for _, w := range walkers {
			final[w.Ident().String()] = w.Wealth
		}
		return final
	}

	assert.Equal(t, run(), run())
}
