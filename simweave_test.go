package simweave

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simweave/simweave/engine"
	"github.com/simweave/simweave/internal/testutil"
)

func TestSimulationRun(t *testing.T) {
	sim := New(func(o *Options) {
		o.Year = 2025
		o.Seed = 7
	})

	alice := testutil.NewTransferAgent("alice", 10)
	bob := testutil.NewTransferAgent("bob", 0)
	alice.PartnerID = bob.Ident()
	bob.PartnerID = alice.Ident()

	require.NoError(t, sim.Add(alice, bob))
	require.NoError(t, sim.Run(context.Background(), 3))

	assert.Equal(t, 2028, sim.Environment().Year())

	reports := sim.Reports()
	require.Len(t, reports["TransferAgent.alice"], 3)
	assert.Equal(t, 2025, reports["TransferAgent.alice"][0]["TransferAgent"]["year"])
}

func TestFromConfig(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Year = 1999
	cfg.Seed = 42

	sim := FromConfig(cfg)
	assert.Equal(t, 1999, sim.Environment().Year())
}
