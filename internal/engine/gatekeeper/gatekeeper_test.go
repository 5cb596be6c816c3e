package gatekeeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/xpersist/internal/core/domain"
	"go.trai.ch/xpersist/internal/core/ports/mocks"
	"go.trai.ch/xpersist/internal/engine/gatekeeper"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type gatekeeperTestMocks struct {
	fs       *mocks.MockFilesystem
	registry *domain.TokenRegistry
}

// setupGatekeeperTest creates a gatekeeper over a mocked filesystem and a real
// token registry.
func setupGatekeeperTest(t *testing.T) (*gatekeeper.Gatekeeper, gatekeeperTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := gatekeeperTestMocks{
		fs:       mocks.NewMockFilesystem(ctrl),
		registry: domain.NewTokenRegistry(),
	}

	// Branch logging is noise for these tests.
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	g := gatekeeper.New(m.fs, m.registry, log)
	return g, m
}

const identity = "/cache/test-dset.json"

func TestDecide_CreateCache(t *testing.T) {
	g, m := setupGatekeeperTest(t)

	m.fs.EXPECT().Exists(identity).Return(false)
	m.fs.EXPECT().MakeDirs("/cache").Return(nil)

	action, err := g.Decide(identity, "fp-1", gatekeeper.Options{})
	require.NoError(t, err)
	require.Equal(t, domain.ActionCreateCache, action)

	fp, ok := m.registry.Lookup(identity)
	require.True(t, ok)
	require.Equal(t, domain.Fingerprint("fp-1"), fp)

	last, ok := m.registry.LastAction(identity)
	require.True(t, ok)
	require.Equal(t, domain.ActionCreateCache, last)
}

func TestDecide_ReadCacheTrusted_FirstSight(t *testing.T) {
	g, m := setupGatekeeperTest(t)

	// File exists but this process has never validated it.
	m.fs.EXPECT().Exists(identity).Return(true)

	action, err := g.Decide(identity, "fp-1", gatekeeper.Options{})
	require.NoError(t, err)
	require.Equal(t, domain.ActionReadCacheTrusted, action)

	// The current fingerprint is recorded unverified.
	fp, ok := m.registry.Lookup(identity)
	require.True(t, ok)
	require.Equal(t, domain.Fingerprint("fp-1"), fp)
}

func TestDecide_ReadCacheVerified_OnMatch(t *testing.T) {
	g, m := setupGatekeeperTest(t)
	m.registry.Record(identity, "fp-1")

	m.fs.EXPECT().Exists(identity).Return(true)

	action, err := g.Decide(identity, "fp-1", gatekeeper.Options{})
	require.NoError(t, err)
	require.Equal(t, domain.ActionReadCacheVerified, action)
}

func TestDecide_OverwriteCache_OnMismatch(t *testing.T) {
	g, m := setupGatekeeperTest(t)
	m.registry.Record(identity, "fp-1")

	m.fs.EXPECT().Exists(identity).Return(true)
	m.fs.EXPECT().Remove(identity).Return(nil)

	action, err := g.Decide(identity, "fp-2", gatekeeper.Options{})
	require.NoError(t, err)
	require.Equal(t, domain.ActionOverwriteCache, action)

	fp, ok := m.registry.Lookup(identity)
	require.True(t, ok)
	require.Equal(t, domain.Fingerprint("fp-2"), fp)
}

func TestDecide_TrustOverride_SkipsVerification(t *testing.T) {
	g, m := setupGatekeeperTest(t)
	m.registry.Record(identity, "fp-1")

	// Mismatching fingerprint, but trust short-circuits the comparison.
	m.fs.EXPECT().Exists(identity).Return(true)

	action, err := g.Decide(identity, "fp-2", gatekeeper.Options{Trust: true})
	require.NoError(t, err)
	require.Equal(t, domain.ActionReadCacheTrusted, action)

	fp, _ := m.registry.Lookup(identity)
	require.Equal(t, domain.Fingerprint("fp-2"), fp)
}

func TestDecide_ForceOverride_IgnoresMatch(t *testing.T) {
	g, m := setupGatekeeperTest(t)
	m.registry.Record(identity, "fp-1")

	m.fs.EXPECT().Exists(identity).Return(true)
	m.fs.EXPECT().Remove(identity).Return(nil)

	action, err := g.Decide(identity, "fp-1", gatekeeper.Options{ForceOverwrite: true})
	require.NoError(t, err)
	require.Equal(t, domain.ActionOverwriteCache, action)
}

func TestDecide_ForceWinsOverTrust(t *testing.T) {
	g, m := setupGatekeeperTest(t)

	m.fs.EXPECT().Exists(identity).Return(true)
	m.fs.EXPECT().Remove(identity).Return(nil)

	action, err := g.Decide(identity, "fp-1", gatekeeper.Options{Trust: true, ForceOverwrite: true})
	require.NoError(t, err)
	require.Equal(t, domain.ActionOverwriteCache, action)
}

func TestDecide_ForceOverride_MissingFileStillCreates(t *testing.T) {
	g, m := setupGatekeeperTest(t)

	// Nothing to overwrite: existence is checked first.
	m.fs.EXPECT().Exists(identity).Return(false)
	m.fs.EXPECT().MakeDirs("/cache").Return(nil)

	action, err := g.Decide(identity, "fp-1", gatekeeper.Options{ForceOverwrite: true})
	require.NoError(t, err)
	require.Equal(t, domain.ActionCreateCache, action)
}

func TestDecide_RemoveFailure_LeavesRegistryUntouched(t *testing.T) {
	g, m := setupGatekeeperTest(t)
	m.registry.Record(identity, "fp-1")

	m.fs.EXPECT().Exists(identity).Return(true)
	m.fs.EXPECT().Remove(identity).Return(zerr.New("device busy"))

	_, err := g.Decide(identity, "fp-2", gatekeeper.Options{})
	require.Error(t, err)

	// The registry still holds the old fingerprint and no action was logged
	// for the failed call.
	fp, _ := m.registry.Lookup(identity)
	require.Equal(t, domain.Fingerprint("fp-1"), fp)
	last, ok := m.registry.LastAction(identity)
	require.False(t, ok, "unexpected action recorded: %s", last)
}

func TestDecide_MakeDirsFailure_LeavesRegistryUntouched(t *testing.T) {
	g, m := setupGatekeeperTest(t)

	m.fs.EXPECT().Exists(identity).Return(false)
	m.fs.EXPECT().MakeDirs("/cache").Return(zerr.New("read-only filesystem"))

	_, err := g.Decide(identity, "fp-1", gatekeeper.Options{})
	require.Error(t, err)

	_, ok := m.registry.Lookup(identity)
	require.False(t, ok)
}

func TestDecide_FullLifecycle(t *testing.T) {
	g, m := setupGatekeeperTest(t)

	// create -> trusted -> verified -> overwrite, driven by one identity.
	m.fs.EXPECT().Exists(identity).Return(false)
	m.fs.EXPECT().MakeDirs("/cache").Return(nil)
	action, err := g.Decide(identity, "fp-1", gatekeeper.Options{})
	require.NoError(t, err)
	require.Equal(t, domain.ActionCreateCache, action)

	m.fs.EXPECT().Exists(identity).Return(true)
	action, err = g.Decide(identity, "fp-1", gatekeeper.Options{})
	require.NoError(t, err)
	require.Equal(t, domain.ActionReadCacheVerified, action)

	m.fs.EXPECT().Exists(identity).Return(true)
	m.fs.EXPECT().Remove(identity).Return(nil)
	action, err = g.Decide(identity, "fp-2", gatekeeper.Options{})
	require.NoError(t, err)
	require.Equal(t, domain.ActionOverwriteCache, action)

	last, ok := m.registry.LastAction(identity)
	require.True(t, ok)
	require.Equal(t, domain.ActionOverwriteCache, last)
}
