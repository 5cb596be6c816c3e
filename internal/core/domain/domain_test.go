package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/xpersist/internal/core/domain"
)

func TestAction_Valid(t *testing.T) {
	for _, a := range []domain.Action{
		domain.ActionCreateCache,
		domain.ActionOverwriteCache,
		domain.ActionReadCacheTrusted,
		domain.ActionReadCacheVerified,
	} {
		assert.True(t, a.Valid(), "expected %q to be valid", a)
	}
	assert.False(t, domain.Action("refresh_cache").Valid())
}

func TestAction_IsRead(t *testing.T) {
	assert.True(t, domain.ActionReadCacheTrusted.IsRead())
	assert.True(t, domain.ActionReadCacheVerified.IsRead())
	assert.False(t, domain.ActionCreateCache.IsRead())
	assert.False(t, domain.ActionOverwriteCache.IsRead())
}

func TestCacheEntry_Filename(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.CacheEntry
		want  string
	}{
		{
			name:  "suffix appended",
			entry: domain.CacheEntry{Dir: "/cache", Name: "dset", Format: domain.FormatJSON},
			want:  "dset.json",
		},
		{
			name:  "existing suffix used verbatim",
			entry: domain.CacheEntry{Dir: "/cache", Name: "dset.json", Format: domain.FormatJSON},
			want:  "dset.json",
		},
		{
			name:  "foreign suffix still appended",
			entry: domain.CacheEntry{Dir: "/cache", Name: "dset.json", Format: domain.FormatYAML},
			want:  "dset.json.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Filename())
		})
	}
}

func TestCacheEntry_Path(t *testing.T) {
	entry := domain.CacheEntry{Dir: "/cache", Name: "dset", Format: domain.FormatJSON}
	assert.Equal(t, "/cache/dset.json", entry.Path())
}

func TestKnownFormat(t *testing.T) {
	assert.True(t, domain.KnownFormat(domain.FormatJSON))
	assert.True(t, domain.KnownFormat(domain.FormatYAML))
	assert.False(t, domain.KnownFormat(domain.Format("nc")))
}

func TestDataset_Select(t *testing.T) {
	ds := &domain.Dataset{
		Variables: map[string]domain.Variable{
			"x": {Values: []float64{1}},
			"y": {Values: []float64{2}},
		},
	}

	assert.Same(t, ds, ds.Select(nil), "empty selection returns the dataset unchanged")

	got := ds.Select([]string{"x", "missing"})
	assert.Len(t, got.Variables, 1)
	assert.Contains(t, got.Variables, "x")
}
