package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphforge/graphforge/pkg/gen"
)

func TestCorpusIsValid(t *testing.T) {
	entries := Corpus()
	require.Len(t, entries, 13)

	names := make(map[string]bool)
	paths := make(map[string]bool)
	for _, e := range entries {
		require.NoError(t, e.validate(), "entry %s", e.Name)
		require.False(t, names[e.Name], "duplicate name %s", e.Name)
		require.False(t, paths[e.Path], "duplicate path %s", e.Path)
		names[e.Name] = true
		paths[e.Path] = true
	}
}

func TestCorpusTierCounts(t *testing.T) {
	counts := make(map[Tier]int)
	for _, e := range Corpus() {
		counts[e.Tier]++
	}
	require.Equal(t, 3, counts[TierSmall])
	require.Equal(t, 4, counts[TierMedium])
	require.Equal(t, 2, counts[TierLarge])
	require.Equal(t, 4, counts[TierHeavy])
}

func TestCorpusHeavyTierStreams(t *testing.T) {
	// The 5e8-edge heavy request must use the streaming generator; a dedup
	// set at that scale would defeat the point.
	for _, e := range Corpus() {
		if e.Name == "random_100m" {
			require.IsType(t, gen.StreamingRandom{}, e.Generator)
			return
		}
	}
	t.Fatal("random_100m entry missing from corpus")
}

func TestFilter(t *testing.T) {
	entries := Corpus()

	small := Filter(entries, []Tier{TierSmall})
	require.Len(t, small, 3)
	for _, e := range small {
		require.Equal(t, TierSmall, e.Tier)
	}

	both := Filter(entries, []Tier{TierSmall, TierLarge})
	require.Len(t, both, 5)

	all := Filter(entries, nil)
	require.Len(t, all, len(entries))
}

func TestTierValid(t *testing.T) {
	for _, tier := range Tiers {
		require.True(t, tier.Valid())
	}
	require.False(t, Tier("gigantic").Valid())
	require.False(t, Tier("").Valid())
}

func TestEntryValidate(t *testing.T) {
	good := Entry{Name: "x", Tier: TierSmall, Generator: gen.Chain{Nodes: 2}, Path: "small/x.txt"}
	require.NoError(t, good.validate())

	tests := []struct {
		name  string
		entry Entry
	}{
		{"empty name", Entry{Tier: TierSmall, Generator: gen.Chain{Nodes: 2}, Path: "x.txt"}},
		{"bad tier", Entry{Name: "x", Tier: "huge", Generator: gen.Chain{Nodes: 2}, Path: "x.txt"}},
		{"nil generator", Entry{Name: "x", Tier: TierSmall, Path: "x.txt"}},
		{"bad path", Entry{Name: "x", Tier: TierSmall, Generator: gen.Chain{Nodes: 2}, Path: "../x.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.entry.validate())
		})
	}
}

func TestEntrySeedStability(t *testing.T) {
	// Same base seed and name always derive the same seed; different names
	// diverge so entries do not share random streams.
	require.Equal(t, entrySeed(42, "random_1k"), entrySeed(42, "random_1k"))
	require.NotEqual(t, entrySeed(42, "random_1k"), entrySeed(42, "random_10k"))
	require.NotEqual(t, entrySeed(42, "random_1k"), entrySeed(43, "random_1k"))
}
