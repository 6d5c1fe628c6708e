package openset_test

import (
	"math/rand"
	"testing"

	"github.com/tilenav/tilenav/gridmap"
	"github.com/tilenav/tilenav/openset"
)

// BenchmarkInsertExtract measures a full fill-and-drain cycle of 4096
// nodes with seeded random keys.
// Complexity: O(n log n) per cycle.
func BenchmarkInsertExtract(b *testing.B) {
	const n = 4096
	rng := rand.New(rand.NewSource(42))
	nodes := make([]*gridmap.Node, n)
	for i := range nodes {
		nodes[i] = &gridmap.Node{
			Pos:   gridmap.Coord{X: i % 64, Y: i / 64},
			GCost: rng.Intn(10000),
			HCost: rng.Intn(1000),
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		os := openset.New(n)
		for _, nd := range nodes {
			if err := os.Insert(nd); err != nil {
				b.Fatal(err)
			}
		}
		for os.Len() > 0 {
			if _, err := os.ExtractMin(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkDecreaseKey measures repositioning cost on a populated heap.
func BenchmarkDecreaseKey(b *testing.B) {
	const n = 4096
	rng := rand.New(rand.NewSource(42))
	os := openset.New(n)
	nodes := make([]*gridmap.Node, n)
	for i := range nodes {
		nodes[i] = &gridmap.Node{
			Pos:   gridmap.Coord{X: i % 64, Y: i / 64},
			GCost: 1000 + rng.Intn(100000),
			HCost: rng.Intn(1000),
		}
		if err := os.Insert(nodes[i]); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nd := nodes[rng.Intn(n)]
		if nd.GCost > 0 {
			nd.GCost--
		}
		if err := os.DecreaseKey(nd); err != nil {
			b.Fatal(err)
		}
	}
}
