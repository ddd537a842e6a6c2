package shard_test

import (
	"fmt"
	"testing"

	"github.com/jihwankim/rubbertree/pkg/lattice"
	"github.com/jihwankim/rubbertree/pkg/shard"
)

func singleCellLattice(t *testing.T, n int) *lattice.Lattice {
	t.Helper()
	l := lattice.New([]string{"root"})
	endpoints := make([]lattice.Endpoint, n)
	for i := range endpoints {
		endpoints[i] = lattice.NewEndpoint(fmt.Sprintf("10.0.0.%d", i))
	}
	if err := l.AddEndpointsForSector(lattice.Coordinate{"only"}, endpoints); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestSimpleSharderDeterministic(t *testing.T) {
	l := singleCellLattice(t, 20)
	s := shard.NewSimpleSharder(42)

	a, err := s.Shard(l, []byte("caller-1"), 4)
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Shard(l, []byte("caller-1"), 4)
	if err != nil {
		t.Fatal(err)
	}

	av, bv := a.GetAllEndpoints(), b.GetAllEndpoints()
	if len(av) != 4 || len(bv) != 4 {
		t.Fatalf("expected 4 endpoints each, got %d and %d", len(av), len(bv))
	}
	for i := range av {
		if av[i].Value != bv[i].Value {
			t.Fatalf("same (seed, id, lattice) produced different output: %v vs %v", av, bv)
		}
	}
}

func TestSimpleSharderInsufficientCell(t *testing.T) {
	l := singleCellLattice(t, 3)
	s := shard.NewSimpleSharder(1)
	if _, err := s.Shard(l, []byte("x"), 4); err == nil {
		t.Fatal("expected ErrInsufficientCell when k exceeds cell size")
	}
}

func TestSimpleSharderUniformity(t *testing.T) {
	const (
		cellSize = 20
		k        = 4
		trials   = 10000
	)
	l := singleCellLattice(t, cellSize)
	s := shard.NewSimpleSharder(7)

	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		id := []byte(fmt.Sprintf("caller-%d", i))
		sub, err := s.Shard(l, id, k)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range sub.GetAllEndpoints() {
			counts[e.Value]++
		}
	}

	expected := float64(trials*k) / float64(cellSize)
	tolerance := expected * 0.10
	for value, c := range counts {
		if float64(c) < expected-tolerance || float64(c) > expected+tolerance {
			t.Errorf("endpoint %s selected %d times, want within 10%% of %.0f", value, c, expected)
		}
	}
	if len(counts) != cellSize {
		t.Errorf("only %d of %d endpoints were ever selected", len(counts), cellSize)
	}
}
