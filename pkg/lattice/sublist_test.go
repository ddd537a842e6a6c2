package lattice_test

import (
	"fmt"
	"testing"

	"github.com/jihwankim/rubbertree/pkg/lattice"
)

func collect[T any](t *testing.T, m []T, k int) [][]T {
	t.Helper()
	seq, err := lattice.Sublists(m, k)
	if err != nil {
		t.Fatalf("Sublists(%v, %d): %v", m, k, err)
	}
	var out [][]T
	seq(func(s []T) bool {
		out = append(out, s)
		return true
	})
	return out
}

func TestSublistsOrderAndCount(t *testing.T) {
	m := []string{"M0", "M1", "M2", "M3", "M4"}
	got := collect(t, m, 3)

	if want := lattice.Binomial(5, 3); len(got) != want {
		t.Fatalf("got %d sublists, want C(5,3)=%d", len(got), want)
	}

	first := []string{"M0", "M1", "M2"}
	second := []string{"M0", "M1", "M3"}
	third := []string{"M0", "M1", "M4"}

	for i, want := range [][]string{first, second, third} {
		if fmt.Sprint(got[i]) != fmt.Sprint(want) {
			t.Errorf("sublist %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestSublistsEnumeratorCount(t *testing.T) {
	for m := 0; m <= 6; m++ {
		for k := 0; k <= m; k++ {
			elems := make([]int, m)
			for i := range elems {
				elems[i] = i
			}
			got := collect(t, elems, k)
			want := lattice.Binomial(m, k)
			if len(got) != want {
				t.Errorf("m=%d k=%d: got %d sublists, want %d", m, k, len(got), want)
			}
			for _, s := range got {
				if len(s) != k {
					t.Errorf("m=%d k=%d: sublist %v has length %d, want %d", m, k, s, len(s), k)
				}
			}
		}
	}
}

func TestSublistsZeroK(t *testing.T) {
	got := collect(t, []int{1, 2, 3}, 0)
	if len(got) != 1 || len(got[0]) != 0 {
		t.Fatalf("k=0 expected exactly one empty sublist, got %v", got)
	}
}

func TestSublistsPreconditionViolation(t *testing.T) {
	if _, err := lattice.Sublists([]int{1, 2}, 3); err == nil {
		t.Fatal("expected precondition violation for k > m")
	}
}

func TestSublistsEarlyAbandon(t *testing.T) {
	seq, err := lattice.Sublists([]int{1, 2, 3, 4}, 2)
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	seq(func(s []int) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Fatalf("expected enumeration to stop after 2 yields, got %d", count)
	}
}
