package shard_test

import (
	"testing"

	"github.com/jihwankim/rubbertree/pkg/shard"
)

func TestCanonicalizeFragmentOrderIndependent(t *testing.T) {
	a := shard.CanonicalizeFragment([]string{"3.3.3.3", "1.1.1.1", "2.2.2.2"})
	b := shard.CanonicalizeFragment([]string{"2.2.2.2", "3.3.3.3", "1.1.1.1"})
	if a != b {
		t.Fatalf("canonicalization is not order-independent: %q != %q", a, b)
	}
}

func TestCanonicalizeFragmentDistinctContent(t *testing.T) {
	a := shard.CanonicalizeFragment([]string{"1.1.1.1", "2.2.2.2"})
	b := shard.CanonicalizeFragment([]string{"1.1.1.1", "3.3.3.3"})
	if a == b {
		t.Fatalf("distinct fragments canonicalized to the same key: %q", a)
	}
}
