package shard

import (
	"sort"
	"strings"
)

// fragmentDelimiter joins sorted endpoint identities into the ledger's
// canonical key. Canonicalization must not rely on any host
// container's default string rendering.
const fragmentDelimiter = "|"

// FragmentLedger is the randomized backtracking sharder's external
// collaborator: a key/value store over canonicalized fragments. Save
// and Contains are invoked serially from within a single search call;
// nothing in this package serializes concurrent Shard calls that share
// a ledger.
type FragmentLedger interface {
	Save(key string) error
	Contains(key string) (bool, error)
}

// CanonicalizeFragment sorts the given endpoint identities ascending
// and joins them into the ledger's opaque key form. Two fragments with
// equal sorted content canonicalize to the same key.
func CanonicalizeFragment(identities []string) string {
	sorted := append([]string(nil), identities...)
	sort.Strings(sorted)
	return strings.Join(sorted, fragmentDelimiter)
}
