package shard

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"

	"github.com/jihwankim/rubbertree/pkg/lattice"
)

// SimpleSharder is the deterministic, hash-based sharder. The same
// (seed, id, lattice) always produces a bit-identical shard.
type SimpleSharder struct {
	seed uint64
}

// NewSimpleSharder constructs a sharder keyed by a fixed 64-bit seed.
func NewSimpleSharder(seed uint64) *SimpleSharder {
	return &SimpleSharder{seed: seed}
}

// Shard selects k distinct endpoints from every occupied coordinate of
// l, deterministically keyed by id, and places them into a fresh
// lattice at the same coordinates. Returns ErrInsufficientCell if any
// coordinate has fewer than k endpoints.
func (s *SimpleSharder) Shard(l *lattice.Lattice, id []byte, k int) (*lattice.Lattice, error) {
	message := s.keyedMessage(id)
	out := lattice.New(l.GetDimensionNames())

	for _, coord := range l.GetAllCoordinates() {
		endpoints, err := l.GetEndpointsForSector(coord)
		if err != nil {
			return nil, err
		}
		if len(endpoints) < k {
			return nil, fmt.Errorf("%w: coordinate %v has %d endpoints, need %d", ErrInsufficientCell, []string(coord), len(endpoints), k)
		}

		picked := make(map[int]struct{}, k)
		selected := make([]lattice.Endpoint, 0, k)
		coordBytes := []byte(strings.Join(coord, "\x1f"))

		for salt := uint64(0); len(selected) < k; salt++ {
			idx := s.candidateIndex(salt, coordBytes, message, len(endpoints))
			if _, already := picked[idx]; already {
				continue
			}
			picked[idx] = struct{}{}
			selected = append(selected, endpoints[idx])
		}

		if err := out.AddEndpointsForSector(coord, selected); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// keyedMessage forms the 8-byte big-endian seed concatenated with id.
func (s *SimpleSharder) keyedMessage(id []byte) []byte {
	buf := make([]byte, 8+len(id))
	binary.BigEndian.PutUint64(buf[:8], s.seed)
	copy(buf[8:], id)
	return buf
}

// candidateIndex hashes salt||coord||message with MD5, interprets the
// digest as a nonnegative big-endian integer, and reduces it modulo n.
func (s *SimpleSharder) candidateIndex(salt uint64, coordBytes, message []byte, n int) int {
	saltBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(saltBytes, salt)

	h := md5.New()
	h.Write(saltBytes)
	h.Write(coordBytes)
	h.Write(message)
	digest := h.Sum(nil)

	v := new(big.Int).SetBytes(digest)
	mod := big.NewInt(int64(n))
	return int(v.Mod(v, mod).Int64())
}
