package shard

import "errors"

// ErrInsufficientCell is returned by the simple-signature sharder when
// a coordinate has fewer than k endpoints to choose from.
var ErrInsufficientCell = errors.New("insufficient cell")

// ErrNoShardsAvailable is returned by the stateful searching sharder
// when the backtracking search exhausts every candidate without
// finding a placement that respects the overlap bound.
var ErrNoShardsAvailable = errors.New("no shards available")
