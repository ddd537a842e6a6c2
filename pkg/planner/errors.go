package planner

import "errors"

// ErrUnknownStrategy is returned by Shard when opts.Strategy names
// neither "simple" nor "search".
var ErrUnknownStrategy = errors.New("planner: unknown shard strategy")
