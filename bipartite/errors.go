// Package bipartite: sentinel error set.
package bipartite

import "errors"

// ErrNilGraph names a nil adjacency. MaxMatching does not return it: a
// nil graph is matched as a graph with no vertices.
var ErrNilGraph = errors.New("bipartite: nil adjacency")

// ErrRaggedGraph is returned when the adjacency rows do not all have the
// same number of columns.
var ErrRaggedGraph = errors.New("bipartite: ragged adjacency (inconsistent row length)")
