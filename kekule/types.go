// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Topology catalog, options, results and sentinel errors.

package kekule

import (
	"errors"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/ring"
)

// ErrNotAromatic indicates a ring handed to Dearomatize has an atom without
// the aromatic flag.
var ErrNotAromatic = errors.New("kekule: ring is not aromatic")

// Topology identifies a supported fused-ring arrangement.
type Topology int

const (
	TopologyNone Topology = iota
	Topology666
	Topology566
	Topology66
	Topology56
	Topology6
	Topology5
)

var topologySizes = map[Topology][]int{
	Topology666: {6, 6, 6},
	Topology566: {5, 6, 6},
	Topology66:  {6, 6},
	Topology56:  {5, 6},
	Topology6:   {6},
	Topology5:   {5},
}

var topologyNames = map[Topology]string{
	TopologyNone: "none",
	Topology666:  "666",
	Topology566:  "566",
	Topology66:   "66",
	Topology56:   "56",
	Topology6:    "6",
	Topology5:    "5",
}

// String returns the ring-size code, e.g. "566".
func (t Topology) String() string {
	if s, ok := topologyNames[t]; ok {
		return s
	}

	return "unknown"
}

// Sizes returns the ascending ring sizes of t; nil for TopologyNone.
func (t Topology) Sizes() []int {
	return append([]int(nil), topologySizes[t]...)
}

// Catalog returns the supported topologies in priority order.
func Catalog() []Topology {
	return []Topology{Topology666, Topology566, Topology66, Topology56, Topology6, Topology5}
}

// matches reports whether rings has exactly the ring count and sizes of t.
func (t Topology) matches(rings []*ring.Ring) bool {
	want := topologySizes[t]
	if want == nil || len(rings) != len(want) {
		return false
	}
	got := make([]int, len(rings))
	for i, r := range rings {
		if r == nil {
			return false
		}
		got[i] = r.Size()
	}
	sort.Ints(got)
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}

	return true
}

// Options configures Kekulize.
type Options struct {
	// DryRun stages the assignment in Result.Changes without applying it.
	DryRun bool
	Logger *log.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

// WithDryRun leaves the molecule untouched.
func WithDryRun() Option {
	return func(o *Options) { o.DryRun = true }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// SystemResult reports what happened to one isolated ring system.
type SystemResult struct {
	// Atoms of the system, ascending.
	Atoms []int
	// Rings is the number of rings perceived in the system.
	Rings int
	// Topology is the matched catalog entry, TopologyNone when skipped.
	Topology Topology
	// Kekulized is true when orders were assigned.
	Kekulized bool
	// Reason explains a skip: "unsupported", "not aromatic" or "no assignment".
	Reason string
}

// Result is the outcome of Kekulize.
type Result struct {
	Systems []SystemResult
	// Changes holds the orders and cleared flags of every Kekulized system.
	Changes *molecule.Changeset
}

// Kekulized returns the number of systems that received an assignment.
func (r *Result) Kekulized() int {
	n := 0
	for _, s := range r.Systems {
		if s.Kekulized {
			n++
		}
	}

	return n
}
