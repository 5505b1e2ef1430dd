package transform

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Carmen-Shannon/oxy-gl/common"
)

var (
	// ErrParentNotFound is reported when an object's parent handle does not resolve to an object.
	// The object is treated as unparented.
	ErrParentNotFound = errors.New("parent not found")

	// ErrParentCycle is reported when an object's parent chain loops back on itself.
	// The object closing the loop is treated as unparented for the frame.
	ErrParentCycle = errors.New("parent chain forms a cycle")

	// ErrSingularMatrix is reported when a world matrix cannot be inverted.
	// The identity is used as the normal matrix.
	ErrSingularMatrix = errors.New("world matrix is singular")
)

// Node is the view of a scene object the Resolver needs: its handle, its local
// Transform and the handle of its parent (0 when unparented).
type Node interface {
	ID() uint64
	Name() string
	Transform() Transform
	ParentID() uint64
}

// LookupFunc resolves an object handle to a Node. It reports false when the
// handle does not name an existing object.
type LookupFunc func(id uint64) (Node, bool)

// Resolved holds the derived per-frame matrices of one object.
type Resolved struct {
	// Model is the world model matrix (ancestors' world matrix times the local matrix).
	Model [16]float32
	// Normal is transpose(inverse(Model)), or the identity if Model is singular.
	Normal [16]float32
}

// Warning describes a recoverable defect found while resolving an object.
type Warning struct {
	ObjectID uint64
	Name     string
	Err      error
}

func (w Warning) Error() string {
	return fmt.Sprintf("object %d (%q): %v", w.ObjectID, w.Name, w.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is.
func (w Warning) Unwrap() error {
	return w.Err
}

type resolver struct {
	lookup   LookupFunc
	logger   *slog.Logger
	cache    map[uint64]Resolved
	visiting map[uint64]bool
	warnings []Warning
}

// Resolver computes world and normal matrices for scene objects, memoizing the
// result for the lifetime of one frame. Parents are resolved on demand before
// their children, so objects may be resolved in any order.
//
// A Resolver is not safe for concurrent use; create one per frame (or call Reset).
type Resolver interface {
	// Resolve returns the world and normal matrices of n, resolving its ancestors first.
	// Missing parents and parent cycles degrade to treating the object as unparented.
	//
	// Parameters:
	//   - n: the object to resolve
	//
	// Returns:
	//   - Resolved: the object's model and normal matrices
	Resolve(n Node) Resolved

	// World returns the cached world matrix of a previously resolved object.
	//
	// Parameters:
	//   - id: the object handle
	//
	// Returns:
	//   - [16]float32: the world matrix
	//   - bool: false if the object has not been resolved this frame
	World(id uint64) ([16]float32, bool)

	// Warnings returns the defects recorded since the last Reset, in discovery order.
	//
	// Returns:
	//   - []Warning: a copy of the recorded warnings
	Warnings() []Warning

	// Reset discards the cached matrices and warnings so the resolver can serve a new frame.
	Reset()
}

var _ Resolver = &resolver{}

// NewResolver creates a Resolver that looks parents up through lookup.
//
// Parameters:
//   - lookup: resolves parent handles to objects (must not be nil)
//   - options: functional options to configure the resolver
//
// Returns:
//   - Resolver: the newly created resolver
func NewResolver(lookup LookupFunc, options ...ResolverBuilderOption) Resolver {
	if lookup == nil {
		panic("transform: NewResolver requires a non-nil lookup")
	}
	r := &resolver{
		lookup:   lookup,
		logger:   slog.Default(),
		cache:    make(map[uint64]Resolved),
		visiting: make(map[uint64]bool),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *resolver) Resolve(n Node) Resolved {
	id := n.ID()
	if res, ok := r.cache[id]; ok && id != 0 {
		return res
	}

	r.visiting[id] = true
	defer delete(r.visiting, id)

	local := n.Transform().LocalMatrix()
	world := local

	if parentID := n.ParentID(); parentID != 0 {
		switch {
		case parentID == id || r.visiting[parentID]:
			r.warn(n, fmt.Errorf("%w: parent %d", ErrParentCycle, parentID))
		default:
			parent, ok := r.lookup(parentID)
			if !ok || parent == nil {
				r.warn(n, fmt.Errorf("%w: parent %d", ErrParentNotFound, parentID))
				break
			}
			parentWorld := r.Resolve(parent).Model
			common.Mul4(world[:], parentWorld[:], local[:])
		}
	}

	res := Resolved{Model: world}
	if common.Invert4(res.Normal[:], world[:]) {
		common.Transpose4(res.Normal[:], res.Normal[:])
	} else {
		r.warn(n, ErrSingularMatrix)
		res.Normal = common.IdentityMatrix
	}

	if id != 0 {
		r.cache[id] = res
	}
	return res
}

func (r *resolver) World(id uint64) ([16]float32, bool) {
	res, ok := r.cache[id]
	return res.Model, ok
}

func (r *resolver) Warnings() []Warning {
	out := make([]Warning, len(r.warnings))
	copy(out, r.warnings)
	return out
}

func (r *resolver) Reset() {
	clear(r.cache)
	clear(r.visiting)
	r.warnings = r.warnings[:0]
}

func (r *resolver) warn(n Node, err error) {
	w := Warning{ObjectID: n.ID(), Name: n.Name(), Err: err}
	r.warnings = append(r.warnings, w)
	r.logger.Warn("transform degraded", "object_id", w.ObjectID, "object", w.Name, "err", err)
}
