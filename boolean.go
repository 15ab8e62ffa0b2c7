// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package trimeshbool is the topological core of a mesh boolean engine:
// given one or more triangle meshes already free of improper self-crossings
// (or handed to a self-intersection collaborator that makes them so), it
// partitions their triangles into manifold patches, builds the adjacency
// graph of the 3-space cells those patches bound, propagates a per-shape
// winding number across that graph, and extracts the boundary triangles of
// the union, intersection, or difference.
package trimeshbool

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kriulin/trimeshbool/cdt2d"
	"github.com/kriulin/trimeshbool/cellgraph"
	"github.com/kriulin/trimeshbool/detri"
	"github.com/kriulin/trimeshbool/extract"
	"github.com/kriulin/trimeshbool/internal/boollog"
	"github.com/kriulin/trimeshbool/meshdata"
	"github.com/kriulin/trimeshbool/patch"
	"github.com/kriulin/trimeshbool/selfisect"
	"github.com/kriulin/trimeshbool/topology"
	"github.com/kriulin/trimeshbool/winding"
)

// Operator is the boolean operator passed to BooleanTrimesh / BooleanMesh.
type Operator = winding.Operator

const (
	None       = winding.None
	Isect      = winding.Isect
	Union      = winding.Union
	Difference = winding.Difference
)

// ShapeOf maps a triangle index in a combined mesh back to the input shape
// (0..nshapes-1) it came from.
type ShapeOf = selfisect.ShapeOf

// ErrNilArena is returned when a caller passes a nil arena to an entry
// point; the arena is a required collaborator, not an optional one.
var ErrNilArena = errors.New("trimeshbool: arena must not be nil")

var (
	loggerMu sync.RWMutex
	logger   boollog.Logger = boollog.Default()
)

// SetLogger redirects where the core writes its recoverable-stage-failure
// reports. The zero value (never calling SetLogger) logs via the standard
// library's log.Default().
func SetLogger(l boollog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l == nil {
		l = boollog.Default()
	}
	logger = l
}

func currentLogger() boollog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// BooleanOptions configures BooleanTrimesh / BooleanMesh via the
// functional-options pattern.
type BooleanOptions struct {
	Intersector selfisect.Intersector
	CDTOptions  []cdt2d.Option
}

// BooleanOption sets one field of BooleanOptions.
type BooleanOption func(*BooleanOptions) error

// WithIntersector overrides the default pass-through self-intersector.
func WithIntersector(ix selfisect.Intersector) BooleanOption {
	return func(o *BooleanOptions) error {
		if ix == nil {
			return errors.New("trimeshbool: WithIntersector: intersector must not be nil")
		}
		o.Intersector = ix
		return nil
	}
}

// WithCDTOptions forwards options to the cdt2d collaborator used by
// BooleanMesh's pre-topology triangulation.
func WithCDTOptions(opts ...cdt2d.Option) BooleanOption {
	return func(o *BooleanOptions) error {
		o.CDTOptions = opts
		return nil
	}
}

func resolveOptions(setters []BooleanOption) (BooleanOptions, error) {
	opts := BooleanOptions{Intersector: selfisect.PassthroughIntersector{}}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// BooleanTrimesh combines one or more already-triangulated input shapes:
// tm_in may be any triangle mesh. If useSelf is true, the self-intersection
// collaborator resolves tm_in's own crossings alone; otherwise the
// nary-intersection collaborator resolves pairwise crossings between the
// nshapes labelled shapes shapeOf distinguishes. Returns tm_in unchanged if
// it is empty or op is None; on unresolved patch/cell validation or a
// missing ambient cell, returns the (possibly intersected) mesh unchanged
// and reports the reason via the package logger.
func BooleanTrimesh(arena *meshdata.Arena, tmIn meshdata.Mesh, op Operator, nshapes int,
	shapeOf ShapeOf, useSelf bool, setters ...BooleanOption) (meshdata.Mesh, error) {

	if arena == nil {
		return meshdata.Mesh{}, ErrNilArena
	}
	if tmIn.IsEmpty() {
		return tmIn, nil
	}
	opts, err := resolveOptions(setters)
	if err != nil {
		return meshdata.Mesh{}, err
	}

	var tm meshdata.Mesh
	if useSelf {
		tm, err = opts.Intersector.SelfIntersect(arena, tmIn)
	} else {
		tm, err = opts.Intersector.NaryIntersect(arena, tmIn, nshapes, shapeOf, useSelf)
	}
	if err != nil {
		return meshdata.Mesh{}, fmt.Errorf("trimeshbool: BooleanTrimesh: intersector: %w", err)
	}

	if op == None {
		return tm, nil
	}

	topo := topology.Build(arena, tm)
	pinfo := patch.Find(arena, tm, topo)
	ci := cellgraph.Build(arena, tm, topo, pinfo)

	if err := cellgraph.Validate(pinfo, ci); err != nil {
		currentLogger().Warnf("trimeshbool: patch/cell graph invalid (%v), returning input mesh unchanged", err)
		return tmIn, nil
	}

	ambient := cellgraph.FindAmbient(arena, tm, topo, pinfo)
	if ambient == cellgraph.NoIndex {
		currentLogger().Warnf("trimeshbool: ambient cell not found, returning intersected mesh unchanged")
		return tm, nil
	}

	winding.Propagate(pinfo, ci, ambient, nshapes, winding.ShapeOf(shapeOf), op)
	return extract.Extract(arena, tm, pinfo, ci), nil
}

// BooleanMesh combines one or more polygonal input shapes: triangulate pm
// (or use the supplied pre-triangulation pmTriangulated, when non-empty),
// invoke BooleanTrimesh, then run the detriangulator against pm to
// reassemble a polygonal result.
func BooleanMesh(arena *meshdata.Arena, pm meshdata.Mesh, op Operator, nshapes int,
	shapeOf ShapeOf, useSelf bool, pmTriangulated meshdata.Mesh, setters ...BooleanOption) (meshdata.Mesh, error) {

	if arena == nil {
		return meshdata.Mesh{}, ErrNilArena
	}

	opts, err := resolveOptions(setters)
	if err != nil {
		return meshdata.Mesh{}, err
	}

	tm := pmTriangulated
	if tm.IsEmpty() {
		tm, err = triangulateMesh(arena, pm, opts.CDTOptions)
		if err != nil {
			return meshdata.Mesh{}, fmt.Errorf("trimeshbool: BooleanMesh: triangulate: %w", err)
		}
	}

	tmOut, err := BooleanTrimesh(arena, tm, op, nshapes, shapeOf, useSelf, setters...)
	if err != nil {
		return meshdata.Mesh{}, err
	}
	return detri.Detriangulate(arena, tmOut, pm), nil
}

func triangulateMesh(arena *meshdata.Arena, pm meshdata.Mesh, cdtOpts []cdt2d.Option) (meshdata.Mesh, error) {
	var faces []meshdata.Facep
	for i := 0; i < pm.NumFaces(); i++ {
		tris, err := cdt2d.TriangulatePolygon(arena, pm.Face(i), cdtOpts...)
		if err != nil {
			return meshdata.Mesh{}, fmt.Errorf("face %d: %w", i, err)
		}
		faces = append(faces, tris...)
	}
	return meshdata.NewMesh(arena, faces), nil
}
