// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package extract pulls the kept/discarded boundary out of the subdivided
// mesh as an oriented triangle mesh.
package extract

import (
	"github.com/kriulin/trimeshbool/cellgraph"
	"github.com/kriulin/trimeshbool/meshdata"
	"github.com/kriulin/trimeshbool/patch"
)

// Extract emits every triangle whose patch's two bounding cells disagree on
// Flag, flipping orientation when the above side is the kept one so every
// emitted triangle's normal points away from the kept volume.
func Extract(arena *meshdata.Arena, tm meshdata.Mesh, pinfo *patch.PatchesInfo,
	ci *cellgraph.CellsInfo) meshdata.Mesh {

	var out []meshdata.Facep
	for t := 0; t < tm.NumFaces(); t++ {
		p := pinfo.Patches[pinfo.TriPatch[t]]
		above := ci.Cells[p.CellAbove]
		below := ci.Cells[p.CellBelow]
		if above.Flag == below.Flag {
			continue
		}

		face := tm.Face(t)
		if above.Flag {
			rev := face.Reversed()
			out = append(out, arena.AddFace(rev.Verts(), rev.Orig(), rev.EdgeOrigs()))
			continue
		}
		out = append(out, tm.FaceHandle(t))
	}
	return meshdata.NewMesh(arena, out)
}
