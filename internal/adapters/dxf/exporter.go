package dxf

import (
	"github.com/hailam/primport/internal/adapters/factory"
	"github.com/hailam/primport/internal/ports"
	"github.com/hailam/primport/internal/prim"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

func init() {
	factory.RegisterExporter(ports.ExportFormatDXF, New())
}

type DxfExporter struct{}

func New() ports.MeshExporter {
	return &DxfExporter{}
}

// Export writes a DXF wireframe of every sub-mesh: one 3D LINE entity
// per triangle edge. Extra indices are adjacency data and are not
// triangles, so only the first num_indices entries are drawn.
func (e *DxfExporter) Export(p *prim.Prim, outPath string) error {
	dwg := dxf.NewDrawing()
	for _, object := range p.Header.Objects {
		mesh := object.Mesh()
		subMesh := mesh.SubMesh
		if subMesh == nil || subMesh.Vertices == nil || subMesh.Indices == nil {
			continue
		}
		positions := subMesh.Vertices.Positions
		indices := subMesh.Indices.Indices
		count := int(subMesh.NumIndices)
		if count > len(indices) {
			count = len(indices)
		}
		for i := 0; i+2 < count; i += 3 {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			if int(a) >= len(positions) || int(b) >= len(positions) || int(c) >= len(positions) {
				continue
			}
			line(dwg, positions[a], positions[b])
			line(dwg, positions[b], positions[c])
			line(dwg, positions[c], positions[a])
		}
	}
	return dwg.SaveAs(outPath)
}

func line(dwg *drawing.Drawing, from, to [4]float32) {
	dwg.Line(float64(from[0]), float64(from[1]), float64(from[2]),
		float64(to[0]), float64(to[1]), float64(to[2]))
}
