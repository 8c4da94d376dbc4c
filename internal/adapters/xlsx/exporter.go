package xlsx

import (
	"fmt"

	"github.com/hailam/primport/internal/adapters/factory"
	"github.com/hailam/primport/internal/ports"
	"github.com/hailam/primport/internal/prim"
	"github.com/xuri/excelize/v2"
)

func init() {
	factory.RegisterExporter(ports.ExportFormatXLSX, New())
}

type XlsxExporter struct{}

func New() ports.MeshExporter {
	return &XlsxExporter{}
}

var columns = []string{
	"Object", "Kind", "Sub Type", "LOD Mask", "Material ID", "Cloth ID",
	"Vertices", "Indices", "Extra Indices", "UV Channels",
	"Bounds Min", "Bounds Max",
}

// Export writes one worksheet row per object with its counts and ids.
func (e *XlsxExporter) Export(p *prim.Prim, outPath string) error {
	f := excelize.NewFile()
	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue("Sheet1", cell, name)
	}
	for i, object := range p.Header.Objects {
		mesh := object.Mesh()
		kind := "mesh"
		if _, ok := object.(*prim.SPrimMeshWeighted); ok {
			kind = "weighted mesh"
		}
		row := []any{
			i, kind, mesh.Object.SubType, mesh.Object.LodMask,
			mesh.Object.MaterialID, mesh.ClothID,
		}
		if subMesh := mesh.SubMesh; subMesh != nil {
			var extra uint32
			if subMesh.NumIndicesExtra != nil {
				extra = *subMesh.NumIndicesExtra
			}
			row = append(row, subMesh.NumVertices, subMesh.NumIndices, extra, subMesh.NumUVChannels)
		} else {
			row = append(row, 0, 0, 0, 0)
		}
		row = append(row,
			fmt.Sprintf("%v", mesh.Object.BoundingBoxMin),
			fmt.Sprintf("%v", mesh.Object.BoundingBoxMax))
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			f.SetCellValue("Sheet1", cell, value)
		}
	}
	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("failed to save mesh report: %w", err)
	}
	return nil
}
