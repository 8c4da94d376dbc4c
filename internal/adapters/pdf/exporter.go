package pdf

import (
	"fmt"

	"github.com/hailam/primport/internal/adapters/factory"
	"github.com/hailam/primport/internal/ports"
	"github.com/hailam/primport/internal/prim"
	"github.com/signintech/gopdf"
)

func init() {
	factory.RegisterExporter(ports.ExportFormatPDF, New())
}

const (
	pageMargin = 20.0
	lineWidth  = 0.2
)

type PdfExporter struct{}

func New() ports.MeshExporter {
	return &PdfExporter{}
}

// Export draws an orthographic X/Y wireframe of the whole object tree
// onto one A4 page. Vector lines only, so no font is embedded.
func (e *PdfExporter) Export(p *prim.Prim, outPath string) error {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()
	pdf.SetLineWidth(lineWidth)

	minX, minY, maxX, maxY := bounds(p)
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}
	pageW := gopdf.PageSizeA4.W - 2*pageMargin
	pageH := gopdf.PageSizeA4.H - 2*pageMargin
	scale := pageW / spanX
	if s := pageH / spanY; s < scale {
		scale = s
	}
	project := func(pos [4]float32) (float64, float64) {
		x := pageMargin + (float64(pos[0])-minX)*scale
		// PDF y grows downward.
		y := pageMargin + (maxY-float64(pos[1]))*scale
		return x, y
	}

	for _, object := range p.Header.Objects {
		subMesh := object.Mesh().SubMesh
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
			ax, ay := project(positions[a])
			bx, by := project(positions[b])
			cx, cy := project(positions[c])
			pdf.Line(ax, ay, bx, by)
			pdf.Line(bx, by, cx, cy)
			pdf.Line(cx, cy, ax, ay)
		}
	}
	if err := pdf.WritePdf(outPath); err != nil {
		return fmt.Errorf("failed to write wireframe pdf: %w", err)
	}
	return nil
}

// bounds is the X/Y extent over every vertex position in the tree.
func bounds(p *prim.Prim) (minX, minY, maxX, maxY float64) {
	first := true
	for _, object := range p.Header.Objects {
		subMesh := object.Mesh().SubMesh
		if subMesh == nil || subMesh.Vertices == nil {
			continue
		}
		for _, pos := range subMesh.Vertices.Positions {
			x, y := float64(pos[0]), float64(pos[1])
			if first {
				minX, maxX, minY, maxY = x, x, y, y
				first = false
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	return
}
