package ports

import "github.com/hailam/primport/internal/prim"

// MeshExporter is the port for anything that can render a parsed PRIM
// tree to a file.
type MeshExporter interface {
	// Export writes a rendition of p at outPath.
	Export(p *prim.Prim, outPath string) error
}
