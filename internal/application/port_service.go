package application

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hailam/primport/internal/ports"
	"github.com/hailam/primport/internal/prim"
)

// PortService orchestrates transcodes and exports: it parses version
// names, reads the input PRIM, and hands the tree to the writer or to
// the exporter matching the output extension.
type PortService struct {
	factory  ports.ExporterFactory
	versions ports.VersionParser
	dumpTo   io.Writer
}

// NewPortService constructs a PortService with the given factory and
// parser. Verbose dumps are written to dumpTo.
func NewPortService(factory ports.ExporterFactory, versions ports.VersionParser, dumpTo io.Writer) *PortService {
	return &PortService{factory: factory, versions: versions, dumpTo: dumpTo}
}

// Port transcodes one PRIM file per the request.
func (s *PortService) Port(req ports.PortRequest) error {
	inputVersion, err := s.versions.Parse(req.InputVersion)
	if err != nil {
		return fmt.Errorf("invalid input version '%s': %w", req.InputVersion, err)
	}
	outputVersion, err := s.versions.Parse(req.OutputVersion)
	if err != nil {
		return fmt.Errorf("invalid output version '%s': %w", req.OutputVersion, err)
	}
	p, err := prim.ReadFile(req.InputPath, inputVersion)
	if err != nil {
		return err
	}
	if req.Verbose {
		p.Dump(s.dumpTo)
	}
	return p.WriteFile(req.OutputPath, outputVersion, req.NoCloth)
}

// ExportFile reads the PRIM at inPath and renders it at outPath, in the
// format inferred from outPath's extension.
func (s *PortService) ExportFile(inPath, inVersion, outPath string) error {
	inputVersion, err := s.versions.Parse(inVersion)
	if err != nil {
		return fmt.Errorf("invalid input version '%s': %w", inVersion, err)
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(outPath), "."))
	format, err := mapExtensionToExportFormat(ext)
	if err != nil {
		return err
	}
	exporter, err := s.factory.For(format)
	if err != nil {
		return fmt.Errorf("no exporter for format '%s': %w", format, err)
	}
	p, err := prim.ReadFile(inPath, inputVersion)
	if err != nil {
		return err
	}
	if err := exporter.Export(p, outPath); err != nil {
		return fmt.Errorf("failed to export %s: %w", outPath, err)
	}
	return nil
}

// mapExtensionToExportFormat maps file extensions to ExportFormat
// constants.
func mapExtensionToExportFormat(ext string) (ports.ExportFormat, error) {
	switch ext {
	case "dxf":
		return ports.ExportFormatDXF, nil
	case "xlsx":
		return ports.ExportFormatXLSX, nil
	case "pdf":
		return ports.ExportFormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export extension: %s", ext)
	}
}
