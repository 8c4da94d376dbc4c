package application

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hailam/primport/internal/ports"
	"github.com/hailam/primport/internal/prim"
)

// --- Mock Implementations ---

// MockVersionParser is a mock for ports.VersionParser
type MockVersionParser struct {
	ParseFunc func(name string) (prim.GameVersion, error)
}

func (m *MockVersionParser) Parse(name string) (prim.GameVersion, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(name)
	}
	return prim.ParseGameVersion(name)
}

// MockMeshExporter is a mock for ports.MeshExporter
type MockMeshExporter struct {
	ExportFunc     func(p *prim.Prim, outPath string) error
	ExportCalled   bool
	CalledWithPath string
	CalledWithPrim *prim.Prim
}

func (m *MockMeshExporter) Export(p *prim.Prim, outPath string) error {
	m.ExportCalled = true
	m.CalledWithPath = outPath
	m.CalledWithPrim = p
	if m.ExportFunc != nil {
		return m.ExportFunc(p, outPath)
	}
	return nil
}

// MockExporterFactory is a mock for ports.ExporterFactory
type MockExporterFactory struct {
	ForFunc      func(f ports.ExportFormat) (ports.MeshExporter, error)
	MockExporter *MockMeshExporter
}

func (m *MockExporterFactory) For(f ports.ExportFormat) (ports.MeshExporter, error) {
	if m.ForFunc != nil {
		return m.ForFunc(f)
	}
	switch f {
	case ports.ExportFormatDXF, ports.ExportFormatXLSX:
		return m.MockExporter, nil
	default:
		return nil, fmt.Errorf("mock factory error: unsupported format %s", f)
	}
}

// writeTestPrim writes a minimal one-mesh WOA file and returns its path.
func writeTestPrim(t *testing.T, dir string) string {
	t.Helper()
	mesh := &prim.SPrimMesh{
		PositionScale: [4]float32{2, 2, 2, 2},
		PositionBias:  [4]float32{-1, -1, -1, -1},
		UVScale:       [2]float32{1, 1},
		SubMesh: &prim.SPrimSubMesh{
			NumVertices: 3,
			NumIndices:  3,
			Vertices: &prim.Vertices{
				Positions:  [][4]float32{{0, 0, 0, 0}, {0.5, 0, 0, 0}, {0, 0.5, 0, 0}},
				Normals:    [][4]float32{{0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}},
				Tangents:   [][4]float32{{1, 0, 0, 1}, {1, 0, 0, 1}, {1, 0, 0, 1}},
				Bitangents: [][4]float32{{0, 1, 0, 1}, {0, 1, 0, 1}, {0, 1, 0, 1}},
				UVs:        [][2]float32{{0, 0}, {1, 0}, {0, 1}},
				Colors:     [][4]uint8{{255, 255, 255, 255}, {0, 0, 0, 255}, {128, 128, 128, 255}},
			},
			Indices: &prim.Indices{Indices: []uint16{0, 1, 2}},
		},
	}
	p := &prim.Prim{Header: &prim.SPrimObjectHeader{Objects: []prim.Object{mesh}}}
	path := filepath.Join(dir, "test.prim")
	if err := p.WriteFile(path, prim.WOA, false); err != nil {
		t.Fatalf("failed to write test PRIM: %v", err)
	}
	return path
}

// --- Test Cases ---

func TestPortService_Port(t *testing.T) {
	tempDir := t.TempDir()
	inputPath := writeTestPrim(t, tempDir)

	tests := []struct {
		name           string
		req            ports.PortRequest
		expectedErrMsg string
		validate       func(*testing.T, *bytes.Buffer)
	}{
		{
			name: "Success Identity",
			req: ports.PortRequest{
				InputPath:     inputPath,
				InputVersion:  "WOA",
				OutputVersion: "WOA",
				OutputPath:    filepath.Join(tempDir, "out_identity.prim"),
			},
			validate: func(t *testing.T, dump *bytes.Buffer) {
				if dump.Len() != 0 {
					t.Errorf("dump written without the verbose flag")
				}
				if _, err := prim.ReadFile(filepath.Join(tempDir, "out_identity.prim"), prim.WOA); err != nil {
					t.Errorf("output not readable: %v", err)
				}
			},
		},
		{
			name: "Success Downgrade",
			req: ports.PortRequest{
				InputPath:     inputPath,
				InputVersion:  "woa",
				OutputVersion: "alpha",
				OutputPath:    filepath.Join(tempDir, "out_alpha.prim"),
			},
			validate: func(t *testing.T, dump *bytes.Buffer) {
				out, err := prim.ReadFile(filepath.Join(tempDir, "out_alpha.prim"), prim.Alpha)
				if err != nil {
					t.Fatalf("output not readable as ALPHA: %v", err)
				}
				if out.Header.Objects[0].Mesh().Object.Color1 != nil {
					t.Errorf("color1 survived an ALPHA downgrade")
				}
			},
		},
		{
			name: "Success Verbose Dump",
			req: ports.PortRequest{
				InputPath:     inputPath,
				InputVersion:  "WOA",
				OutputVersion: "WOA",
				OutputPath:    filepath.Join(tempDir, "out_verbose.prim"),
				Verbose:       true,
			},
			validate: func(t *testing.T, dump *bytes.Buffer) {
				if !strings.Contains(dump.String(), "num_vertices") {
					t.Errorf("verbose dump missing record fields, got %q", dump.String())
				}
			},
		},
		{
			name: "Error HMA Input",
			req: ports.PortRequest{
				InputPath:     inputPath,
				InputVersion:  "HMA",
				OutputVersion: "WOA",
				OutputPath:    filepath.Join(tempDir, "out_hma.prim"),
			},
			expectedErrMsg: "HMA is not supported",
		},
		{
			name: "Error Unknown Input Version",
			req: ports.PortRequest{
				InputPath:     inputPath,
				InputVersion:  "HM3",
				OutputVersion: "WOA",
				OutputPath:    filepath.Join(tempDir, "out_bad.prim"),
			},
			expectedErrMsg: "invalid input version 'HM3'",
		},
		{
			name: "Error Unknown Output Version",
			req: ports.PortRequest{
				InputPath:     inputPath,
				InputVersion:  "WOA",
				OutputVersion: "blood-money",
				OutputPath:    filepath.Join(tempDir, "out_bad2.prim"),
			},
			expectedErrMsg: "invalid output version 'blood-money'",
		},
		{
			name: "Error Missing Input",
			req: ports.PortRequest{
				InputPath:     filepath.Join(tempDir, "missing.prim"),
				InputVersion:  "WOA",
				OutputVersion: "WOA",
				OutputPath:    filepath.Join(tempDir, "out_missing.prim"),
			},
			expectedErrMsg: "error opening file",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var dump bytes.Buffer
			service := NewPortService(&MockExporterFactory{}, &MockVersionParser{}, &dump)

			err := service.Port(tc.req)

			if tc.expectedErrMsg == "" {
				if err != nil {
					t.Fatalf("Port() unexpected error = %v", err)
				}
			} else {
				if err == nil {
					t.Fatalf("Port() expected an error containing %q, got nil", tc.expectedErrMsg)
				}
				if !strings.Contains(err.Error(), tc.expectedErrMsg) {
					t.Fatalf("Port() error = %q, expected error containing %q", err.Error(), tc.expectedErrMsg)
				}
			}
			if tc.validate != nil {
				tc.validate(t, &dump)
			}
		})
	}
}

func TestPortService_ExportFile(t *testing.T) {
	tempDir := t.TempDir()
	inputPath := writeTestPrim(t, tempDir)

	tests := []struct {
		name           string
		outputPath     string
		setupFactory   func(*MockExporterFactory, *MockMeshExporter)
		expectedErrMsg string
		validateMock   func(*testing.T, *MockMeshExporter)
	}{
		{
			name:       "Success DXF",
			outputPath: filepath.Join(tempDir, "mesh.dxf"),
			validateMock: func(t *testing.T, m *MockMeshExporter) {
				if !m.ExportCalled {
					t.Errorf("Expected Export to be called, but it wasn't")
				}
				if m.CalledWithPrim == nil || len(m.CalledWithPrim.Header.Objects) != 1 {
					t.Errorf("Export called without the parsed tree")
				}
				if filepath.Ext(m.CalledWithPath) != ".dxf" {
					t.Errorf("Export called with path %q", m.CalledWithPath)
				}
			},
		},
		{
			name:       "Success Uppercase Extension",
			outputPath: filepath.Join(tempDir, "mesh.XLSX"),
			validateMock: func(t *testing.T, m *MockMeshExporter) {
				if !m.ExportCalled {
					t.Errorf("Expected Export to be called, but it wasn't")
				}
			},
		},
		{
			name:           "Error Unsupported Extension",
			outputPath:     filepath.Join(tempDir, "mesh.obj"),
			expectedErrMsg: "unsupported export extension: obj",
			validateMock: func(t *testing.T, m *MockMeshExporter) {
				if m.ExportCalled {
					t.Errorf("Expected Export NOT to be called on an unsupported extension")
				}
			},
		},
		{
			name:       "Error No Exporter Registered",
			outputPath: filepath.Join(tempDir, "mesh.pdf"),
			setupFactory: func(f *MockExporterFactory, m *MockMeshExporter) {
				// Default mock factory has no pdf exporter.
			},
			expectedErrMsg: "no exporter for format 'pdf'",
		},
		{
			name:       "Error During Export",
			outputPath: filepath.Join(tempDir, "mesh2.dxf"),
			setupFactory: func(f *MockExporterFactory, m *MockMeshExporter) {
				m.ExportFunc = func(p *prim.Prim, outPath string) error {
					return errors.New("mock export error")
				}
			},
			expectedErrMsg: "failed to export",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockExporter := &MockMeshExporter{}
			mockFactory := &MockExporterFactory{MockExporter: mockExporter}
			if tc.setupFactory != nil {
				tc.setupFactory(mockFactory, mockExporter)
			}
			service := NewPortService(mockFactory, &MockVersionParser{}, &bytes.Buffer{})

			err := service.ExportFile(inputPath, "WOA", tc.outputPath)

			if tc.expectedErrMsg == "" {
				if err != nil {
					t.Fatalf("ExportFile() unexpected error = %v", err)
				}
			} else {
				if err == nil {
					t.Fatalf("ExportFile() expected an error containing %q, got nil", tc.expectedErrMsg)
				}
				if !strings.Contains(err.Error(), tc.expectedErrMsg) {
					t.Fatalf("ExportFile() error = %q, expected error containing %q", err.Error(), tc.expectedErrMsg)
				}
			}
			if tc.validateMock != nil {
				tc.validateMock(t, mockExporter)
			}
		})
	}
}
