package ports

// ExporterFactory is the port for looking up exporters by ExportFormat.
type ExporterFactory interface {
	// For returns a MeshExporter for the given format, or an error if
	// unsupported.
	For(f ExportFormat) (MeshExporter, error)
}
