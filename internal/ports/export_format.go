package ports

// ExportFormat is the identifier for each mesh export format.
type ExportFormat string

const (
	ExportFormatDXF  ExportFormat = "dxf"
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatPDF  ExportFormat = "pdf"
)
