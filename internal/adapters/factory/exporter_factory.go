// internal/adapters/factory/exporter_factory.go
package factory

import (
	"fmt"
	"log"
	"sync"

	"github.com/hailam/primport/internal/ports"
)

// registry stores the registered exporters.
var (
	exporterRegistry = make(map[ports.ExportFormat]ports.MeshExporter)
	registryMutex    sync.RWMutex
)

// RegisterExporter is called by exporter packages during their init()
// phase.
func RegisterExporter(format ports.ExportFormat, exporter ports.MeshExporter) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	if _, exists := exporterRegistry[format]; exists {
		log.Printf("Warning: Duplicate exporter registration for %s. Overwriting existing one.", format)
	}
	exporterRegistry[format] = exporter
}

// DynamicExporterFactory uses the registry populated by
// RegisterExporter.
type DynamicExporterFactory struct{}

// NewExporterFactory creates a new factory that uses the global
// registry.
func NewExporterFactory() ports.ExporterFactory {
	return &DynamicExporterFactory{}
}

// For returns the appropriate MeshExporter for the given format from
// the registry.
func (f *DynamicExporterFactory) For(format ports.ExportFormat) (ports.MeshExporter, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	exp, ok := exporterRegistry[format]
	if !ok {
		return nil, fmt.Errorf("unsupported export format: '%s' (no exporter registered)", format)
	}
	return exp, nil
}

func RegisteredFormats() []ports.ExportFormat {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	formats := make([]ports.ExportFormat, 0, len(exporterRegistry))
	for f := range exporterRegistry {
		formats = append(formats, f)
	}
	return formats
}
