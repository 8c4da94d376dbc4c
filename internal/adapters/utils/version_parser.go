package utils

import (
	"github.com/hailam/primport/internal/ports"
	"github.com/hailam/primport/internal/prim"
)

// PrimVersionParser adapts prim.ParseGameVersion to the
// ports.VersionParser interface.
type PrimVersionParser struct{}

// NewPrimVersionParser creates a new version parser adapter.
func NewPrimVersionParser() ports.VersionParser {
	return &PrimVersionParser{}
}

// Parse uses the codec's parser to resolve the version name.
func (p *PrimVersionParser) Parse(name string) (prim.GameVersion, error) {
	return prim.ParseGameVersion(name)
}
