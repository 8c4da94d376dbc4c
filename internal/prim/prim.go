// Package prim reads and writes the PRIM mesh container used by the
// HMA, ALPHA, HM2016 and WOA engine generations, translating the
// version-conditional record layouts between them.
//
// A PRIM file starts with the u32 offset of its object header; all
// records are linked by absolute offsets and 16-byte aligned. Reading
// materializes the whole record tree depth-first. Writing is two-pass
// in a single sweep: payloads are emitted before the records that point
// at them, so every offset is known when its holder is serialized, and
// only the leading u32 is patched afterwards.
package prim

import (
	"fmt"
	"io"
	"os"
)

// Prim is a fully materialized PRIM record tree.
type Prim struct {
	Header *SPrimObjectHeader
}

// Read parses a complete PRIM file image declared to be inputVersion.
// HMA input is refused. Malformed input panics: there is no recovery
// from an offset or count that leaves the buffer.
func Read(data []byte, inputVersion GameVersion) (*Prim, error) {
	if inputVersion == HMA {
		return nil, fmt.Errorf("HMA is not supported as an input version")
	}
	r := NewCursor(data)
	mainOffset := r.ReadU32()
	r.Seek(int(mainOffset))
	header := readSPrimObjectHeader(r)
	header.readObjects(r, inputVersion)
	return &Prim{Header: header}, nil
}

// Write serializes the tree for outputVersion. When noCloth is set,
// weighted objects that declare a cloth id without a cloth payload are
// dropped.
func (p *Prim) Write(outputVersion GameVersion, noCloth bool) []byte {
	w := NewWriteCursor()
	w.WriteU128(0, 0)
	mainOffset := p.Header.write(w, outputVersion, noCloth)
	w.Seek(0)
	w.WriteU32(mainOffset)
	return w.Bytes()
}

// ReadFile reads and parses the PRIM file at path.
func ReadFile(path string, inputVersion GameVersion) (*Prim, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file %s: %w", path, err)
	}
	return Read(data, inputVersion)
}

// WriteFile serializes the tree and writes it to path.
func (p *Prim) WriteFile(path string, outputVersion GameVersion, noCloth bool) error {
	if err := os.WriteFile(path, p.Write(outputVersion, noCloth), 0o644); err != nil {
		return fmt.Errorf("error creating file %s: %w", path, err)
	}
	return nil
}

// Dump renders every record of the tree in the reader's field order.
func (p *Prim) Dump(w io.Writer) {
	p.Header.dump(w)
	for _, object := range p.Header.Objects {
		object.dump(w)
	}
}
