package prim

import (
	"fmt"
	"io"
)

// SPrimSubMesh holds the vertex, index, collision and cloth payloads of
// a mesh. NumIndicesExtra exists on disk for HM2016/WOA only. The
// Offset* fields hold the source-file offsets; the writer recomputes
// them from payload presence.
type SPrimSubMesh struct {
	Object          SPrimObject
	NumVertices     uint32
	OffsetVertices  uint32
	Vertices        *Vertices
	NumIndices      uint32
	NumIndicesExtra *uint32
	OffsetIndices   uint32
	Indices         *Indices
	OffsetCollision uint32
	Collision       *Collision
	OffsetCloth     uint32
	Cloth           *Cloth
	NumUVChannels   uint32
}

func readSPrimSubMesh(r *Cursor, headerFlags uint32, mesh *SPrimMesh, inputVersion GameVersion) *SPrimSubMesh {
	s := &SPrimSubMesh{
		Object:         readSPrimObject(r, inputVersion),
		NumVertices:    r.ReadU32(),
		OffsetVertices: r.ReadU32(),
		NumIndices:     r.ReadU32(),
	}
	if inputVersion.hasColor1() {
		extra := r.ReadU32()
		s.NumIndicesExtra = &extra
	}
	s.OffsetIndices = r.ReadU32()
	s.OffsetCollision = r.ReadU32()
	s.OffsetCloth = r.ReadU32()
	s.NumUVChannels = r.ReadU32()
	if s.NumVertices > 0 && s.OffsetVertices > 0 {
		r.Seek(int(s.OffsetVertices))
		s.Vertices = readVertices(r, headerFlags, mesh, s)
	}
	if s.NumIndices > 0 && s.OffsetIndices > 0 {
		r.Seek(int(s.OffsetIndices))
		s.Indices = readIndices(r, s)
	}
	if s.OffsetCollision > 0 {
		r.Seek(int(s.OffsetCollision))
		s.Collision = readCollision(r)
	}
	// Cloth payloads are only understood for HM2016/WOA input.
	if s.OffsetCloth > 0 && inputVersion.hasColor1() {
		r.Seek(int(s.OffsetCloth))
		s.Cloth = readCloth(r, s, mesh.ClothID)
	}
	return s
}

// write emits payloads, the sub-mesh record and the sub-mesh-table cell
// in that order, returning the table cell's offset.
func (s *SPrimSubMesh) write(w *Cursor, headerFlags uint32, mesh *SPrimMesh, outputVersion GameVersion) uint32 {
	var offsetIndices uint32
	if s.Indices != nil {
		offsetIndices = uint32(w.Pos())
		s.Indices.write(w)
	}
	w.Align(0x10)
	var offsetVertices uint32
	if s.Vertices != nil {
		offsetVertices = uint32(w.Pos())
		s.Vertices.write(w, headerFlags, mesh, s)
	}
	w.Align(0x10)
	var offsetCollision uint32
	if s.Collision != nil {
		offsetCollision = uint32(w.Pos())
		s.Collision.write(w)
	}
	w.Align(0x10)
	var offsetCloth uint32
	if s.Cloth != nil {
		offsetCloth = uint32(w.Pos())
		s.Cloth.write(w)
	}
	w.Align(0x10)
	offsetObject := uint32(w.Pos())
	s.Object.write(w, outputVersion)
	w.WriteU32(s.NumVertices)
	w.WriteU32(offsetVertices)
	w.WriteU32(s.NumIndices)
	if outputVersion.hasColor1() {
		var extra uint32
		if s.NumIndicesExtra != nil {
			extra = *s.NumIndicesExtra
		}
		w.WriteU32(extra)
	}
	w.WriteU32(offsetIndices)
	w.WriteU32(offsetCollision)
	w.WriteU32(offsetCloth)
	w.WriteU32(numUVChannels(headerFlags, outputVersion))
	w.Align(0x10)
	offset := uint32(w.Pos())
	w.WriteU32(offsetObject)
	w.Align(0x10)
	return offset
}

// numUVChannels is the stored channel count policy: WOA always writes
// one channel, earlier versions write zero for weighted subtrees.
func numUVChannels(headerFlags uint32, outputVersion GameVersion) uint32 {
	if outputVersion == WOA {
		return 1
	}
	if headerFlags&HeaderIsWeightedObject != 0 {
		return 0
	}
	return 1
}

func (s *SPrimSubMesh) dump(w io.Writer) {
	s.Object.dump(w)
	fmt.Fprintf(w, "num_vertices: %#x\n", s.NumVertices)
	fmt.Fprintf(w, "offset_vertices: %#x\n", s.OffsetVertices)
	if s.Vertices != nil {
		s.Vertices.dump(w)
	}
	fmt.Fprintf(w, "num_indices: %#x\n", s.NumIndices)
	if s.NumIndicesExtra != nil {
		fmt.Fprintf(w, "num_indices_extra: %#x\n", *s.NumIndicesExtra)
	}
	fmt.Fprintf(w, "offset_indices: %#x\n", s.OffsetIndices)
	if s.Indices != nil {
		s.Indices.dump(w)
	}
	fmt.Fprintf(w, "offset_collision: %#x\n", s.OffsetCollision)
	if s.Collision != nil {
		s.Collision.dump(w)
	}
	fmt.Fprintf(w, "offset_cloth: %#x\n", s.OffsetCloth)
	if s.Cloth != nil {
		s.Cloth.dump(w)
	}
	fmt.Fprintf(w, "num_uv_channels: %#x\n", s.NumUVChannels)
}
