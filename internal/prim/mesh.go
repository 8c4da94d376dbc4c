package prim

import (
	"fmt"
	"io"
)

// ClothID bit selecting the length-prefixed cloth payload form.
const ClothSmall uint8 = 0x80

// Object is a child of SPrimObjectHeader: either a *SPrimMesh or a
// *SPrimMeshWeighted, per the header's weighted flag.
type Object interface {
	// Mesh returns the object's mesh record.
	Mesh() *SPrimMesh
	dump(w io.Writer)
}

// SPrimMesh is a mesh header owning one sub-mesh through the sub-mesh
// table indirection. SubMeshTable is the table offset read from the
// source file; the writer returns a fresh one.
type SPrimMesh struct {
	Object        SPrimObject
	SubMeshTable  uint32
	SubMesh       *SPrimSubMesh
	PositionScale [4]float32
	PositionBias  [4]float32
	UVScale       [2]float32
	UVBias        [2]float32
	ClothID       uint8
	Pad           [3]uint8
}

func (m *SPrimMesh) Mesh() *SPrimMesh {
	return m
}

func readSPrimMesh(r *Cursor, headerFlags uint32, inputVersion GameVersion) *SPrimMesh {
	m := &SPrimMesh{
		Object:       readSPrimObject(r, inputVersion),
		SubMeshTable: r.ReadU32(),
	}
	copy(m.PositionScale[:], r.ReadF32s(4))
	copy(m.PositionBias[:], r.ReadF32s(4))
	copy(m.UVScale[:], r.ReadF32s(2))
	copy(m.UVBias[:], r.ReadF32s(2))
	m.ClothID = r.ReadU8()
	copy(m.Pad[:], r.ReadBytes(3))
	pos := r.Pos()
	r.Seek(int(m.SubMeshTable))
	subMeshOffset := r.ReadU32()
	r.Seek(int(subMeshOffset))
	m.SubMesh = readSPrimSubMesh(r, headerFlags, m, inputVersion)
	r.Seek(pos)
	return m
}

// writeSubMesh emits the sub-mesh subtree and returns the offset of the
// sub-mesh-table cell, or 0 when there is no sub-mesh.
func (m *SPrimMesh) writeSubMesh(w *Cursor, headerFlags uint32, outputVersion GameVersion) uint32 {
	if m.SubMesh == nil {
		return 0
	}
	return m.SubMesh.write(w, headerFlags, m, outputVersion)
}

// writeHeader emits the mesh header record pointing at an already
// written sub-mesh table and returns the record's offset.
func (m *SPrimMesh) writeHeader(w *Cursor, subMeshTable uint32, outputVersion GameVersion) uint32 {
	offset := uint32(w.Pos())
	m.Object.write(w, outputVersion)
	w.WriteU32(subMeshTable)
	w.WriteF32s(m.PositionScale[:])
	w.WriteF32s(m.PositionBias[:])
	w.WriteF32s(m.UVScale[:])
	w.WriteF32s(m.UVBias[:])
	w.WriteU8(m.ClothID)
	w.WriteBytes(m.Pad[:])
	return offset
}

func (m *SPrimMesh) write(w *Cursor, headerFlags uint32, outputVersion GameVersion) uint32 {
	subMeshTable := m.writeSubMesh(w, headerFlags, outputVersion)
	return m.writeHeader(w, subMeshTable, outputVersion)
}

func (m *SPrimMesh) dump(w io.Writer) {
	m.Object.dump(w)
	fmt.Fprintf(w, "sub_mesh_table: %#x\n", m.SubMeshTable)
	if m.SubMesh != nil {
		m.SubMesh.dump(w)
	}
	fmt.Fprintf(w, "position_scale: %v\n", m.PositionScale)
	fmt.Fprintf(w, "position_bias: %v\n", m.PositionBias)
	fmt.Fprintf(w, "uv_scale: %v\n", m.UVScale)
	fmt.Fprintf(w, "uv_bias: %v\n", m.UVBias)
	fmt.Fprintf(w, "cloth_id: %#x\n", m.ClothID)
	fmt.Fprintf(w, "pad: %#x\n", m.Pad)
}

// SPrimMeshWeighted extends SPrimMesh with the three bone payloads. The
// Offset* fields hold the source-file offsets; the writer recomputes
// them from payload presence.
type SPrimMeshWeighted struct {
	SPrimMesh
	NumCopyBones      uint32
	OffsetCopyBones   uint32
	CopyBones         *CopyBones
	OffsetBoneIndices uint32
	BoneIndices       *BoneIndices
	OffsetBoneInfo    uint32
	BoneInfo          *BoneInfo
}

func readSPrimMeshWeighted(r *Cursor, headerFlags uint32, inputVersion GameVersion) *SPrimMeshWeighted {
	m := &SPrimMeshWeighted{
		SPrimMesh:         *readSPrimMesh(r, headerFlags, inputVersion),
		NumCopyBones:      r.ReadU32(),
		OffsetCopyBones:   r.ReadU32(),
		OffsetBoneIndices: r.ReadU32(),
		OffsetBoneInfo:    r.ReadU32(),
	}
	if m.NumCopyBones > 0 && m.OffsetCopyBones > 0 {
		r.Seek(int(m.OffsetCopyBones))
		m.CopyBones = readCopyBones(r, m.NumCopyBones)
	}
	if m.OffsetBoneIndices > 0 {
		r.Seek(int(m.OffsetBoneIndices))
		m.BoneIndices = readBoneIndices(r, inputVersion)
	}
	if m.OffsetBoneInfo > 0 {
		r.Seek(int(m.OffsetBoneInfo))
		m.BoneInfo = readBoneInfo(r)
	}
	return m
}

func (m *SPrimMeshWeighted) write(w *Cursor, headerFlags uint32, outputVersion GameVersion) uint32 {
	subMeshTable := m.writeSubMesh(w, headerFlags, outputVersion)
	var offsetCopyBones uint32
	if m.CopyBones != nil {
		offsetCopyBones = uint32(w.Pos())
		m.CopyBones.write(w)
	}
	w.Align(0x10)
	var offsetBoneInfo uint32
	if m.BoneInfo != nil {
		offsetBoneInfo = uint32(w.Pos())
		m.BoneInfo.write(w)
	}
	w.Align(0x10)
	var offsetBoneIndices uint32
	if m.BoneIndices != nil {
		offsetBoneIndices = uint32(w.Pos())
		m.BoneIndices.write(w, outputVersion)
	}
	w.Align(0x10)
	offset := m.writeHeader(w, subMeshTable, outputVersion)
	w.WriteU32(m.NumCopyBones)
	w.WriteU32(offsetCopyBones)
	w.WriteU32(offsetBoneIndices)
	w.WriteU32(offsetBoneInfo)
	w.Align(0x10)
	return offset
}

func (m *SPrimMeshWeighted) dump(w io.Writer) {
	m.SPrimMesh.dump(w)
	fmt.Fprintf(w, "num_copy_bones: %#x\n", m.NumCopyBones)
	fmt.Fprintf(w, "offset_copy_bones: %#x\n", m.OffsetCopyBones)
	if m.CopyBones != nil {
		m.CopyBones.dump(w)
	}
	fmt.Fprintf(w, "offset_bone_indices: %#x\n", m.OffsetBoneIndices)
	if m.BoneIndices != nil {
		m.BoneIndices.dump(w)
	}
	fmt.Fprintf(w, "offset_bone_info: %#x\n", m.OffsetBoneInfo)
	if m.BoneInfo != nil {
		m.BoneInfo.dump(w)
	}
}
