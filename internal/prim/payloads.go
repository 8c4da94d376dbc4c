package prim

import (
	"fmt"
	"io"
)

// Indices is the triangle index blob, num_indices plus the extra count
// u16s long.
type Indices struct {
	Indices []uint16
}

func readIndices(r *Cursor, subMesh *SPrimSubMesh) *Indices {
	count := subMesh.NumIndices
	if subMesh.NumIndicesExtra != nil {
		count += *subMesh.NumIndicesExtra
	}
	return &Indices{Indices: r.ReadU16s(int(count))}
}

func (i *Indices) write(w *Cursor) {
	w.WriteU16s(i.Indices)
	w.Align(0x10)
}

func (i *Indices) dump(w io.Writer) {
	fmt.Fprintf(w, "indices: %#x\n", i.Indices)
}

// Collision is the coarse collision volume list: quantized box min/max
// triples, each box covering TrianglesPerBox triangles.
type Collision struct {
	BoundingBoxes   [][2][3]uint8
	TrianglesPerBox uint16
}

func readCollision(r *Cursor) *Collision {
	count := r.ReadU16()
	c := &Collision{TrianglesPerBox: r.ReadU16()}
	for i := uint16(0); i < count; i++ {
		var box [2][3]uint8
		copy(box[0][:], r.ReadBytes(3))
		copy(box[1][:], r.ReadBytes(3))
		c.BoundingBoxes = append(c.BoundingBoxes, box)
	}
	return c
}

func (c *Collision) write(w *Cursor) {
	w.WriteU16(uint16(len(c.BoundingBoxes)))
	w.WriteU16(c.TrianglesPerBox)
	for _, box := range c.BoundingBoxes {
		w.WriteBytes(box[0][:])
		w.WriteBytes(box[1][:])
	}
	w.Align(0x10)
}

func (c *Collision) dump(w io.Writer) {
	fmt.Fprintf(w, "bounding_boxes: %#x\n", c.BoundingBoxes)
	fmt.Fprintf(w, "triangles_per_box: %#x\n", c.TrianglesPerBox)
}

// Cloth is an opaque simulation blob. When the mesh cloth id has the
// small bit set the payload carries its own u32 length prefix, which is
// kept inside Data; otherwise the size is num_vertices * 0x14.
type Cloth struct {
	Data []byte
}

func readCloth(r *Cursor, subMesh *SPrimSubMesh, clothID uint8) *Cloth {
	var data []byte
	var size uint32
	if clothID&ClothSmall != 0 {
		size = r.ReadU32()
		data = append(data, byte(size), byte(size>>8), byte(size>>16), byte(size>>24))
	} else {
		size = subMesh.NumVertices * 0x14
	}
	data = append(data, r.ReadBytes(int(size))...)
	return &Cloth{Data: data}
}

func (c *Cloth) write(w *Cursor) {
	w.WriteBytes(c.Data)
	w.Align(0x10)
}

func (c *Cloth) dump(w io.Writer) {
	fmt.Fprintf(w, "data: %#x\n", c.Data)
}

// CopyBones holds two u32s per copy bone.
type CopyBones struct {
	Data []uint32
}

func readCopyBones(r *Cursor, numCopyBones uint32) *CopyBones {
	return &CopyBones{Data: r.ReadU32s(int(numCopyBones * 2))}
}

func (c *CopyBones) write(w *Cursor) {
	w.WriteU32s(c.Data)
	w.Align(0x10)
}

func (c *CopyBones) dump(w io.Writer) {
	fmt.Fprintf(w, "data: %#x\n", c.Data)
}

// BoneIndices is a u16 list behind a version-dependent count prefix:
// u16 holding N+1 for HMA/ALPHA, u32 holding N+2 for HM2016/WOA. The
// prefix always follows the version being written.
type BoneIndices struct {
	Data []uint16
}

func readBoneIndices(r *Cursor, inputVersion GameVersion) *BoneIndices {
	var count uint32
	if inputVersion.hasColor1() {
		count = r.ReadU32() - 2
	} else {
		count = uint32(r.ReadU16()) - 1
	}
	return &BoneIndices{Data: r.ReadU16s(int(count))}
}

func (b *BoneIndices) write(w *Cursor, outputVersion GameVersion) {
	if outputVersion.hasColor1() {
		w.WriteU32(uint32(len(b.Data) + 2))
	} else {
		w.WriteU16(uint16(len(b.Data) + 1))
	}
	w.WriteU16s(b.Data)
	w.Align(0x10)
}

func (b *BoneIndices) dump(w io.Writer) {
	fmt.Fprintf(w, "data: %#x\n", b.Data)
}

// BoneInfo is an opaque blob whose leading u16 is its own total length,
// prefix included.
type BoneInfo struct {
	Data []byte
}

func readBoneInfo(r *Cursor) *BoneInfo {
	size := r.ReadU16()
	r.Seek(r.Pos() - 2)
	return &BoneInfo{Data: r.ReadBytes(int(size))}
}

func (b *BoneInfo) write(w *Cursor) {
	w.WriteBytes(b.Data)
	w.Align(0x10)
}

func (b *BoneInfo) dump(w io.Writer) {
	fmt.Fprintf(w, "data: %#x\n", b.Data)
}
