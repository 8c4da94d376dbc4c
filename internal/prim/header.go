package prim

import (
	"fmt"
	"io"
)

// EPrimType values stored in SPrimHeader.PrimType.
const (
	PrimTypeNone         uint16 = 0
	PrimTypeObjectHeader uint16 = 1
	PrimTypeMesh         uint16 = 2
	PrimTypeShape        uint16 = 5
)

// SPrimObjectHeader.HeaderFlags bits.
const (
	HeaderHasBones          uint32 = 1
	HeaderHasFrames         uint32 = 2
	HeaderIsLinkedObject    uint32 = 4
	HeaderIsWeightedObject  uint32 = 8
	HeaderUseBounds         uint32 = 0x100
	HeaderHasHiResPositions uint32 = 0x200
)

// SPrimHeader opens every PRIM record. The low nibble of
// DrawDestination is a destination mask; its high bit selects the
// alternate vertex packing layout.
type SPrimHeader struct {
	DrawDestination uint8
	PackType        uint8
	PrimType        uint16
}

func readSPrimHeader(r *Cursor) SPrimHeader {
	return SPrimHeader{
		DrawDestination: r.ReadU8(),
		PackType:        r.ReadU8(),
		PrimType:        r.ReadU16(),
	}
}

func (h *SPrimHeader) write(w *Cursor) {
	w.WriteU8(h.DrawDestination)
	w.WriteU8(h.PackType)
	w.WriteU16(h.PrimType)
}

func (h *SPrimHeader) dump(w io.Writer) {
	fmt.Fprintf(w, "draw_destination: %#x\n", h.DrawDestination)
	fmt.Fprintf(w, "pack_type: %#x\n", h.PackType)
	fmt.Fprintf(w, "prim_type: %#x\n", h.PrimType)
}

// SPrimObjectHeader is the file root. ObjectTable holds the offset the
// object-offset table had in the file the header was read from; the
// writer computes a fresh one.
type SPrimObjectHeader struct {
	Header               SPrimHeader
	HeaderFlags          uint32
	BoneRigResourceIndex uint32
	NumObjects           uint32
	ObjectTable          uint32
	BoundingBoxMin       [3]float32
	BoundingBoxMax       [3]float32
	Objects              []Object
}

func readSPrimObjectHeader(r *Cursor) *SPrimObjectHeader {
	h := &SPrimObjectHeader{
		Header:               readSPrimHeader(r),
		HeaderFlags:          r.ReadU32(),
		BoneRigResourceIndex: r.ReadU32(),
		NumObjects:           r.ReadU32(),
		ObjectTable:          r.ReadU32(),
	}
	copy(h.BoundingBoxMin[:], r.ReadF32s(3))
	copy(h.BoundingBoxMax[:], r.ReadF32s(3))
	return h
}

// IsWeighted reports whether the children are weighted meshes.
func (h *SPrimObjectHeader) IsWeighted() bool {
	return h.HeaderFlags&HeaderIsWeightedObject != 0
}

func (h *SPrimObjectHeader) readObjects(r *Cursor, inputVersion GameVersion) {
	for o := uint32(0); o < h.NumObjects; o++ {
		r.Seek(int(h.ObjectTable + o*4))
		objectOffset := r.ReadU32()
		r.Seek(int(objectOffset))
		if h.IsWeighted() {
			h.Objects = append(h.Objects, readSPrimMeshWeighted(r, h.HeaderFlags, inputVersion))
		} else {
			h.Objects = append(h.Objects, readSPrimMesh(r, h.HeaderFlags, inputVersion))
		}
	}
}

// write emits the object subtrees, the object-offset table and finally
// the header itself, returning the header's absolute offset.
func (h *SPrimObjectHeader) write(w *Cursor, outputVersion GameVersion, noCloth bool) uint32 {
	var objectOffsets []uint32
	for _, object := range h.Objects {
		switch object := object.(type) {
		case *SPrimMesh:
			object.Object.Header.DrawDestination = getDrawDestination(
				h.HeaderFlags, object.Object.Header.DrawDestination, outputVersion)
			objectOffsets = append(objectOffsets, object.write(w, h.HeaderFlags, outputVersion))
			w.Align(0x10)
		case *SPrimMeshWeighted:
			if !noCloth || keepWithCloth(object) {
				object.Object.Header.DrawDestination = getDrawDestination(
					h.HeaderFlags, object.Object.Header.DrawDestination, outputVersion)
				objectOffsets = append(objectOffsets, object.write(w, h.HeaderFlags, outputVersion))
			}
		}
	}
	objectTable := uint32(w.Pos())
	w.WriteU32s(objectOffsets)
	w.Align(0x10)
	mainOffset := uint32(w.Pos())
	h.Header.write(w)
	w.WriteU32(h.HeaderFlags)
	w.WriteU32(h.BoneRigResourceIndex)
	w.WriteU32(uint32(len(objectOffsets)))
	w.WriteU32(objectTable)
	w.WriteF32s(h.BoundingBoxMin[:])
	w.WriteF32s(h.BoundingBoxMax[:])
	w.Align(0x10)
	return mainOffset
}

// keepWithCloth is the no-cloth filter: a weighted object survives when
// it has a cloth payload, or when it declares neither a payload nor a
// cloth id. Objects with a cloth id but no payload are dropped.
func keepWithCloth(object *SPrimMeshWeighted) bool {
	subMesh := object.SubMesh
	return subMesh.OffsetCloth > 0 || (subMesh.OffsetCloth == 0 && object.ClothID == 0)
}

// getDrawDestination rewrites an object's draw destination for the
// output version: ALPHA keeps the destination mask on weighted objects
// and forces 0x81 on plain ones; every other version keeps the mask.
func getDrawDestination(headerFlags uint32, drawDestination uint8, outputVersion GameVersion) uint8 {
	if outputVersion == Alpha {
		if headerFlags&HeaderIsWeightedObject != 0 {
			return drawDestination & 0xF
		}
		return 0x81
	}
	return drawDestination & 0xF
}

func (h *SPrimObjectHeader) dump(w io.Writer) {
	h.Header.dump(w)
	fmt.Fprintf(w, "header_flags: %#x\n", h.HeaderFlags)
	fmt.Fprintf(w, "bone_rig_resource_index: %#x\n", h.BoneRigResourceIndex)
	fmt.Fprintf(w, "num_objects: %#x\n", h.NumObjects)
	fmt.Fprintf(w, "object_table: %#x\n", h.ObjectTable)
	fmt.Fprintf(w, "bounding_box_min: %v\n", h.BoundingBoxMin)
	fmt.Fprintf(w, "bounding_box_max: %v\n", h.BoundingBoxMax)
}
