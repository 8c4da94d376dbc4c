package prim

import (
	"fmt"
	"io"
)

// SPrimObject.SubType values.
const (
	SubTypeStandard    uint8 = 0
	SubTypeLinked      uint8 = 1
	SubTypeWeighted    uint8 = 2
	SubTypeStandardUV2 uint8 = 3
	SubTypeStandardUV3 uint8 = 4
	SubTypeStandardUV4 uint8 = 5
	SubTypeSpeedTree   uint8 = 6
)

// SPrimObject.Flags bits.
const (
	ObjectXAxisLocked     uint8 = 1
	ObjectYAxisLocked     uint8 = 2
	ObjectZAxisLocked     uint8 = 4
	ObjectHiResPositions  uint8 = 8
	ObjectPs3Edge         uint8 = 0x10
	ObjectColor1          uint8 = 0x20
	ObjectIsNoPhysicsProp uint8 = 0x40
)

// SPrimObject is the common object record embedded in meshes and
// sub-meshes. Color1 exists on disk for HM2016/WOA only; nil means the
// field was absent in the version the record was read from.
type SPrimObject struct {
	Header         SPrimHeader
	SubType        uint8
	Flags          uint8
	LodMask        uint8
	VariantID      uint8
	Bias           uint8
	Offset         uint8
	MaterialID     uint16
	WireColor      uint32
	Color1         *uint32
	BoundingBoxMin [3]float32
	BoundingBoxMax [3]float32
}

func readSPrimObject(r *Cursor, inputVersion GameVersion) SPrimObject {
	o := SPrimObject{
		Header:     readSPrimHeader(r),
		SubType:    r.ReadU8(),
		Flags:      r.ReadU8(),
		LodMask:    r.ReadU8(),
		VariantID:  r.ReadU8(),
		Bias:       r.ReadU8(),
		Offset:     r.ReadU8(),
		MaterialID: r.ReadU16(),
		WireColor:  r.ReadU32(),
	}
	if inputVersion.hasColor1() {
		color1 := r.ReadU32()
		o.Color1 = &color1
	}
	copy(o.BoundingBoxMin[:], r.ReadF32s(3))
	copy(o.BoundingBoxMax[:], r.ReadF32s(3))
	return o
}

func (o *SPrimObject) write(w *Cursor, outputVersion GameVersion) {
	o.Header.write(w)
	w.WriteU8(o.SubType)
	w.WriteU8(o.Flags)
	w.WriteU8(o.LodMask)
	w.WriteU8(o.VariantID)
	w.WriteU8(o.Bias)
	w.WriteU8(o.Offset)
	w.WriteU16(o.MaterialID)
	w.WriteU32(o.WireColor)
	if outputVersion.hasColor1() {
		var color1 uint32
		if o.Color1 != nil {
			color1 = *o.Color1
		}
		w.WriteU32(color1)
	}
	w.WriteF32s(o.BoundingBoxMin[:])
	w.WriteF32s(o.BoundingBoxMax[:])
}

func (o *SPrimObject) dump(w io.Writer) {
	o.Header.dump(w)
	fmt.Fprintf(w, "sub_type: %#x\n", o.SubType)
	fmt.Fprintf(w, "flags: %#x\n", o.Flags)
	fmt.Fprintf(w, "lod_mask: %#x\n", o.LodMask)
	fmt.Fprintf(w, "variant_id: %#x\n", o.VariantID)
	fmt.Fprintf(w, "bias: %#x\n", o.Bias)
	fmt.Fprintf(w, "offset: %#x\n", o.Offset)
	fmt.Fprintf(w, "material_id: %#x\n", o.MaterialID)
	fmt.Fprintf(w, "wire_color: %#x\n", o.WireColor)
	if o.Color1 != nil {
		fmt.Fprintf(w, "color1: %#x\n", *o.Color1)
	}
	fmt.Fprintf(w, "bounding_box_min: %v\n", o.BoundingBoxMin)
	fmt.Fprintf(w, "bounding_box_max: %v\n", o.BoundingBoxMax)
}
