package prim

import (
	"reflect"
	"testing"
)

func TestIndicesCountIncludesExtra(t *testing.T) {
	extra := uint32(6)
	subMesh := &SPrimSubMesh{NumIndices: 120, NumIndicesExtra: &extra}
	w := NewWriteCursor()
	for i := 0; i < 126; i++ {
		w.WriteU16(uint16(i))
	}
	got := readIndices(NewCursor(w.Bytes()), subMesh)
	if len(got.Indices) != 126 {
		t.Fatalf("len(indices) = %d, want 126", len(got.Indices))
	}
	if got.Indices[125] != 125 {
		t.Errorf("indices[125] = %d, want 125", got.Indices[125])
	}
}

func TestBoneIndicesCountEncoding(t *testing.T) {
	data := make([]uint16, 10)
	for i := range data {
		data[i] = uint16(i * 3)
	}
	b := &BoneIndices{Data: data}

	tests := []struct {
		name       string
		version    GameVersion
		wantPrefix uint32
		wideCount  bool
	}{
		{"HMA", HMA, 11, false},
		{"ALPHA", Alpha, 11, false},
		{"HM2016", HM2016, 12, true},
		{"WOA", WOA, 12, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWriteCursor()
			b.write(w, tc.version)
			if w.Pos()%16 != 0 {
				t.Errorf("bone index blob length %d not 16-byte aligned", w.Pos())
			}
			r := NewCursor(w.Bytes())
			var prefix uint32
			if tc.wideCount {
				prefix = r.ReadU32()
			} else {
				prefix = uint32(r.ReadU16())
			}
			if prefix != tc.wantPrefix {
				t.Errorf("stored count = %d, want %d", prefix, tc.wantPrefix)
			}
			if got := r.ReadU16s(10); !reflect.DeepEqual(got, data) {
				t.Errorf("stored data = %v, want %v", got, data)
			}

			// Reading back under the same version recovers the list.
			back := readBoneIndices(NewCursor(w.Bytes()), tc.version)
			if !reflect.DeepEqual(back.Data, data) {
				t.Errorf("read-back data = %v, want %v", back.Data, data)
			}
		})
	}
}

func TestBoneIndicesWidthTranslation(t *testing.T) {
	// An ALPHA-encoded list rewritten for WOA gets the u32 N+2 prefix.
	w := NewWriteCursor()
	w.WriteU16(11)
	for i := 0; i < 10; i++ {
		w.WriteU16(uint16(i))
	}
	b := readBoneIndices(NewCursor(w.Bytes()), Alpha)
	if len(b.Data) != 10 {
		t.Fatalf("len(data) = %d, want 10", len(b.Data))
	}

	out := NewWriteCursor()
	b.write(out, WOA)
	if got := NewCursor(out.Bytes()).ReadU32(); got != 12 {
		t.Errorf("WOA stored count = %d, want 12", got)
	}
}

func TestBoneInfoSelfSized(t *testing.T) {
	w := NewWriteCursor()
	w.WriteU16(8)
	w.WriteBytes([]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF})
	w.WriteBytes([]byte{0x01, 0x02}) // past the blob

	got := readBoneInfo(NewCursor(w.Bytes()))
	want := []byte{0x08, 0x00, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	if !reflect.DeepEqual(got.Data, want) {
		t.Errorf("bone info data = %#x, want %#x", got.Data, want)
	}
}

func TestCollisionRoundTrip(t *testing.T) {
	c := &Collision{
		TrianglesPerBox: 32,
		BoundingBoxes: [][2][3]uint8{
			{{0, 1, 2}, {10, 11, 12}},
			{{3, 4, 5}, {13, 14, 15}},
		},
	}
	w := NewWriteCursor()
	c.write(w)
	if w.Pos()%16 != 0 {
		t.Errorf("collision blob length %d not 16-byte aligned", w.Pos())
	}
	got := readCollision(NewCursor(w.Bytes()))
	if !reflect.DeepEqual(got, c) {
		t.Errorf("collision round trip = %+v, want %+v", got, c)
	}
}

func TestClothLengthPrefixed(t *testing.T) {
	w := NewWriteCursor()
	w.WriteU32(5)
	w.WriteBytes([]byte{1, 2, 3, 4, 5})
	subMesh := &SPrimSubMesh{NumVertices: 100}

	got := readCloth(NewCursor(w.Bytes()), subMesh, ClothSmall|0x01)
	if len(got.Data) != 9 {
		t.Fatalf("len(data) = %d, want 9 (prefix kept in blob)", len(got.Data))
	}
	if got.Data[0] != 5 || got.Data[8] != 5 {
		t.Errorf("data = %#x", got.Data)
	}

	// Stored bytes are emitted verbatim.
	out := NewWriteCursor()
	got.write(out)
	if !reflect.DeepEqual(out.Bytes()[:9], got.Data) {
		t.Errorf("written cloth = %#x, want %#x", out.Bytes()[:9], got.Data)
	}
	if out.Pos() != 16 {
		t.Errorf("cloth write length = %d, want 16 after padding", out.Pos())
	}
}

func TestClothFixedSize(t *testing.T) {
	subMesh := &SPrimSubMesh{NumVertices: 2}
	raw := make([]byte, 2*0x14)
	for i := range raw {
		raw[i] = byte(i)
	}
	got := readCloth(NewCursor(raw), subMesh, 0x01)
	if !reflect.DeepEqual(got.Data, raw) {
		t.Errorf("fixed-size cloth = %#x, want %#x", got.Data, raw)
	}
}

func TestCopyBonesRoundTrip(t *testing.T) {
	w := NewWriteCursor()
	w.WriteU32s([]uint32{1, 2, 3, 4, 5, 6})
	got := readCopyBones(NewCursor(w.Bytes()), 3)
	if !reflect.DeepEqual(got.Data, []uint32{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("copy bones = %v", got.Data)
	}
	out := NewWriteCursor()
	got.write(out)
	if out.Pos() != 32 {
		t.Errorf("copy bones write length = %d, want 32 after padding", out.Pos())
	}
}
