package prim

import (
	"fmt"
	"io"
	"math"
)

// VertexWeights are the two per-vertex skin weight groups, already
// divided down from their u8 encoding.
type VertexWeights struct {
	Main  [4]float32
	Extra [2]float32
}

// VertexBones are the bone indices paired with VertexWeights.
type VertexBones struct {
	Main  [4]uint8
	Extra [2]uint8
}

// Vertices holds the dequantized vertex attribute streams of one
// sub-mesh. Weights and Bones are present for weighted meshes only;
// Colors is empty when the object-level color1 replaces the channel.
type Vertices struct {
	Positions  [][4]float32
	Weights    []VertexWeights
	Bones      []VertexBones
	Normals    [][4]float32
	Tangents   [][4]float32
	Bitangents [][4]float32
	UVs        [][2]float32
	Colors     [][4]uint8
}

func readVertices(r *Cursor, headerFlags uint32, mesh *SPrimMesh, subMesh *SPrimSubMesh) *Vertices {
	altPacking := mesh.Object.Header.DrawDestination&0x80 != 0
	hiRes := mesh.Object.Flags&ObjectHiResPositions != 0
	v := &Vertices{}
	if !altPacking {
		for i := uint32(0); i < subMesh.NumVertices; i++ {
			v.Positions = append(v.Positions, readPosition(r, mesh, hiRes))
		}
	}
	isWeighted := headerFlags&HeaderIsWeightedObject != 0
	if isWeighted {
		v.readWeightsAndBones(r, subMesh)
	}
	for i := uint32(0); i < subMesh.NumVertices; i++ {
		if altPacking {
			v.Positions = append(v.Positions, readPosition(r, mesh, hiRes))
		}
		v.Normals = append(v.Normals, readVertexData(r))
		v.Tangents = append(v.Tangents, readVertexData(r))
		v.Bitangents = append(v.Bitangents, readVertexData(r))
		v.UVs = append(v.UVs, readUV(r, mesh))
	}
	hasColor1Object := mesh.Object.Flags&ObjectColor1 != 0
	hasColor1SubMesh := subMesh.Object.Flags&ObjectColor1 != 0
	if isWeighted || !hasColor1Object {
		if hasColor1SubMesh {
			// The sub-mesh color1 value stands in for the whole channel.
			var color [4]uint8
			if subMesh.Object.Color1 != nil {
				c := *subMesh.Object.Color1
				color = [4]uint8{uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)}
			}
			for i := uint32(0); i < subMesh.NumVertices; i++ {
				v.Colors = append(v.Colors, color)
			}
		} else {
			for i := uint32(0); i < subMesh.NumVertices; i++ {
				var color [4]uint8
				copy(color[:], r.ReadBytes(4))
				v.Colors = append(v.Colors, color)
			}
		}
	}
	return v
}

func readPosition(r *Cursor, mesh *SPrimMesh, hiRes bool) [4]float32 {
	var position [4]float32
	if hiRes {
		copy(position[:], r.ReadF32s(3))
		position[3] = 0.75
		return position
	}
	for i := range position {
		position[i] = float32(r.ReadU16())*mesh.PositionScale[i]/math.MaxUint16 + mesh.PositionBias[i]
	}
	return position
}

func (v *Vertices) readWeightsAndBones(r *Cursor, subMesh *SPrimSubMesh) {
	for i := uint32(0); i < subMesh.NumVertices; i++ {
		var weights VertexWeights
		var bones VertexBones
		for j := range weights.Main {
			weights.Main[j] = float32(r.ReadU8()) / 255
		}
		copy(bones.Main[:], r.ReadBytes(4))
		for j := range weights.Extra {
			weights.Extra[j] = float32(r.ReadU8()) / 255
		}
		copy(bones.Extra[:], r.ReadBytes(2))
		v.Weights = append(v.Weights, weights)
		v.Bones = append(v.Bones, bones)
	}
}

func readVertexData(r *Cursor) [4]float32 {
	var value [4]float32
	for i := range value {
		value[i] = 2*float32(r.ReadU8())/255 - 1
	}
	return value
}

func readUV(r *Cursor, mesh *SPrimMesh) [2]float32 {
	var uv [2]float32
	for i := range uv {
		uv[i] = float32(r.ReadU16())*mesh.UVScale[i]/math.MaxUint16 + mesh.UVBias[i]
	}
	return uv
}

// write mirrors the read layout byte for byte for the same packing and
// flag state, then pads to 16.
func (v *Vertices) write(w *Cursor, headerFlags uint32, mesh *SPrimMesh, subMesh *SPrimSubMesh) {
	altPacking := mesh.Object.Header.DrawDestination&0x80 != 0
	hiRes := mesh.Object.Flags&ObjectHiResPositions != 0
	if !altPacking {
		for i := range v.Positions {
			writePosition(w, v.Positions[i], mesh, hiRes)
		}
	}
	isWeighted := headerFlags&HeaderIsWeightedObject != 0
	if isWeighted {
		v.writeWeightsAndBones(w)
	}
	for i := range v.Positions {
		if altPacking {
			writePosition(w, v.Positions[i], mesh, hiRes)
		}
		writeVertexData(w, v.Normals[i])
		writeVertexData(w, v.Tangents[i])
		writeVertexData(w, v.Bitangents[i])
		writeUV(w, v.UVs[i], mesh)
	}
	hasColor1Object := mesh.Object.Flags&ObjectColor1 != 0
	hasColor1SubMesh := subMesh.Object.Flags&ObjectColor1 != 0
	if (isWeighted || !hasColor1Object) && !hasColor1SubMesh {
		for _, color := range v.Colors {
			w.WriteBytes(color[:])
		}
	}
	w.Align(0x10)
}

func writePosition(w *Cursor, position [4]float32, mesh *SPrimMesh, hiRes bool) {
	if hiRes {
		w.WriteF32s(position[:3])
		return
	}
	for i, p := range position {
		w.WriteU16(uint16(math.Round(float64(math.MaxUint16 * (p - mesh.PositionBias[i]) / mesh.PositionScale[i]))))
	}
}

func (v *Vertices) writeWeightsAndBones(w *Cursor) {
	for i := range v.Weights {
		for _, x := range v.Weights[i].Main {
			w.WriteU8(uint8(math.Round(float64(x * 255))))
		}
		w.WriteBytes(v.Bones[i].Main[:])
		for _, x := range v.Weights[i].Extra {
			w.WriteU8(uint8(math.Round(float64(x * 255))))
		}
		w.WriteBytes(v.Bones[i].Extra[:])
	}
}

func writeVertexData(w *Cursor, value [4]float32) {
	for _, x := range value {
		w.WriteU8(uint8(math.Round(float64((x + 1) / 2 * 255))))
	}
}

func writeUV(w *Cursor, uv [2]float32, mesh *SPrimMesh) {
	for i, x := range uv {
		w.WriteU16(uint16(math.Round(float64(math.MaxUint16 * (x - mesh.UVBias[i]) / mesh.UVScale[i]))))
	}
}

func (v *Vertices) dump(w io.Writer) {
	fmt.Fprintf(w, "vertices: %v\n", v.Positions)
	fmt.Fprintf(w, "weights: %v\n", v.Weights)
	fmt.Fprintf(w, "bones: %v\n", v.Bones)
	fmt.Fprintf(w, "normals: %v\n", v.Normals)
	fmt.Fprintf(w, "tangents: %v\n", v.Tangents)
	fmt.Fprintf(w, "bitangents: %v\n", v.Bitangents)
	fmt.Fprintf(w, "uvs: %v\n", v.UVs)
	fmt.Fprintf(w, "colors: %v\n", v.Colors)
}
