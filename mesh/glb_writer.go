package mesh

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
)

// WriteGLB writes m as a binary glTF file with a single triangle
// primitive. When per-face colors are present the vertices are
// unshared (three per face) so each corner can carry its face's
// color as a COLOR_0 vertex attribute, which is how glTF expresses
// flat per-face coloring.
func WriteGLB(filename string, m *Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}

	vertices := m.Vertices
	faces := m.Faces
	var corners [][4]uint8
	if m.FaceColors != nil {
		vertices = make([]r3.Vec, 0, 3*len(m.Faces))
		faces = make([][3]int, len(m.Faces))
		corners = make([][4]uint8, 0, 3*len(m.Faces))
		for i, f := range m.Faces {
			base := len(vertices)
			vertices = append(vertices, m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]])
			corners = append(corners, m.FaceColors[i], m.FaceColors[i], m.FaceColors[i])
			faces[i] = [3]int{base, base + 1, base + 2}
		}
	}

	var bin bytes.Buffer

	// POSITION: float32 VEC3
	posOffset := bin.Len()
	min := []float64{0, 0, 0}
	max := []float64{0, 0, 0}
	if len(vertices) > 0 {
		min = []float64{math.Inf(1), math.Inf(1), math.Inf(1)}
		max = []float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	}
	for _, v := range vertices {
		for j, c := range []float64{v.X, v.Y, v.Z} {
			f := float64(float32(c))
			if f < min[j] {
				min[j] = f
			}
			if f > max[j] {
				max[j] = f
			}
			if err := binary.Write(&bin, binary.LittleEndian, float32(c)); err != nil {
				return err
			}
		}
	}
	posLen := bin.Len() - posOffset

	// COLOR_0: normalized ubyte VEC4
	colOffset, colLen := 0, 0
	if corners != nil {
		colOffset = bin.Len()
		for _, c := range corners {
			bin.Write(c[:])
		}
		colLen = bin.Len() - colOffset
		pad4(&bin)
	}

	// Indices: uint32 SCALAR
	idxOffset := bin.Len()
	for _, f := range faces {
		for _, v := range f {
			if err := binary.Write(&bin, binary.LittleEndian, uint32(v)); err != nil {
				return err
			}
		}
	}
	idxLen := bin.Len() - idxOffset
	pad4(&bin)

	doc := gltfDocument{
		Asset: gltfAsset{Version: "2.0", Generator: "partviz"},
		BufferViews: []gltfBufferView{
			{Buffer: 0, ByteOffset: posOffset, ByteLength: posLen, Target: 34962},
		},
		Accessors: []gltfAccessor{
			{BufferView: intPtr(0), ComponentType: compFloat, Count: len(vertices),
				Type: "VEC3", Min: min, Max: max},
		},
	}
	attributes := map[string]int{"POSITION": 0}
	if corners != nil {
		doc.BufferViews = append(doc.BufferViews,
			gltfBufferView{Buffer: 0, ByteOffset: colOffset, ByteLength: colLen, Target: 34962})
		doc.Accessors = append(doc.Accessors,
			gltfAccessor{BufferView: intPtr(len(doc.BufferViews) - 1), ComponentType: compUByte,
				Normalized: true, Count: len(corners), Type: "VEC4"})
		attributes["COLOR_0"] = len(doc.Accessors) - 1
	}
	doc.BufferViews = append(doc.BufferViews,
		gltfBufferView{Buffer: 0, ByteOffset: idxOffset, ByteLength: idxLen, Target: 34963})
	doc.Accessors = append(doc.Accessors,
		gltfAccessor{BufferView: intPtr(len(doc.BufferViews) - 1), ComponentType: compUInt,
			Count: 3 * len(faces), Type: "SCALAR"})
	indicesAcc := len(doc.Accessors) - 1

	mode := modeTriangles
	doc.Meshes = []gltfMesh{{Primitives: []gltfPrimitive{{
		Attributes: attributes,
		Indices:    intPtr(indicesAcc),
		Mode:       &mode,
	}}}}
	doc.Nodes = []gltfNode{{Mesh: intPtr(0)}}
	doc.Scenes = []gltfScene{{Nodes: []int{0}}}
	doc.Scene = intPtr(0)
	doc.Buffers = []gltfBuffer{{ByteLength: bin.Len()}}

	jsonChunk, err := json.Marshal(&doc)
	if err != nil {
		return err
	}
	// JSON chunks are padded with spaces, BIN chunks with zeros
	for len(jsonChunk)%4 != 0 {
		jsonChunk = append(jsonChunk, ' ')
	}
	binChunk := bin.Bytes()

	total := 12 + 8 + len(jsonChunk) + 8 + len(binChunk)
	var out bytes.Buffer
	writeU32 := func(v uint32) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		out.Write(b[:])
	}
	writeU32(glbMagic)
	writeU32(glbVersion)
	writeU32(uint32(total))
	writeU32(uint32(len(jsonChunk)))
	writeU32(glbChunkJSON)
	out.Write(jsonChunk)
	writeU32(uint32(len(binChunk)))
	writeU32(glbChunkBIN)
	out.Write(binChunk)

	if err := os.WriteFile(filename, out.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}

func pad4(b *bytes.Buffer) {
	for b.Len()%4 != 0 {
		b.WriteByte(0)
	}
}

func intPtr(i int) *int {
	return &i
}
