package mesh

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
)

// Binary glTF 2.0 container constants.
const (
	glbMagic     = 0x46546C67 // "glTF"
	glbVersion   = 2
	glbChunkJSON = 0x4E4F534A // "JSON"
	glbChunkBIN  = 0x004E4942 // "BIN\0"
)

// glTF accessor component types.
const (
	compByte   = 5120
	compUByte  = 5121
	compShort  = 5122
	compUShort = 5123
	compUInt   = 5125
	compFloat  = 5126
)

const modeTriangles = 4

type gltfDocument struct {
	Asset       gltfAsset        `json:"asset"`
	Scene       *int             `json:"scene,omitempty"`
	Scenes      []gltfScene      `json:"scenes,omitempty"`
	Nodes       []gltfNode       `json:"nodes,omitempty"`
	Meshes      []gltfMesh       `json:"meshes,omitempty"`
	Accessors   []gltfAccessor   `json:"accessors,omitempty"`
	BufferViews []gltfBufferView `json:"bufferViews,omitempty"`
	Buffers     []gltfBuffer     `json:"buffers,omitempty"`
}

type gltfAsset struct {
	Version   string `json:"version"`
	Generator string `json:"generator,omitempty"`
}

type gltfScene struct {
	Nodes []int `json:"nodes,omitempty"`
}

type gltfNode struct {
	Mesh     *int  `json:"mesh,omitempty"`
	Children []int `json:"children,omitempty"`
}

type gltfMesh struct {
	Primitives []gltfPrimitive `json:"primitives"`
}

type gltfPrimitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    *int           `json:"indices,omitempty"`
	Mode       *int           `json:"mode,omitempty"`
}

type gltfAccessor struct {
	BufferView    *int      `json:"bufferView,omitempty"`
	ByteOffset    int       `json:"byteOffset,omitempty"`
	ComponentType int       `json:"componentType"`
	Normalized    bool      `json:"normalized,omitempty"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Min           []float64 `json:"min,omitempty"`
	Max           []float64 `json:"max,omitempty"`
}

type gltfBufferView struct {
	Buffer     int  `json:"buffer"`
	ByteOffset int  `json:"byteOffset,omitempty"`
	ByteLength int  `json:"byteLength"`
	ByteStride *int `json:"byteStride,omitempty"`
	Target     int  `json:"target,omitempty"`
}

type gltfBuffer struct {
	ByteLength int    `json:"byteLength"`
	URI        string `json:"uri,omitempty"`
}

// ReadGLB reads a binary glTF file and merges all triangle primitives
// of all meshes into a single Mesh. Per-vertex COLOR_0 attributes are
// folded into per-face colors using the first corner of each face.
func ReadGLB(filename string) (*Mesh, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	doc, bin, err := parseGLBContainer(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return assembleMesh(doc, bin)
}

func parseGLBContainer(data []byte) (*gltfDocument, []byte, error) {
	if len(data) < 12 {
		return nil, nil, fmt.Errorf("truncated GLB header")
	}
	if binary.LittleEndian.Uint32(data[0:4]) != glbMagic {
		return nil, nil, fmt.Errorf("not a GLB file (bad magic)")
	}
	if v := binary.LittleEndian.Uint32(data[4:8]); v != glbVersion {
		return nil, nil, fmt.Errorf("unsupported GLB version %d", v)
	}
	total := int(binary.LittleEndian.Uint32(data[8:12]))
	if total > len(data) {
		return nil, nil, fmt.Errorf("truncated GLB: header says %d bytes, have %d", total, len(data))
	}

	var (
		jsonChunk []byte
		binChunk  []byte
	)
	for off := 12; off+8 <= total; {
		length := int(binary.LittleEndian.Uint32(data[off : off+4]))
		ctype := binary.LittleEndian.Uint32(data[off+4 : off+8])
		off += 8
		if off+length > total {
			return nil, nil, fmt.Errorf("truncated GLB chunk")
		}
		switch ctype {
		case glbChunkJSON:
			jsonChunk = data[off : off+length]
		case glbChunkBIN:
			binChunk = data[off : off+length]
		}
		off += length
	}
	if jsonChunk == nil {
		return nil, nil, fmt.Errorf("GLB has no JSON chunk")
	}
	doc := &gltfDocument{}
	if err := json.Unmarshal(jsonChunk, doc); err != nil {
		return nil, nil, fmt.Errorf("GLB JSON chunk: %w", err)
	}
	if doc.Asset.Version != "" && doc.Asset.Version[0] != '2' {
		return nil, nil, fmt.Errorf("unsupported glTF asset version %s", doc.Asset.Version)
	}
	return doc, binChunk, nil
}

func assembleMesh(doc *gltfDocument, bin []byte) (*Mesh, error) {
	out := &Mesh{}
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			if prim.Mode != nil && *prim.Mode != modeTriangles {
				continue // points, lines, strips: nothing to color
			}
			if err := appendPrimitive(out, doc, bin, prim); err != nil {
				return nil, fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err)
			}
		}
	}
	if len(out.Faces) == 0 {
		return nil, fmt.Errorf("no triangle primitives found")
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func appendPrimitive(out *Mesh, doc *gltfDocument, bin []byte, prim gltfPrimitive) error {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return fmt.Errorf("primitive has no POSITION attribute")
	}
	positions, err := readVec3Accessor(doc, bin, posIdx)
	if err != nil {
		return fmt.Errorf("POSITION: %w", err)
	}

	var indices []int
	if prim.Indices != nil {
		indices, err = readScalarAccessor(doc, bin, *prim.Indices)
		if err != nil {
			return fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]int, len(positions))
		for i := range indices {
			indices[i] = i
		}
	}
	if len(indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}

	var colors [][4]uint8
	if colIdx, ok := prim.Attributes["COLOR_0"]; ok {
		colors, err = readColorAccessor(doc, bin, colIdx)
		if err != nil {
			return fmt.Errorf("COLOR_0: %w", err)
		}
		if len(colors) != len(positions) {
			return fmt.Errorf("have %d colors for %d vertices", len(colors), len(positions))
		}
	}

	base := len(out.Vertices)
	out.Vertices = append(out.Vertices, positions...)
	for i := 0; i < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if a >= len(positions) || b >= len(positions) || c >= len(positions) {
			return fmt.Errorf("index out of range")
		}
		out.Faces = append(out.Faces, [3]int{base + a, base + b, base + c})
		if colors != nil {
			out.FaceColors = append(out.FaceColors, colors[a])
		} else if out.FaceColors != nil {
			// Keep color array dense across mixed primitives
			out.FaceColors = append(out.FaceColors, [4]uint8{255, 255, 255, 255})
		}
	}
	// Backfill when an earlier primitive had no colors
	if colors != nil && len(out.FaceColors) < len(out.Faces) {
		filled := make([][4]uint8, len(out.Faces))
		for i := range filled {
			filled[i] = [4]uint8{255, 255, 255, 255}
		}
		copy(filled[len(filled)-len(out.FaceColors):], out.FaceColors)
		out.FaceColors = filled
	}
	return nil
}

// accessorRegion resolves an accessor to its backing bytes, element
// stride and element size within the BIN chunk.
func accessorRegion(doc *gltfDocument, bin []byte, idx int) (data []byte, stride, elemSize int, acc *gltfAccessor, err error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, 0, 0, nil, fmt.Errorf("accessor %d out of range", idx)
	}
	acc = &doc.Accessors[idx]
	if acc.BufferView == nil {
		return nil, 0, 0, nil, fmt.Errorf("accessor %d has no bufferView (sparse accessors unsupported)", idx)
	}
	bvIdx := *acc.BufferView
	if bvIdx < 0 || bvIdx >= len(doc.BufferViews) {
		return nil, 0, 0, nil, fmt.Errorf("bufferView %d out of range", bvIdx)
	}
	bv := doc.BufferViews[bvIdx]
	if bv.Buffer != 0 || (len(doc.Buffers) > 0 && doc.Buffers[bv.Buffer].URI != "") {
		return nil, 0, 0, nil, fmt.Errorf("only the embedded GLB buffer is supported")
	}
	elemSize = componentSize(acc.ComponentType) * typeComponents(acc.Type)
	if elemSize == 0 {
		return nil, 0, 0, nil, fmt.Errorf("accessor %d: unsupported componentType %d / type %s", idx, acc.ComponentType, acc.Type)
	}
	stride = elemSize
	if bv.ByteStride != nil && *bv.ByteStride != 0 {
		stride = *bv.ByteStride
	}
	start := bv.ByteOffset + acc.ByteOffset
	end := start + (acc.Count-1)*stride + elemSize
	if acc.Count == 0 {
		end = start
	}
	if start > len(bin) || end > len(bin) {
		return nil, 0, 0, nil, fmt.Errorf("accessor %d overruns BIN chunk (%d > %d)", idx, end, len(bin))
	}
	return bin[start:end], stride, elemSize, acc, nil
}

func componentSize(ct int) int {
	switch ct {
	case compByte, compUByte:
		return 1
	case compShort, compUShort:
		return 2
	case compUInt, compFloat:
		return 4
	}
	return 0
}

func typeComponents(t string) int {
	switch t {
	case "SCALAR":
		return 1
	case "VEC2":
		return 2
	case "VEC3":
		return 3
	case "VEC4":
		return 4
	}
	return 0
}

func readVec3Accessor(doc *gltfDocument, bin []byte, idx int) ([]r3.Vec, error) {
	data, stride, _, acc, err := accessorRegion(doc, bin, idx)
	if err != nil {
		return nil, err
	}
	if acc.Type != "VEC3" || acc.ComponentType != compFloat {
		return nil, fmt.Errorf("accessor %d: want float VEC3, have %s/%d", idx, acc.Type, acc.ComponentType)
	}
	out := make([]r3.Vec, acc.Count)
	for i := 0; i < acc.Count; i++ {
		p := data[i*stride:]
		out[i] = r3.Vec{
			X: float64(math.Float32frombits(binary.LittleEndian.Uint32(p[0:4]))),
			Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(p[4:8]))),
			Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(p[8:12]))),
		}
	}
	return out, nil
}

func readScalarAccessor(doc *gltfDocument, bin []byte, idx int) ([]int, error) {
	data, stride, _, acc, err := accessorRegion(doc, bin, idx)
	if err != nil {
		return nil, err
	}
	if acc.Type != "SCALAR" {
		return nil, fmt.Errorf("accessor %d: want SCALAR, have %s", idx, acc.Type)
	}
	out := make([]int, acc.Count)
	for i := 0; i < acc.Count; i++ {
		p := data[i*stride:]
		switch acc.ComponentType {
		case compUByte:
			out[i] = int(p[0])
		case compUShort:
			out[i] = int(binary.LittleEndian.Uint16(p[0:2]))
		case compUInt:
			out[i] = int(binary.LittleEndian.Uint32(p[0:4]))
		default:
			return nil, fmt.Errorf("accessor %d: unsupported index componentType %d", idx, acc.ComponentType)
		}
	}
	return out, nil
}

func readColorAccessor(doc *gltfDocument, bin []byte, idx int) ([][4]uint8, error) {
	data, stride, _, acc, err := accessorRegion(doc, bin, idx)
	if err != nil {
		return nil, err
	}
	nc := typeComponents(acc.Type)
	if nc != 3 && nc != 4 {
		return nil, fmt.Errorf("accessor %d: want VEC3 or VEC4 colors, have %s", idx, acc.Type)
	}
	cs := componentSize(acc.ComponentType)
	out := make([][4]uint8, acc.Count)
	for i := 0; i < acc.Count; i++ {
		p := data[i*stride:]
		c := [4]uint8{0, 0, 0, 255}
		for j := 0; j < nc; j++ {
			q := p[j*cs:]
			switch acc.ComponentType {
			case compUByte:
				c[j] = q[0]
			case compUShort:
				c[j] = uint8(binary.LittleEndian.Uint16(q[0:2]) >> 8)
			case compFloat:
				f := math.Float32frombits(binary.LittleEndian.Uint32(q[0:4]))
				if f < 0 {
					f = 0
				} else if f > 1 {
					f = 1
				}
				c[j] = uint8(f*255 + 0.5)
			default:
				return nil, fmt.Errorf("accessor %d: unsupported color componentType %d", idx, acc.ComponentType)
			}
		}
		out[i] = c
	}
	return out, nil
}
