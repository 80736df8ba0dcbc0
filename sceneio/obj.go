package sceneio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mzmonsour/trace-lite/geom"
	"github.com/mzmonsour/trace-lite/rtmath"
)

// objFace is an already fan-triangulated face (three vertex references).
type objFace struct {
	vIdx, vtIdx, vnIdx [3]int // 0-based position/UV/normal indices, -1 = absent
}

// LoadOBJ parses a Wavefront .obj file and returns one geom.Mesh per
// object/group ("o"/"g" directive). usemtl/mtllib lines are recognized and
// skipped rather than parsed, since materials are out of scope here.
func LoadOBJ(path string) ([]*geom.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	var positions []rtmath.Vec3
	var normals []rtmath.Vec3
	var uvs []rtmath.Vec2

	type objObject struct {
		name  string
		faces []objFace
	}
	var objects []objObject
	cur := &objObject{name: "default"}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				continue
			}
			x, _ := strconv.ParseFloat(fields[1], 64)
			y, _ := strconv.ParseFloat(fields[2], 64)
			z, _ := strconv.ParseFloat(fields[3], 64)
			positions = append(positions, rtmath.Vec3{X: rtmath.Scalar(x), Y: rtmath.Scalar(y), Z: rtmath.Scalar(z)})

		case "vn":
			if len(fields) < 4 {
				continue
			}
			x, _ := strconv.ParseFloat(fields[1], 64)
			y, _ := strconv.ParseFloat(fields[2], 64)
			z, _ := strconv.ParseFloat(fields[3], 64)
			normals = append(normals, rtmath.Vec3{X: rtmath.Scalar(x), Y: rtmath.Scalar(y), Z: rtmath.Scalar(z)})

		case "vt":
			if len(fields) < 3 {
				continue
			}
			u, _ := strconv.ParseFloat(fields[1], 64)
			v, _ := strconv.ParseFloat(fields[2], 64)
			uvs = append(uvs, rtmath.Vec2{X: rtmath.Scalar(u), Y: rtmath.Scalar(v)})

		case "o", "g":
			if len(cur.faces) > 0 {
				objects = append(objects, *cur)
			}
			name := "default"
			if len(fields) > 1 {
				name = fields[1]
			}
			cur = &objObject{name: name}

		case "usemtl", "mtllib":
			// materials are out of scope; directive is recognized and ignored

		case "f":
			if len(fields) < 4 {
				continue
			}
			type fv struct{ v, vt, vn int }
			fverts := make([]fv, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				v, vt, vn := parseFaceVertex(tok)
				fverts = append(fverts, fv{v, vt, vn})
			}
			// fan triangulation: 0-1-2, 0-2-3, 0-3-4, ...
			for i := 1; i+1 < len(fverts); i++ {
				f0, f1, f2 := fverts[0], fverts[i], fverts[i+1]
				cur.faces = append(cur.faces, objFace{
					vIdx:  [3]int{f0.v, f1.v, f2.v},
					vtIdx: [3]int{f0.vt, f1.vt, f2.vt},
					vnIdx: [3]int{f0.vn, f1.vn, f2.vn},
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan obj %q: %w", path, err)
	}
	if len(cur.faces) > 0 {
		objects = append(objects, *cur)
	}
	if len(objects) == 0 {
		return nil, fmt.Errorf("no geometry found in %q", path)
	}

	meshes := make([]*geom.Mesh, 0, len(objects))
	for _, obj := range objects {
		mesh, err := buildMeshFromOBJ(obj.name, obj.faces, positions, normals, uvs)
		if err != nil {
			// malformed mesh: log and substitute an empty placeholder so the
			// rest of the scene still loads and renders.
			fmt.Fprintf(os.Stderr, "sceneio: %v, substituting empty mesh\n", err)
			mesh = geom.EmptyMesh(obj.name)
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

func parseFaceVertex(tok string) (v, vt, vn int) {
	parseIdx := func(s string) int {
		if s == "" {
			return -1
		}
		n, _ := strconv.Atoi(s)
		if n > 0 {
			return n - 1
		}
		return n
	}
	parts := strings.Split(tok, "/")
	v, vt, vn = -1, -1, -1
	if len(parts) > 0 {
		v = parseIdx(parts[0])
	}
	if len(parts) > 1 {
		vt = parseIdx(parts[1])
	}
	if len(parts) > 2 {
		vn = parseIdx(parts[2])
	}
	return
}

// buildMeshFromOBJ converts parsed face data into a deduplicated geom.Mesh,
// generating area-weighted vertex normals if the OBJ carried none.
func buildMeshFromOBJ(name string, faces []objFace, positions, normals []rtmath.Vec3, uvs []rtmath.Vec2) (*geom.Mesh, error) {
	type key struct{ v, vt, vn int }
	vertMap := map[key]uint32{}
	var vertices []rtmath.Vec3
	var meshNormals []rtmath.Vec3
	var meshUVs []rtmath.Vec2
	var meshFaces []geom.Face

	safePos := func(i int) rtmath.Vec3 {
		if i >= 0 && i < len(positions) {
			return positions[i]
		}
		return rtmath.Vec3Zero
	}
	safeNorm := func(i int) rtmath.Vec3 {
		if i >= 0 && i < len(normals) {
			return normals[i]
		}
		return rtmath.Vec3Up
	}
	safeUV := func(i int) rtmath.Vec2 {
		if i >= 0 && i < len(uvs) {
			return uvs[i]
		}
		return rtmath.Vec2{}
	}

	hasNormals := len(normals) > 0

	for _, face := range faces {
		var idx [3]uint32
		for c := 0; c < 3; c++ {
			k := key{face.vIdx[c], face.vtIdx[c], face.vnIdx[c]}
			if existing, ok := vertMap[k]; ok {
				idx[c] = existing
				continue
			}
			vertices = append(vertices, safePos(k.v))
			meshNormals = append(meshNormals, safeNorm(k.vn))
			meshUVs = append(meshUVs, safeUV(k.vt))
			newIdx := uint32(len(vertices) - 1)
			vertMap[k] = newIdx
			idx[c] = newIdx
		}
		meshFaces = append(meshFaces, geom.Face{Index: idx})
	}

	if !hasNormals {
		generateFlatNormals(vertices, meshNormals, meshFaces)
	}

	return geom.NewMesh(name, vertices, meshNormals, meshUVs, meshFaces)
}

// generateFlatNormals computes area-weighted vertex normals in place.
func generateFlatNormals(vertices, normals []rtmath.Vec3, faces []geom.Face) {
	accum := make([]rtmath.Vec3, len(vertices))
	counts := make([]int, len(vertices))

	for _, f := range faces {
		i0, i1, i2 := f.Index[0], f.Index[1], f.Index[2]
		v0, v1, v2 := vertices[i0], vertices[i1], vertices[i2]
		n := v1.Sub(v0).Cross(v2.Sub(v0))
		accum[i0] = accum[i0].Add(n)
		accum[i1] = accum[i1].Add(n)
		accum[i2] = accum[i2].Add(n)
		counts[i0]++
		counts[i1]++
		counts[i2]++
	}
	for i := range normals {
		if counts[i] > 0 {
			normals[i] = accum[i].Normalize()
		}
	}
}
