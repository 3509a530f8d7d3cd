package recording

import "github.com/gogpu/renderstate/mesh"

// ResourcePool stores the meshes referenced by recording commands.
// Each Add operation clones the mesh so later changes by the caller do
// not alter the recording.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	meshes []*mesh.Mesh
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		meshes: make([]*mesh.Mesh, 0, 16),
	}
}

// AddMesh adds a mesh to the pool and returns its reference.
func (p *ResourcePool) AddMesh(m *mesh.Mesh) MeshRef {
	if m == nil {
		p.meshes = append(p.meshes, nil)
	} else {
		p.meshes = append(p.meshes, &mesh.Mesh{
			Vertices: append([]mesh.Vertex(nil), m.Vertices...),
			Indices:  append([]int32(nil), m.Indices...),
		})
	}
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return MeshRef(uint32(len(p.meshes) - 1))
}

// GetMesh returns the mesh for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetMesh(ref MeshRef) *mesh.Mesh {
	if int(ref) >= len(p.meshes) {
		return nil
	}
	return p.meshes[ref]
}

// MeshCount returns the number of meshes in the pool.
func (p *ResourcePool) MeshCount() int {
	return len(p.meshes)
}
