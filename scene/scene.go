package scene

import "github.com/mzmonsour/trace-lite/geom"

// Scene is a fully-built scene graph ready to be flattened into world-space
// mesh instances and traced.
type Scene struct {
	Root   *Node
	Camera *Camera
	Lights []*Light
}

func NewScene() *Scene {
	return &Scene{Root: NewNode("Root")}
}

func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

func (s *Scene) AddNode(node *Node) {
	s.Root.AddChild(node)
}

func (s *Scene) AddLight(light *Light) {
	s.Lights = append(s.Lights, light)
}

// Flatten walks the node hierarchy depth-first, left-multiplying each
// node's world matrix, and emits one MeshInstance per node that carries a
// mesh. Nodes without a mesh exist purely to position their children.
func Flatten(root *Node) []geom.MeshInstance {
	var instances []geom.MeshInstance
	root.Traverse(func(n *Node) {
		if !n.Visible || n.Mesh == nil {
			return
		}
		instances = append(instances, geom.NewMeshInstance(n.Mesh, n.WorldMatrix()))
	})
	return instances
}
