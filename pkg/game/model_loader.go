package game

import (
	"fmt"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Mesh 线框网格
//
// 顶点来自场景中各节点网格的 POSITION 属性（已应用节点世界矩阵），边由三角形去重得到。
// 不处理材质和蒙皮；动画片段只记录名称，模型以静止姿态显示。
type Mesh struct {
	Vertices []mgl64.Vec3
	Edges    [][2]int
	Clips    []string

	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Center 返回包围盒中心
func (m *Mesh) Center() mgl64.Vec3 {
	return m.Min.Add(m.Max).Mul(0.5)
}

// Size 返回包围盒尺寸
func (m *Mesh) Size() mgl64.Vec3 {
	return m.Max.Sub(m.Min)
}

// CalculateBounds 重新计算包围盒
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.Min, m.Max = mgl64.Vec3{}, mgl64.Vec3{}
		return
	}
	m.Min, m.Max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for axis := 0; axis < 3; axis++ {
			m.Min[axis] = math.Min(m.Min[axis], v[axis])
			m.Max[axis] = math.Max(m.Max[axis], v[axis])
		}
	}
}

// Normalize 把网格平移到原点并缩放，使最长边为 1
func (m *Mesh) Normalize() {
	m.CalculateBounds()
	size := m.Size()
	extent := math.Max(size[0], math.Max(size[1], size[2]))
	if extent == 0 {
		extent = 1
	}
	center := m.Center()
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Sub(center).Mul(1 / extent)
	}
	m.CalculateBounds()
}

// LoadModel 从 glTF/GLB 文件加载线框网格
//
// 参数:
//
//	path - 模型文件路径（.gltf 或 .glb）
//
// 返回:
//
//	归一化后的网格；文件无法读取或不含任何顶点时返回错误
func LoadModel(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model %s: %w", path, err)
	}

	mesh, err := BuildMesh(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build mesh from %s: %w", path, err)
	}

	log.Printf("[ModelLoader] 已加载模型 %s: %d 顶点, %d 条边, 动画 %v",
		path, len(mesh.Vertices), len(mesh.Edges), mesh.Clips)
	return mesh, nil
}

// BuildMesh 从已解析的 glTF 文档构建网格
//
// 从默认场景的根节点遍历节点树，顶点按节点的世界矩阵变换；
// 同一网格被多个节点引用时每个实例都会加入。
// 文档没有节点时直接读取全部网格。
func BuildMesh(doc *gltf.Document) (*Mesh, error) {
	b := &meshBuilder{
		doc:  doc,
		mesh: &Mesh{},
		seen: make(map[[2]int]bool),
	}

	if len(doc.Nodes) == 0 {
		for _, m := range doc.Meshes {
			if err := b.addMesh(m, mgl64.Ident4()); err != nil {
				return nil, err
			}
		}
	} else {
		for _, root := range sceneRoots(doc) {
			if err := b.addNode(root, mgl64.Ident4(), make(map[int]bool)); err != nil {
				return nil, err
			}
		}
	}

	mesh := b.mesh
	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("model contains no vertices")
	}

	for _, anim := range doc.Animations {
		mesh.Clips = append(mesh.Clips, anim.Name)
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// sceneRoots 返回默认场景的根节点
// 没有场景时，把不被任何节点引用的节点当作根节点
func sceneRoots(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		idx := 0
		if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
			idx = *doc.Scene
		}
		return doc.Scenes[idx].Nodes
	}

	child := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			child[c] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !child[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

// NodeTransform 返回节点的局部矩阵
// 设置了 matrix 时直接使用，否则由 T * R * S 组合
func NodeTransform(node *gltf.Node) mgl64.Mat4 {
	if m := node.MatrixOrDefault(); m != gltf.DefaultMatrix {
		return mgl64.Mat4(m)
	}

	t := node.TranslationOrDefault()
	r := node.RotationOrDefault()
	sc := node.ScaleOrDefault()
	rotation := mgl64.Quat{W: r[3], V: mgl64.Vec3{r[0], r[1], r[2]}}.Normalize()

	return mgl64.Translate3D(t[0], t[1], t[2]).
		Mul4(rotation.Mat4()).
		Mul4(mgl64.Scale3D(sc[0], sc[1], sc[2]))
}

type meshBuilder struct {
	doc  *gltf.Document
	mesh *Mesh
	seen map[[2]int]bool
}

// addNode 递归加入节点及其子节点，path 记录当前路径上的节点以跳过环
func (b *meshBuilder) addNode(index int, parent mgl64.Mat4, path map[int]bool) error {
	if index < 0 || index >= len(b.doc.Nodes) || path[index] {
		return nil
	}
	node := b.doc.Nodes[index]
	world := parent.Mul4(NodeTransform(node))

	if node.Mesh != nil && *node.Mesh >= 0 && *node.Mesh < len(b.doc.Meshes) {
		if err := b.addMesh(b.doc.Meshes[*node.Mesh], world); err != nil {
			return err
		}
	}

	path[index] = true
	defer delete(path, index)
	for _, c := range node.Children {
		if err := b.addNode(c, world, path); err != nil {
			return err
		}
	}
	return nil
}

// addMesh 把网格所有图元的顶点按 world 变换后加入，并记录去重后的边
func (b *meshBuilder) addMesh(m *gltf.Mesh, world mgl64.Mat4) error {
	doc, mesh := b.doc, b.mesh
	for _, prim := range m.Primitives {
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok || posIdx >= len(doc.Accessors) {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		base := len(mesh.Vertices)
		for _, p := range positions {
			v := mgl64.Vec4{float64(p[0]), float64(p[1]), float64(p[2]), 1}
			mesh.Vertices = append(mesh.Vertices, world.Mul4x1(v).Vec3())
		}

		var indices []uint32
		if prim.Indices != nil && *prim.Indices < len(doc.Accessors) {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for t := 0; t+2 < len(indices); t += 3 {
			i0, i1, i2 := base+int(indices[t]), base+int(indices[t+1]), base+int(indices[t+2])
			for _, e := range [][2]int{{i0, i1}, {i1, i2}, {i2, i0}} {
				if e[0] > e[1] {
					e[0], e[1] = e[1], e[0]
				}
				if !b.seen[e] {
					b.seen[e] = true
					mesh.Edges = append(mesh.Edges, e)
				}
			}
		}
	}
	return nil
}
