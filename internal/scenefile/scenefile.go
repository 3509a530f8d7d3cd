// Package scenefile loads element trees from TOML scene descriptions.
//
// A scene looks like:
//
//	width = 320
//	height = 240
//	backend = "raster"
//	stencil = true
//
//	[root]
//	name = "root"
//	size = [320, 240]
//	clip = true
//
//	[[root.children]]
//	name = "panel"
//	offset = [20, 20]
//	size = [200, 120]
//	border = 2
//	radius = 8
//	clip = true
//	rotate = 0.1
//
// Offsets are relative to the parent's border box. Transforms rotate
// and scale about the node's top-left corner and compose with the
// parent's transform; a node without its own transform shares its
// parent's.
package scenefile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/chewxy/math32"

	"github.com/gogpu/renderstate/element"
	"github.com/gogpu/renderstate/geom"
)

// ErrInvalidScene is wrapped by every validation error.
var ErrInvalidScene = errors.New("scenefile: invalid scene")

// Scene is a decoded scene.
type Scene struct {
	Width   int
	Height  int
	Backend string
	Stencil bool
	Root    *element.Node
}

// file mirrors the TOML document.
type file struct {
	Width   int
	Height  int
	Backend string
	Stencil *bool
	Root    *node
}

type node struct {
	Name      string
	Offset    []float64
	Size      []float64
	Margin    float64
	Border    float64
	Padding   float64
	Radius    float64
	Radii     []float64
	Clip      bool
	Translate []float64
	Rotate    float64
	Scale     []float64
	Children  []node
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	var f file
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("scenefile: decode %s: %w", path, err)
	}
	return build(&f, md)
}

// Parse decodes a scene from TOML text.
func Parse(data string) (*Scene, error) {
	var f file
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("scenefile: decode: %w", err)
	}
	return build(&f, md)
}

func build(f *file, md toml.MetaData) (*Scene, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidScene, strings.Join(keys, ", "))
	}
	if f.Root == nil {
		return nil, fmt.Errorf("%w: missing [root]", ErrInvalidScene)
	}

	root, err := f.Root.build(nil, "root")
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Width:   f.Width,
		Height:  f.Height,
		Backend: f.Backend,
		Stencil: f.Stencil == nil || *f.Stencil,
		Root:    root,
	}
	if s.Width < 0 || s.Height < 0 {
		return nil, fmt.Errorf("%w: negative viewport %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if s.Width == 0 || s.Height == 0 {
		size := root.Box().Size(element.AreaBorder)
		s.Width = int(math32.Ceil(size.X))
		s.Height = int(math32.Ceil(size.Y))
	}
	if s.Backend == "" {
		s.Backend = "recording"
	}
	return s, nil
}

func (n *node) build(parent *element.Node, path string) (*element.Node, error) {
	name := n.Name
	if name == "" {
		name = path
	}

	size, err := vec2(n.Size, path+".size", geom.Vec2f{})
	if err != nil {
		return nil, err
	}
	if size.X < 0 || size.Y < 0 {
		return nil, fmt.Errorf("%w: %s.size is negative", ErrInvalidScene, path)
	}
	offset, err := vec2(n.Offset, path+".offset", geom.Vec2f{})
	if err != nil {
		return nil, err
	}

	box := element.NewBox(size.X, size.Y)
	box.Margin = element.Uniform(float32(n.Margin))
	box.Border = element.Uniform(float32(n.Border))
	box.Padding = element.Uniform(float32(n.Padding))

	radii, err := n.radii(path)
	if err != nil {
		return nil, err
	}

	e := element.NewNode(name, box)
	e.SetOffset(offset)
	e.SetBorderRadius(radii)
	e.SetClipping(n.Clip)
	if parent != nil {
		parent.AppendChild(e)
	}

	if err := n.applyTransform(e, parent, path); err != nil {
		return nil, err
	}

	for i := range n.Children {
		if _, err := n.Children[i].build(e, fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (n *node) radii(path string) (element.CornerRadii, error) {
	switch len(n.Radii) {
	case 0:
		return element.UniformRadii(float32(n.Radius)), nil
	case 4:
		r := element.CornerRadii{
			TopLeft:     float32(n.Radii[0]),
			TopRight:    float32(n.Radii[1]),
			BottomRight: float32(n.Radii[2]),
			BottomLeft:  float32(n.Radii[3]),
		}
		if r.TopLeft < 0 || r.TopRight < 0 || r.BottomRight < 0 || r.BottomLeft < 0 {
			return r, fmt.Errorf("%w: %s.radii is negative", ErrInvalidScene, path)
		}
		return r, nil
	default:
		return element.CornerRadii{}, fmt.Errorf("%w: %s.radii needs 4 values, got %d", ErrInvalidScene, path, len(n.Radii))
	}
}

func (n *node) applyTransform(e, parent *element.Node, path string) error {
	translate, err := vec2(n.Translate, path+".translate", geom.Vec2f{})
	if err != nil {
		return err
	}
	scale, err := vec2(n.Scale, path+".scale", geom.V2f(1, 1))
	if err != nil {
		return err
	}

	var inherited *element.Transform
	if parent != nil {
		inherited = parent.Transform()
	}

	identity := translate == (geom.Vec2f{}) && scale == geom.V2f(1, 1) && n.Rotate == 0
	if identity {
		e.ShareTransform(inherited)
		return nil
	}

	o := e.AbsoluteOffset(element.AreaBorder)
	m := geom.Translate(o.X+translate.X, o.Y+translate.Y, 0).
		Multiply(geom.RotateZ(float32(n.Rotate))).
		Multiply(geom.Scale(scale.X, scale.Y, 1)).
		Multiply(geom.Translate(-o.X, -o.Y, 0))
	if inherited != nil {
		m = inherited.Matrix().Multiply(m)
	}
	e.SetTransform(m)
	return nil
}

func vec2(v []float64, key string, def geom.Vec2f) (geom.Vec2f, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 2:
		return geom.V2f(float32(v[0]), float32(v[1])), nil
	default:
		return def, fmt.Errorf("%w: %s needs 2 values, got %d", ErrInvalidScene, key, len(v))
	}
}
