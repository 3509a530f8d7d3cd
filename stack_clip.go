package renderstate

import (
	"github.com/gogpu/renderstate/element"
	"github.com/gogpu/renderstate/mesh"
)

// SetClipMask sets the clip-mask chain of the current frame. Nothing
// happens if clips equals the current chain; otherwise the chain is
// stored and the mask rebuilt on the backend.
//
// The stack keeps its own copy of the list.
func (s *Stack) SetClipMask(clips element.ClipList) {
	f := s.top()
	if f.Clips.Equal(clips) {
		return
	}
	f.Clips = clips.Clone()
	s.applyClipMask(f.Clips)
}

// applyClipMask rebuilds the backend clip mask from clips. Each shape is
// generated in its element's coordinate space, so the transform changes
// per entry and is restored afterwards.
func (s *Stack) applyClipMask(clips element.ClipList) {
	enabled := len(clips) > 0
	s.backend.EnableClipMask(enabled)
	if !enabled {
		return
	}

	initial := s.top().Transform
	if s.clipRenderer == nil {
		s.log().Debug("renderstate: backend cannot render clip geometry", "shapes", len(clips))
	}

	for i, c := range clips {
		s.ApplyTransform(c.Element)

		m := s.geometry.Generate(c.Element.Box(), c.Element.ComputedValues().BorderRadius, c.Area)

		op := mesh.ClipMaskClipIntersect
		if i == 0 {
			op = mesh.ClipMaskClip
		}
		m.SetClipMask(s.clipRenderer, op, c.Element.AbsoluteOffset(element.AreaBorder))
	}

	s.SetTransform(initial)
}
