package recording

import (
	"fmt"

	"github.com/gogpu/renderstate/geom"
	"github.com/gogpu/renderstate/mesh"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one backend call.
type CommandType uint8

const (
	CmdEnableScissor     CommandType = iota // Enable or disable scissoring
	CmdSetScissorRegion                     // Set the scissor rectangle
	CmdEnableClipMask                       // Enable or disable the clip mask
	CmdSetTransform                         // Set or clear the transform
	CmdRenderToClipMask                     // Render geometry into the clip mask
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdEnableScissor:    "EnableScissorRegion",
	CmdSetScissorRegion: "SetScissorRegion",
	CmdEnableClipMask:   "EnableClipMask",
	CmdSetTransform:     "SetTransform",
	CmdRenderToClipMask: "RenderToClipMask",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	// String formats the command as the backend call it records.
	String() string
}

// MeshRef is a reference to a mesh in the resource pool.
// The zero value is a valid reference to the first mesh (if any).
type MeshRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid mesh.
func (r MeshRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// EnableScissorCommand enables or disables scissoring.
type EnableScissorCommand struct {
	Enable bool
}

// Type implements Command.
func (EnableScissorCommand) Type() CommandType { return CmdEnableScissor }

func (c EnableScissorCommand) String() string {
	return fmt.Sprintf("EnableScissorRegion(%t)", c.Enable)
}

// SetScissorRegionCommand sets the scissor rectangle.
type SetScissorRegionCommand struct {
	X, Y, Width, Height int
}

// Type implements Command.
func (SetScissorRegionCommand) Type() CommandType { return CmdSetScissorRegion }

func (c SetScissorRegionCommand) String() string {
	return fmt.Sprintf("SetScissorRegion(%d, %d, %d, %d)", c.X, c.Y, c.Width, c.Height)
}

// EnableClipMaskCommand enables or disables the clip mask.
type EnableClipMaskCommand struct {
	Enable bool
}

// Type implements Command.
func (EnableClipMaskCommand) Type() CommandType { return CmdEnableClipMask }

func (c EnableClipMaskCommand) String() string {
	return fmt.Sprintf("EnableClipMask(%t)", c.Enable)
}

// SetTransformCommand sets the transform. A nil Matrix clears it.
type SetTransformCommand struct {
	Matrix *geom.Matrix4
}

// Type implements Command.
func (SetTransformCommand) Type() CommandType { return CmdSetTransform }

func (c SetTransformCommand) String() string {
	if c.Matrix == nil {
		return "SetTransform(nil)"
	}
	return fmt.Sprintf("SetTransform(%v)", *c.Matrix)
}

// RenderToClipMaskCommand renders pooled geometry into the clip mask.
type RenderToClipMaskCommand struct {
	Op          mesh.ClipMaskOperation
	Mesh        MeshRef
	Translation geom.Vec2f
}

// Type implements Command.
func (RenderToClipMaskCommand) Type() CommandType { return CmdRenderToClipMask }

func (c RenderToClipMaskCommand) String() string {
	return fmt.Sprintf("RenderToClipMask(%v, mesh#%d, %v)", c.Op, c.Mesh, c.Translation)
}
