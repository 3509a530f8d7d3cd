package recording

import (
	"io"

	"github.com/gogpu/renderstate"
)

// Lifecycle is implemented by backends that need the viewport size
// before commands arrive, or that finalize output afterwards.
// Playback calls Begin before the first command and End after the last.
type Lifecycle interface {
	// Begin prepares the backend for a viewport of the given size.
	Begin(width, height int) error

	// End finalizes the output.
	End() error
}

// WriterBackend extends Backend with the ability to write its output to
// an io.Writer. This should only be called after End.
type WriterBackend interface {
	renderstate.Backend

	// WriteTo writes the rendered output to w.
	WriteTo(w io.Writer) (int64, error)
}
