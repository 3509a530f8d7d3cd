package renderstate

import (
	"log/slog"

	"github.com/gogpu/renderstate/mesh"
)

// Option configures a Stack during creation.
//
// Example:
//
//	s := renderstate.NewStack(backend,
//	    renderstate.WithFaultHandler(func(err error) { log.Print(err) }))
type Option func(*stackOptions)

// stackOptions holds optional configuration for Stack creation.
type stackOptions struct {
	geometry ClipGeometry
	onFault  func(error)
	logger   *slog.Logger
}

// defaultOptions returns the default stack options.
func defaultOptions() stackOptions {
	return stackOptions{
		geometry: mesh.Tessellator{},
		onFault:  panicOnFault,
		logger:   nil, // Falls back to the package logger
	}
}

// WithClipGeometry replaces the generator used for clip-mask shapes.
// A nil generator keeps the default [mesh.Tessellator].
func WithClipGeometry(g ClipGeometry) Option {
	return func(o *stackOptions) {
		if g != nil {
			o.geometry = g
		}
	}
}

// WithFaultHandler replaces the handler called for programming errors
// such as unbalanced Push/Pop. The default handler panics. When a
// handler returns, the faulting call is abandoned without changing
// state, except BeginRender, which still starts a clean pass.
func WithFaultHandler(fn func(error)) Option {
	return func(o *stackOptions) {
		if fn != nil {
			o.onFault = fn
		}
	}
}

// WithLogger sets a logger for this Stack only, overriding the
// package-level logger configured with [SetLogger].
func WithLogger(l *slog.Logger) Option {
	return func(o *stackOptions) {
		o.logger = l
	}
}
