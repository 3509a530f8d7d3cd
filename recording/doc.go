// Package recording captures the backend commands a render state stack
// issues and replays them to any backend.
//
// The recording system follows a Command Pattern with three components:
//
//   - Recorder: a [renderstate.Backend] that stores each call as a command
//   - Recording: the immutable command list plus pooled clip geometry
//   - Backends: anything implementing [renderstate.Backend], created by
//     name through the registry
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	s := renderstate.NewStack(rec)
//	s.BeginRender()
//	// ... walk the element tree ...
//	r := rec.FinishRecording()
//
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd)
//	}
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/renderstate/recording/backends/raster"
//
//	b, _ := recording.NewBackend("raster")
//	if err := r.Playback(b); err != nil {
//	    // handle error
//	}
//
// # Backend Registration
//
// Backends register a factory in init(), following the database/sql
// driver pattern:
//
//	func init() {
//	    recording.Register("raster", func() renderstate.Backend {
//	        return NewBackend()
//	    })
//	}
//
// The recorder itself is registered as "recording".
package recording
