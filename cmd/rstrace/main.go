// Command rstrace walks a TOML scene through a render state stack and
// prints the backend commands it issues.
//
// Usage:
//
//	rstrace -scene scenes/demo.toml
//	rstrace -scene scenes/demo.toml -backend raster -out clip.png
//	rstrace -scene scenes/demo.toml -backend stencil -out steps.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/renderstate"
	"github.com/gogpu/renderstate/internal/scenefile"
	"github.com/gogpu/renderstate/recording"
	_ "github.com/gogpu/renderstate/recording/backends/raster"
	_ "github.com/gogpu/renderstate/recording/backends/stencil"
	"github.com/gogpu/renderstate/walk"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (TOML)")
		backend   = flag.String("backend", "", "playback backend (default from scene)")
		output    = flag.String("out", "", "write backend output to file")
		verbose   = flag.Bool("v", false, "debug logging")
		quiet     = flag.Bool("q", false, "do not print the command log")
	)
	flag.Parse()

	if *scenePath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		renderstate.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	scene, err := scenefile.Load(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	rec := recording.NewRecorder(scene.Width, scene.Height)
	rec.SetClipMaskSupport(scene.Stencil)
	stack := renderstate.NewStack(rec)
	if err := walk.New(stack, nil).Render(scene.Root); err != nil {
		log.Fatalf("Render failed: %v", err)
	}
	r := rec.FinishRecording()

	if !*quiet {
		printRecording(os.Stdout, r)
	}

	name := *backend
	if name == "" {
		name = scene.Backend
	}
	b, err := recording.NewBackend(name)
	if err != nil {
		log.Fatalf("%v (available: %v)", err, recording.Backends())
	}
	if err := r.Playback(b); err != nil {
		log.Fatalf("Playback to %s failed: %v", name, err)
	}

	if *output == "" {
		return
	}
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		log.Fatalf("Backend %s has no output", name)
	}
	if err := writeFile(*output, wb); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	log.Printf("%s output saved to %s (%dx%d)\n", name, *output, r.Width(), r.Height())
}

func printRecording(w io.Writer, r *recording.Recording) {
	for i, c := range r.Commands() {
		fmt.Fprintf(w, "%4d  %s\n", i, c)
	}
	fmt.Fprintf(w, "\n%d commands:", len(r.Commands()))
	for t := recording.CmdEnableScissor; t <= recording.CmdRenderToClipMask; t++ {
		fmt.Fprintf(w, " %s=%d", t, r.Count(t))
	}
	fmt.Fprintln(w)
}

func writeFile(path string, wb recording.WriterBackend) error {
	f, err := os.Create(path) //nolint:gosec // output path from command line
	if err != nil {
		return err
	}
	if _, err := wb.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
