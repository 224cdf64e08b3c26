// Command sketchdemo drives a scripted editing session against the
// sketch document core and exports the result as SVG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gosketch/sketch"
	"github.com/gosketch/sketch/text"
)

func main() {
	var (
		width   = flag.Float64("width", 800, "document width")
		height  = flag.Float64("height", 600, "document height")
		output  = flag.String("output", "demo.svg", "output file")
		verbose = flag.Bool("v", false, "log editor activity")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.Default())
	}

	ed := sketch.NewEditor(sketch.WithTextMeasurer(text.Measure))

	// A zig-zag line to bend.
	ed.SetTool(sketch.ToolLine)
	ed.PointerDown(100, 300, 0)
	ed.PointerDrag(500, 300)
	ed.PointerUp(500, 300)
	line := ed.Selected()

	// Split it twice and bulge the middle.
	ed.SetTool(sketch.ToolAddAnchor)
	for _, x := range []float64{200, 300, 400} {
		ed.PointerDown(x, 300, 0)
		ed.PointerUp(x, 300)
	}

	ed.SetTool(sketch.ToolBendPush)
	ed.PointerDown(300, 300, 0)
	ed.PointerDrag(300, 220)
	ed.PointerUp(300, 220)

	for _, a := range ed.Anchors(line) {
		fmt.Printf("anchor %d at (%.1f, %.1f) fixed=%v\n", a.Index, a.Pos.X, a.Pos.Y, a.Fixed)
	}

	// Background shapes on their own layer.
	ed.AddLayer("Background")
	ed.SetTool(sketch.ToolRectangle)
	ed.SetStroke(sketch.Hex("#334455"))
	ed.SetFill(sketch.Hex("#aaccee"))
	ed.PointerDown(80, 80, 0)
	ed.PointerDrag(280, 180)
	ed.PointerUp(280, 180)

	ed.SetTool(sketch.ToolEllipse)
	ed.PointerDown(350, 80, 0)
	ed.PointerDrag(550, 180)
	ed.PointerUp(550, 180)

	ed.SetTool(sketch.ToolText)
	ed.PointerDown(100, 520, 0)
	ed.PointerUp(100, 520)

	// Exercise undo/redo and the history browser.
	if err := ed.Undo(); err != nil {
		log.Fatalf("undo: %v", err)
	}
	if err := ed.Redo(); err != nil {
		log.Fatalf("redo: %v", err)
	}
	for i, desc := range ed.HistoryDescriptions() {
		marker := "  "
		if i == ed.HistoryIndex() {
			marker = "* "
		}
		fmt.Printf("%s%d: %s\n", marker, i, desc)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create %s: %v", *output, err)
	}
	defer f.Close()
	if err := sketch.WriteSVG(f, ed, *width, *height); err != nil {
		log.Fatalf("write svg: %v", err)
	}
	log.Printf("Demo saved to %s (%gx%g)", *output, *width, *height)
}
