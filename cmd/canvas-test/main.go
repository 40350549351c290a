// Interactive canvas driver: prompts for the run parameters, fills the
// canvas with random non-overlapping shapes, writes the result as PNG
// and prints the summary line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kyiku/hackz-mosaic-back/internal/catalogue"
	"github.com/kyiku/hackz-mosaic-back/internal/config"
	"github.com/kyiku/hackz-mosaic-back/internal/params"
	"github.com/kyiku/hackz-mosaic-back/internal/placement"
	"github.com/kyiku/hackz-mosaic-back/internal/render"
	"github.com/kyiku/hackz-mosaic-back/internal/session"
)

func main() {
	cataloguePath := flag.String("shapes", "shapes.txt", "path to the shape catalogue")
	outPath := flag.String("out", "canvas.png", "output PNG path")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	shapes, err := catalogue.LoadFile(*cataloguePath)
	if err != nil {
		log.Fatalf("failed to load catalogue: %v", err)
	}

	p := params.Prompt(os.Stdin, os.Stdout)

	canvas := render.NewCanvas(cfg.CanvasWidth, cfg.CanvasHeight)
	sess, err := session.New(session.Config{
		Catalogue: shapes,
		Params: session.Params{
			Stretch:  p.Stretch,
			Seed:     p.Seed,
			Duration: p.Duration,
		},
		Bounds: placement.NewBounds(cfg.CanvasWidth, cfg.CanvasHeight, cfg.SpanFactor),
		Buffer: cfg.Buffer,
		Canvas: canvas,
	})
	if err != nil {
		log.Fatalf("failed to create session: %v", err)
	}

	summary := sess.Run()

	data, err := canvas.EncodePNG()
	if err != nil {
		log.Fatalf("failed to encode canvas: %v", err)
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *outPath, err)
	}

	fmt.Println(summary.String())
	fmt.Printf("wrote %s\n", *outPath)

	if !p.Terminate {
		fmt.Print("Press Enter to exit: ")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}
}
