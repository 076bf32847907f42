// Snapshot inspection tool - prints a summary of a saved snapshot and can
// render its grid to a PNG.
//
// Usage: go run ./cmd/snapshot [-png out.png] [-scale 8] [-top 5] snapshot_1000.json.zst
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cells/systems"
	"github.com/pthm-cable/cells/telemetry"
)

func main() {
	outPath := flag.String("png", "", "Write the grid to this PNG file")
	scale := flag.Int("scale", 8, "Pixels per grid square in the PNG")
	top := flag.Int("top", 5, "Number of most common DNA values to list")
	byEnergy := flag.Bool("energy", false, "Colour cells by energy instead of DNA")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: snapshot [flags] <snapshot%s>\n", telemetry.SnapshotExt)
		flag.PrintDefaults()
		os.Exit(2)
	}

	snap, err := telemetry.LoadSnapshot(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load snapshot: %v\n", err)
		os.Exit(1)
	}

	summarize(snap, *top).Write(os.Stdout)

	if *outPath == "" {
		return
	}
	if *scale < 1 {
		fmt.Fprintf(os.Stderr, "scale must be at least 1\n")
		os.Exit(2)
	}

	img := renderGrid(snap, int32(*scale), *byEnergy)
	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if success {
		size := systems.GridSize * *scale
		fmt.Printf("Grid rendered to: %s (%dx%d)\n", *outPath, size, size)
	} else {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
}

// renderGrid draws every cell as a scale-sized square on a black image.
func renderGrid(snap *telemetry.Snapshot, scale int32, byEnergy bool) *rl.Image {
	size := int(systems.GridSize * scale)
	img := rl.GenImageColor(size, size, rl.Black)

	maxEnergy := 1
	for _, c := range snap.Cells {
		if c.Energy > maxEnergy {
			maxEnergy = c.Energy
		}
	}

	for _, c := range snap.Cells {
		col := dnaColor(c.DNA)
		if byEnergy {
			col = energyColor(c.Energy, maxEnergy)
		}
		rl.ImageDrawRectangle(img, int32(c.X)*scale, int32(c.Y)*scale, scale, scale, col)
	}
	return img
}

// dnaColor spreads the DNA space around the hue wheel.
func dnaColor(dna int) rl.Color {
	hue := float32(dna) / systems.DNASpace * 360
	return rl.ColorFromHSV(hue, 0.8, 0.95)
}

// energyColor shades from dim blue at zero to bright yellow at maxEnergy.
func energyColor(energy, maxEnergy int) rl.Color {
	t := float32(energy) / float32(maxEnergy)
	if t < 0 {
		t = 0
	}
	return rl.ColorFromHSV(240-t*180, 0.9, 0.35+t*0.65)
}
