// Weather preview tool - shows the photosynthesis gain per grid row and the
// temperature schedule for a set of weather settings.
//
// Usage: go run ./cmd/weatherpreview [-config config.yaml]
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cells/config"
	"github.com/pthm-cable/cells/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30

	horizonTicks = 20000
	plotHeight   = 120
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml to start from (empty = defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	initial := paramsFromConfig(cfg)

	rl.InitWindow(windowWidth, windowHeight, "Weather Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := initial
	tick := 0

	img := rl.GenImageColor(systems.GridSize, systems.GridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	var schedule Schedule
	var rows []int
	needsRegen := true

	for !rl.WindowShouldClose() {
		if needsRegen {
			schedule = simulateSchedule(params, horizonTicks)
			rows = gainRows(hourAt(params, schedule, tick))
			updateTexture(texture, rows)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: systems.GridSize, Height: systems.GridSize},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		gain := summarizeGain(rows)
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Gain min: %d  max: %d  avg: %.2f  losing rows: %d",
			gain.Min, gain.Max, gain.Mean, gain.NegativeRows), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Tick: %d  Hour: %d  Temp: %d  (%d hour steps, %d temp steps)",
			tick, hourAt(params, schedule, tick), tempAt(params, schedule, tick),
			schedule.HourChanges, schedule.TempChanges), 15, statsY+20, 16, rl.DarkGray)

		drawTempPlot(schedule, tick, rl.Rectangle{X: 10, Y: float32(statsY + 50), Width: previewSize, Height: plotHeight})

		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Weather Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		sliders := []struct {
			label    string
			value    *int
			min, max float32
		}{
			{"Tick (time scrub)", &tick, 0, horizonTicks},
			{"Hour delay (ticks per hour)", &params.HourDelay, 20, 5000},
			{"Temp delay (ticks per degree)", &params.TempDelay, 20, 5000},
			{"Initial hour", &params.Hour, 0, systems.HoursPerDay - 1},
			{"Initial temp", &params.Temp, systems.MinTemp + 1, systems.MaxTemp - 1},
		}
		for _, s := range sliders {
			rl.DrawText(s.label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			v := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				fmt.Sprintf("%.0f", s.min), fmt.Sprintf("%.0f", s.max),
				float32(*s.value), s.min, s.max,
			)
			if int(v) != *s.value {
				*s.value = int(v)
				needsRegen = true
			}
			rl.DrawText(fmt.Sprintf("%d", *s.value), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			panelY += 35
		}

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(params.Direction > 0, "Warming", "Cooling")) {
			params.Direction = -params.Direction
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = initial
			tick = 0
			needsRegen = true
		}
		panelY += 55

		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yaml := weatherYAML(params)
		for _, line := range splitLines(yaml) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

func hourAt(p WeatherParams, s Schedule, tick int) int {
	if tick <= 0 || tick > len(s.Hours) {
		return p.Hour
	}
	return s.Hours[tick-1]
}

func tempAt(p WeatherParams, s Schedule, tick int) int {
	if tick <= 0 || tick > len(s.Temps) {
		return p.Temp
	}
	return s.Temps[tick-1]
}

// weatherYAML renders the settings as a config fragment.
func weatherYAML(p WeatherParams) string {
	return fmt.Sprintf(`weather:
  hour_delay: %d
  temp_delay: %d
  initial_hour: %d
  initial_temp: %d
  initial_direction: %d`,
		p.HourDelay, p.TempDelay, p.Hour, p.Temp, p.Direction)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// drawTempPlot draws temperature over the horizon with a marker at tick.
func drawTempPlot(s Schedule, tick int, bounds rl.Rectangle) {
	rl.DrawRectangleLinesEx(bounds, 1, rl.LightGray)
	if len(s.Temps) == 0 {
		return
	}
	span := float32(systems.MaxTemp - systems.MinTemp)
	yOf := func(temp int) float32 {
		return bounds.Y + bounds.Height*(1-float32(temp-systems.MinTemp)/span)
	}
	rl.DrawLineV(rl.Vector2{X: bounds.X, Y: yOf(0)}, rl.Vector2{X: bounds.X + bounds.Width, Y: yOf(0)}, rl.LightGray)

	step := len(s.Temps) / int(bounds.Width)
	if step < 1 {
		step = 1
	}
	prev := rl.Vector2{X: bounds.X, Y: yOf(s.Temps[0])}
	for i := step; i < len(s.Temps); i += step {
		x := bounds.X + bounds.Width*float32(i)/float32(len(s.Temps))
		cur := rl.Vector2{X: x, Y: yOf(s.Temps[i])}
		rl.DrawLineV(prev, cur, rl.Maroon)
		prev = cur
	}

	mx := bounds.X + bounds.Width*float32(tick)/float32(len(s.Temps))
	rl.DrawLineV(rl.Vector2{X: mx, Y: bounds.Y}, rl.Vector2{X: mx, Y: bounds.Y + bounds.Height}, rl.DarkBlue)
}

// gainColor maps a gain in [-9, 9] to red for losses and green for gains.
func gainColor(g int) color.RGBA {
	t := float32(g) / 9
	if t < 0 {
		return color.RGBA{R: uint8(60 - t*195), G: 20, B: 20, A: 255}
	}
	return color.RGBA{R: 20, G: uint8(60 + t*195), B: uint8(40 + t*60), A: 255}
}

// updateTexture paints each grid row with its gain colour.
func updateTexture(texture rl.Texture2D, rows []int) {
	size := len(rows)
	pixels := make([]color.RGBA, size*size)
	for y, g := range rows {
		c := gainColor(g)
		for x := 0; x < size; x++ {
			pixels[y*size+x] = c
		}
	}
	rl.UpdateTexture(texture, pixels)
}
