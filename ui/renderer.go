package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"ant-sim/sim"
)

const borderPadding = 10 // Padding around the board area

// maxExpectedQ scales the pheromone overlay: values at or above this render
// fully saturated.
const maxExpectedQ = 50.0

// HUD carries the per-frame interface state the renderer displays but does
// not own.
type HUD struct {
	Paused      bool
	Editing     bool
	ShowFoodMap bool
	ShowNestMap bool
	SpeedMs     int
	EditorBrush sim.TileKind
	EditorErase bool
	StatusLine  string
}

// Renderer draws the simulation board and a stats side panel with raylib.
type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	boardWidth      int32
	boardHeight     int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions recomputes the layout from the current window size.
func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a fixed share of the window; the board gets the rest.
	r.statsPanel = r.screenWidth / 4
	r.boardWidth = r.screenWidth - r.statsPanel
	r.boardHeight = r.screenHeight
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// CellAt maps a screen position to a grid cell. The last return value is
// false when the position falls outside the board.
func (r *Renderer) CellAt(screenX, screenY int32, width, height int) (int, int, bool) {
	if r.cellSize <= 0 || screenX < r.offsetX || screenY < r.offsetY {
		return 0, 0, false
	}
	x := int((screenX - r.offsetX) / r.cellSize)
	y := int((screenY - r.offsetY) / r.cellSize)
	if x >= width || y >= height {
		return 0, 0, false
	}
	return x, y, true
}

// Draw renders one frame: tiles, optional pheromone overlays, ants and the
// stats panel.
func (r *Renderer) Draw(m *sim.Manager, hud HUD) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min32(r.screenHeight/45, r.statsPanel/14)
	lineHeight := fontSize + fontSize/3

	availableWidth := r.boardWidth - borderPadding*2
	availableHeight := r.boardHeight - borderPadding*2
	cellW := availableWidth / int32(m.Grid.Width)
	cellH := availableHeight / int32(m.Grid.Height)
	r.cellSize = min32(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(m.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(m.Grid.Height)
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	r.drawTiles(m, fontSize)

	if hud.ShowFoodMap {
		r.drawPheromones(&m.PheromonesFood, &m.Grid, rl.Green)
	}
	if hud.ShowNestMap {
		r.drawPheromones(&m.PheromonesNest, &m.Grid, rl.SkyBlue)
	}

	r.drawAnts(m)
	r.drawStatsPanel(m, hud, fontSize, lineHeight)

	rl.EndDrawing()
}

func (r *Renderer) drawTiles(m *sim.Manager, fontSize int32) {
	for _, tile := range m.Grid.Tiles() {
		px := r.offsetX + int32(tile.X)*r.cellSize
		py := r.offsetY + int32(tile.Y)*r.cellSize

		switch tile.Kind {
		case sim.TileWall:
			rl.DrawRectangle(px, py, r.cellSize, r.cellSize, rl.Gray)
		case sim.TileDeathZone:
			rl.DrawRectangle(px, py, r.cellSize, r.cellSize, rl.Maroon)
		case sim.TileFoodSource:
			rl.DrawRectangle(px, py, r.cellSize, r.cellSize, rl.DarkGreen)
			if tile.FoodAmount > 0 {
				rl.DrawText(fmt.Sprintf("%d", tile.FoodAmount), px+2, py+2, fontSize/2+4, rl.White)
			}
		case sim.TileNest:
			rl.DrawRectangle(px, py, r.cellSize, r.cellSize, rl.Gold)
			rl.DrawText(fmt.Sprintf("%d", tile.StoredFood), px+2, py+2, fontSize/2+4, rl.Black)
		}
		rl.DrawRectangleLines(px, py, r.cellSize, r.cellSize, rl.DarkGray)
	}
}

// drawPheromones overlays the learned values as translucent color, square
// rooted so weak trails are still visible.
func (r *Renderer) drawPheromones(pmap *sim.PheromoneMap, grid *sim.Grid, base rl.Color) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if !grid.IsWalkable(x, y) {
				continue
			}
			maxQ := pmap.MaxQ(x, y)
			if maxQ <= 0.1 {
				continue
			}
			ratio := maxQ / maxExpectedQ
			if ratio > 1 {
				ratio = 1
			}
			alpha := uint8(math.Sqrt(ratio) * 200)
			color := rl.Color{R: base.R, G: base.G, B: base.B, A: alpha}
			rl.DrawRectangle(
				r.offsetX+int32(x)*r.cellSize,
				r.offsetY+int32(y)*r.cellSize,
				r.cellSize, r.cellSize, color)
		}
	}
}

func antColor(t sim.AntType) rl.Color {
	switch t {
	case sim.AntExplorer:
		return rl.Orange
	case sim.AntFighter:
		return rl.Red
	default:
		return rl.Beige
	}
}

func (r *Renderer) drawAnts(m *sim.Manager) {
	for i := range m.Ants {
		ant := &m.Ants[i]
		if ant.Position == nil {
			continue
		}
		cx := r.offsetX + int32(ant.Position.X)*r.cellSize + r.cellSize/2
		cy := r.offsetY + int32(ant.Position.Y)*r.cellSize + r.cellSize/2
		radius := float32(r.cellSize) * 0.25

		rl.DrawCircle(cx, cy, radius, antColor(ant.Type))
		if ant.Mode == sim.ModeReturning {
			// Carrying ants get a white core so trails back home stand out.
			rl.DrawCircle(cx, cy, radius*0.5, rl.White)
		}
	}
}

func (r *Renderer) drawStatsPanel(m *sim.Manager, hud HUD, fontSize, lineHeight int32) {
	statsX := r.boardWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	write := func(text string, color rl.Color) {
		rl.DrawText(text, statsX+5, statsY, fontSize, color)
		statsY += lineHeight
	}

	write("Ant Colony", rl.White)
	write(fmt.Sprintf("Tick %d / %d", m.TickIndex(), m.HistoryLen()-1), rl.White)
	write(fmt.Sprintf("Active ants: %d", m.ActiveAnts()), rl.White)
	write(fmt.Sprintf("Stored food: %d", m.Grid.StoredFood()), rl.Gold)
	write(fmt.Sprintf("Food left: %d", m.Grid.RemainingFood()), rl.Green)
	statsY += lineHeight / 2

	write(fmt.Sprintf("alpha   %.3f", m.Config.Alpha), rl.LightGray)
	write(fmt.Sprintf("gamma   %.3f", m.Config.Gamma), rl.LightGray)
	write(fmt.Sprintf("epsilon %.3f", m.Config.Epsilon), rl.LightGray)
	write(fmt.Sprintf("speed   %d ms", hud.SpeedMs), rl.LightGray)
	statsY += lineHeight / 2

	switch {
	case hud.Editing:
		brush := hud.EditorBrush.String()
		if hud.EditorErase {
			brush = "Erase"
		}
		write("EDIT MODE", rl.Yellow)
		write(fmt.Sprintf("Brush: %s", brush), rl.Yellow)
		write("1 wall  2 danger", rl.LightGray)
		write("3 food  4 nest  5 erase", rl.LightGray)
		write("Enter: run map", rl.LightGray)
	case hud.Paused:
		write("PAUSED", rl.Yellow)
	case m.IsFinished():
		write("FINISHED", rl.Green)
	}

	if hud.StatusLine != "" {
		write(hud.StatusLine, rl.White)
	}

	// Controls reference at the bottom.
	helpY := r.screenHeight - lineHeight*7
	for _, line := range []string{
		"Space  pause / resume",
		"Left / Right  step history",
		"F  food trails  N  nest trails",
		"E  map editor",
		"+ / -  speed",
		"Q  quit",
	} {
		rl.DrawText(line, statsX+5, helpY, fontSize, rl.LightGray)
		helpY += lineHeight
	}
}
