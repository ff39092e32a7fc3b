package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"ant-sim/sim"
)

// editorFoodAmount is the food stocked on every painted food source.
const editorFoodAmount = 1000

// Editor is the map-painting mode. It works on its own kind sheet, detached
// from the live grid, and converts to a tile list when the user confirms.
type Editor struct {
	width  int
	height int
	kinds  []sim.TileKind
	brush  sim.TileKind
	erase  bool
}

// NewEditor starts an empty sheet of the given dimensions.
func NewEditor(width, height int) *Editor {
	return &Editor{
		width:  width,
		height: height,
		kinds:  make([]sim.TileKind, width*height),
		brush:  sim.TileWall, // Walls are the most common paint.
	}
}

// LoadGrid seeds the sheet from an existing grid so a running map can be
// touched up instead of redrawn.
func (e *Editor) LoadGrid(grid *sim.Grid) {
	for _, tile := range grid.Tiles() {
		e.kinds[tile.Y*e.width+tile.X] = tile.Kind
	}
}

// Brush returns the active brush and whether the eraser is selected.
func (e *Editor) Brush() (sim.TileKind, bool) {
	return e.brush, e.erase
}

// HandleInput processes one frame of editor input: brush selection keys and
// mouse painting. The renderer supplies the screen-to-cell mapping.
func (e *Editor) HandleInput(r *Renderer) {
	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		e.brush, e.erase = sim.TileWall, false
	case rl.IsKeyPressed(rl.KeyTwo):
		e.brush, e.erase = sim.TileDeathZone, false
	case rl.IsKeyPressed(rl.KeyThree):
		e.brush, e.erase = sim.TileFoodSource, false
	case rl.IsKeyPressed(rl.KeyFour):
		e.brush, e.erase = sim.TileNest, false
	case rl.IsKeyPressed(rl.KeyFive):
		e.erase = true
	case rl.IsKeyPressed(rl.KeyC):
		e.Clear()
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		if x, y, ok := r.CellAt(int32(pos.X), int32(pos.Y), e.width, e.height); ok {
			if e.erase {
				e.setKind(x, y, sim.TileDefault)
			} else {
				e.setKind(x, y, e.brush)
			}
		}
	}
}

// setKind paints one cell. Painting a nest removes any previous nest so the
// sheet never holds more than one.
func (e *Editor) setKind(x, y int, kind sim.TileKind) {
	if kind == sim.TileNest {
		for i := range e.kinds {
			if e.kinds[i] == sim.TileNest {
				e.kinds[i] = sim.TileDefault
			}
		}
	}
	e.kinds[y*e.width+x] = kind
}

// Clear resets the sheet to all default tiles.
func (e *Editor) Clear() {
	for i := range e.kinds {
		e.kinds[i] = sim.TileDefault
	}
}

// HasNest reports whether the sheet holds a nest; a map without one cannot
// run.
func (e *Editor) HasNest() bool {
	for i := range e.kinds {
		if e.kinds[i] == sim.TileNest {
			return true
		}
	}
	return false
}

// Tiles converts the sheet to the tile list the engine's explicit-map
// constructor consumes.
func (e *Editor) Tiles() []sim.Tile {
	tiles := make([]sim.Tile, 0, len(e.kinds))
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			switch e.kinds[y*e.width+x] {
			case sim.TileWall:
				tiles = append(tiles, sim.NewTile(x, y, sim.TileWall))
			case sim.TileDeathZone:
				tiles = append(tiles, sim.NewTile(x, y, sim.TileDeathZone))
			case sim.TileFoodSource:
				tiles = append(tiles, sim.NewFoodTile(x, y, editorFoodAmount))
			case sim.TileNest:
				tiles = append(tiles, sim.NewNestTile(x, y, 5, 5, 5))
			}
		}
	}
	return tiles
}

// Draw renders the sheet while editing. Ants and pheromones are not shown;
// the sheet is a layout, not a running simulation.
func (e *Editor) Draw(r *Renderer, hud HUD) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	availableWidth := r.boardWidth - borderPadding*2
	availableHeight := r.boardHeight - borderPadding*2
	cellW := availableWidth / int32(e.width)
	cellH := availableHeight / int32(e.height)
	r.cellSize = min32(cellW, cellH)
	r.totalGridWidth = r.cellSize * int32(e.width)
	r.totalGridHeight = r.cellSize * int32(e.height)
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			px := r.offsetX + int32(x)*r.cellSize
			py := r.offsetY + int32(y)*r.cellSize
			switch e.kinds[y*e.width+x] {
			case sim.TileWall:
				rl.DrawRectangle(px, py, r.cellSize, r.cellSize, rl.Gray)
			case sim.TileDeathZone:
				rl.DrawRectangle(px, py, r.cellSize, r.cellSize, rl.Maroon)
			case sim.TileFoodSource:
				rl.DrawRectangle(px, py, r.cellSize, r.cellSize, rl.DarkGreen)
			case sim.TileNest:
				rl.DrawRectangle(px, py, r.cellSize, r.cellSize, rl.Gold)
			}
			rl.DrawRectangleLines(px, py, r.cellSize, r.cellSize, rl.DarkGray)
		}
	}

	fontSize := min32(r.screenHeight/45, r.statsPanel/14)
	lineHeight := fontSize + fontSize/3
	statsX := r.boardWidth + 5
	statsY := int32(10)
	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	brush := e.brush.String()
	if e.erase {
		brush = "Erase"
	}
	lines := []string{
		"MAP EDITOR",
		"Brush: " + brush,
		"",
		"1 wall   2 danger",
		"3 food   4 nest",
		"5 erase  C clear",
		"",
		"Enter  run this map",
		"E      back to sim",
	}
	if !e.HasNest() {
		lines = append(lines, "", "Place a nest to run")
	}
	if hud.StatusLine != "" {
		lines = append(lines, "", hud.StatusLine)
	}
	for _, line := range lines {
		rl.DrawText(line, statsX+5, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	rl.EndDrawing()
}
