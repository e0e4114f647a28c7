package game

import (
	"fmt"

	"golang.org/x/exp/rand"

	"hexwar/hex"
)

// GenerateMap builds a width x height board. Rows are shifted left by one
// every second row so the grid reads as odd-r offset coordinates in axial
// space. Ocean and mountain areas are grown first, the remaining farmland is
// sprinkled with hills and woods, then cities and industries are placed.
func GenerateMap(width, height int, rng *rand.Rand) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid map size %dx%d", width, height)
	}
	grid := make([][]Tile, height)
	for row := 0; row < height; row++ {
		grid[row] = make([]Tile, width)
		offset := rowOffset(row)
		for col := 0; col < width; col++ {
			grid[row][col] = Tile{Q: offset + col, R: row, Col: col, Row: row, Field: Farmland}
		}
	}

	g := &generator{grid: grid, width: width, height: height, rng: rng}
	g.addAreas(Ocean)
	g.addAreas(Mountain)
	g.randomFill()
	g.scatter(City, width*height/80, func(f Field) bool { return f != Ocean })
	g.scatter(Industry, width*height/60, func(f Field) bool { return f != Ocean && f != City })

	tiles := make([]Tile, 0, width*height)
	for row := range grid {
		tiles = append(tiles, grid[row]...)
	}
	return NewBoard(width, height, tiles)
}

func rowOffset(row int) int {
	offset := 0
	for i := 0; i < row; i++ {
		if i%2 == 1 {
			offset--
		}
	}
	return offset
}

type generator struct {
	grid   [][]Tile
	width  int
	height int
	rng    *rand.Rand
}

type colRow struct {
	col, row int
}

func (g *generator) valid(c colRow) bool {
	return c.row >= 0 && c.row < g.height && c.col >= 0 && c.col < g.width
}

func (g *generator) addAreas(field Field) {
	area := g.width * g.height
	numAreas := g.rng.Intn(4) + 1 + area/80
	maxSize := g.rng.Intn(8) + 1 + area/60
	for i := 0; i < numAreas; i++ {
		start := colRow{row: g.rng.Intn(g.height), col: g.rng.Intn(g.width)}
		g.floodFill(start, field, maxSize)
	}
}

// floodFill paints up to a random number of farmland tiles connected to start.
func (g *generator) floodFill(start colRow, field Field, maxSize int) {
	size := max(maxSize, 4)
	size = g.rng.Intn(size-3) + 4

	stack := []colRow{start}
	painted := 0
	for len(stack) > 0 && painted < size {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !g.valid(cur) {
			continue
		}
		tile := &g.grid[cur.row][cur.col]
		if tile.Field != Farmland {
			continue
		}
		tile.Field = field
		painted++

		neigh := g.neighbors(cur)
		g.rng.Shuffle(len(neigh), func(i, j int) {
			neigh[i], neigh[j] = neigh[j], neigh[i]
		})
		stack = append(stack, neigh...)
	}
}

// neighbors is axial adjacency expressed on the col/row grid: odd rows sit
// half a hex to the right of the even rows around them.
func (g *generator) neighbors(c colRow) []colRow {
	var candidates []colRow
	if c.row%2 == 1 {
		candidates = []colRow{
			{c.col, c.row - 1}, {c.col + 1, c.row - 1},
			{c.col - 1, c.row}, {c.col + 1, c.row},
			{c.col, c.row + 1}, {c.col + 1, c.row + 1},
		}
	} else {
		candidates = []colRow{
			{c.col - 1, c.row - 1}, {c.col, c.row - 1},
			{c.col - 1, c.row}, {c.col + 1, c.row},
			{c.col - 1, c.row + 1}, {c.col, c.row + 1},
		}
	}
	out := candidates[:0]
	for _, n := range candidates {
		if g.valid(n) {
			out = append(out, n)
		}
	}
	return out
}

func (g *generator) randomFill() {
	for row := range g.grid {
		for col := range g.grid[row] {
			tile := &g.grid[row][col]
			if tile.Field != Farmland {
				continue
			}
			r := g.rng.Intn(100)
			if r < 25 {
				tile.Field = Hills
			} else if r < 70 {
				tile.Field = Woods
			}
		}
	}
}

func (g *generator) scatter(field Field, count int, allowed func(Field) bool) {
	limit := g.width * g.height * 2
	for i := 0; i < count; i++ {
		for tries := 0; tries < limit; tries++ {
			tile := &g.grid[g.rng.Intn(g.height)][g.rng.Intn(g.width)]
			if !allowed(tile.Field) {
				continue
			}
			tile.Field = field
			break
		}
	}
}

// Connected reports whether to can be reached from from over land tiles.
func Connected(b *Board, from, to hex.Axial) bool {
	start := b.Tile(from)
	if start == nil || !start.Field.Def().Land {
		return false
	}
	visited := map[hex.Axial]bool{from: true}
	queue := []hex.Axial{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			return true
		}
		for _, n := range b.Neighbors(cur) {
			np := n.Pos()
			if visited[np] || !n.Field.Def().Land {
				continue
			}
			visited[np] = true
			queue = append(queue, np)
		}
	}
	return false
}
