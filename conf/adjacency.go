package conf

// AdjacencyGraph models a physical keyboard for walk detection: which key
// sits next to which, in which direction, and which runes are the shifted
// faces of a key. Build one with NewAdjacencyGraph; it is immutable after.
//
// Slanted layouts (staggered letter rows, like QWERTY) give each key up to
// six neighbors; aligned layouts (numeric keypads) up to eight.
type AdjacencyGraph struct {
	Name string

	keys      map[rune]keyPos // unshifted face → position
	shifted   map[rune]rune   // shifted face → unshifted face
	neighbors map[rune][]rune // unshifted face → adjacent unshifted faces
	avgDegree float64
}

type keyPos struct{ row, col int }

// KeyboardRow pairs the unshifted and shifted faces of one physical row.
// Shifted may be empty (keypads). A space in either string marks a gap
// with no key at that column.
type KeyboardRow struct {
	Unshifted string
	Shifted   string
}

// NewAdjacencyGraph builds the adjacency graph for the given rows.
// Slanted selects staggered-row geometry: the row above a key overlaps it
// at columns (c, c+1), the row below at (c−1, c). Aligned geometry uses
// the full 8-neighborhood.
func NewAdjacencyGraph(name string, rows []KeyboardRow, slanted bool) *AdjacencyGraph {
	g := &AdjacencyGraph{
		Name:      name,
		keys:      make(map[rune]keyPos),
		shifted:   make(map[rune]rune),
		neighbors: make(map[rune][]rune),
	}

	// Index key faces by position.
	byPos := make(map[keyPos]rune)
	for r, row := range rows {
		uns := []rune(row.Unshifted)
		shf := []rune(row.Shifted)
		for c, face := range uns {
			if face == ' ' {
				continue
			}
			pos := keyPos{row: r, col: c}
			g.keys[face] = pos
			byPos[pos] = face
			if c < len(shf) && shf[c] != ' ' {
				g.shifted[shf[c]] = face
			}
		}
	}

	// Neighbor offsets by geometry.
	var offsets [][2]int
	if slanted {
		offsets = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {-1, 1}, {1, -1}, {1, 0}}
	} else {
		offsets = [][2]int{{0, -1}, {0, 1}, {-1, -1}, {-1, 0}, {-1, 1}, {1, -1}, {1, 0}, {1, 1}}
	}

	degreeSum := 0
	for face, pos := range g.keys {
		for _, d := range offsets {
			n, ok := byPos[keyPos{row: pos.row + d[0], col: pos.col + d[1]}]
			if !ok {
				continue
			}
			g.neighbors[face] = append(g.neighbors[face], n)
		}
		degreeSum += len(g.neighbors[face])
	}
	if len(g.keys) > 0 {
		g.avgDegree = float64(degreeSum) / float64(len(g.keys))
	}

	return g
}

// Key folds r to its unshifted face and reports whether r is on the board.
func (g *AdjacencyGraph) Key(r rune) (rune, bool) {
	if uns, ok := g.shifted[r]; ok {
		return uns, true
	}
	if _, ok := g.keys[r]; ok {
		return r, true
	}

	return 0, false
}

// IsShifted reports whether r is a shifted key face.
func (g *AdjacencyGraph) IsShifted(r rune) bool {
	_, ok := g.shifted[r]

	return ok
}

// Adjacent reports whether a and b (either face) sit on neighboring keys.
func (g *AdjacencyGraph) Adjacent(a, b rune) bool {
	ua, ok := g.Key(a)
	if !ok {
		return false
	}
	ub, ok := g.Key(b)
	if !ok {
		return false
	}
	for _, n := range g.neighbors[ua] {
		if n == ub {
			return true
		}
	}

	return false
}

// Direction returns the (row, col) step from key a to key b. ok is false
// when either rune is off the board.
func (g *AdjacencyGraph) Direction(a, b rune) (dr, dc int, ok bool) {
	ua, oka := g.Key(a)
	ub, okb := g.Key(b)
	if !oka || !okb {
		return 0, 0, false
	}
	pa, pb := g.keys[ua], g.keys[ub]

	return pb.row - pa.row, pb.col - pa.col, true
}

// AverageDegree returns the mean neighbor count over all keys.
func (g *AdjacencyGraph) AverageDegree() float64 { return g.avgDegree }

// StartCount returns the number of distinct keys — the possible starting
// positions of a walk.
func (g *AdjacencyGraph) StartCount() int { return len(g.keys) }

// DefaultKeyboards returns the built-in layouts: the slanted US QWERTY
// board and the aligned numeric keypad.
func DefaultKeyboards() map[string]*AdjacencyGraph {
	qwerty := NewAdjacencyGraph("qwerty", []KeyboardRow{
		{Unshifted: "`1234567890-=", Shifted: "~!@#$%^&*()_+"},
		{Unshifted: `qwertyuiop[]\`, Shifted: "QWERTYUIOP{}|"},
		{Unshifted: "asdfghjkl;'", Shifted: `ASDFGHJKL:"`},
		{Unshifted: "zxcvbnm,./", Shifted: "ZXCVBNM<>?"},
	}, true)

	keypad := NewAdjacencyGraph("keypad", []KeyboardRow{
		{Unshifted: "789"},
		{Unshifted: "456"},
		{Unshifted: "123"},
		{Unshifted: " 0."},
	}, false)

	return map[string]*AdjacencyGraph{
		qwerty.Name: qwerty,
		keypad.Name: keypad,
	}
}
