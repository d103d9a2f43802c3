package parameter

// Layout (terminal cells)
const (
	// HUDRows is the number of rows reserved above the arena for vitals bars
	HUDRows = 2

	// StatusRows is the number of rows reserved below the arena for the debug line
	StatusRows = 1

	// CellAspect is the height to width ratio of a terminal cell
	CellAspect = 2.0

	// BarWidth is the cell length of a health or stamina bar
	BarWidth = 20
)

// Glyphs
const (
	PlayerGlyph   = '@'
	EnemyGlyph    = 'E'
	WeaponGlyph   = '+'
	SwingGlyph    = '*'
	FacingGlyph   = '·'
	ArenaEdge     = '·'
	ArenaCorner   = '+'
	BarFullGlyph  = '█'
	BarEmptyGlyph = '░'
)
