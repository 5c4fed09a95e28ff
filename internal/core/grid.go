package core

// Board describes the row-major cell layout of a game grid. Cell ids run
// 0..Cells()-1, left to right, top to bottom.
type Board struct {
	Rows, Cols int
}

// NewBoard constructs a Board with the given dimensions.
func NewBoard(rows, cols int) Board {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return Board{Rows: rows, Cols: cols}
}

// Cells returns the total number of cells on the board.
func (b Board) Cells() int { return b.Rows * b.Cols }

// Index returns the cell id for coordinates (row, col).
func (b Board) Index(row, col int) int { return row*b.Cols + col }

// Coords returns the (row, col) position of a cell id.
func (b Board) Coords(id int) (row, col int) {
	return id / b.Cols, id % b.Cols
}

// Contains reports whether id is a valid cell id on this board.
func (b Board) Contains(id int) bool {
	return id >= 0 && id < b.Cells()
}
