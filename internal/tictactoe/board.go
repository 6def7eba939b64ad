package tictactoe

const (
	BoardRows    = 3
	BoardColumns = 3
	LineLength   = 3

	CellCount = BoardRows * BoardColumns
)

// Cell is the content of a single board position.
type Cell int

const (
	CellEmpty Cell = iota
	CellPlayerOne
	CellPlayerTwo
)

// PlayerID identifies a seat in a game.
type PlayerID int

const (
	NoPlayer  PlayerID = 0
	PlayerOne PlayerID = 1
	PlayerTwo PlayerID = 2
)

// NoCell stands for a cell id the caller did not provide.
const NoCell = -1

func (that PlayerID) IsValid() bool {
	return that == PlayerOne || that == PlayerTwo
}

func (that PlayerID) Cell() Cell {
	return Cell(that)
}

func (that Cell) Player() PlayerID {
	return PlayerID(that)
}

func (that Cell) IsValid() bool {
	return that == CellEmpty || that == CellPlayerOne || that == CellPlayerTwo
}

// Board is the game grid, row-major.
type Board [BoardRows][BoardColumns]Cell

// cellPosition translates a cell id to board coordinates.
func cellPosition(cellID int) (int, int) {
	return cellID / BoardColumns, cellID % BoardColumns
}

func (that *Board) row(rowID int) [LineLength]Cell {
	return that[rowID]
}

func (that *Board) column(columnID int) [LineLength]Cell {
	var values [LineLength]Cell
	for rowID := range BoardRows {
		values[rowID] = that[rowID][columnID]
	}

	return values
}

// backDiagonal runs from the top-left to the bottom-right corner.
func (that *Board) backDiagonal() [LineLength]Cell {
	var values [LineLength]Cell
	for i := range LineLength {
		values[i] = that[i][i]
	}

	return values
}

// forwardDiagonal runs from the top-right to the bottom-left corner.
func (that *Board) forwardDiagonal() [LineLength]Cell {
	var values [LineLength]Cell
	for i := range LineLength {
		values[i] = that[i][BoardColumns-1-i]
	}

	return values
}

func (that *Board) isFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == CellEmpty {
				return false
			}
		}
	}

	return true
}

func (that *Board) isEmpty() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell != CellEmpty {
				return false
			}
		}
	}

	return true
}

// Cells flattens the board row-major.
func (that *Board) Cells() [CellCount]Cell {
	var cells [CellCount]Cell
	for cellID := range CellCount {
		row, column := cellPosition(cellID)
		cells[cellID] = that[row][column]
	}

	return cells
}

func boardFromCells(cells [CellCount]Cell) Board {
	var board Board
	for cellID, cell := range cells {
		row, column := cellPosition(cellID)
		board[row][column] = cell
	}

	return board
}

// lineWinner returns the occupant of a complete line, or CellEmpty.
// Only the first value is checked for emptiness: an equal triple starting
// with a mark cannot contain an empty cell.
func lineWinner(values [LineLength]Cell) Cell {
	if values[0] == CellEmpty {
		return CellEmpty
	}

	for _, value := range values[1:] {
		if value != values[0] {
			return CellEmpty
		}
	}

	return values[0]
}
