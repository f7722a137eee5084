package entity

// Cell is the content of a single board square.
type Cell string

const (
	EmptyCell   Cell = ""
	PlayerBlack Cell = "B"
	PlayerWhite Cell = "W"

	// PlayerTie is never stored on the board, it is only a Winner value.
	PlayerTie = "-"
)

// Opponent returns the opposing color, or EmptyCell for a non-player cell.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerBlack:
		return PlayerWhite
	case PlayerWhite:
		return PlayerBlack
	default:
		return EmptyCell
	}
}

func (that Cell) IsPlayer() bool {
	return that == PlayerBlack || that == PlayerWhite
}
