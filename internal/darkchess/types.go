package darkchess

type Side int8

const (
	NoSide Side = -1 // 未定：第一次翻子之前
	Red    Side = 0
	Black  Side = 1
)

func (s Side) Opposite() Side {
	switch s {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "unknown"
}

// PieceType 只表示兵种，不带颜色。
type PieceType int8

const (
	PieceNone     PieceType = iota
	PieceKing               // 帥 / 將
	PieceGuard              // 仕 / 士
	PieceMinister           // 相 / 象
	PieceRook               // 俥 / 車
	PieceKnight             // 傌 / 馬
	PieceCannon             // 炮 / 包
	PiecePawn               // 兵 / 卒
)

const NumPieceTypes = 7

// Piece 是一个已翻开的棋子：>0 红，<0 黑，abs=PieceType。
// 暗子和空格不是 Piece，见 Cell。
type Piece int8

func MakePiece(side Side, pt PieceType) Piece {
	if pt <= PieceNone || pt > PiecePawn || side == NoSide {
		return 0
	}
	if side == Red {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Black
}

func (p Piece) Valid() bool {
	pt := p.Type()
	return pt > PieceNone && pt <= PiecePawn
}

// Index 把 14 种棋子映射到 [0,14)，顺序与协议里的 "KkGgMmRrNnCcPp" 一致。
func (p Piece) Index() int {
	if !p.Valid() {
		return -1
	}
	return int(p.Type()-1)*2 + int(p.Side())
}

func PieceAt(index int) Piece {
	if index < 0 || index >= NumPieceKinds {
		return 0
	}
	side := Red
	if index%2 == 1 {
		side = Black
	}
	return MakePiece(side, PieceType(index/2+1))
}

// NumPieceKinds 红黑各 7 种。
const NumPieceKinds = 2 * NumPieceTypes

type CellState int8

const (
	CellHidden CellState = iota // 暗子，零值即为暗子
	CellEmpty
	CellRevealed
)

// Cell 是棋盘上的一格：暗子、空格或一个明子。
type Cell struct {
	State CellState
	Piece Piece // 仅 State == CellRevealed 时有意义
}

var (
	HiddenCell = Cell{State: CellHidden}
	EmptyCell  = Cell{State: CellEmpty}
)

func RevealedCell(p Piece) Cell {
	return Cell{State: CellRevealed, Piece: p}
}

func (c Cell) IsHidden() bool   { return c.State == CellHidden }
func (c Cell) IsEmpty() bool    { return c.State == CellEmpty }
func (c Cell) IsRevealed() bool { return c.State == CellRevealed }

// Side 暗子与空格没有颜色。
func (c Cell) Side() Side {
	if c.State != CellRevealed {
		return NoSide
	}
	return c.Piece.Side()
}

type Board struct {
	Cells [NumSquares]Cell
}

// Move From == To 表示翻子。
type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// NullMove 表示“无合法着法”，协议上编码为 "a0 a0"。
var NullMove = Move{From: -1, To: -1}

func (m Move) IsReveal() bool { return m.From == m.To && m.From >= 0 }
func (m Move) IsNull() bool   { return m == NullMove }
