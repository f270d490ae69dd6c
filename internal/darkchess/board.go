package darkchess

import (
	"errors"
	"strings"
)

const (
	Rows       = 8 // rank 1..8
	Cols       = 4 // file a..d
	NumSquares = Rows * Cols
)

// 按列存放：sq+1 同一列上移一行，sq+8 同一行右移一列。
func indexOf(row, col int) int { return col*Rows + row }
func rowOf(sq int) int         { return sq % Rows }
func colOf(sq int) int         { return sq / Rows }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func validSquare(sq int) bool {
	return sq >= 0 && sq < NumSquares
}

// 上下左右，顺序：左一列、上一行、右一列、下一行
var rookDirs = [4][2]int{
	{0, -1},
	{+1, 0},
	{0, +1},
	{-1, 0},
}

// 每种棋子开局的数量（每方）
var initialCount = [NumPieceTypes + 1]int{
	PieceKing:     1,
	PieceGuard:    2,
	PieceMinister: 2,
	PieceRook:     2,
	PieceKnight:   2,
	PieceCannon:   2,
	PiecePawn:     5,
}

// InitialCount 返回某个明子在开局时的数量。
func InitialCount(p Piece) int {
	if !p.Valid() {
		return 0
	}
	return initialCount[p.Type()]
}

// 协议字母表：前 14 个与 Piece.Index 对齐，X=暗子，-=空格
const pieceAlphabet = "KkGgMmRrNnCcPpX-"

const (
	hiddenSymbol = 'X'
	emptySymbol  = '-'
)

func cellToChar(c Cell) byte {
	switch c.State {
	case CellHidden:
		return hiddenSymbol
	case CellEmpty:
		return emptySymbol
	}
	if i := c.Piece.Index(); i >= 0 {
		return pieceAlphabet[i]
	}
	return '?'
}

// String 单字符编码。
func (c Cell) String() string { return string(cellToChar(c)) }

func (p Piece) String() string {
	if i := p.Index(); i >= 0 {
		return pieceAlphabet[i : i+1]
	}
	return "?"
}

var ErrUnknownSymbol = errors.New("unknown piece symbol")

// ParseCell 把协议字母还原为一格。
func ParseCell(ch byte) (Cell, error) {
	i := strings.IndexByte(pieceAlphabet, ch)
	switch {
	case i < 0:
		return Cell{}, ErrUnknownSymbol
	case ch == hiddenSymbol:
		return HiddenCell, nil
	case ch == emptySymbol:
		return EmptyCell, nil
	}
	return RevealedCell(PieceAt(i)), nil
}

// ParsePiece 只接受 14 个明子字母。
func ParsePiece(s string) (Piece, error) {
	if len(s) != 1 {
		return 0, ErrUnknownSymbol
	}
	c, err := ParseCell(s[0])
	if err != nil {
		return 0, err
	}
	if !c.IsRevealed() {
		return 0, ErrUnknownSymbol
	}
	return c.Piece, nil
}

var ErrBadSquare = errors.New("invalid square label")

// ParseSquare "a1" -> 0, "a2" -> 1, "b1" -> 8 ...
func ParseSquare(s string) (int, error) {
	if len(s) != 2 {
		return -1, ErrBadSquare
	}
	col := int(s[0]) - 'a'
	row := int(s[1]) - '1'
	if !onBoard(row, col) {
		return -1, ErrBadSquare
	}
	return indexOf(row, col), nil
}

func SquareName(sq int) string {
	if !validSquare(sq) {
		return "a0"
	}
	return string([]byte{byte('a' + colOf(sq)), byte('1' + rowOf(sq))})
}

// String "a1 b1"；无着法为 "a0 a0"。
func (m Move) String() string {
	if !validSquare(m.From) || !validSquare(m.To) {
		return "a0 a0"
	}
	return SquareName(m.From) + " " + SquareName(m.To)
}

// ParseMove 解析 "a1 b1" 或 "a1","b1" 两段；"a0 a0" 解析为 NullMove。
func ParseMove(from, to string) (Move, error) {
	if from == "a0" && to == "a0" {
		return NullMove, nil
	}
	f, err := ParseSquare(from)
	if err != nil {
		return NullMove, err
	}
	t, err := ParseSquare(to)
	if err != nil {
		return NullMove, err
	}
	return Move{From: f, To: t}, nil
}
