package darkchess

import "errors"

// Position = 棋盘 + 暗子计数 + 轮到谁走 + 双方时间。
//
// Position 不是并发安全的：同一局只能有一个持有者在修改它，
// 多个 goroutine 共享时请通过 match.Manager 取得独占访问。
type Position struct {
	Board       Board
	SideToMove  Side
	Hidden      [NumPieceKinds]int // 每种明子还剩多少藏在暗子里
	HiddenTotal int                // 棋盘上暗子总数
	Clock       [2]int             // 只存不用
	Hash        uint64
}

// Layout 是外部给定的完整局面。暗子数量由调用方保证与开局一致。
type Layout struct {
	Cells  [NumSquares]Cell
	Hidden [NumPieceKinds]int
}

var (
	ErrSquareOutOfRange = errors.New("square out of range")
	ErrNotHidden        = errors.New("square is not hidden")
	ErrInvalidPiece     = errors.New("invalid piece")
	ErrNoHiddenLeft     = errors.New("no hidden piece of this type left")
	ErrNotAMove         = errors.New("source equals destination")
	ErrNoPiece          = errors.New("no revealed piece on source square")
	ErrWrongSide        = errors.New("piece does not belong to side to move")
)

// NewPosition 返回全暗的开局。
func NewPosition() *Position {
	p := &Position{}
	p.Reset()
	return p
}

// Reset 全部盖回暗子，计数复原，走子方回到未定，时间清零。
func (p *Position) Reset() {
	for sq := range p.Board.Cells {
		p.Board.Cells[sq] = HiddenCell
	}
	for i := range p.Hidden {
		p.Hidden[i] = InitialCount(PieceAt(i))
	}
	p.HiddenTotal = NumSquares
	p.SideToMove = NoSide
	p.Clock = [2]int{}
	p.Hash = p.CalculateHash()
}

// Setup 装入外部局面；暗子总数按给定的各类暗子数量求和。
func (p *Position) Setup(l Layout) {
	p.Board.Cells = l.Cells
	p.Hidden = l.Hidden
	p.HiddenTotal = 0
	for _, n := range l.Hidden {
		p.HiddenTotal += n
	}
	p.SideToMove = NoSide
	p.Clock = [2]int{}
	p.Hash = p.CalculateHash()
}

// Reveal 翻开 sq 上的暗子，使之成为 pc。
// 第一次翻子决定走子方：翻出红子则下一手轮到黑，反之亦然。
func (p *Position) Reveal(sq int, pc Piece) error {
	if !validSquare(sq) {
		return ErrSquareOutOfRange
	}
	if !pc.Valid() {
		return ErrInvalidPiece
	}
	if !p.Board.Cells[sq].IsHidden() {
		return ErrNotHidden
	}
	idx := pc.Index()
	if p.Hidden[idx] <= 0 {
		return ErrNoHiddenLeft
	}

	h := p.EnsureHash()
	h ^= sideHashKey(p.SideToMove)
	if p.SideToMove == NoSide {
		p.SideToMove = pc.Side().Opposite()
	} else {
		p.SideToMove = p.SideToMove.Opposite()
	}
	h ^= sideHashKey(p.SideToMove)

	h ^= cellHashKey(HiddenCell, sq)
	p.Board.Cells[sq] = RevealedCell(pc)
	h ^= cellHashKey(p.Board.Cells[sq], sq)

	p.Hidden[idx]--
	p.HiddenTotal--
	p.Hash = h
	return nil
}

// ApplyMove 执行走子/吃子，不检查合法性（由上层用 LegalMoves 校验）。
// 被吃的子直接丢弃，不留记录。
func (p *Position) ApplyMove(m Move) error {
	if !validSquare(m.From) || !validSquare(m.To) {
		return ErrSquareOutOfRange
	}
	if m.From == m.To {
		return ErrNotAMove
	}
	src := p.Board.Cells[m.From]
	if !src.IsRevealed() {
		return ErrNoPiece
	}
	if p.SideToMove != NoSide && src.Side() != p.SideToMove {
		return ErrWrongSide
	}
	dst := p.Board.Cells[m.To]

	h := p.EnsureHash()
	h ^= sideHashKey(p.SideToMove)
	p.SideToMove = p.SideToMove.Opposite() // NoSide 保持 NoSide
	h ^= sideHashKey(p.SideToMove)

	h ^= cellHashKey(src, m.From)
	h ^= cellHashKey(dst, m.To)
	p.Board.Cells[m.To] = src
	p.Board.Cells[m.From] = EmptyCell
	h ^= cellHashKey(src, m.To)

	p.Hash = h
	return nil
}

// SetSideToMove 由 genmove 指定走子方。
func (p *Position) SetSideToMove(side Side) {
	if side != Red && side != Black {
		side = NoSide
	}
	h := p.EnsureHash()
	h ^= sideHashKey(p.SideToMove)
	p.SideToMove = side
	p.Hash = h ^ sideHashKey(side)
}

func (p *Position) SetTime(side Side, t int) {
	if side == Red || side == Black {
		p.Clock[side] = t
	}
}

func (p *Position) Time(side Side) int {
	if side == Red || side == Black {
		return p.Clock[side]
	}
	return 0
}

// Cell 越界时返回空格。
func (p *Position) Cell(sq int) Cell {
	if !validSquare(sq) {
		return EmptyCell
	}
	return p.Board.Cells[sq]
}

func (p *Position) HiddenCount(pc Piece) int {
	if !pc.Valid() {
		return 0
	}
	return p.Hidden[pc.Index()]
}

// RevealedCount 棋盘上某种明子的数量。
func (p *Position) RevealedCount(pc Piece) int {
	n := 0
	for _, c := range p.Board.Cells {
		if c.IsRevealed() && c.Piece == pc {
			n++
		}
	}
	return n
}

func (p *Position) Clone() *Position {
	np := *p
	return &np
}
