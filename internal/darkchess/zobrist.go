package darkchess

import "sync"

// 0..13 明子，14 暗子；空格不参与哈希
const zobristCellKinds = NumPieceKinds + 1

var (
	zobristOnce sync.Once

	zobristCells [zobristCellKinds][NumSquares]uint64
	zobristSide  [2]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for k := 0; k < zobristCellKinds; k++ {
			for sq := 0; sq < NumSquares; sq++ {
				zobristCells[k][sq] = next()
			}
		}
		zobristSide[Red] = next()
		zobristSide[Black] = next()
	})
}

func cellHashKey(c Cell, sq int) uint64 {
	if !validSquare(sq) {
		return 0
	}
	initZobrist()
	switch c.State {
	case CellHidden:
		return zobristCells[NumPieceKinds][sq]
	case CellRevealed:
		if i := c.Piece.Index(); i >= 0 {
			return zobristCells[i][sq]
		}
	}
	return 0
}

func sideHashKey(s Side) uint64 {
	if s != Red && s != Black {
		return 0
	}
	initZobrist()
	return zobristSide[s]
}

// CalculateHash 全量计算当前局面的 Zobrist 哈希。
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for sq, c := range p.Board.Cells {
		h ^= cellHashKey(c, sq)
	}
	return h ^ sideHashKey(p.SideToMove)
}

// EnsureHash 确保 Position.Hash 已初始化；返回当前哈希值。
func (p *Position) EnsureHash() uint64 {
	if p.Hash == 0 {
		p.Hash = p.CalculateHash()
	}
	return p.Hash
}
