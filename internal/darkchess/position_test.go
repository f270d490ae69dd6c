package darkchess

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noHidden = "0,0,0,0,0,0,0,0,0,0,0,0,0,0"

func mustDecode(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := DecodePosition(fen)
	require.NoError(t, err)
	return pos
}

// 随机翻出一种还藏着的棋子，按剩余数量加权。
func randomHidden(rng *rand.Rand, p *Position) Piece {
	n := rng.Intn(p.HiddenTotal)
	for i, c := range p.Hidden {
		n -= c
		if n < 0 {
			return PieceAt(i)
		}
	}
	return 0
}

func checkInvariants(t *testing.T, p *Position) {
	t.Helper()
	sum := 0
	hiddenCells := 0
	for _, c := range p.Board.Cells {
		if c.IsHidden() {
			hiddenCells++
		}
	}
	for i := 0; i < NumPieceKinds; i++ {
		sum += p.Hidden[i]
	}
	require.Equal(t, p.HiddenTotal, sum, "sum of hidden counters")
	require.Equal(t, hiddenCells, p.HiddenTotal, "hidden cells on board")
	require.Equal(t, p.CalculateHash(), p.Hash, "incremental hash")
}

// 每种棋子：场上明子 + 剩余暗子 + 已被吃掉的 = 开局数量
func checkConservation(t *testing.T, p *Position, captured map[Piece]int) {
	t.Helper()
	for i := 0; i < NumPieceKinds; i++ {
		pc := PieceAt(i)
		got := p.RevealedCount(pc) + p.HiddenCount(pc) + captured[pc]
		require.Equalf(t, InitialCount(pc), got, "conservation of %s", pc)
	}
}

func TestResetInitialState(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, NoSide, p.SideToMove)
	assert.Equal(t, NumSquares, p.HiddenTotal)
	for sq := 0; sq < NumSquares; sq++ {
		assert.True(t, p.Cell(sq).IsHidden(), "square %s", SquareName(sq))
	}
	assert.Equal(t, [NumPieceKinds]int{1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 5, 5}, p.Hidden)
	assert.Equal(t, 0, p.Time(Red))
	assert.Equal(t, 0, p.Time(Black))
	checkInvariants(t, p)
	checkConservation(t, p, nil)
}

func TestResetIdempotent(t *testing.T) {
	p := NewPosition()
	require.NoError(t, p.Reveal(3, MakePiece(Red, PieceRook)))
	p.SetTime(Red, 900)

	p.Reset()
	once := *p
	p.Reset()
	assert.Equal(t, once, *p)
	assert.Equal(t, *NewPosition(), *p)
}

func TestSetupTrustsCounts(t *testing.T) {
	var l Layout
	for sq := range l.Cells {
		l.Cells[sq] = EmptyCell
	}
	l.Cells[0] = HiddenCell
	l.Cells[9] = RevealedCell(MakePiece(Black, PieceKing))
	l.Hidden[MakePiece(Red, PiecePawn).Index()] = 3
	l.Hidden[MakePiece(Black, PieceCannon).Index()] = 2

	p := NewPosition()
	require.NoError(t, p.Reveal(5, MakePiece(Red, PieceKing)))
	p.SetTime(Black, 42)
	p.Setup(l)

	// 总数按给定数量求和，不与棋盘上的暗子数交叉校验
	assert.Equal(t, 5, p.HiddenTotal)
	assert.Equal(t, NoSide, p.SideToMove)
	assert.Equal(t, 0, p.Time(Black))
	assert.Equal(t, l.Cells, p.Board.Cells)
	assert.Equal(t, p.CalculateHash(), p.Hash)
}

func TestRevealDeterminesSideOpposite(t *testing.T) {
	for i := 0; i < NumPieceKinds; i++ {
		pc := PieceAt(i)
		for _, sq := range []int{0, 7, 13, 31} {
			p := NewPosition()
			require.NoError(t, p.Reveal(sq, pc))
			assert.Equalf(t, pc.Side().Opposite(), p.SideToMove, "reveal %s at %s", pc, SquareName(sq))
			assert.Equal(t, RevealedCell(pc), p.Cell(sq))
			assert.Equal(t, InitialCount(pc)-1, p.HiddenCount(pc))
			assert.Equal(t, NumSquares-1, p.HiddenTotal)
		}
	}
}

func TestRevealFlipsDeterminedSide(t *testing.T) {
	p := NewPosition()
	require.NoError(t, p.Reveal(0, MakePiece(Black, PiecePawn)))
	require.Equal(t, Red, p.SideToMove)
	require.NoError(t, p.Reveal(1, MakePiece(Black, PiecePawn)))
	assert.Equal(t, Black, p.SideToMove)
	require.NoError(t, p.Reveal(2, MakePiece(Red, PiecePawn)))
	assert.Equal(t, Red, p.SideToMove)
}

func TestRevealPreconditions(t *testing.T) {
	p := NewPosition()
	require.NoError(t, p.Reveal(0, MakePiece(Red, PieceKing)))
	before := *p

	assert.ErrorIs(t, p.Reveal(0, MakePiece(Red, PieceGuard)), ErrNotHidden)
	assert.ErrorIs(t, p.Reveal(-1, MakePiece(Red, PieceGuard)), ErrSquareOutOfRange)
	assert.ErrorIs(t, p.Reveal(NumSquares, MakePiece(Red, PieceGuard)), ErrSquareOutOfRange)
	assert.ErrorIs(t, p.Reveal(1, 0), ErrInvalidPiece)
	assert.ErrorIs(t, p.Reveal(1, MakePiece(Red, PieceKing)), ErrNoHiddenLeft)
	assert.Equal(t, before, *p)
}

func TestApplyMovePreconditions(t *testing.T) {
	p := mustDecode(t, "----/----/----/----/----/----/X---/Kk-- r "+noHidden)
	before := *p

	cases := []struct {
		name string
		m    Move
		err  error
	}{
		{"out of range", Move{From: 0, To: 32}, ErrSquareOutOfRange},
		{"same square", Move{From: 0, To: 0}, ErrNotAMove},
		{"hidden source", Move{From: 1, To: 2}, ErrNoPiece},
		{"empty source", Move{From: 2, To: 3}, ErrNoPiece},
		{"foreign piece", Move{From: 8, To: 9}, ErrWrongSide},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, p.ApplyMove(tc.m), tc.err)
			assert.Equal(t, before, *p)
		})
	}
}

func TestApplyMoveCaptureAndFlip(t *testing.T) {
	p := mustDecode(t, "----/----/----/----/----/----/----/Kg-- r "+noHidden)
	require.NoError(t, p.ApplyMove(Move{From: 0, To: 8}))

	assert.Equal(t, EmptyCell, p.Cell(0))
	assert.Equal(t, RevealedCell(MakePiece(Red, PieceKing)), p.Cell(8))
	assert.Equal(t, Black, p.SideToMove)
	assert.Equal(t, 0, p.RevealedCount(MakePiece(Black, PieceGuard)))
	checkInvariants(t, p)
}

func TestApplyMoveUndeterminedStaysUndetermined(t *testing.T) {
	p := mustDecode(t, "----/----/----/----/----/----/----/R--- - "+noHidden)
	require.NoError(t, p.ApplyMove(Move{From: 0, To: 1}))
	assert.Equal(t, NoSide, p.SideToMove)
	assert.Equal(t, RevealedCell(MakePiece(Red, PieceRook)), p.Cell(1))
	checkInvariants(t, p)
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 20; game++ {
		p := NewPosition()
		captured := make(map[Piece]int)
		for ply := 0; ply < 300; ply++ {
			moves := p.LegalMoves()
			if len(moves) == 0 {
				break
			}
			prev := p.SideToMove
			m := moves[rng.Intn(len(moves))]
			if m.IsReveal() {
				require.NoError(t, p.Reveal(m.From, randomHidden(rng, p)))
			} else {
				if c := p.Cell(m.To); c.IsRevealed() {
					captured[c.Piece]++
				}
				require.NoError(t, p.ApplyMove(m))
			}
			require.NotEqual(t, NoSide, p.SideToMove)
			if prev != NoSide {
				require.Equal(t, prev.Opposite(), p.SideToMove, "ply %d", ply)
			}
			checkInvariants(t, p)
			checkConservation(t, p, captured)
		}
	}
}
