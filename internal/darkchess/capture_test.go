package darkchess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanCaptureHierarchy(t *testing.T) {
	red := func(pt PieceType) Piece { return MakePiece(Red, pt) }
	blk := func(pt PieceType) Piece { return MakePiece(Black, pt) }

	cases := []struct {
		name     string
		attacker Piece
		target   Piece
		want     bool
	}{
		{"king cannot take pawn", red(PieceKing), blk(PiecePawn), false},
		{"king takes king", red(PieceKing), blk(PieceKing), true},
		{"king takes knight", red(PieceKing), blk(PieceKnight), true},
		{"pawn takes king", blk(PiecePawn), red(PieceKing), true},
		{"pawn takes pawn", red(PiecePawn), blk(PiecePawn), true},
		{"pawn cannot take guard", red(PiecePawn), blk(PieceGuard), false},
		{"pawn cannot take cannon", red(PiecePawn), blk(PieceCannon), false},
		{"knight takes cannon", red(PieceKnight), blk(PieceCannon), true},
		{"knight cannot take rook", red(PieceKnight), blk(PieceRook), false},
		{"minister cannot take guard", blk(PieceMinister), red(PieceGuard), false},
		{"guard cannot take king", red(PieceGuard), blk(PieceKing), false},
		{"guard takes pawn", red(PieceGuard), blk(PiecePawn), true},
		{"rook takes rook", blk(PieceRook), red(PieceRook), true},
		{"rook cannot take minister", blk(PieceRook), red(PieceMinister), false},
		{"cannon never takes adjacent", red(PieceCannon), blk(PiecePawn), false},
		{"cannon vs cannon adjacent", red(PieceCannon), blk(PieceCannon), false},
		{"same side", red(PieceKing), red(PiecePawn), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanCapturePiece(tc.attacker, tc.target))
		})
	}
}

func TestCanCaptureEqualKindAlwaysLegal(t *testing.T) {
	for pt := PieceKing; pt <= PiecePawn; pt++ {
		if pt == PieceCannon {
			continue
		}
		assert.Truef(t, CanCapturePiece(MakePiece(Red, pt), MakePiece(Black, pt)), "red %d vs black %d", pt, pt)
		assert.Truef(t, CanCapturePiece(MakePiece(Black, pt), MakePiece(Red, pt)), "black %d vs red %d", pt, pt)
	}
}

func TestCanCaptureSpecialCells(t *testing.T) {
	for i := 0; i < NumPieceKinds; i++ {
		a := RevealedCell(PieceAt(i))
		assert.True(t, CanCapture(a, EmptyCell), "%s onto empty", a)
		assert.False(t, CanCapture(a, HiddenCell), "%s onto hidden", a)
	}
	assert.False(t, CanCapture(HiddenCell, EmptyCell))
	assert.False(t, CanCapture(EmptyCell, EmptyCell))
}
