package darkchess

// 大子吃小子。帥不能吃兵，兵可以吃帥；炮不能靠相邻吃子，只能隔子打。
var captureTable = [NumPieceTypes + 1][NumPieceTypes + 1]bool{
	PieceKing: {
		PieceKing: true, PieceGuard: true, PieceMinister: true, PieceRook: true,
		PieceKnight: true, PieceCannon: true,
	},
	PieceGuard: {
		PieceGuard: true, PieceMinister: true, PieceRook: true,
		PieceKnight: true, PieceCannon: true, PiecePawn: true,
	},
	PieceMinister: {
		PieceMinister: true, PieceRook: true,
		PieceKnight: true, PieceCannon: true, PiecePawn: true,
	},
	PieceRook: {
		PieceRook: true,
		PieceKnight: true, PieceCannon: true, PiecePawn: true,
	},
	PieceKnight: {
		PieceKnight: true, PieceCannon: true, PiecePawn: true,
	},
	PieceCannon: {},
	PiecePawn: {
		PieceKing: true, PiecePawn: true,
	},
}

// CanCapture 判断 attacker 能否走到 target 所在的相邻格：
// 空格总能走，暗子和己方子不能走，其余看兵种大小。
func CanCapture(attacker, target Cell) bool {
	if !attacker.IsRevealed() || !attacker.Piece.Valid() {
		return false
	}
	switch target.State {
	case CellEmpty:
		return true
	case CellHidden:
		return false
	}
	if attacker.Side() == target.Side() {
		return false
	}
	return captureTable[attacker.Piece.Type()][target.Piece.Type()]
}

// CanCapturePiece 只比较兵种大小，两者必须是明子。
func CanCapturePiece(attacker, target Piece) bool {
	return CanCapture(RevealedCell(attacker), RevealedCell(target))
}
