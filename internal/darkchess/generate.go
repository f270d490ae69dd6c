package darkchess

// GenerateMovesForSide 生成 side 一方的全部合法动作。
// side 为 NoSide 时只能翻子。
func (p *Position) GenerateMovesForSide(side Side) []Move {
	var moves []Move
	for sq := 0; sq < NumSquares; sq++ {
		c := p.Board.Cells[sq]
		if c.IsHidden() {
			// 任何一方都可以翻任意暗子
			moves = append(moves, Move{From: sq, To: sq})
			continue
		}
		if side == NoSide || !c.IsRevealed() || c.Side() != side {
			continue
		}
		if c.Piece.Type() == PieceCannon {
			genCannonCaptures(p, sq, &moves)
		}
		genStepMoves(p, sq, &moves)
	}
	return moves
}

// LegalMoves 当前走子方的全部合法动作；返回空切片即“无合法着法”。
func (p *Position) LegalMoves() []Move {
	return p.GenerateMovesForSide(p.SideToMove)
}

// IsLegal 判断 m 是否在当前走子方的合法动作之中。
func (p *Position) IsLegal(m Move) bool {
	for _, lm := range p.LegalMoves() {
		if lm == m {
			return true
		}
	}
	return false
}

// 相邻一格：走空格或按大小吃子（炮走空格也走这里）
func genStepMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	pc := p.Board.Cells[from]
	for _, d := range rookDirs {
		r, c := row+d[0], col+d[1]
		if !onBoard(r, c) {
			continue
		}
		to := indexOf(r, c)
		if CanCapture(pc, p.Board.Cells[to]) {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}

// 炮：沿一条线数非空格（暗子也算），数到第二个时定胜负：
// 是敌方明子就能打，否则这个方向作废。
func genCannonCaptures(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Cells[from].Side()
	for _, d := range rookDirs {
		r, c := row+d[0], col+d[1]
		count := 0
		for onBoard(r, c) {
			to := indexOf(r, c)
			dst := p.Board.Cells[to]
			if !dst.IsEmpty() {
				count++
			}
			if count == 2 {
				if dst.IsRevealed() && dst.Side() == side.Opposite() {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// CannonTargets 返回位于 sq 的炮所有可打的目标格。
func (p *Position) CannonTargets(sq int) []int {
	if !validSquare(sq) {
		return nil
	}
	c := p.Board.Cells[sq]
	if !c.IsRevealed() || c.Piece.Type() != PieceCannon {
		return nil
	}
	var moves []Move
	genCannonCaptures(p, sq, &moves)
	if len(moves) == 0 {
		return nil
	}
	out := make([]int, len(moves))
	for i, m := range moves {
		out[i] = m.To
	}
	return out
}
