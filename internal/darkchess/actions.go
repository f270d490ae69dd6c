package darkchess

import "sync"

// NumActions 32 个翻子 + 320 个同行同列走子。
const NumActions = NumSquares * (1 + (Rows - 1) + (Cols - 1))

var (
	actionsOnce  sync.Once
	actionTable  [NumActions]Move
	actionLookup map[Move]int
)

// 顺序与训练环境的动作空间保持一致：按显示顺序（第 8 行到第 1 行，a..d）逐格，
// 先是翻这一格，再是同列其它格走到这一格，最后是这一格走到同行其它格。
func initActions() {
	actionsOnce.Do(func() {
		actionLookup = make(map[Move]int, NumActions)
		n := 0
		add := func(from, to int) {
			m := Move{From: from, To: to}
			actionTable[n] = m
			actionLookup[m] = n
			n++
		}
		for i := 0; i < Rows; i++ {
			r := Rows - 1 - i
			for c := 0; c < Cols; c++ {
				sq := indexOf(r, c)
				add(sq, sq)
				for k := 0; k < Rows; k++ {
					if k != i {
						add(indexOf(Rows-1-k, c), sq)
					}
				}
				for k := 0; k < Cols; k++ {
					if k != c {
						add(sq, indexOf(r, k))
					}
				}
			}
		}
	})
}

// ActionIndex 返回 m 在固定动作空间中的编号；不在其中（不同行不同列）返回 -1。
func ActionIndex(m Move) int {
	initActions()
	if i, ok := actionLookup[m]; ok {
		return i
	}
	return -1
}

func ActionAt(i int) (Move, bool) {
	if i < 0 || i >= NumActions {
		return NullMove, false
	}
	initActions()
	return actionTable[i], true
}

// LegalActionMask 当前走子方合法动作的 0/1 掩码。
func (p *Position) LegalActionMask() []int8 {
	mask := make([]int8, NumActions)
	for _, m := range p.LegalMoves() {
		if i := ActionIndex(m); i >= 0 {
			mask[i] = 1
		}
	}
	return mask
}
