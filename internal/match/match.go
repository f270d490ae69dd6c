package match

import (
	"sync"
	"time"

	"darkchess/internal/darkchess"
)

type Match struct {
	ID string

	mu        sync.Mutex
	pos       *darkchess.Position
	plies     int
	createdAt time.Time
	updatedAt time.Time
}

// Do 持锁执行 fn；fn 返回 nil 视为一次成功的修改。
// fn 不得把 pos 泄露到锁外。
func (g *Match) Do(fn func(pos *darkchess.Position) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	before := g.pos.Hash
	if err := fn(g.pos); err != nil {
		return err
	}
	if g.pos.Hash != before {
		g.plies++
		g.updatedAt = time.Now()
	}
	return nil
}

// Snapshot 返回当前局面的副本。
func (g *Match) Snapshot() *darkchess.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pos.Clone()
}

// Plies 成功改变局面的次数。
func (g *Match) Plies() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.plies
}

func (g *Match) CreatedAt() time.Time { return g.createdAt }

func (g *Match) UpdatedAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.updatedAt
}
