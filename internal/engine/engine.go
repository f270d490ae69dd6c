package engine

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"darkchess/internal/darkchess"
)

const legalCacheCap = 1 << 16

// ErrNoLegalMove 请求的一方没有任何合法动作。
var ErrNoLegalMove = errors.New("no legal move")

type cacheKey struct {
	hash uint64
	side darkchess.Side
}

type legalCache struct {
	mu sync.RWMutex
	m  map[cacheKey][]darkchess.Move
}

type Config struct {
	Seed   int64 // 0 表示按当前时间
	Logger logrus.FieldLogger
}

// Engine 目前只是从合法动作里随机挑一个，真正的搜索以后替换 SelectMove。
type Engine struct {
	mu  sync.Mutex // 保护 rng
	rng *rand.Rand

	cache *legalCache
	log   logrus.FieldLogger
}

func NewEngine(cfg Config) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{
		rng: rand.New(rand.NewSource(seed)),
		cache: &legalCache{
			m: make(map[cacheKey][]darkchess.Move, 1<<10),
		},
		log: log,
	}
}

// LegalMoves 以局面哈希缓存 side 一方的合法动作。返回的切片归调用方所有。
func (e *Engine) LegalMoves(pos *darkchess.Position, side darkchess.Side) []darkchess.Move {
	key := cacheKey{hash: pos.EnsureHash(), side: side}

	e.cache.mu.RLock()
	moves, ok := e.cache.m[key]
	e.cache.mu.RUnlock()
	if !ok {
		moves = pos.GenerateMovesForSide(side)
		e.cache.mu.Lock()
		if len(e.cache.m) > legalCacheCap {
			e.cache.m = make(map[cacheKey][]darkchess.Move, 1<<10)
		}
		e.cache.m[key] = moves
		e.cache.mu.Unlock()
	}

	out := make([]darkchess.Move, len(moves))
	copy(out, moves)
	return out
}

// SelectMove 为 side 选一步。没有合法动作时返回 NullMove 和 ErrNoLegalMove。
func (e *Engine) SelectMove(pos *darkchess.Position, side darkchess.Side) (darkchess.Move, error) {
	moves := e.LegalMoves(pos, side)
	e.log.WithFields(logrus.Fields{
		"side":  side.String(),
		"count": len(moves),
	}).Debugf("legal: %s", formatMoves(moves))

	if len(moves) == 0 {
		return darkchess.NullMove, ErrNoLegalMove
	}
	e.mu.Lock()
	i := e.rng.Intn(len(moves))
	e.mu.Unlock()
	return moves[i], nil
}

// SampleHidden 按剩余暗子数量加权随机翻出一种棋子，供自对弈模拟翻子。
func (e *Engine) SampleHidden(pos *darkchess.Position) (darkchess.Piece, bool) {
	total := 0
	for _, n := range pos.Hidden {
		total += n
	}
	if total <= 0 {
		return 0, false
	}
	e.mu.Lock()
	r := e.rng.Intn(total)
	e.mu.Unlock()
	for i, n := range pos.Hidden {
		r -= n
		if r < 0 {
			return darkchess.PieceAt(i), true
		}
	}
	return 0, false
}

func formatMoves(moves []darkchess.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}
