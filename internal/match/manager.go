package match

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"darkchess/internal/darkchess"
)

var ErrNotFound = errors.New("match not found")

// Manager 进程内的对局表。每局独占一把锁，同一局的修改互斥，不同局互不影响。
type Manager struct {
	mu      sync.RWMutex
	matches map[string]*Match
}

func NewManager() *Manager {
	return &Manager{matches: make(map[string]*Match)}
}

// NewMatch 以全暗开局创建一局。
func (m *Manager) NewMatch() *Match {
	return m.add(darkchess.NewPosition())
}

// NewMatchFrom 以外部给定的局面创建一局，局面的所有权转移给 Manager。
func (m *Manager) NewMatchFrom(pos *darkchess.Position) *Match {
	return m.add(pos)
}

func (m *Manager) add(pos *darkchess.Position) *Match {
	now := time.Now()
	g := &Match{
		ID:        uuid.NewString(),
		pos:       pos,
		createdAt: now,
		updatedAt: now,
	}
	m.mu.Lock()
	m.matches[g.ID] = g
	m.mu.Unlock()
	return g
}

func (m *Manager) Get(id string) (*Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.matches[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

// Do 在独占状态下对 id 这一局执行 fn。
func (m *Manager) Do(id string, fn func(pos *darkchess.Position) error) error {
	g, err := m.Get(id)
	if err != nil {
		return err
	}
	return g.Do(fn)
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.matches[id]; !ok {
		return ErrNotFound
	}
	delete(m.matches, id)
	return nil
}

// IDs 按字典序返回全部对局 ID。
func (m *Manager) IDs() []string {
	m.mu.RLock()
	ids := make([]string, 0, len(m.matches))
	for id := range m.matches {
		ids = append(ids, id)
	}
	m.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.matches)
}
