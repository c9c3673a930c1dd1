package cache

import (
	"sync"
	"time"

	"github.com/vfg2006/business-pulse-api/internal/domain"
)

// Memory é o cache de resultados de inteligência em memória, com TTL por
// entrada e chave por workspace. Requisições concorrentes para o mesmo
// workspace durante um miss podem recomputar em duplicidade; a última
// escrita vence, o que é tolerado porque ambos os resultados são
// equivalentes para a mesma época de snapshot.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry

	// now é injetável para controlar a expiração nos testes
	now func() time.Time
}

type entry struct {
	result    *domain.IntelligenceResult
	expiresAt time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// WithClock substitui a fonte de tempo do cache. Uso exclusivo em testes.
func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.now = now
	return m
}

// Get retorna a entrada viva para a chave, ou miss quando ausente/expirada.
// Entradas expiradas são removidas na leitura.
func (m *Memory) Get(key string) (*domain.IntelligenceResult, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if m.now().After(e.expiresAt) {
		m.mu.Lock()
		// Reconfere sob o lock de escrita: outra goroutine pode ter renovado
		if current, still := m.entries[key]; still && m.now().After(current.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false
	}

	return e.result, true
}

func (m *Memory) Set(key string, result *domain.IntelligenceResult, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{
		result:    result,
		expiresAt: m.now().Add(ttl),
	}
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
}

// Len retorna a quantidade de entradas, vivas ou não
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
