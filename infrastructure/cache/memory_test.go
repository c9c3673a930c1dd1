package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

func newResult(workspaceID string) *domain.IntelligenceResult {
	return &domain.IntelligenceResult{
		WorkspaceID: workspaceID,
		Insights:    []*domain.Insight{},
		Health:      domain.NeutralHealthScore(),
		GeneratedAt: time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestMemory(t *testing.T) {
	epoch := time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Hit dentro do TTL retorna o mesmo resultado", func(t *testing.T) {
		cache := NewMemory().WithClock(func() time.Time { return epoch })

		result := newResult("ws-001")
		cache.Set("ws-001", result, 30*time.Minute)

		got, ok := cache.Get("ws-001")
		assert.True(t, ok)
		assert.Same(t, result, got)
	})

	t.Run("Miss para chave ausente", func(t *testing.T) {
		cache := NewMemory()

		got, ok := cache.Get("ws-desconhecido")
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("Entrada expirada vira miss e é removida na leitura", func(t *testing.T) {
		now := epoch
		cache := NewMemory().WithClock(func() time.Time { return now })

		cache.Set("ws-001", newResult("ws-001"), 30*time.Minute)

		// Ainda viva no limite do TTL
		now = epoch.Add(30 * time.Minute)
		_, ok := cache.Get("ws-001")
		assert.True(t, ok)

		// Um segundo além do TTL: miss e remoção
		now = epoch.Add(30*time.Minute + time.Second)
		_, ok = cache.Get("ws-001")
		assert.False(t, ok)
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("Set renova o TTL da entrada", func(t *testing.T) {
		now := epoch
		cache := NewMemory().WithClock(func() time.Time { return now })

		cache.Set("ws-001", newResult("ws-001"), 30*time.Minute)

		now = epoch.Add(20 * time.Minute)
		cache.Set("ws-001", newResult("ws-001"), 30*time.Minute)

		// 40 minutos depois do primeiro Set, mas dentro do TTL renovado
		now = epoch.Add(40 * time.Minute)
		_, ok := cache.Get("ws-001")
		assert.True(t, ok)
	})

	t.Run("Delete remove apenas a chave indicada", func(t *testing.T) {
		cache := NewMemory()

		cache.Set("ws-001", newResult("ws-001"), 30*time.Minute)
		cache.Set("ws-002", newResult("ws-002"), 30*time.Minute)

		cache.Delete("ws-001")

		_, ok := cache.Get("ws-001")
		assert.False(t, ok)

		_, ok = cache.Get("ws-002")
		assert.True(t, ok)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("Escritas e leituras concorrentes não corrompem o mapa", func(t *testing.T) {
		cache := NewMemory()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				cache.Set("ws-001", newResult("ws-001"), 30*time.Minute)
				cache.Get("ws-001")
				cache.Delete("ws-002")
			}()
		}
		wg.Wait()

		got, ok := cache.Get("ws-001")
		assert.True(t, ok)
		assert.Equal(t, "ws-001", got.WorkspaceID)
	})
}
