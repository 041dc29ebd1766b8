package cache

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// DefaultSlotsSize размер кэша по умолчанию
const DefaultSlotsSize = 1024

// HitRecorder принимает статистику попаданий в кэш
type HitRecorder interface {
	ObserveSlotCache(hit bool)
}

// SlotsCache LRU-кэш вычисленных свободных слотов по ключу "providerID:date".
// Используется только для чтения; решение о бронировании всегда принимается по хранилищу.
// Nil-кэш ведет себя как выключенный.
type SlotsCache struct {
	mu      sync.RWMutex
	cache   *lru.Cache[string, []types.TimeString]
	epoch   uint64
	metrics HitRecorder
}

// NewSlotsCache создает кэш слотов заданного размера
func NewSlotsCache(size int, metrics HitRecorder) (*SlotsCache, error) {
	if size <= 0 {
		size = DefaultSlotsSize
	}

	c, err := lru.New[string, []types.TimeString](size)
	if err != nil {
		return nil, fmt.Errorf("create slots cache: %w", err)
	}

	return &SlotsCache{cache: c, metrics: metrics}, nil
}

// Get возвращает копию закэшированных слотов
func (c *SlotsCache) Get(providerID int64, date types.DateString) ([]types.TimeString, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	slots, ok := c.cache.Get(key(providerID, date))
	c.mu.RUnlock()

	if c.metrics != nil {
		c.metrics.ObserveSlotCache(ok)
	}
	if !ok {
		return nil, false
	}

	out := make([]types.TimeString, len(slots))
	copy(out, slots)
	return out, true
}

// Epoch номер поколения кэша; увеличивается при каждой инвалидации.
// Снимается до чтения из хранилища и передается в Store.
func (c *SlotsCache) Epoch() uint64 {
	if c == nil {
		return 0
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch
}

// Store сохраняет слоты провайдера на дату, если с момента снятия epoch
// не было инвалидаций. Иначе результат мог быть вычислен по устаревшим данным.
func (c *SlotsCache) Store(providerID int64, date types.DateString, slots []types.TimeString, epoch uint64) bool {
	if c == nil {
		return false
	}

	stored := make([]types.TimeString, len(slots))
	copy(stored, slots)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return false
	}
	c.cache.Add(key(providerID, date), stored)
	return true
}

// InvalidateDate удаляет запись провайдера на дату
func (c *SlotsCache) InvalidateDate(providerID int64, date types.DateString) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.cache.Remove(key(providerID, date))
}

// InvalidateProvider удаляет все записи провайдера
func (c *SlotsCache) InvalidateProvider(providerID int64) {
	if c == nil {
		return
	}

	prefix := strconv.FormatInt(providerID, 10) + ":"

	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	for _, k := range c.cache.Keys() {
		if strings.HasPrefix(k, prefix) {
			c.cache.Remove(k)
		}
	}
}

// Len количество записей в кэше
func (c *SlotsCache) Len() int {
	if c == nil {
		return 0
	}
	return c.cache.Len()
}

// Purge очищает кэш
func (c *SlotsCache) Purge() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.cache.Purge()
}

func key(providerID int64, date types.DateString) string {
	return strconv.FormatInt(providerID, 10) + ":" + date.String()
}
