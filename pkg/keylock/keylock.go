package keylock

import "sync"

// Locker мьютекс на ключ. Записи удаляются, когда ключ больше никем не удерживается,
// поэтому карта не растет с количеством уникальных ключей.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New создает новый Locker
func New() *Locker {
	return &Locker{locks: make(map[string]*entry)}
}

// Lock блокирует ключ и возвращает функцию разблокировки
func (l *Locker) Lock(key string) (unlock func()) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			l.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(l.locks, key)
			}
			l.mu.Unlock()
		})
	}
}

// Len количество ключей, которые сейчас удерживаются или ожидаются
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
