package network

import (
	"sync"

	"space-horror/pkg/api"
)

// Broadcaster рассылает снимки игры наблюдателям и хранит последний для /debug/state.
// Publish вызывается из игрового цикла и никогда не блокирует.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID подписчика -> личный канал
	subscribers map[string]chan api.Snapshot
	latest      api.Snapshot
	hasLatest   bool
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.Snapshot),
	}
}

// Register создает личный канал подписчика. Старый канал с тем же ID закрывается.
func (b *Broadcaster) Register(id string) <-chan api.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan api.Snapshot, 16)
	b.subscribers[id] = ch
	if b.hasLatest {
		ch <- b.latest
	}
	return ch
}

func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// Publish запоминает снимок и отправляет его всем. Медленный подписчик пропускает кадр.
func (b *Broadcaster) Publish(s api.Snapshot) {
	b.mu.Lock()
	b.latest, b.hasLatest = s, true
	b.mu.Unlock()

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subscribers {
		select {
		case ch <- s:
		default:
		}
	}
}

// Latest - последний опубликованный снимок.
func (b *Broadcaster) Latest() (api.Snapshot, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.latest, b.hasLatest
}

func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
