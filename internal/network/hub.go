package network

import (
	"sync"

	"github.com/Astreocclu/arc-citadel-sub002/pkg/api"
)

// Broadcaster занимается только рассылкой боевых событий наблюдателям.
// Симуляция ничего не знает о вебсокетах: она кладет события сюда,
// а кто и как их смотрит - забота серверного слоя.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: WatcherID -> личный канал наблюдателя
	subscribers map[string]chan api.BattleEvent
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.BattleEvent),
	}
}

// Register создает личный канал для наблюдателя.
func (b *Broadcaster) Register(watcherID string) chan api.BattleEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[watcherID]; ok {
		close(old)
	}

	ch := make(chan api.BattleEvent, 256)
	b.subscribers[watcherID] = ch
	return ch
}

// Unregister удаляет наблюдателя.
func (b *Broadcaster) Unregister(watcherID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[watcherID]; ok {
		close(ch)
		delete(b.subscribers, watcherID)
	}
}

// Broadcast отправляет событие всем наблюдателям. Медленный наблюдатель
// теряет события, а не тормозит симуляцию.
func (b *Broadcaster) Broadcast(evt api.BattleEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- evt:
		default:
		}
	}
}

// SubscriberCount возвращает количество активных наблюдателей.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
