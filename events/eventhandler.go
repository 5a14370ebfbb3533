package events

import (
	"context"
	"sync"

	"htmx-tictactoe/models"

	"github.com/google/uuid"
)

const DefaultBufferSize = 10

// Broker fans game events out to the SSE subscribers viewing a game.
type Broker struct {
	mu          sync.Mutex
	subscribers map[string][]*models.GameSubscriber
	bufferSize  int
}

func NewBroker(bufferSize int) *Broker {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Broker{
		subscribers: make(map[string][]*models.GameSubscriber),
		bufferSize:  bufferSize,
	}
}

// Subscribe creates and registers a new subscriber for a game
func (b *Broker) Subscribe(ctx context.Context, gameID string) *models.GameSubscriber {
	subscriber := &models.GameSubscriber{
		ID:      uuid.NewString(),
		GameID:  gameID,
		Channel: make(chan models.GameEvent, b.bufferSize),
		Context: ctx,
	}

	b.mu.Lock()
	b.subscribers[gameID] = append(b.subscribers[gameID], subscriber)
	b.mu.Unlock()

	return subscriber
}

// Unsubscribe removes a subscriber and closes its channel. Calling it twice is safe.
func (b *Broker) Unsubscribe(subscriber *models.GameSubscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscribers, exists := b.subscribers[subscriber.GameID]
	if !exists {
		return
	}

	for i, sub := range subscribers {
		if sub.ID == subscriber.ID {
			b.subscribers[subscriber.GameID] = append(subscribers[:i:i], subscribers[i+1:]...)
			close(sub.Channel)
			break
		}
	}

	if len(b.subscribers[subscriber.GameID]) == 0 {
		delete(b.subscribers, subscriber.GameID)
	}
}

// Broadcast sends an event to all subscribers of a game. Subscribers whose
// buffer is full miss the event; the next one carries the full state anyway.
func (b *Broker) Broadcast(gameID string, event models.GameEvent) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	delivered := 0
	for _, subscriber := range b.subscribers[gameID] {
		if subscriber.Context.Err() != nil {
			continue
		}
		select {
		case subscriber.Channel <- event:
			delivered++
		default:
		}
	}
	return delivered
}

// SubscriberCount returns how many subscribers are watching a game
func (b *Broker) SubscriberCount(gameID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers[gameID])
}
