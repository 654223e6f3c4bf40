package notification

import (
	"sync"

	"go.uber.org/zap"

	"frontdesk/utils"
)

// DefaultNotifier is the in-process Notifier implementation.
type DefaultNotifier struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *zap.Logger
}

func NewDefaultNotifier() *DefaultNotifier {
	return &DefaultNotifier{
		handlers: make(map[string][]Handler),
		logger:   utils.GetLogger(),
	}
}

// Subscribe registers a handler for the named event.
func (n *DefaultNotifier) Subscribe(eventName string, handler Handler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handlers[eventName] = append(n.handlers[eventName], handler)
}

// Publish dispatches the event to every subscriber synchronously. Handler
// panics are contained and logged so publishers are never broken by a
// misbehaving listener.
func (n *DefaultNotifier) Publish(event Event) {
	n.mu.RLock()
	handlers := append([]Handler(nil), n.handlers[event.Name()]...)
	n.mu.RUnlock()

	for _, h := range handlers {
		n.dispatch(event, h)
	}
}

func (n *DefaultNotifier) dispatch(event Event, h Handler) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Warn("notification handler panicked",
				zap.String("event", event.Name()), zap.Any("cause", r))
		}
	}()
	h(event)
}
