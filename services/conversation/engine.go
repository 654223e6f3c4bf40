package conversation

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"frontdesk/models"
	"frontdesk/utils"
)

const apologyResponse = "I apologize, but I'm having trouble processing that. Could you please rephrase your question?"

var _ ConversationService = (*Engine)(nil)

// Engine is the local conversation engine: a pattern-based intent classifier,
// an entity extractor, a slot-filling dialogue state tracker, and a response
// generator over a static knowledge base. One Engine owns one session's state
// and is not safe for concurrent turns; the knowledge base and pattern
// library are shared read-only across engines.
type Engine struct {
	kb       models.KnowledgeBase
	patterns *PatternSet
	sink     BookingSink
	logger   *zap.Logger
	rng      *rand.Rand
	now      func() time.Time

	state models.ConversationState
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRandSource seeds the template-variant selection, making the
// cosmetically randomized responses deterministic.
func WithRandSource(src rand.Source) Option {
	return func(e *Engine) { e.rng = rand.New(src) }
}

// WithLogger overrides the engine's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine builds an engine. Both loader and sink may be nil: without a
// loader the built-in knowledge base is used, and without a sink finalized
// bookings are dropped after confirmation.
func NewEngine(loader ConfigSource, sink BookingSink, opts ...Option) *Engine {
	e := &Engine{
		kb:       DefaultKnowledgeBase(),
		patterns: Patterns(),
		sink:     sink,
		logger:   utils.GetLogger(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	if loader != nil {
		e.loadKnowledgeBase(loader)
	}
	return e
}

// loadKnowledgeBase pulls the knowledge base from the config source.
// Failures are logged and leave the built-in defaults in place.
func (e *Engine) loadKnowledgeBase(loader ConfigSource) {
	if !loader.IsConfigLoaded() {
		if err := loader.LoadConfig(context.Background()); err != nil {
			e.logger.Warn("restaurant config load failed, using defaults", zap.Error(err))
			return
		}
	}
	kb, err := loader.TransformForConversationEngine()
	if err != nil {
		e.logger.Warn("restaurant config transform failed, using defaults", zap.Error(err))
		return
	}
	e.kb = kb
	e.logger.Info("restaurant config loaded", zap.String("restaurant", kb.Restaurant.Name))
}

// ProcessMessage runs one synchronous conversation turn.
func (e *Engine) ProcessMessage(message string) models.ConversationResult {
	normalized := strings.ToLower(strings.TrimSpace(message))

	intent := e.classify(normalized)
	entities := e.extract(message)
	draftOpened := e.updateState(intent, entities, message)
	response := e.respond(intent, entities, normalized, draftOpened)

	return models.ConversationResult{
		Intent:   intent,
		Entities: entities,
		Response: response,
		State:    e.State(),
	}
}

// HandleTextConversation is the outer error boundary: any panic raised during
// processing is converted into a Success=false outcome with an in-character
// apology. It never panics outward.
func (e *Engine) HandleTextConversation(ctx context.Context, message string) (outcome models.ConversationOutcome) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("conversation processing failed", zap.Any("cause", r))
			outcome = models.ConversationOutcome{
				Success:  false,
				Response: apologyResponse,
				Error:    fmt.Sprint(r),
			}
		}
	}()
	_ = ctx

	result := e.ProcessMessage(message)
	state := result.State
	return models.ConversationOutcome{
		Success:           true,
		Response:          result.Response,
		Intent:            result.Intent,
		Entities:          result.Entities,
		ConversationState: &state,
	}
}

// ResetConversation clears the active booking draft and the turn history.
func (e *Engine) ResetConversation() {
	e.state = models.ConversationState{}
}

// State returns a defensive copy of the session state.
func (e *Engine) State() models.ConversationState {
	snapshot := models.ConversationState{
		History: append([]models.Turn(nil), e.state.History...),
	}
	if e.state.ActiveBooking != nil {
		draft := *e.state.ActiveBooking
		snapshot.ActiveBooking = &draft
	}
	return snapshot
}
