package event

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/osse101/IconIdle_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

// DeadLetterEntry is one event that could not be delivered
type DeadLetterEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Event     Event     `json:"event"`
	Attempts  int       `json:"attempts"`
}

// ResilientPublisher wraps a Bus with background retries and a dead-letter file
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	mu     sync.Mutex
	wg     sync.WaitGroup
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = DefaultMaxRetries
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = DefaultRetryDelay
	}
	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// Publish delivers the event. A failed first attempt is retried in the
// background and the caller gets nil.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	p.wg.Add(1)
	go p.retryLoop(event)
	return nil
}

func (p *ResilientPublisher) retryLoop(event Event) {
	defer p.wg.Done()
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for i := 1; i <= p.config.MaxRetries; i++ {
		time.Sleep(p.config.RetryDelay * time.Duration(i))

		err := p.inner.Publish(ctx, event)
		if err == nil {
			log.Info(LogMsgRetrySucceeded, "event_type", event.Type, "attempt", i)
			return
		}
		log.Warn(LogMsgRetryFailed, "event_type", event.Type, "attempt", i, "error", err)
	}

	p.writeToDeadLetter(event)
}

func (p *ResilientPublisher) writeToDeadLetter(event Event) {
	if p.config.DeadLetterPath == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	log := logger.FromContext(context.Background())
	f, err := os.OpenFile(p.config.DeadLetterPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		log.Error(LogMsgDeadLetterOpenFail, "error", err, "path", p.config.DeadLetterPath)
		return
	}
	defer f.Close()

	entry := DeadLetterEntry{
		Timestamp: time.Now(),
		Event:     event,
		Attempts:  p.config.MaxRetries + 1,
	}
	if err := json.NewEncoder(f).Encode(entry); err != nil {
		log.Error(LogMsgDeadLetterWriteFail, "error", err)
		return
	}
	log.Info(LogMsgDeadLettered, "event_type", event.Type)
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Wait blocks until background retries finish
func (p *ResilientPublisher) Wait() {
	p.wg.Wait()
}
