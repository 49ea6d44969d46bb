// ABOUTME: Mood classifier gateway over an asynchronously loaded engine.
// ABOUTME: Tracks load state, streams progress, and never fails a classify.

package ai

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/harper/moodlog/internal/models"
)

// Status is the gateway lifecycle state. Error is terminal: there is no
// automatic retry, the user reloads manually.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// ErrNotReady signals a Classify call before the gateway reached ready.
// That is a caller contract violation; the lifecycle controller is
// responsible for gating on readiness.
var ErrNotReady = errors.New("classifier is not ready")

// ErrUnsupported means the inference runtime is not available in this
// environment at all.
var ErrUnsupported = errors.New("inference engine unavailable")

const systemPrompt = `You are a mood classifier for diary entries. Analyze the emotional tone of the text and classify it into exactly ONE of these moods:
- happy: joy, satisfaction, gratitude, excitement
- sad: depression, loneliness, disappointment, longing
- angry: anger, irritation, frustration, resentment
- anxious: worry, fear, nervousness, stress
- neutral: calm, ordinary, everyday

Respond with ONLY a JSON object in this exact format: {"mood": "happy"} or {"mood": "sad"} etc.
Do not include any other text or explanation.`

var moodJSONPattern = regexp.MustCompile(`\{[^}]*"mood"\s*:\s*"([^"]+)"[^}]*\}`)
var moodTokenPattern = regexp.MustCompile(`\b(happy|sad|angry|anxious|neutral)\b`)

// Gateway adapts the engine to a simple request/response contract. One
// instance lives for the process lifetime, injected where needed.
type Gateway struct {
	engine Engine

	mu      sync.Mutex
	status  Status
	loadErr error
}

func NewGateway(engine Engine) *Gateway {
	return &Gateway{engine: engine, status: StatusIdle}
}

// Initialize begins the asynchronous model load exactly once per process
// and returns a stream of progress events that closes on the terminal
// state. Calling again while loading or ready is a no-op returning an
// already-closed channel.
func (g *Gateway) Initialize(ctx context.Context) <-chan ProgressEvent {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status == StatusLoading || g.status == StatusReady {
		done := make(chan ProgressEvent)
		close(done)
		return done
	}

	g.status = StatusLoading
	g.loadErr = nil
	events := make(chan ProgressEvent, 64)

	go func() {
		defer close(events)

		if err := g.engine.Ping(ctx); err != nil {
			g.fail(errors.Join(ErrUnsupported, err))
			return
		}

		err := g.engine.Load(ctx, func(ev ProgressEvent) {
			select {
			case events <- ev:
			default:
				// A slow consumer must never stall the load.
			}
		})
		if err != nil {
			g.fail(err)
			return
		}

		g.mu.Lock()
		g.status = StatusReady
		g.mu.Unlock()
	}()

	return events
}

func (g *Gateway) fail(err error) {
	g.mu.Lock()
	g.status = StatusError
	g.loadErr = err
	g.mu.Unlock()
}

func (g *Gateway) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Err returns the terminal load error, if any.
func (g *Gateway) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loadErr
}

// Supported probes whether the environment can run inference at all,
// without starting a load.
func (g *Gateway) Supported(ctx context.Context) bool {
	return g.engine.Ping(ctx) == nil
}

// Classify infers a mood for the content. Precondition: the gateway is
// ready, otherwise ErrNotReady. Once ready it always returns a valid mood:
// malformed responses, out-of-set labels, empty responses, and engine
// failures all degrade silently to the neutral default. Mood tagging is
// advisory; an AI hiccup must never cost the user their entry.
func (g *Gateway) Classify(ctx context.Context, content string) (models.Mood, error) {
	g.mu.Lock()
	status := g.status
	g.mu.Unlock()
	if status != StatusReady {
		return "", ErrNotReady
	}

	response, err := g.engine.Chat(ctx, systemPrompt, content)
	if err != nil {
		return models.DefaultMood, nil
	}
	return parseMoodResponse(response), nil
}

// parseMoodResponse extracts the first well-formed category token from an
// untrusted response, preferring the instructed JSON shape.
func parseMoodResponse(response string) models.Mood {
	if m := moodJSONPattern.FindStringSubmatch(response); m != nil {
		if mood, err := models.ParseMood(m[1]); err == nil {
			return mood
		}
	}
	if m := moodTokenPattern.FindString(strings.ToLower(response)); m != "" {
		if mood, err := models.ParseMood(m); err == nil {
			return mood
		}
	}
	return models.DefaultMood
}

// Dispose releases the engine and resets the gateway to idle. Safe to call
// even if Initialize never ran.
func (g *Gateway) Dispose() {
	g.mu.Lock()
	status := g.status
	g.status = StatusIdle
	g.loadErr = nil
	g.mu.Unlock()

	if status == StatusReady {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = g.engine.Unload(ctx)
	}
}
