// ABOUTME: HTTP adapter for a locally running Ollama-style model server.
// ABOUTME: Implements probe, streamed model load, chat, and unload.

package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ProgressEvent is one step of a model load: a fractional percentage plus
// the engine's human-readable status line.
type ProgressEvent struct {
	Percent int
	Text    string
}

// Engine is the narrow boundary to the external inference runtime. The
// application treats it as an opaque function with a load phase.
type Engine interface {
	// Ping reports whether the runtime is reachable at all. It runs before
	// any load is attempted.
	Ping(ctx context.Context) error
	// Load pulls the model into the runtime, reporting fractional progress.
	Load(ctx context.Context, progress func(ProgressEvent)) error
	// Chat sends a single-turn instruction and returns the raw response
	// text, which callers must treat as untrusted.
	Chat(ctx context.Context, system, user string) (string, error)
	// Unload releases the model from the runtime.
	Unload(ctx context.Context) error
}

// HTTPEngine talks to an Ollama-compatible HTTP API.
type HTTPEngine struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewHTTPEngine(baseURL, model string) *HTTPEngine {
	return &HTTPEngine{
		baseURL: baseURL,
		model:   model,
		// Model loads stream for minutes; only the probe gets a short
		// timeout, set per-request below.
		client: &http.Client{},
	}
}

func (e *HTTPEngine) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/api/version", nil)
	if err != nil {
		return err
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("engine unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("engine unreachable: status %d", resp.StatusCode)
	}
	return nil
}

type pullProgress struct {
	Status    string `json:"status"`
	Total     int64  `json:"total"`
	Completed int64  `json:"completed"`
	Error     string `json:"error"`
}

func (e *HTTPEngine) Load(ctx context.Context, progress func(ProgressEvent)) error {
	body, err := json.Marshal(map[string]any{"name": e.model})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/api/pull", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("pull model: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pull model: status %d", resp.StatusCode)
	}

	// The pull endpoint streams newline-delimited JSON status lines.
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var p pullProgress
		if err := json.Unmarshal(scanner.Bytes(), &p); err != nil {
			continue
		}
		if p.Error != "" {
			return fmt.Errorf("pull model: %s", p.Error)
		}
		percent := 0
		if p.Total > 0 {
			percent = int(p.Completed * 100 / p.Total)
		} else if p.Status == "success" {
			percent = 100
		}
		if progress != nil {
			progress(ProgressEvent{Percent: percent, Text: p.Status})
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("pull model: %w", err)
	}
	return nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string         `json:"model"`
	Messages []chatMessage  `json:"messages"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options,omitempty"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
	Error   string      `json:"error"`
}

func (e *HTTPEngine) Chat(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: e.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream: false,
		Options: map[string]any{
			"temperature": 0.1,
			"num_predict": 50,
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat: status %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("chat: decode response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("chat: %s", out.Error)
	}
	return out.Message.Content, nil
}

func (e *HTTPEngine) Unload(ctx context.Context) error {
	body, err := json.Marshal(map[string]any{"model": e.model, "keep_alive": 0})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("unload model: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}
