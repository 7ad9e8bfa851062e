package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/parlolabs/parlo/ent"
	entevent "github.com/parlolabs/parlo/ent/llmrequestevent"
)

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsage aggregates the request log for the stats command.
type LLMUsage struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// LLMRequestEvent is a stored log row.
type LLMRequestEvent struct {
	ID        int64
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMUsage totals the request log, optionally per purpose ("" = all).
	LLMUsage(ctx context.Context, purpose string) (LLMUsage, error)

	// RecentLLMRequests returns the newest limit rows, newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)
}

// sequenceCounter assigns a single increasing sequence to every event
// regardless of type, so ordering holds across event tables. It runs on
// raw SQL because ent has no database-level atomic counter; the mutex
// serializes within the process and the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS global_sequence (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			next_val INTEGER NOT NULL DEFAULT 1
		)`,
		`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("init sequence counter: %w", err)
		}
	}
	return &sequenceCounter{db: db}, nil
}

// Next returns the next sequence number and advances the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	row := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`)
	var seq int64
	if err := row.Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(entevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	out := make([]LLMRequestEvent, 0, len(rows))
	for _, e := range rows {
		out = append(out, LLMRequestEvent{
			ID:        int64(e.ID),
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
			},
		})
	}
	return out, nil
}

func (r *eventRepo) LLMUsage(ctx context.Context, purpose string) (LLMUsage, error) {
	q := r.client.LLMRequestEvent.Query()
	if purpose != "" {
		q = q.Where(entevent.Purpose(purpose))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return LLMUsage{}, fmt.Errorf("aggregate LLM usage: %w", err)
	}

	var u LLMUsage
	for _, e := range rows {
		u.Requests++
		if !e.Success {
			u.Failures++
		}
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
	}
	return u, nil
}
