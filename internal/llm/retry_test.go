package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

// retryCase drives WithRetry over a queue of canned outcomes and checks
// how many attempts it spent.
func retryCase(t *testing.T, queue []MockResponse, wantCalls int, wantErr bool) (*Response, error) {
	t.Helper()
	mock := NewMockProvider(queue...)
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{})
	if (err != nil) != wantErr {
		t.Fatalf("Generate() error = %v, wantErr %v", err, wantErr)
	}
	if mock.CallCount() != wantCalls {
		t.Fatalf("calls = %d, want %d", mock.CallCount(), wantCalls)
	}
	return resp, err
}

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func ok() MockResponse {
	return MockResponse{Content: json.RawMessage(`{"ok":true}`)}
}

func TestRetryFirstAttemptSucceeds(t *testing.T) {
	resp, _ := retryCase(t, []MockResponse{ok()}, 1, false)
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("content = %s", resp.Content)
	}
}

func TestRetryRecoversFromTransientFailure(t *testing.T) {
	resp, _ := retryCase(t, []MockResponse{down(), ok()}, 2, false)
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("content = %s", resp.Content)
	}
}

func TestRetryStopsAfterMaxAttempts(t *testing.T) {
	retryCase(t, []MockResponse{down(), down(), down()}, 3, true)
}

func TestRetryDoesNotRetryTruncation(t *testing.T) {
	queue := []MockResponse{
		{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{}`)}},
		ok(),
	}
	_, err := retryCase(t, queue, 1, true)
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("err = %T, want *ErrMaxTokensExceeded", err)
	}
}

func TestRetrySchemaViolationGetsOneRetry(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}}
	// Two bad responses in a row exhaust the single retry before the
	// good one is ever reached.
	retryCase(t, []MockResponse{bad, bad, ok()}, 2, true)
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	queue := []MockResponse{
		{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		ok(),
	}
	resp, _ := retryCase(t, queue, 2, false)
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("content = %s", resp.Content)
	}
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	mock := NewMockProvider(down(), down(), ok())
	p := WithRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}

func TestRetryModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != "mock" {
		t.Fatalf("ModelID() = %q", p.ModelID())
	}
}
