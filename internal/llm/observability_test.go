package llm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogObserverSuccess(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(&buf)

	obs.OnCallComplete(CallEvent{Model: "gpt-4o-mini", LatencyMs: 120, Success: true})

	out := buf.String()
	assert.Contains(t, out, "llm_call")
	assert.Contains(t, out, "model=gpt-4o-mini")
	assert.Contains(t, out, "latency_ms=120")
	assert.Contains(t, out, "status=ok")
}

func TestLogObserverFailure(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(&buf)

	obs.OnCallComplete(CallEvent{Model: "gpt-4o-mini", Success: false, ErrorCode: "RATE_LIMITED"})

	assert.Contains(t, buf.String(), "status=err:RATE_LIMITED")
}
