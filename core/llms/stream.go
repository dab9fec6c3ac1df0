package llms

import (
	"context"
	"iter"
)

// Stream is a lazily-produced, finite, non-restartable sequence of chunks
// coming back from a completion endpoint. Chunks can only be consumed once;
// the producer suspends at every network-read boundary so the consumer
// controls the pace.
type Stream interface {
	Chunks(context.Context) iter.Seq2[StreamChunk, error]
}

type StreamChunk interface {
	FinishReason() *string
}

// StreamContentChunk carries an incremental piece of response text.
type StreamContentChunk interface {
	StreamChunk
	Content() string
}
