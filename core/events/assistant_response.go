package events

const (
	// KindResponseSegment identifies streamed assistant response text.
	KindResponseSegment Kind = "assistant_response.segment"
	// KindMediaGenerated identifies a derived media resource URL.
	KindMediaGenerated Kind = "assistant_response.media"
)

// ResponseSegment carries a streamed assistant response text segment.
type ResponseSegment struct {
	Base
	Segment string
}

// NewResponseSegment creates an assistant response segment event.
func NewResponseSegment(segment string) ResponseSegment {
	return ResponseSegment{Base: NewBase(KindResponseSegment), Segment: segment}
}

// MediaGenerated carries the URL of a generated media resource together with
// the prompt it was derived from. For images the prompt is the image prompt;
// for speech it is the original message.
type MediaGenerated struct {
	Base
	URL string
	// Prompt is the text the media resource was derived from.
	Prompt string
	// Capability is the machine-readable tag of the producing capability.
	Capability string
}

// NewMediaGenerated creates a media generated event.
func NewMediaGenerated(url, prompt, capability string) MediaGenerated {
	return MediaGenerated{Base: NewBase(KindMediaGenerated), URL: url, Prompt: prompt, Capability: capability}
}
