package pollinations

import (
	"net/url"
	"strings"

	"github.com/polliant/megagent-core/core/texttospeech"
)

const (
	// DefaultBaseURL is the public Pollinations text endpoint, which doubles
	// as the audio endpoint when addressed with an audio model.
	DefaultBaseURL = "https://text.pollinations.ai"

	defaultModel = "openai-audio"
	defaultVoice = "nova"

	// recitationInstruction makes the provider read the text as-is instead
	// of answering it.
	recitationInstruction = "Say verbatim: "
)

// triggers are the recognized leading phrases that mark the rest of the
// message as the text to speak. Order matters: colon-suffixed forms are
// checked before space-suffixed ones.
var triggers = []string{
	"fale:",
	"diga:",
	"speak:",
	"say:",
	"fale ",
	"diga ",
	"speak ",
	"say ",
}

// SpeakableText isolates the text actually meant to be spoken by stripping
// the first recognized trigger phrase, matched case-insensitively anywhere in
// the message. When no trigger is found, or stripping would leave nothing,
// the whole message is speakable.
func SpeakableText(message string) string {
	messageLower := strings.ToLower(message)

	for _, trigger := range triggers {
		idx := strings.Index(messageLower, trigger)
		if idx < 0 {
			continue
		}
		if text := strings.TrimSpace(message[idx+len(trigger):]); text != "" {
			return text
		}
	}

	return message
}

type Client struct {
	baseURL string
}

type ClientOption func(*Client)

// WithBaseURL overrides the audio endpoint base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SpeechURL derives the audio resource URL for the message. The provider
// synthesizes the speech when the URL is fetched; no network call happens
// here. Trigger phrases are stripped from the message first.
func (c *Client) SpeechURL(message string, opts ...texttospeech.Option) string {
	options := texttospeech.Options{
		Model: defaultModel,
		Voice: defaultVoice,
	}
	for _, opt := range opts {
		opt(&options)
	}

	params := url.Values{}
	params.Set("model", options.Model)
	params.Set("voice", options.Voice)

	return c.baseURL + "/" + url.PathEscape(recitationInstruction+SpeakableText(message)) + "?" + params.Encode()
}
