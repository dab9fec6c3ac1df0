package pollinations

import (
	"net/url"
	"strings"
	"testing"

	"github.com/polliant/megagent-core/core/texttospeech"
)

func TestSpeakableTextStripsTriggers(t *testing.T) {
	testCases := []struct {
		name     string
		message  string
		expected string
	}{
		{name: "say with colon", message: "say: hello", expected: "hello"},
		{name: "say with space", message: "say hello world", expected: "hello world"},
		{name: "speak with colon", message: "speak: good morning", expected: "good morning"},
		{name: "fale with colon", message: "fale: bom dia", expected: "bom dia"},
		{name: "diga with space", message: "diga bom dia", expected: "bom dia"},
		{name: "case insensitive", message: "Say: Hello", expected: "Hello"},
		{name: "trigger mid-message", message: "por favor diga bom dia", expected: "bom dia"},
		{name: "no trigger", message: "gere áudio com essa frase", expected: "gere áudio com essa frase"},
		{name: "trigger with nothing after", message: "say: ", expected: "say: "},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := SpeakableText(testCase.message); got != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, got)
			}
		})
	}
}

func TestSpeechURLCarriesModelAndVoice(t *testing.T) {
	client := NewClient()

	got := client.SpeechURL("Hello world", texttospeech.WithVoice("nova"))

	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("expected a parseable URL, got %q: %v", got, err)
	}
	query := parsed.Query()
	if query.Get("voice") != "nova" {
		t.Fatalf("expected voice=nova, got %q", query.Get("voice"))
	}
	if query.Get("model") != "openai-audio" {
		t.Fatalf("expected model=openai-audio, got %q", query.Get("model"))
	}
}

func TestSpeechURLDropsTriggerFromSpokenText(t *testing.T) {
	client := NewClient()

	got := client.SpeechURL("say: hello")

	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("expected a parseable URL, got %q: %v", got, err)
	}
	if want := "/" + recitationInstruction + "hello"; parsed.Path != want {
		t.Fatalf("expected spoken text without the trigger, path %q, got %q", want, parsed.Path)
	}
	if strings.Contains(parsed.Path, "say:") {
		t.Fatalf("expected the unprocessed trigger to be absent, got path %q", parsed.Path)
	}
}

func TestSpeechURLWrapsTextInRecitationInstruction(t *testing.T) {
	client := NewClient(WithBaseURL("https://audio.example.com"))

	got := client.SpeechURL("Hello world")

	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("expected a parseable URL, got %q: %v", got, err)
	}
	if want := "/Say verbatim: Hello world"; parsed.Path != want {
		t.Fatalf("expected path %q, got %q", want, parsed.Path)
	}
}
