package orchestration

import "testing"

func TestClassifyImageKeywords(t *testing.T) {
	messages := []string{
		"crie uma imagem de um gato",
		"desenhe um cachorro",
		"gere uma foto de paisagem",
		"create a picture of sunset",
		"draw a cat",
	}

	for _, message := range messages {
		if got := Classify(message); got != CapabilityImageGeneration {
			t.Fatalf("Classify(%q): expected %q, got %q", message, CapabilityImageGeneration, got)
		}
	}
}

func TestClassifySearchKeywords(t *testing.T) {
	messages := []string{
		"pesquise sobre IA",
		"busque informações sobre Go",
		"search for something",
		"o que está acontecendo no mundo",
	}

	for _, message := range messages {
		if got := Classify(message); got != CapabilitySearch {
			t.Fatalf("Classify(%q): expected %q, got %q", message, CapabilitySearch, got)
		}
	}
}

func TestClassifySpeechKeywords(t *testing.T) {
	messages := []string{
		"fale olá",
		"diga bom dia",
		"speak this text",
		"gere áudio dizendo teste",
	}

	for _, message := range messages {
		if got := Classify(message); got != CapabilityTextToSpeech {
			t.Fatalf("Classify(%q): expected %q, got %q", message, CapabilityTextToSpeech, got)
		}
	}
}

func TestClassifyReasoningKeywords(t *testing.T) {
	messages := []string{
		"pense sobre isso",
		"raciocine sobre o problema",
		"think deeply about this",
		"analise profundamente",
	}

	for _, message := range messages {
		if got := Classify(message); got != CapabilityReasoning {
			t.Fatalf("Classify(%q): expected %q, got %q", message, CapabilityReasoning, got)
		}
	}
}

func TestClassifyDefaultsToTextGeneration(t *testing.T) {
	messages := []string{
		"olá, como vai?",
		"explique o que é IA",
		"conte-me uma história",
	}

	for _, message := range messages {
		if got := Classify(message); got != CapabilityTextGeneration {
			t.Fatalf("Classify(%q): expected %q, got %q", message, CapabilityTextGeneration, got)
		}
	}
}

func TestClassifyImageTakesPrecedenceOverSearch(t *testing.T) {
	// Matches both an image keyword (draw) and search keywords
	// (latest, news); image is checked first and must win.
	if got := Classify("draw the latest news"); got != CapabilityImageGeneration {
		t.Fatalf("expected image to win over search, got %q", got)
	}
}

func TestClassifySearchTakesPrecedenceOverSpeech(t *testing.T) {
	if got := Classify("search for a nice voice"); got != CapabilitySearch {
		t.Fatalf("expected search to win over speech, got %q", got)
	}
}

func TestClassifyIgnoresWordBoundaries(t *testing.T) {
	// "audio" inside a longer word still routes to speech. Substring
	// matching is part of the routing contract.
	if got := Classify("algo sobre audiovisual"); got != CapabilityTextToSpeech {
		t.Fatalf("expected substring match to route to speech, got %q", got)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	if got := Classify("DRAW A CAT"); got != CapabilityImageGeneration {
		t.Fatalf("expected case-insensitive match, got %q", got)
	}
}

func TestDormantCapabilitiesHaveNoDispatchEntry(t *testing.T) {
	for _, entry := range keywordDispatch {
		if entry.capability == CapabilityVision || entry.capability == CapabilitySpeechToText {
			t.Fatalf("expected %q to stay out of the dispatch table", entry.capability)
		}
	}
}
