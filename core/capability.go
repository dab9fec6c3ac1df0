package orchestration

import "strings"

// Capability identifies one of the generative actions the gateway can route
// a message to.
type Capability string

const (
	CapabilityTextGeneration  Capability = "text_generation"
	CapabilityImageGeneration Capability = "image_generation"
	CapabilitySearch          Capability = "search"
	CapabilityTextToSpeech    Capability = "text_to_speech"
	// CapabilitySpeechToText is declared but has no trigger keywords;
	// Classify never returns it.
	CapabilitySpeechToText Capability = "speech_to_text"
	// CapabilityVision is declared but its trigger keywords are disabled;
	// Classify never returns it.
	CapabilityVision    Capability = "vision"
	CapabilityReasoning Capability = "reasoning"
)

// keywordDispatch is evaluated in order and the first matching set wins, so
// the priority is explicit: image before search before speech before
// reasoning. Matching is case-insensitive substring matching with no word
// boundaries ("audio" inside a longer word still routes to speech). This is
// the routing contract clients rely on, simplistic on purpose.
var keywordDispatch = []struct {
	capability Capability
	keywords   []string
}{
	{CapabilityImageGeneration, []string{"imagem", "desenhe", "crie uma imagem", "gere uma imagem", "picture", "draw", "image", "foto", "ilustração"}},
	{CapabilitySearch, []string{"pesquise", "busque", "procure", "search", "find", "latest", "news", "notícias", "o que está acontecendo"}},
	{CapabilityTextToSpeech, []string{"fale", "diga", "áudio", "voz", "speak", "say", "audio", "voice"}},
	// Vision keywords stay out of the table until the capability ships.
	{CapabilityReasoning, []string{"pense", "raciocine", "analise profundamente", "think", "reason", "analyze deeply", "complexo"}},
}

// Classify maps a raw message to the capability that should handle it. It is
// pure and deterministic and never fails; when nothing matches, plain text
// generation is the default.
func Classify(message string) Capability {
	messageLower := strings.ToLower(message)

	for _, entry := range keywordDispatch {
		for _, keyword := range entry.keywords {
			if strings.Contains(messageLower, keyword) {
				return entry.capability
			}
		}
	}

	return CapabilityTextGeneration
}

// Label returns the display name announced when the capability is selected.
func (c Capability) Label() string {
	switch c {
	case CapabilityTextGeneration:
		return "💬 Geração de Texto"
	case CapabilityImageGeneration:
		return "🎨 Geração de Imagem"
	case CapabilitySearch:
		return "🔍 Pesquisa Web"
	case CapabilityTextToSpeech:
		return "🔊 Text-to-Speech"
	case CapabilityReasoning:
		return "🧠 Raciocínio Avançado"
	case CapabilityVision:
		return "👁️ Análise de Imagem"
	}
	return "Unknown"
}

// statusLine returns the fixed progress note emitted right after selection.
func (c Capability) statusLine() string {
	switch c {
	case CapabilityImageGeneration:
		return "Gerando imagem..."
	case CapabilitySearch:
		return "Pesquisando na web..."
	case CapabilityTextToSpeech:
		return "Gerando áudio..."
	case CapabilityReasoning:
		return "Pensando profundamente..."
	}
	return "Gerando resposta..."
}
