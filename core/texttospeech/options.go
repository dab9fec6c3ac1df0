package texttospeech

// Options describes a single speech synthesis request. Zero values mean
// "use the client default".
type Options struct {
	Model string
	Voice string
}

type Option func(*Options)

// WithVoice selects the synthesis voice. Unrecognized names are passed
// through to the provider uninterpreted.
func WithVoice(voice string) Option {
	return func(o *Options) {
		o.Voice = voice
	}
}

// WithModel selects the audio model.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}
