package imagegen

// Options describes a single image generation request. Zero values mean
// "use the client default".
type Options struct {
	Model  string
	Width  int
	Height int
	Seed   *int
}

type Option func(*Options)

// WithModel selects the image model. Unrecognized names are passed through
// to the provider uninterpreted.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithSize sets the output dimensions in pixels.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithSeed pins the generation seed for reproducible output.
func WithSeed(seed int) Option {
	return func(o *Options) {
		o.Seed = &seed
	}
}
