package pollinations

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/polliant/megagent-core/core/imagegen"
)

const (
	// DefaultBaseURL is the public Pollinations image endpoint.
	DefaultBaseURL = "https://image.pollinations.ai"

	defaultModel  = "flux"
	defaultWidth  = 1024
	defaultHeight = 1024
)

type Client struct {
	baseURL string
}

type ClientOption func(*Client)

// WithBaseURL overrides the image endpoint base URL.
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

// ImageURL derives the resource URL for the prompt. The provider renders the
// image when the URL is fetched; no network call happens here.
func (c *Client) ImageURL(prompt string, opts ...imagegen.Option) string {
	options := imagegen.Options{
		Model:  defaultModel,
		Width:  defaultWidth,
		Height: defaultHeight,
	}
	for _, opt := range opts {
		opt(&options)
	}

	params := url.Values{}
	params.Set("model", options.Model)
	params.Set("width", strconv.Itoa(options.Width))
	params.Set("height", strconv.Itoa(options.Height))
	params.Set("nologo", "true")
	if options.Seed != nil {
		params.Set("seed", strconv.Itoa(*options.Seed))
	}

	return c.baseURL + "/prompt/" + url.PathEscape(prompt) + "?" + params.Encode()
}
