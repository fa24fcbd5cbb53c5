// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetch

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
	"go.uber.org/zap"

	"github.com/gogama/fetch/uri"
)

var discardLogger = zap.NewNop()

// A Builder is an immutable HTTP request builder. It holds a target URL,
// a set of headers, a timeout, a pre-request hook, and an optional
// cookie manager.
//
// Every derivation method (At, WithParam, WithHeader, and so on)
// returns a new Builder and leaves the receiver unchanged, so a Builder
// may be shared freely and used as the base for any number of derived
// builders, including from multiple goroutines. The verb methods (Get,
// Post, etc.) never change the Builder either.
//
// Create a Builder with New or MustNew. The zero value is not usable.
type Builder struct {
	uri           uri.URI
	header        http.Header
	timeout       time.Duration
	beforeRequest Hook
	cookies       CookieManager
	httpDoer      HTTPDoer
	handlers      *HandlerGroup
	logger        *zap.Logger
}

// New returns a Builder targeting rawURL, configured by opts. An empty
// rawURL means "/".
//
// The URL parts in opts are applied in order: segments first, then
// query additions, then query removal.
func New(rawURL string, opts Options) (*Builder, error) {
	u, err := uri.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if opts.Timeout < 0 {
		return nil, errors.New("fetch: negative timeout")
	}

	u = addSegments(u, opts.URIParts.Segments)
	u = u.AddQuery(opts.URIParts.Query)
	if opts.URIParts.ExcludeQuery != "" {
		u = u.RemoveQuery(opts.URIParts.ExcludeQuery)
	}

	header := make(http.Header, len(opts.Headers))
	for key, value := range opts.Headers {
		header.Set(key, value)
	}

	hook := opts.BeforeRequest
	if hook == nil {
		hook = identity
	}

	return &Builder{
		uri:           u,
		header:        header,
		timeout:       opts.Timeout,
		beforeRequest: hook,
		cookies:       opts.Cookies,
		httpDoer:      opts.HTTPDoer,
		handlers:      opts.Handlers,
		logger:        opts.Logger,
	}, nil
}

// MustNew is like New but panics if the Builder cannot be created.
func MustNew(rawURL string, opts Options) *Builder {
	b, err := New(rawURL, opts)
	if err != nil {
		panic("fetch: " + err.Error())
	}
	return b
}

// URL returns the target URL as a string.
func (b *Builder) URL() string {
	return b.uri.String()
}

// Header returns a copy of the headers sent with every request. Changing
// the returned header does not change the Builder.
func (b *Builder) Header() http.Header {
	h := b.header.Clone()
	if h == nil {
		h = make(http.Header)
	}
	return h
}

// Timeout returns the transport timeout, or zero if there is none.
func (b *Builder) Timeout() time.Duration {
	return b.timeout
}

// At returns a new Builder whose URL has the given path segments
// appended. Each segment is percent-encoded, so
//
//	b.At("users", "a/b")
//
// appends the two segments "users" and "a%2Fb". Trailing slashes on
// the current path are dropped before appending, so a trailing empty
// segment left by an earlier At does not survive the next one.
func (b *Builder) At(segments ...string) *Builder {
	return b.derive(func(b2 *Builder) {
		b2.uri = addSegments(b2.uri, segments)
	})
}

// WithParam returns a new Builder with the query parameter key set to
// value. See uri.FormatScalar for how value is converted to a string.
func (b *Builder) WithParam(key string, value interface{}) *Builder {
	return b.WithParams(uri.Query{key: value})
}

// WithParams returns a new Builder with the given query parameters
// merged into its URL.
func (b *Builder) WithParams(q uri.Query) *Builder {
	return b.derive(func(b2 *Builder) {
		b2.uri = b2.uri.AddQuery(q)
	})
}

// WithQueryStruct returns a new Builder with the fields of v merged into
// its URL as query parameters. Parameter v must be a struct, or pointer
// to struct, whose fields may carry "url" tags as understood by
// github.com/google/go-querystring/query.
//
//	type listOptions struct {
//		Page    int  `url:"page,omitempty"`
//		Verbose bool `url:"verbose,omitempty"`
//	}
//	b2, err := b.WithQueryStruct(listOptions{Page: 2})
func (b *Builder) WithQueryStruct(v interface{}) (*Builder, error) {
	values, err := query.Values(v)
	if err != nil {
		return nil, err
	}
	return b.derive(func(b2 *Builder) {
		b2.uri = b2.uri.AddValues(values)
	}), nil
}

// WithoutParam returns a new Builder whose URL does not contain the query
// parameter key. It is not an error if key is absent.
func (b *Builder) WithoutParam(key string) *Builder {
	return b.derive(func(b2 *Builder) {
		b2.uri = b2.uri.RemoveQuery(key)
	})
}

// WithHeader returns a new Builder which sends the header key with the
// given value, replacing any existing value for key.
func (b *Builder) WithHeader(key, value string) *Builder {
	return b.derive(func(b2 *Builder) {
		b2.header.Set(key, value)
	})
}

// WithHeaders returns a new Builder whose headers are the receiver's
// headers overlaid with h. Values in h win on collision.
func (b *Builder) WithHeaders(h map[string]string) *Builder {
	return b.derive(func(b2 *Builder) {
		for key, value := range h {
			b2.header.Set(key, value)
		}
	})
}

// WithoutHeader returns a new Builder which does not send the header key.
// It is not an error if key is absent.
func (b *Builder) WithoutHeader(key string) *Builder {
	return b.derive(func(b2 *Builder) {
		b2.header.Del(key)
	})
}

// derive copies b, gives the copy its own header map, and applies change
// to the copy.
func (b *Builder) derive(change func(b2 *Builder)) *Builder {
	b2 := new(Builder)
	*b2 = *b
	b2.header = b.header.Clone()
	if b2.header == nil {
		b2.header = make(http.Header)
	}
	change(b2)
	return b2
}

func (b *Builder) doer() HTTPDoer {
	if b.httpDoer == nil {
		return http.DefaultClient
	}

	return b.httpDoer
}

func (b *Builder) log() *zap.Logger {
	if b.logger == nil {
		return discardLogger
	}
	return b.logger
}

func addSegments(u uri.URI, segments []string) uri.URI {
	if len(segments) == 0 {
		return u
	}
	escaped := make([]string, len(segments))
	for i, segment := range segments {
		escaped[i] = url.PathEscape(segment)
	}
	u2, err := u.AddSegments(escaped...)
	if err != nil {
		// url.PathEscape never produces an invalid escape sequence.
		panic("fetch: " + err.Error())
	}
	return u2
}
