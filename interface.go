// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetch

import (
	"context"

	"github.com/gogama/fetch/request"
)

// Fetcher is the interface that wraps the basic Fetch method.
//
// Fetch issues a request without a body using the given method and
// returns the final execution state (and error, if any). Builder
// implements the Fetcher interface.
type Fetcher interface {
	Fetch(ctx context.Context, method string) (*request.Execution, error)
}

// Sender is the interface that wraps the basic Send method.
//
// Send issues a request with the given method, body, and content type
// and returns the final execution state (and error, if any). Builder
// implements the Sender interface.
type Sender interface {
	Send(ctx context.Context, method string, body interface{}, mime string) (*request.Execution, error)
}

// Getter is the interface that wraps the basic Get method.
type Getter interface {
	Get(ctx context.Context) (*request.Execution, error)
}

// Header is the interface that wraps the basic Head method.
type Header interface {
	Head(ctx context.Context) (*request.Execution, error)
}

// Optioner is the interface that wraps the basic Options method.
type Optioner interface {
	Options(ctx context.Context) (*request.Execution, error)
}

// Poster is the interface that wraps the basic Post method.
//
// The body parameter may be nil for an empty body, or may be any of the
// types supported by request.BodyBytes, namely: string; []byte;
// io.Reader; and io.ReadCloser.
type Poster interface {
	Post(ctx context.Context, body interface{}, mime string) (*request.Execution, error)
}

// Putter is the interface that wraps the basic Put method.
type Putter interface {
	Put(ctx context.Context, body interface{}, mime string) (*request.Execution, error)
}

// Deleter is the interface that wraps the basic Delete method.
type Deleter interface {
	Delete(ctx context.Context) (*request.Execution, error)
}

// Executor is the interface that groups all of the verb methods.
// Builder implements Executor.
type Executor interface {
	Fetcher
	Sender
	Getter
	Header
	Optioner
	Poster
	Putter
	Deleter
}

var _ Executor = (*Builder)(nil)

// Get issues a GET to the specified URL using a Builder with default
// options.
//
// To send custom headers or use cookies, create a Builder with New.
func Get(ctx context.Context, url string) (*request.Execution, error) {
	b, err := New(url, Options{})
	if err != nil {
		return nil, err
	}
	return b.Get(ctx)
}

// Head issues a HEAD to the specified URL using a Builder with default
// options.
func Head(ctx context.Context, url string) (*request.Execution, error) {
	b, err := New(url, Options{})
	if err != nil {
		return nil, err
	}
	return b.Head(ctx)
}

// Post issues a POST to the specified URL using a Builder with default
// options.
//
// The body parameter may be nil for an empty body, or may be any of the
// types supported by request.BodyBytes.
func Post(ctx context.Context, url, mime string, body interface{}) (*request.Execution, error) {
	b, err := New(url, Options{})
	if err != nil {
		return nil, err
	}
	return b.Post(ctx, body, mime)
}
