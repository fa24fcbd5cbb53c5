// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetch

import (
	"context"
	"time"

	"github.com/gogama/fetch/request"
)

// Fetch issues a request without a body using the given method. An
// empty method means GET.
//
// The request parameters are built from a copy of the builder's
// headers and passed through the pre-request hook before the request
// pipeline runs.
//
// The returned Execution is never nil. If the server responds with a
// status outside the 2XX range other than 304, the error is a
// *StatusError and the Execution still holds the response. Errors from
// the HTTPDoer are returned unchanged; an error reading the response
// body is returned as a *url.Error.
func (b *Builder) Fetch(ctx context.Context, method string) (*request.Execution, error) {
	return b.Send(ctx, orDefault(method, "GET"), nil, "")
}

// Get issues a GET request. It is shorthand for b.Fetch(ctx, "GET").
func (b *Builder) Get(ctx context.Context) (*request.Execution, error) {
	return b.Fetch(ctx, "GET")
}

// Head issues a HEAD request. It is shorthand for b.Fetch(ctx, "HEAD").
func (b *Builder) Head(ctx context.Context) (*request.Execution, error) {
	return b.Fetch(ctx, "HEAD")
}

// Options issues an OPTIONS request. It is shorthand for
// b.Fetch(ctx, "OPTIONS").
func (b *Builder) Options(ctx context.Context) (*request.Execution, error) {
	return b.Fetch(ctx, "OPTIONS")
}

// Send issues a request with the given method and body. An empty method
// means POST.
//
// The body parameter may be nil for an empty body, or may be any of the
// types supported by request.BodyBytes, namely: string; []byte;
// io.Reader; and io.ReadCloser.
//
// If mime is not empty, the request carries a Content-Type header with
// that value. The header is set on this call's request only; the
// builder's own headers are not changed.
//
// Errors are reported as documented on Fetch.
func (b *Builder) Send(ctx context.Context, method string, body interface{}, mime string) (*request.Execution, error) {
	method = orDefault(method, "POST")
	p, err := request.NewParams(method, b.header, body)
	if err != nil {
		return b.abort(request.Params{Method: method}, err)
	}
	if mime != "" {
		p.Header.Set("Content-Type", mime)
	}
	return b.run(ctx, b.beforeRequest(p))
}

// Post issues a POST request. It is shorthand for
// b.Send(ctx, "POST", body, mime).
func (b *Builder) Post(ctx context.Context, body interface{}, mime string) (*request.Execution, error) {
	return b.Send(ctx, "POST", body, mime)
}

// Put issues a PUT request. It is shorthand for
// b.Send(ctx, "PUT", body, mime).
func (b *Builder) Put(ctx context.Context, body interface{}, mime string) (*request.Execution, error) {
	return b.Send(ctx, "PUT", body, mime)
}

// Delete issues a DELETE request with no body and no Content-Type. It is
// shorthand for b.Send(ctx, "DELETE", nil, "").
func (b *Builder) Delete(ctx context.Context) (*request.Execution, error) {
	return b.Send(ctx, "DELETE", nil, "")
}

// abort returns an ended execution for a call that failed before the
// pipeline could start.
func (b *Builder) abort(p request.Params, err error) (*request.Execution, error) {
	now := time.Now()
	e := &request.Execution{
		Params: &p,
		URL:    b.uri.URL(),
		Start:  now,
		End:    now,
		Err:    err,
	}
	return e, err
}

func orDefault(method, def string) string {
	if method == "" {
		return def
	}
	return method
}
