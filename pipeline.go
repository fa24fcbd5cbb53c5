// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/gogama/fetch/request"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

var emptyHandlers = HandlerGroup{}

// run executes the request pipeline for p and returns the final
// execution state. The stages run strictly in order, and the first
// failing stage ends the execution:
//
// 1. cookie read: the cookie manager, if any, supplies the Cookie header;
//
// 2. transport: the request is sent and the whole response body read;
//
// 3. status check: a non-2XX status other than 304 becomes a
// *StatusError;
//
// 4. cookie write: the cookie manager, if any, stores the response's
// Set-Cookie headers.
func (b *Builder) run(ctx context.Context, p request.Params) (*request.Execution, error) {
	if ctx == nil {
		panic("fetch: nil context")
	}
	if p.Header == nil {
		p.Header = make(http.Header)
	}

	e := &request.Execution{
		Params: &p,
		URL:    b.uri.URL(),
	}

	handlers := b.handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}
	handlers.run(BeforeExecutionStart, e)
	e.Start = time.Now()

	e.Err = b.pipeline(ctx, e, handlers)

	e.End = time.Now()
	handlers.run(AfterExecutionEnd, e)
	b.logEnd(e)
	return e, e.Err
}

func (b *Builder) pipeline(ctx context.Context, e *request.Execution, handlers *HandlerGroup) error {
	if err := e.Params.Validate(); err != nil {
		return err
	}
	if err := b.readCookies(ctx, e); err != nil {
		return err
	}
	if err := b.sendAndReceive(ctx, e, handlers); err != nil {
		return err
	}
	if err := checkStatus(e); err != nil {
		return err
	}
	return b.storeCookies(ctx, e)
}

func (b *Builder) readCookies(ctx context.Context, e *request.Execution) error {
	if b.cookies == nil {
		return nil
	}
	s, err := b.cookies.CookieString(ctx, e.URL)
	if err != nil {
		return err
	}
	if s != "" {
		e.Params.Header.Set("Cookie", s)
	}
	return nil
}

func (b *Builder) sendAndReceive(ctx context.Context, e *request.Execution, handlers *HandlerGroup) error {
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}
	e.Request = e.Params.ToRequest(ctx, e.URL)
	handlers.run(BeforeSend, e)
	b.log().Debug("fetch: sending request",
		zap.String("method", e.Request.Method), zap.Stringer("url", e.Request.URL))

	var err error
	e.Response, err = b.doer().Do(e.Request)
	if err != nil {
		e.Err = err
	} else {
		e.Err = readBody(e)
	}
	handlers.run(AfterReceive, e)
	return e.Err
}

func readBody(e *request.Execution) error {
	if e.Response.Body == nil {
		e.Body = []byte{}
		return nil
	}
	defer func() {
		_ = e.Response.Body.Close()
	}()
	b, err := io.ReadAll(e.Response.Body)
	if err != nil {
		return urlErrorWrap(e.Params.Method, e.URL, err)
	}
	e.Body = b
	return nil
}

func checkStatus(e *request.Execution) error {
	if c := e.StatusCode(); (200 <= c && c <= 299) || c == http.StatusNotModified {
		return nil
	}

	return &StatusError{
		Message:      e.StatusText(),
		Status:       e.StatusCode(),
		ResponseText: string(e.Body),
	}
}

func (b *Builder) storeCookies(ctx context.Context, e *request.Execution) error {
	if b.cookies == nil {
		return nil
	}
	err := b.cookies.StoreCookies(ctx, e.URL, e.Response.Header.Values("Set-Cookie"))
	if err != nil {
		b.log().Warn("fetch: failed to store cookies",
			zap.Stringer("url", e.URL), zap.Error(err))
	}
	return err
}

func (b *Builder) logEnd(e *request.Execution) {
	l := b.log().With(
		zap.String("method", e.Params.Method),
		zap.Stringer("url", e.URL),
		zap.Int("status", e.StatusCode()),
		zap.Duration("duration", e.Duration()))
	if e.Err != nil {
		l.Debug("fetch: request failed", zap.Error(e.Err))
		return
	}
	l.Debug("fetch: request complete")
}
