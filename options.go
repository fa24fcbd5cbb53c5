// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetch

import (
	"time"

	"go.uber.org/zap"

	"github.com/gogama/fetch/request"
	"github.com/gogama/fetch/uri"
)

// A Hook transforms the request parameters of a call immediately before
// the request pipeline begins. The Params passed to a Hook, including
// its Header, are private to the call and may be modified and returned.
type Hook func(p request.Params) request.Params

// URIParts describes changes applied to the base URL when a Builder is
// constructed. They are applied in field order: Segments, then Query,
// then ExcludeQuery.
type URIParts struct {
	// Segments are raw path segments appended to the base URL path.
	// Each segment is percent-encoded before it is appended, so a
	// segment containing "/" stays a single segment.
	Segments []string
	// Query contains query parameters merged into the URL.
	Query uri.Query
	// ExcludeQuery names a query parameter removed from the URL, if
	// present.
	ExcludeQuery string
}

// Options configures a new Builder. The zero value is a valid
// configuration.
type Options struct {
	// URIParts specifies segments and query changes applied to the base
	// URL.
	URIParts URIParts
	// Headers specifies headers sent with every request. Header names
	// are case-insensitive.
	Headers map[string]string
	// Timeout limits the transport call, including reading the response
	// body. Zero means no timeout. Negative values are invalid.
	Timeout time.Duration
	// BeforeRequest is applied to the request parameters of each call
	// before the pipeline runs. If nil, the parameters are used as-is.
	BeforeRequest Hook
	// Cookies supplies and persists cookies. If nil, the builder
	// neither sends a Cookie header of its own nor captures Set-Cookie
	// headers.
	Cookies CookieManager
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard net/http
	// package is used.
	HTTPDoer HTTPDoer
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a call.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
	// Logger receives debug-level records of each request and its
	// outcome. If nil, nothing is logged.
	Logger *zap.Logger
}

func identity(p request.Params) request.Params {
	return p
}
