// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// An Execution represents the state of a single request issued by a
// fetch.Builder, and doubles as the response view returned to the
// caller.
//
// An Execution is created when a verb method is called and updated as
// the request moves through the pipeline: cookie read, transport call,
// status check, and cookie write. Event handlers receive the Execution
// at designated points and may set values on it using SetValue, but
// should otherwise treat its exported fields as read-only. A limited
// exception is making reasonable changes to the http.Request during the
// BeforeSend event.
type Execution struct {
	// Params specifies the request parameters, after the pre-request
	// hook has been applied. It is never nil.
	Params *Params
	// URL is the target URL of the request. It is never nil.
	URL *url.URL
	// Start is the start time of the execution.
	Start time.Time
	// End is the end time of the execution. It contains the zero value
	// until the execution ends.
	End time.Time
	// Request specifies the HTTP request sent, or about to be sent, to
	// the transport. It is nil if the execution failed before the
	// transport stage.
	Request *http.Request
	// Response specifies the HTTP response received. It is nil if the
	// execution failed before a response was received.
	//
	// The response body has always been fully read and closed by the
	// time the caller sees the Execution; use the Body field instead.
	Response *http.Response
	// Err indicates the error that ended the execution, if any. Once
	// the execution has ended, Err has the same value as the error
	// returned by the verb method.
	Err error
	// Body is the complete response body. It is nil if no response was
	// received or if reading the body failed.
	Body []byte

	data context.Context
}

// StatusCode returns the status code of the HTTP response. If there is
// no HTTP response, 0 is returned.
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}

// StatusText returns the reason phrase of the HTTP response, for
// example "Not Found". If the server sent no reason phrase, the
// standard text for the status code is returned. If there is no HTTP
// response, the empty string is returned.
func (e *Execution) StatusText() string {
	if e.Response == nil {
		return ""
	}
	return StatusText(e.Response)
}

// Header returns the HTTP response headers. If there is no HTTP
// response, the nil header is returned.
//
// Note that a nil return value is always safe for read-only operations,
// since http.Header is a map type.
func (e *Execution) Header() http.Header {
	if e.Response == nil {
		var nilHeader http.Header
		return nilHeader
	}
	return e.Response.Header
}

// Text returns the response body as a string.
func (e *Execution) Text() string {
	return string(e.Body)
}

// JSON decodes the response body as JSON into v.
func (e *Execution) JSON(v interface{}) error {
	if e.Body == nil {
		return errors.New("fetch/request: no response body")
	}
	return json.Unmarshal(e.Body, v)
}

// Get extracts the value at the given gjson path from a JSON response
// body, for example "data.items.0.name". If the body is not JSON or
// the path does not exist, the returned result's Exists method reports
// false.
func (e *Execution) Get(path string) gjson.Result {
	return gjson.GetBytes(e.Body, path)
}

// Duration returns the duration of the execution.
//
// If the execution has not yet started, the duration is zero. If the
// execution has ended, the duration returned is equal to End minus
// Start. Otherwise, it is equal to the current time minus Start.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Since(e.Start)
	}
	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the execution has ended.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// Timeout indicates whether Err is a timeout, for example because the
// builder's timeout elapsed during the transport call. Timeout looks at
// wrapped cause errors contained within Err, not just Err itself.
func (e *Execution) Timeout() bool {
	if e.Err == nil {
		return false
	}
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var t hasTimeout
	return errors.As(e.Err, &t) && t.Timeout()
}

type hasTimeout interface {
	Timeout() bool
}

// SetValue allows event handlers to store arbitrary data in the
// execution.
//
// The key must follow the same rules as the key parameter in
// context.WithValue: it may not be nil, it must be comparable, and it
// should not be of type string or any other built-in type.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}
	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}
	return ctx.Value(key)
}

// StatusText returns the reason phrase of r, falling back to the
// standard text for the status code when the server sent none.
func StatusText(r *http.Response) string {
	code := strconv.Itoa(r.StatusCode)
	if text := strings.TrimSpace(strings.TrimPrefix(r.Status, code)); text != "" {
		return text
	}
	return http.StatusText(r.StatusCode)
}
