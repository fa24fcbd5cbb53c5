// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

var (
	template, _ = http.NewRequest("GET", "", nil)
)

// Params contains the parameters of a single HTTP request issued by a
// fetch.Builder verb method.
//
// A fresh Params is built for every call from the builder's stored
// headers, passed through the builder's pre-request hook, and then
// discarded when the call completes. Because Header is a private copy
// for the call, a pre-request hook may modify it freely without
// affecting the builder.
type Params struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.).
	// An empty string means GET.
	Method string
	// Header contains the request header fields to be sent.
	//
	// For further details, see the documentation of Request.Header in
	// the net/http package.
	Header http.Header
	// Body is the pre-buffered request body to be sent. A nil body
	// indicates no request body should be sent, for example on a GET
	// or DELETE request.
	Body []byte
}

// NewParams returns Params for the given method, header, and optional
// body. The header is cloned, so later changes to h do not affect the
// returned Params.
//
// Parameter body may be nil (empty body), or it may be a string,
// []byte, io.Reader, or io.ReadCloser. If body is an io.Reader, it is
// read to the end and buffered into a []byte. If body is an
// io.ReadCloser, it is closed after buffering.
func NewParams(method string, h http.Header, body interface{}) (Params, error) {
	if method == "" {
		method = "GET"
	}
	b, err := BodyBytes(body)
	if err != nil {
		return Params{}, err
	}
	header := h.Clone()
	if header == nil {
		header = make(http.Header)
	}
	return Params{
		Method: method,
		Header: header,
		Body:   b,
	}, nil
}

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	p2 := p
	p2.Header = p.Header.Clone()
	if p.Body != nil {
		p2.Body = append([]byte{}, p.Body...)
	}
	return p2
}

// Validate reports whether p can be turned into a well-formed HTTP
// request: the method must be an HTTP token, and every header field
// name and value must be valid.
func (p Params) Validate() error {
	if !validMethod(p.Method) {
		return fmt.Errorf("fetch/request: invalid method %q", p.Method)
	}
	for name, values := range p.Header {
		if !httpguts.ValidHeaderFieldName(name) {
			return fmt.Errorf("fetch/request: invalid header field name %q", name)
		}
		for _, value := range values {
			if !httpguts.ValidHeaderFieldValue(value) {
				return fmt.Errorf("fetch/request: invalid header field value for %q", name)
			}
		}
	}
	return nil
}

// ToRequest creates an HTTP request for the given target URL from the
// request parameters. The context of the new request is set to ctx,
// which may not be nil.
func (p Params) ToRequest(ctx context.Context, u *url.URL) *http.Request {
	r := template.WithContext(ctx)
	r.Method = p.Method
	if r.Method == "" {
		r.Method = "GET"
	}
	r.URL = u
	r.Host = u.Host
	r.Header = p.Header
	if r.Header == nil {
		r.Header = make(http.Header)
	}
	if len(p.Body) > 0 {
		body := p.Body
		r.Body = io.NopCloser(bytes.NewReader(body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		r.ContentLength = int64(len(body))
	}
	return r
}

func validMethod(method string) bool {
	/*
	     Method         = "OPTIONS"                ; Section 9.2
	                    | "GET"                    ; Section 9.3
	                    | "HEAD"                   ; Section 9.4
	                    | "POST"                   ; Section 9.5
	                    | "PUT"                    ; Section 9.6
	                    | "DELETE"                 ; Section 9.7
	                    | "TRACE"                  ; Section 9.8
	                    | "CONNECT"                ; Section 9.9
	                    | extension-method
	   extension-method = token
	     token          = 1*<any CHAR except CTLs or separators>

	   The empty string is interpreted as "GET".
	*/
	return strings.IndexFunc(method, isNotToken) == -1
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}
