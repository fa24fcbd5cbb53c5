// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Params (describes the request
sent by one fetch.Builder verb call) and Execution (describes the state
of that call, and is the response view handed back to the caller).

A Params is built fresh for every call. It is passed through the
builder's pre-request hook, which may return modified parameters:

	b := fetch.MustNew("https://example.com", fetch.Options{
		BeforeRequest: func(p request.Params) request.Params {
			p.Header.Set("X-Request-Id", newID())
			return p
		},
	})

An Execution is returned by every verb method, whether or not the call
succeeded. It buffers the entire response body, which may be read as
text, decoded as JSON, or queried with a gjson path:

	e, err := b.At("users", "42").Get(ctx)
	...
	name := e.Get("profile.name").String()

You will typically not allocate Execution instances yourself, but will
instead work with the ones handed out by the builder.
*/
package request
