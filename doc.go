// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package fetch provides an immutable HTTP request builder.

Create a Builder for a base URL, then derive builders for specific
resources. Every derivation returns a new Builder, so a base builder can
be shared and reused:

	api := fetch.MustNew("https://api.example.com/v1", fetch.Options{
		Headers: map[string]string{"Accept": "application/json"},
		Timeout: 10 * time.Second,
	})
	users := api.At("users")
	e, err := users.WithParam("limit", 20).Get(ctx)
	...
	e, err := users.At("42").Put(ctx, body, "application/json")
	...
	e, err := users.At("42").Delete(ctx)

Each verb method runs a fixed pipeline: the pre-request hook, the cookie
read, the transport call, the status check, and the cookie write. A
response status outside the 2XX range, other than 304 Not Modified, is
reported as a *StatusError carrying the status and the response body:

	e, err := users.At("missing").Get(ctx)
	if fetch.IsStatus(err, http.StatusNotFound) {
		...
	}

For control over how requests are sent, use a custom HTTPDoer. For
example, use a GoLang standard HTTP client:

	doer := &http.Client{
		..., // See package "net/http" for detailed documentation
	}
	b := fetch.MustNew(url, fetch.Options{HTTPDoer: doer})

To send and capture cookies, install a CookieManager, for example the
cookie jar from package cookies:

	jar, err := cookies.NewJar()
	...
	b := fetch.MustNew(url, fetch.Options{Cookies: jar})

To hook into the details of request execution, install a handler into
the appropriate handler chain:

	handlers := &fetch.HandlerGroup{}
	handlers.PushBack(fetch.AfterExecutionEnd, fetch.HandlerFunc(
		func(_ fetch.Event, e *request.Execution) {
			log.Printf("%s %s: %d in %s", e.Params.Method, e.URL, e.StatusCode(), e.Duration())
		}),
	)
	b := fetch.MustNew(url, fetch.Options{Handlers: handlers})

Package fetch provides basic interfaces for each verb method (Fetcher,
Sender, Getter, Header, Optioner, Poster, Putter, and Deleter), a
combined interface that composes all of them (Executor), and utility
functions for one-off requests (Get, Head, and Post).
*/
package fetch
