// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package cookies provides Jar, a cookie manager for fetch.Builder.

A Jar sends cookies held for a request URL as the Cookie header and
captures the Set-Cookie headers of successful responses:

	jar, err := cookies.NewJar()
	...
	b := fetch.MustNew("https://example.com", fetch.Options{Cookies: jar})
	_, err = b.At("login").Post(ctx, creds, "application/json")
	...
	e, err := b.At("profile").Get(ctx) // sends the session cookie

Cookies live in memory for the lifetime of the Jar. To persist them,
wrap a custom http.CookieJar with NewJarFrom.
*/
package cookies
