// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetch

import (
	"context"
	"net/url"
)

// A CookieManager supplies cookies for outgoing requests and persists
// cookies set by responses. Package cookies provides an implementation
// backed by a net/http cookie jar.
//
// Implementations of CookieManager must be safe for concurrent use by
// multiple goroutines: sibling builders issuing requests concurrently
// share the same CookieManager.
type CookieManager interface {
	// CookieString returns the value of the Cookie header to send with
	// a request to u, for example "a=1; b=2". An empty string means no
	// Cookie header is sent.
	CookieString(ctx context.Context, u *url.URL) (string, error)
	// StoreCookies persists the given Set-Cookie header values, received
	// in a successful response from u.
	StoreCookies(ctx context.Context, u *url.URL, setCookies []string) error
}
