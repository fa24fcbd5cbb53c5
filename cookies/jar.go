// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cookies

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// A Jar is a cookie manager for fetch.Builder which keeps cookies in a
// net/http cookie jar. A Jar is safe for concurrent use by multiple
// goroutines if its underlying http.CookieJar is.
type Jar struct {
	jar http.CookieJar
}

// NewJar returns a Jar backed by an in-memory cookiejar.Jar which uses
// the public suffix list from golang.org/x/net/publicsuffix, so that
// servers cannot set cookies for a whole public suffix such as
// "co.uk".
func NewJar() (*Jar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
	})
	if err != nil {
		return nil, err
	}
	return &Jar{jar: jar}, nil
}

// NewJarFrom returns a Jar backed by the given cookie jar.
func NewJarFrom(jar http.CookieJar) *Jar {
	if jar == nil {
		panic("fetch/cookies: nil jar")
	}
	return &Jar{jar: jar}
}

// CookieJar returns the underlying cookie jar.
func (j *Jar) CookieJar() http.CookieJar {
	return j.jar
}

// CookieString returns the cookies the jar holds for u, formatted as a
// Cookie header value ("a=1; b=2"). It returns the empty string if the
// jar holds no cookies for u.
func (j *Jar) CookieString(_ context.Context, u *url.URL) (string, error) {
	cs := j.jar.Cookies(u)
	if len(cs) == 0 {
		return "", nil
	}
	pairs := make([]string, 0, len(cs))
	for _, c := range cs {
		pairs = append(pairs, (&http.Cookie{Name: c.Name, Value: c.Value}).String())
	}
	return strings.Join(pairs, "; "), nil
}

// StoreCookies parses the given Set-Cookie header values and stores the
// resulting cookies in the jar for u. Values which cannot be parsed are
// ignored, as a browser would.
func (j *Jar) StoreCookies(_ context.Context, u *url.URL, setCookies []string) error {
	if len(setCookies) == 0 {
		return nil
	}
	r := http.Response{Header: http.Header{"Set-Cookie": setCookies}}
	if cs := r.Cookies(); len(cs) > 0 {
		j.jar.SetCookies(u, cs)
	}
	return nil
}
