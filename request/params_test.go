// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParams(t *testing.T) {
	testCases := []struct {
		name    string
		method  string
		header  http.Header
		body    interface{}
		asserts func(*testing.T, Params, error)
	}{
		{
			name: "empty method means GET",
			asserts: func(t *testing.T, p Params, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "GET", p.Method)
				assert.NotNil(t, p.Header)
				assert.Empty(t, p.Header)
				assert.Nil(t, p.Body)
			},
		},
		{
			name:   "header is cloned",
			method: "POST",
			header: http.Header{"Foo": {"bar"}},
			body:   "baz",
			asserts: func(t *testing.T, p Params, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "POST", p.Method)
				assert.Equal(t, "bar", p.Header.Get("Foo"))
				assert.Equal(t, []byte("baz"), p.Body)
			},
		},
		{
			name: "body type io.Reader",
			body: strings.NewReader("io.Reader"),
			asserts: func(t *testing.T, p Params, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []byte("io.Reader"), p.Body)
			},
		},
		{
			name:   "error invalid body type",
			method: "PUT",
			body:   42,
			asserts: func(t *testing.T, p Params, err error) {
				assert.EqualError(t, err, badBodyTypeMsg)
				assert.Equal(t, Params{}, p)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			h := testCase.header
			p, err := NewParams(testCase.method, h, testCase.body)
			testCase.asserts(t, p, err)
			if err == nil && h != nil {
				p.Header.Set("Foo", "changed")
				assert.Equal(t, "bar", h.Get("Foo"))
			}
		})
	}
}

func TestParams_Clone(t *testing.T) {
	p := Params{
		Method: "PUT",
		Header: http.Header{"A": {"1"}},
		Body:   []byte("xyz"),
	}
	c := p.Clone()
	c.Header.Set("A", "2")
	c.Body[0] = 'X'
	assert.Equal(t, "1", p.Header.Get("A"))
	assert.Equal(t, []byte("xyz"), p.Body)
	assert.Equal(t, "PUT", c.Method)

	empty := Params{}.Clone()
	assert.Nil(t, empty.Body)
	assert.Nil(t, empty.Header)
}

func TestParams_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		params Params
		err    string
	}{
		{name: "GET", params: Params{Method: "GET"}},
		{name: "empty method", params: Params{}},
		{name: "extension method", params: Params{Method: "PURGE"}},
		{name: "valid header", params: Params{Method: "GET", Header: http.Header{"X-Foo": {"bar baz"}}}},
		{name: "invalid method", params: Params{Method: "\tGET"}, err: `fetch/request: invalid method "\tGET"`},
		{name: "invalid method space", params: Params{Method: "GE T"}, err: `fetch/request: invalid method "GE T"`},
		{name: "invalid header name", params: Params{Method: "GET", Header: http.Header{"Bad Name": {"x"}}}, err: `fetch/request: invalid header field name "Bad Name"`},
		{name: "invalid header value", params: Params{Method: "GET", Header: http.Header{"X-Foo": {"a\r\nb"}}}, err: `fetch/request: invalid header field value for "X-Foo"`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			err := testCase.params.Validate()
			if testCase.err == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, testCase.err)
			}
		})
	}
}

func TestParams_ToRequest(t *testing.T) {
	u, err := url.Parse("https://example.com/api?x=1")
	require.NoError(t, err)
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "v")

	t.Run("no body", func(t *testing.T) {
		p := Params{Method: "DELETE", Header: http.Header{"Foo": {"bar"}}}
		r := p.ToRequest(ctx, u)
		assert.Equal(t, "DELETE", r.Method)
		assert.Same(t, u, r.URL)
		assert.Equal(t, "example.com", r.Host)
		assert.Equal(t, "bar", r.Header.Get("Foo"))
		assert.Nil(t, r.Body)
		assert.Nil(t, r.GetBody)
		assert.Equal(t, int64(0), r.ContentLength)
		assert.Equal(t, "v", r.Context().Value(ctxKey{}))
	})

	t.Run("with body", func(t *testing.T) {
		p := Params{Method: "POST", Body: []byte("hello")}
		r := p.ToRequest(ctx, u)
		require.NotNil(t, r.Body)
		assert.Equal(t, int64(5), r.ContentLength)
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), b)
		rc, err := r.GetBody()
		require.NoError(t, err)
		b, err = io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), b)
		assert.NotNil(t, r.Header)
	})

	t.Run("empty method", func(t *testing.T) {
		r := Params{}.ToRequest(ctx, u)
		assert.Equal(t, "GET", r.Method)
	})

	t.Run("template untouched", func(t *testing.T) {
		_ = Params{Method: "PUT", Header: http.Header{"A": {"b"}}}.ToRequest(ctx, u)
		assert.Equal(t, "GET", template.Method)
		assert.Empty(t, template.Header)
	})
}
