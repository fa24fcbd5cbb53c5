// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package uri

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// A Query maps query parameter names to scalar values. Values are
// converted to strings by AddQuery.
type Query map[string]interface{}

// A URI is an immutable URL value. The zero value is the empty
// relative reference.
//
// Every method that changes the URL returns a new URI and leaves the
// receiver untouched, so a URI may be freely copied and shared between
// goroutines.
type URI struct {
	u *url.URL
}

// Parse parses s into a URI. The empty string is treated as "/".
func Parse(s string) (URI, error) {
	if s == "" {
		s = "/"
	}
	u, err := url.Parse(s)
	if err != nil {
		return URI{}, err
	}
	return URI{u: u}, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) URI {
	u, err := Parse(s)
	if err != nil {
		panic("fetch/uri: " + err.Error())
	}
	return u
}

// URL returns a copy of the underlying URL. Changing the copy does not
// change the URI.
func (u URI) URL() *url.URL {
	return u.clone()
}

// String renders the URI.
func (u URI) String() string {
	if u.u == nil {
		return ""
	}
	return u.u.String()
}

// AddSegments returns a new URI with the given path segments appended
// to the path.
//
// The segments must already be percent-encoded, for example with
// url.PathEscape. An error is returned if any segment contains an
// invalid escape sequence. Trailing slashes on the current path are
// removed before appending, so appending "a" to "/api/" produces
// "/api/a". Likewise, empty segments at the end of the current path
// collapse: appending "b" to the result of appending "a" and "" gives
// "/api/a/b", not "/api/a//b".
func (u URI) AddSegments(escaped ...string) (URI, error) {
	if len(escaped) == 0 {
		return u, nil
	}
	c := u.clone()
	p := strings.TrimRight(c.EscapedPath(), "/") + "/" + strings.Join(escaped, "/")
	unescaped, err := url.PathUnescape(p)
	if err != nil {
		return URI{}, fmt.Errorf("fetch/uri: invalid segment: %w", err)
	}
	c.Path = unescaped
	c.RawPath = p
	return URI{u: c}, nil
}

// AddQuery returns a new URI with the parameters in q merged into the
// query string. A parameter whose key is already present replaces the
// existing value in place; new keys are appended in sorted order.
//
// Only pairs whose key appears in q are touched. Every other pair,
// including bare keys such as "debug" and pairs the net/url parser
// would reject, is copied through unchanged.
func (u URI) AddQuery(q Query) URI {
	if len(q) == 0 {
		return u
	}
	v := make(url.Values, len(q))
	for key, value := range q {
		v.Set(key, FormatScalar(value))
	}
	return u.AddValues(v)
}

// AddValues is like AddQuery, but takes already-stringified values. All
// values for a key replace the existing values for that key.
func (u URI) AddValues(v url.Values) URI {
	if len(v) == 0 {
		return u
	}
	c := u.clone()
	pairs := splitQuery(c.RawQuery)
	out := make([]string, 0, len(pairs)+len(v))
	done := make(map[string]bool, len(v))
	for _, pair := range pairs {
		key := pairKey(pair)
		values, ok := v[key]
		if !ok {
			out = append(out, pair)
			continue
		}
		if !done[key] {
			done[key] = true
			out = appendPairs(out, key, values)
		}
	}

	keys := make([]string, 0, len(v))
	for key := range v {
		if !done[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		out = appendPairs(out, key, v[key])
	}

	c.RawQuery = strings.Join(out, "&")
	return URI{u: c}
}

// RemoveQuery returns a new URI without the query parameter key. If
// key is not present, the returned URI is identical to u. Pairs for
// other keys are left exactly as they were.
func (u URI) RemoveQuery(key string) URI {
	if u.u == nil {
		return u
	}
	pairs := splitQuery(u.u.RawQuery)
	out := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		if pairKey(pair) != key {
			out = append(out, pair)
		}
	}
	if len(out) == len(pairs) {
		return u
	}
	c := u.clone()
	c.RawQuery = strings.Join(out, "&")
	return URI{u: c}
}

func splitQuery(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "&")
}

// pairKey returns the unescaped key of a raw "key=value" or bare "key"
// pair. A key with a bad escape is compared in its raw form.
func pairKey(pair string) string {
	k, _, _ := strings.Cut(pair, "=")
	if unescaped, err := url.QueryUnescape(k); err == nil {
		return unescaped
	}
	return k
}

func appendPairs(out []string, key string, values []string) []string {
	k := url.QueryEscape(key)
	for _, value := range values {
		out = append(out, k+"="+url.QueryEscape(value))
	}
	return out
}

func (u URI) clone() *url.URL {
	c := new(url.URL)
	if u.u != nil {
		*c = *u.u
		if u.u.User != nil {
			user := *u.u.User
			c.User = &user
		}
	}
	return c
}

// FormatScalar converts a query parameter value to its string form.
//
// Strings are returned unchanged, booleans and numbers use the strconv
// formatting, a nil value is the empty string, fmt.Stringer values use
// their String method, and anything else is formatted with fmt.Sprint.
func FormatScalar(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
