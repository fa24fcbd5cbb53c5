// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetch

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// A StatusError is returned by a Builder verb method when the server
// responds with a status code outside the 2XX range, other than 304 Not
// Modified.
type StatusError struct {
	// Message is the reason phrase of the response, for example
	// "Not Found".
	Message string
	// Status is the HTTP status code.
	Status int
	// ResponseText is the complete response body.
	ResponseText string
}

func (err *StatusError) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("fetch: HTTP status %d", err.Status)
	}
	return fmt.Sprintf("fetch: HTTP status %d %s", err.Status, err.Message)
}

// IsStatus reports whether err is, or wraps, a *StatusError with the
// given status code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Status == code
}

func urlErrorWrap(method string, u *url.URL, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(method),
		URL: u.String(),
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
