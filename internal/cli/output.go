// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"

	"github.com/gogama/fetch/request"
)

// colorScheme holds the colors used when printing a response.
type colorScheme struct {
	method      *color.Color
	statusOK    *color.Color
	statusWarn  *color.Color
	statusError *color.Color
	headerKey   *color.Color
}

func newColorScheme(noColor bool) *colorScheme {
	s := &colorScheme{
		method:      color.New(color.FgBlue, color.Bold),
		statusOK:    color.New(color.FgGreen, color.Bold),
		statusWarn:  color.New(color.FgYellow, color.Bold),
		statusError: color.New(color.FgRed, color.Bold),
		headerKey:   color.New(color.FgYellow),
	}
	if noColor {
		s.method.DisableColor()
		s.statusOK.DisableColor()
		s.statusWarn.DisableColor()
		s.statusError.DisableColor()
		s.headerKey.DisableColor()
	}
	return s
}

func (s *colorScheme) status(code int) *color.Color {
	switch {
	case code >= 200 && code < 300:
		return s.statusOK
	case code >= 300 && code < 400:
		return s.statusWarn
	default:
		return s.statusError
	}
}

// printExecution writes the status line, optionally the response
// headers, and then body to w.
func printExecution(w io.Writer, s *colorScheme, e *request.Execution, headers bool, body []byte) {
	_, _ = s.method.Fprint(w, e.Params.Method)
	_, _ = fmt.Fprintf(w, " %s ", e.URL)
	_, _ = s.status(e.StatusCode()).Fprintf(w, "%d %s", e.StatusCode(), e.StatusText())
	_, _ = fmt.Fprintf(w, " (%s)\n", e.Duration().Round(time.Microsecond))

	if headers {
		keys := make([]string, 0, len(e.Header()))
		for k := range e.Header() {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			for _, v := range e.Header()[k] {
				_, _ = s.headerKey.Fprint(w, k)
				_, _ = fmt.Fprintf(w, ": %s\n", v)
			}
		}
		_, _ = fmt.Fprintln(w)
	}

	if len(body) > 0 {
		_, _ = w.Write(body)
		if body[len(body)-1] != '\n' {
			_, _ = fmt.Fprintln(w)
		}
	}
}
