// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gogama/fetch"
	"github.com/gogama/fetch/cookies"
	"github.com/gogama/fetch/profile"
	"github.com/gogama/fetch/request"
	"github.com/gogama/fetch/uri"
)

// verbFlags holds the flag values of a single verb command.
type verbFlags struct {
	headers     []string
	query       []string
	segments    []string
	exclude     string
	data        string
	contentType string
	timeout     time.Duration
	profile     string
	path        string
	verbose     bool
	cookies     bool
	noColor     bool
	include     bool
}

func newVerbCmd(name, method string, body bool) *cobra.Command {
	f := &verbFlags{}
	cmd := &cobra.Command{
		Use:   name + " [URL]",
		Short: fmt.Sprintf("Issue a %s request", method),
		Long: fmt.Sprintf(`Issue a %s request to URL.

With --profile, the base URL comes from the profile and URL, if given,
is a path appended to it.`, method),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd, method, args)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&f.headers, "header", "H", nil, "request header as key:value (repeatable)")
	flags.StringArrayVarP(&f.query, "query", "q", nil, "query parameter as key=value (repeatable)")
	flags.StringArrayVarP(&f.segments, "segment", "s", nil, "path segment to append (repeatable)")
	flags.StringVarP(&f.exclude, "exclude", "x", "", "query parameter to remove")
	flags.DurationVar(&f.timeout, "timeout", 30*time.Second, "request timeout, 0 for none")
	flags.StringVar(&f.profile, "profile", "", "YAML endpoint profile")
	flags.StringVar(&f.path, "path", "", "print only the value at this gjson path of a JSON response")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "log request details to stderr")
	flags.BoolVar(&f.cookies, "cookies", false, "send and capture cookies for the request")
	flags.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&f.include, "include", "i", false, "print response headers")
	if body {
		flags.StringVarP(&f.data, "data", "d", "", "request body, or @file to read it from a file")
		flags.StringVarP(&f.contentType, "content-type", "t", "application/json", "request content type, sent only with a body unless set explicitly")
	}
	return cmd
}

func (f *verbFlags) run(cmd *cobra.Command, method string, args []string) error {
	b, err := f.builder(cmd, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var e *request.Execution
	switch method {
	case "POST", "PUT":
		var body []byte
		body, err = f.body(cmd.InOrStdin())
		if err != nil {
			return err
		}
		mime := f.contentType
		if len(body) == 0 && !cmd.Flags().Changed("content-type") {
			mime = ""
		}
		e, err = b.Send(ctx, method, body, mime)
	default:
		e, err = b.Fetch(ctx, method)
	}

	if e == nil || e.Response == nil {
		return err
	}

	out := e.Body
	if f.path != "" && len(e.Body) > 0 {
		r := e.Get(f.path)
		if !r.Exists() {
			return fmt.Errorf("path %q not found in response", f.path)
		}
		out = []byte(r.String())
	}

	printExecution(cmd.OutOrStdout(), newColorScheme(f.noColor), e, f.include, out)
	return err
}

func (f *verbFlags) builder(cmd *cobra.Command, args []string) (*fetch.Builder, error) {
	logger := f.logger(cmd.ErrOrStderr())

	var jar fetch.CookieManager
	if f.cookies {
		j, err := cookies.NewJar()
		if err != nil {
			return nil, err
		}
		jar = j
	}

	var b *fetch.Builder
	var err error
	if f.profile != "" {
		var p *profile.Profile
		p, err = profile.LoadFile(f.profile)
		if err != nil {
			return nil, err
		}
		b, err = p.Builder(func(o *fetch.Options) {
			o.Logger = logger
			o.Cookies = jar
			if cmd.Flags().Changed("timeout") {
				o.Timeout = f.timeout
			}
		})
		if err == nil && len(args) > 0 {
			b = b.At(splitPath(args[0])...)
		}
	} else {
		if len(args) == 0 {
			return nil, errors.New("a URL or --profile is required")
		}
		b, err = fetch.New(args[0], fetch.Options{
			Timeout: f.timeout,
			Cookies: jar,
			Logger:  logger,
		})
	}
	if err != nil {
		return nil, err
	}

	b = b.At(f.segments...)

	q, err := parsePairs(f.query, "=", "query parameter")
	if err != nil {
		return nil, err
	}
	if len(q) > 0 {
		params := make(uri.Query, len(q))
		for k, v := range q {
			params[k] = v
		}
		b = b.WithParams(params)
	}
	if f.exclude != "" {
		b = b.WithoutParam(f.exclude)
	}

	h, err := parsePairs(f.headers, ":", "header")
	if err != nil {
		return nil, err
	}
	return b.WithHeaders(h), nil
}

func (f *verbFlags) logger(w io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	if f.verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

func (f *verbFlags) body(stdin io.Reader) ([]byte, error) {
	switch {
	case f.data == "@-":
		return io.ReadAll(stdin)
	case strings.HasPrefix(f.data, "@"):
		return os.ReadFile(f.data[1:])
	case f.data == "":
		return nil, nil
	default:
		return []byte(f.data), nil
	}
}

// parsePairs splits each of pairs at the first sep. Keys and values are
// trimmed of surrounding space.
func parsePairs(pairs []string, sep, what string) (map[string]string, error) {
	m := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, sep)
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid %s %q: expected key%svalue", what, pair, sep)
		}
		m[k] = strings.TrimSpace(v)
	}
	return m, nil
}

func splitPath(p string) []string {
	var segments []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
