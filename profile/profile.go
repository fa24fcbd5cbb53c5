// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package profile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogama/fetch"
	"github.com/gogama/fetch/uri"
)

// A Profile is the decoded form of a YAML endpoint profile.
type Profile struct {
	URL          string                 `yaml:"url"`
	Segments     []string               `yaml:"segments"`
	Query        map[string]interface{} `yaml:"query"`
	ExcludeQuery string                 `yaml:"exclude_query"`
	Headers      map[string]string      `yaml:"headers"`
	Timeout      Duration               `yaml:"timeout"`
}

// Duration is a time.Duration written in YAML as a Go duration string,
// for example "1m30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	if v < 0 {
		return fmt.Errorf("line %d: negative timeout %q", value.Line, s)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Load decodes a single profile from r.
func Load(r io.Reader) (*Profile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("fetch/profile: empty profile")
		}
		return nil, fmt.Errorf("fetch/profile: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile decodes the profile stored in the named file.
func LoadFile(name string) (*Profile, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

func (p *Profile) validate() error {
	if p.URL == "" {
		return errors.New("fetch/profile: url is required")
	}
	for k, v := range p.Query {
		switch v.(type) {
		case map[string]interface{}, []interface{}:
			return fmt.Errorf("fetch/profile: query parameter %q must be a scalar", k)
		}
	}
	return nil
}

// Options returns fetch options carrying the profile's URL parts,
// headers, and timeout. The returned maps are copies.
func (p *Profile) Options() fetch.Options {
	var o fetch.Options
	if len(p.Segments) > 0 {
		o.URIParts.Segments = append([]string{}, p.Segments...)
	}
	if len(p.Query) > 0 {
		o.URIParts.Query = make(uri.Query, len(p.Query))
		for k, v := range p.Query {
			o.URIParts.Query[k] = v
		}
	}
	o.URIParts.ExcludeQuery = p.ExcludeQuery
	if len(p.Headers) > 0 {
		o.Headers = make(map[string]string, len(p.Headers))
		for k, v := range p.Headers {
			o.Headers[k] = v
		}
	}
	o.Timeout = time.Duration(p.Timeout)
	return o
}

// Builder creates a fetch.Builder for the profile. Each function in opts
// is applied in order to the profile's options before the builder is
// created, which is how collaborators such as a CookieManager or a
// Logger are installed.
func (p *Profile) Builder(opts ...func(*fetch.Options)) (*fetch.Builder, error) {
	o := p.Options()
	for _, opt := range opts {
		opt(&o)
	}
	return fetch.New(p.URL, o)
}
