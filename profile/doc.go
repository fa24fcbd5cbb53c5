// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package profile loads endpoint profiles from YAML and turns them into
fetch builders.

A profile describes a base URL and the defaults shared by every request
to it:

	url: https://api.example.com/v1
	segments: [users]
	query:
	  limit: 20
	  debug: true
	exclude_query: debug
	headers:
	  Accept: application/json
	timeout: 10s

Load a profile and create a Builder from it:

	p, err := profile.LoadFile("api.yaml")
	...
	b, err := p.Builder(func(o *fetch.Options) {
		o.Cookies = jar
	})

Unknown fields are rejected, so a misspelled key is reported rather than
silently ignored.
*/
package profile
