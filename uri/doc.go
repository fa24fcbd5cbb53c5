// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package uri provides URI, an immutable URL value used by fetch.Builder to
compose request addresses from a base URL, path segments, and query
parameters.

	u := uri.MustParse("https://example.com/api")
	u, err := u.AddSegments("users", url.PathEscape("a b"))
	...
	u = u.AddQuery(uri.Query{"limit": 10, "verbose": true})
	u = u.RemoveQuery("verbose")
	fmt.Println(u) // https://example.com/api/users/a%20b?limit=10
*/
package uri
