// Copyright 2021 The fetch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetch

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Builder to extend it with custom
// functionality, for example metrics or request signing.
type Event int

const (
	// BeforeExecutionStart identifies the event that occurs before the
	// request pipeline starts.
	//
	// When a Builder fires BeforeExecutionStart, the execution's params
	// (after the pre-request hook) and URL are set, but no pipeline
	// stage has run yet.
	BeforeExecutionStart Event = iota
	// BeforeSend identifies the event that occurs after the cookie read
	// stage, immediately before the HTTP request is handed to the
	// HTTPDoer.
	//
	// When a Builder fires BeforeSend, the execution's request field is
	// set to the HTTP request that WILL BE sent after all BeforeSend
	// handlers have finished. Handlers may modify the request, but
	// should clone reference-typed fields (URL and Header) before
	// changing them, as they are shared with the execution.
	//
	// BeforeSend does not fire if the cookie read stage fails.
	BeforeSend
	// AfterReceive identifies the event that occurs after the HTTPDoer
	// returns.
	//
	// When a Builder fires AfterReceive, either the execution's
	// response field or its error field OR BOTH are set. If a response
	// was received, its body has been read into the execution's body
	// field and closed. The response will only be non-nil when the
	// error is also non-nil if there was an error reading the body.
	//
	// AfterReceive fires before the response status is checked, so it
	// fires for error statuses too.
	AfterReceive
	// AfterExecutionEnd identifies the event that occurs after the
	// request pipeline ends, whether or not it succeeded.
	//
	// When a Builder fires AfterExecutionEnd, the execution's end time
	// and error field are set to their final values.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeSend",
	"AfterReceive",
	"AfterExecutionEnd",
}

// Events returns a slice containing all events which can occur during
// a Builder request, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeSend,
		AfterReceive,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
