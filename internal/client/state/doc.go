// Package state is the interaction core of the notes summarizer client.
//
// State aggregates four sub-machines: Input (file vs. pasted text and the
// prompt override), Session (one summarization request), Presenter (edit vs.
// preview of the summary) and EmailDialog (recipients, subject and one send
// request with its auto-dismiss timer).
//
// Every operation is a pure transition: it takes a State value and returns
// the next State plus the Effects the host must perform (issue a request,
// schedule or cancel a timer, acquire or release the scroll lock). Nothing
// here blocks, sleeps or does I/O; see package controller for the runtime.
//
// Requests and timers carry uuid tags. A completion or a timer callback whose
// tag is not the current one is ignored, so late callbacks are inert.
package state
