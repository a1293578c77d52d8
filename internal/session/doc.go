// Package session holds the lifecycle of the single in-flight query.
//
// The screen is always in exactly one of four states:
//
//	Idle ──submit──▶ Loading ──ok──▶ Success
//	  ▲                 │
//	  │                 └──fail──▶ Failure ──dismiss──▶ Idle
//
// A new submit from Idle, Success or Failure clears the previous result or
// error. While Loading, further submits are rejected with ErrBusy.
//
// Every Begin hands out a ticket. Resolve only applies when its ticket
// matches the current Loading state, so an answer that arrives after the
// state moved on is dropped.
//
// Session is not safe for concurrent use. The terminal UI calls it only
// from its update loop; Dispatcher serialises the blocking variant.
package session
