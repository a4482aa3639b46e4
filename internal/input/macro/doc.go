// Package macro records raw input events and plays them back.
//
// A Recorder installed as a hook on an input.Vi captures every event it
// handles while a recording is active. Recordings live in registers named
// a-z and 0-9; an upper case letter appends to the lower case register.
//
//	recorder := macro.NewRecorder()
//	vi.AddHook(recorder)
//	recorder.StartRecording('a')
//	// ... events flow through vi.Handle ...
//	rec := recorder.StopRecording()
//
// A Player replays a register through a callback until its context is
// done, and Replay uses one to feed a recording through a Vi and collect
// its output. Recordings carry a UUID and are stored as JSON with
// SaveRecording, or all registers at once with Save and Load.
//
// All types in this package are safe for concurrent use.
package macro
