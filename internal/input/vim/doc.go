// Package vim implements the Normal-mode command grammar of vi.
//
// The grammar is:
//
//	[count] operator [count] motion
//	[count] operator operator        (line-wise: dd, yy, cc)
//	[count] motion
//	[count] action
//
// Examples:
//   - "5l": count=5, motion=l (move right 5 characters)
//   - "d3w": operator=d, count=3, motion=w (delete 3 words)
//   - "2d3w": counts multiply (delete 6 words)
//   - "3dd": count=3, operator=d, line-wise (delete 3 lines)
//   - "fx": find motion with target 'x'
//   - "A": append at line end and enter insert mode
//
// # Parsing
//
// Parse is a pure function over the whole pending key sequence. The caller
// appends each key to its cache and re-parses:
//
//	res := vim.Parse(cache)
//	switch res.Status {
//	case vim.StatusComplete:
//	    events := vim.Lower(res.Command, &state)
//	case vim.StatusIncomplete:
//	    // Wait for more input
//	case vim.StatusInvalid:
//	    // Drop the cache
//	}
//
// # Lowering
//
// Lower turns a command into edit events and keeps the State that outlives
// single commands: the last character search, replayed by ';' and ',', and
// the last text-changing result, replayed by '.'.
package vim
