// Package config loads the tool's JSONC configuration file.
//
// The file carries the board size and the default start/end positions in
// algebraic form:
//
//	{
//	    // board dimension, squares per side
//	    "board_size": 8,
//	    "start_position": "a1",
//	    "end_position": "h8"
//	}
//
// Full-line // comments are stripped before decoding; decoding itself is
// done with bytedance/sonic. Missing fields fall back to Default().
// The search core never touches this package: positions stay strings
// here and are parsed by package notation at the call site.
//
// Errors:
//
//   - ErrRead: the file cannot be read.
//   - ErrParse: the content is not valid JSON after comment stripping.
//   - ErrInvalid: the decoded configuration is unusable (board_size < 1).
package config
