// Package api exposes the shortest-path enumeration over HTTP.
//
// One endpoint does the work:
//
//	POST /api/paths
//	{"boardSize": 8, "start": "a1", "end": "h8"}
//
// and answers with the minimal distance, the path count, and every path
// as a sequence of algebraic squares, plus the server-side execution
// time. Malformed requests and off-board squares come back as 400,
// genuinely unreachable square pairs as 422: unreachable is an expected
// outcome, not a server fault.
//
// Each request is tagged with a UUID that appears in the structured logs
// and in the X-Request-Id response header.
package api
