// Package error provides structured error handling for btstring.
//
// Package: error
// Title: btstring Error Handling
// Description: Structured error values with codes, severities and details.
//              Every package in the module reports failures through this type
//              so callers and the CLI can classify them uniformly.
// Author: btstring maintainers
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-02 v0.1.0: Error, Code and Severity types
// - 2026-10-15 v0.2.0: errors.As based code lookup, string utility codes
//
// Usage:
//
//	import mdwerror "github.com/bt-tools/btstring/foundation/core/error"
//
//	err := mdwerror.New("group count must be at least 1").
//		WithCode(mdwerror.CodeInvalidInput).
//		WithDetail("groups", 0)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
//		// reject the request
//	}
package error
