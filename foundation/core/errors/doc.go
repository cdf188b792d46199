// Package errors provides the standard error constructors for all btstring
// packages.
//
// Package: errors
// Title: Standard Error Handling API
// Description: Common error patterns and codes built on top of the core
//              error package. Every error carries the originating module and
//              operation as details so that callers and logs can attribute
//              failures without string matching.
// Author: btstring maintainers
// Version: v0.2.0
// Created: 2026-09-03
// Modified: 2026-10-15
//
// Usage:
//
//	if n < 1 {
//		return nil, errors.StringxInvalidArgument("split_balanced", "group count", n, "n >= 1")
//	}
//
//	if errors.IsModuleOperation(err, errors.ModuleStringx, "split_balanced") {
//		// ...
//	}
package errors
