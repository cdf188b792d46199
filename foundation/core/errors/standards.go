// File: standards.go
// Title: Error Standards for btstring
// Description: Module identifiers and standardized error codes so that all
//              btstring packages report failures the same way.
// Author: btstring maintainers
// Version: v0.1.0
// Created: 2026-09-03
// Modified: 2026-09-03

package errors

import (
	"fmt"
	"strings"
)

// Module identifiers for error categorization
const (
	ModuleStringx  = "stringx"
	ModuleConfig   = "config"
	ModuleSettings = "settings"
	ModuleCLI      = "cli"
)

// Standardized error codes shared by all modules
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"
	CodeInvalidConfig   = "INVALID_CONFIG"
)

// getModuleErrorCode derives a code for a module operation when none was set
func getModuleErrorCode(module, operation string) string {
	switch {
	case strings.Contains(operation, "format"):
		return getFormatErrorCode(module)
	case strings.Contains(operation, "validate"):
		return fmt.Sprintf("%s_VALIDATION_FAILED", strings.ToUpper(module))
	default:
		return getOperationErrorCode(module)
	}
}

func getFormatErrorCode(module string) string {
	if module == "" {
		return CodeInvalidFormat
	}
	return fmt.Sprintf("%s_%s", strings.ToUpper(module), CodeInvalidFormat)
}

func getOperationErrorCode(module string) string {
	if module == "" {
		return CodeOperationFailed
	}
	return fmt.Sprintf("%s_%s", strings.ToUpper(module), CodeOperationFailed)
}
