// File: validation.go
// Title: Configuration Validation Implementation
// Description: Rule based validation of configuration values: presence,
//              type, numeric or length bounds and string patterns.
// Author: btstring maintainers
// Version: v0.1.0
// Created: 2026-09-02
// Modified: 2026-09-02

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"unicode/utf8"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool   // Whether the key must be present
	Type     string // "string", "int", "bool" or empty for any
	Min      *int   // Minimum value for ints, minimum rune length for strings
	Max      *int   // Maximum value for ints, maximum rune length for strings
	Pattern  string // Regex a string value must match
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Bound returns a pointer to n for use in ValidationRule.Min and Max
func Bound(n int) *int {
	return &n
}

// Validate checks the configuration against rules. Keys are checked in
// sorted order so the error list is stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &ValidationResult{Valid: true}
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	if !c.Has(key) {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "int":
		raw := c.GetString(key)
		if _, err := strconv.Atoi(raw); err != nil {
			return fmt.Errorf("field '%s' must be an integer, got %q", key, raw)
		}
		return checkBounds(key, c.GetInt(key), rule, "value")
	case "bool":
		raw := c.GetString(key)
		if _, err := strconv.ParseBool(raw); err != nil {
			return fmt.Errorf("field '%s' must be a boolean, got %q", key, raw)
		}
		return nil
	case "string", "":
		value := c.GetString(key)
		if err := checkBounds(key, utf8.RuneCountInString(value), rule, "length"); err != nil {
			return err
		}
		if rule.Pattern != "" {
			re, err := regexp.Compile(rule.Pattern)
			if err != nil {
				return fmt.Errorf("field '%s' has invalid pattern %q: %v", key, rule.Pattern, err)
			}
			if !re.MatchString(value) {
				return fmt.Errorf("field '%s' value %q does not match pattern %q", key, value, rule.Pattern)
			}
		}
		return nil
	default:
		return fmt.Errorf("field '%s' has unsupported rule type %q", key, rule.Type)
	}
}

func checkBounds(key string, n int, rule ValidationRule, what string) error {
	if rule.Min != nil && n < *rule.Min {
		return fmt.Errorf("field '%s' %s %d is below minimum %d", key, what, n, *rule.Min)
	}
	if rule.Max != nil && n > *rule.Max {
		return fmt.Errorf("field '%s' %s %d is above maximum %d", key, what, n, *rule.Max)
	}
	return nil
}
