package engine

import "fmt"

// Op identifies one filename transformation.
type Op string

const (
	OpAddPrefix           Op = "Add prefix"
	OpAddSuffix           Op = "Add suffix before extension"
	OpReplaceText         Op = "Replace text"
	OpRemoveText          Op = "Remove text"
	OpLowercase           Op = "Convert to lowercase"
	OpUppercase           Op = "Convert to uppercase"
	OpCamelCase           Op = "Convert to CamelCase"
	OpRemoveNumbers       Op = "Remove numbers"
	OpKeepNumbersOnly     Op = "Keep numbers only"
	OpSpacesToUnderscores Op = "Spaces to underscores"
	OpSpacesToHyphens     Op = "Spaces to hyphens"
	OpCollapseSpaces      Op = "Collapse extra spaces"
	OpRemoveSpecialChars  Op = "Remove special characters"
	OpChangeExtension     Op = "Change extension"
)

// Ops lists every operation in menu order.
var Ops = []Op{
	OpAddPrefix,
	OpAddSuffix,
	OpReplaceText,
	OpRemoveText,
	OpLowercase,
	OpUppercase,
	OpCamelCase,
	OpRemoveNumbers,
	OpKeepNumbersOnly,
	OpSpacesToUnderscores,
	OpSpacesToHyphens,
	OpCollapseSpaces,
	OpRemoveSpecialChars,
	OpChangeExtension,
}

// Rule is one step of the rename pipeline. A holds the primary text input
// (prefix, suffix, find text, new extension); B holds the replacement text
// for [OpReplaceText]. Rules are immutable once built from user input.
type Rule struct {
	Op Op
	A  string
	B  string
}

// NeedsA reports whether op requires the primary text field.
func (op Op) NeedsA() bool {
	switch op {
	case OpAddPrefix, OpAddSuffix, OpReplaceText, OpRemoveText, OpChangeExtension:
		return true
	}
	return false
}

// Validate rejects rules with missing required input. These are form-level
// input errors: preview must not run until the user corrects them.
func Validate(rules []Rule) error {
	if len(rules) == 0 {
		return fmt.Errorf("add at least one rename rule before previewing")
	}
	for i, r := range rules {
		if r.Op.NeedsA() && r.A == "" {
			return fmt.Errorf("rule %d (%s): text field must not be empty", i+1, r.Op)
		}
	}
	return nil
}
