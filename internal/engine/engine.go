package engine

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	reSpaces = regexp.MustCompile(`\s+`)

	// Characters kept by "Remove special characters": letters, digits,
	// dots, underscores, hyphens, and spaces.
	reSpecial = regexp.MustCompile(`[^a-zA-Z0-9._\-\s]+`)
)

// splitExt splits name into body and final extension. Leading-dot names
// (".bashrc") and extensionless names return the whole name as body.
func splitExt(name string) (body, ext string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i:]
}

// Apply transforms name according to rule. It is pure and total: an
// inapplicable rule (find text absent, no spaces to substitute) returns
// the name unchanged.
func Apply(rule Rule, name string) string {
	switch rule.Op {
	case OpAddPrefix:
		return rule.A + name

	case OpAddSuffix:
		body, ext := splitExt(name)
		return body + rule.A + ext

	case OpReplaceText:
		if rule.A == "" {
			return name
		}
		return strings.ReplaceAll(name, rule.A, rule.B)

	case OpRemoveText:
		if rule.A == "" {
			return name
		}
		return strings.ReplaceAll(name, rule.A, "")

	case OpLowercase:
		return strings.ToLower(name)

	case OpUppercase:
		return strings.ToUpper(name)

	case OpCamelCase:
		body, ext := splitExt(name)
		return camelCase(body) + ext

	case OpRemoveNumbers:
		body, ext := splitExt(name)
		body = strings.Map(func(r rune) rune {
			if unicode.IsDigit(r) {
				return -1
			}
			return r
		}, body)
		return body + ext

	case OpKeepNumbersOnly:
		body, ext := splitExt(name)
		body = strings.Map(func(r rune) rune {
			if unicode.IsDigit(r) {
				return r
			}
			return -1
		}, body)
		return body + ext

	case OpSpacesToUnderscores:
		return reSpaces.ReplaceAllString(name, "_")

	case OpSpacesToHyphens:
		return reSpaces.ReplaceAllString(name, "-")

	case OpCollapseSpaces:
		return reSpaces.ReplaceAllString(name, " ")

	case OpRemoveSpecialChars:
		body, ext := splitExt(name)
		return reSpecial.ReplaceAllString(body, "") + ext

	case OpChangeExtension:
		body, _ := splitExt(name)
		newExt := strings.TrimSpace(rule.A)
		if newExt == "" {
			return body
		}
		if !strings.HasPrefix(newExt, ".") {
			newExt = "." + newExt
		}
		return body + newExt
	}

	return name
}

// ApplyAll folds an ordered rule pipeline over name.
func ApplyAll(rules []Rule, name string) string {
	for _, r := range rules {
		name = Apply(r, name)
	}
	return name
}

// camelCase splits on whitespace, underscore, and hyphen boundaries,
// capitalizes each word, and joins without separators.
func camelCase(body string) string {
	words := strings.FieldsFunc(body, func(r rune) bool {
		return unicode.IsSpace(r) || r == '_' || r == '-'
	})
	if len(words) == 0 {
		return body
	}
	caser := cases.Title(language.Und)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(caser.String(w))
	}
	return b.String()
}
