// Package pathspec parses git-style pathspecs and translates them into rsync
// filter rules. The supported syntax is git's pathspec magic: short form
// signatures like ":!pattern" and ":/pattern", and long form signatures like
// ":(top,exclude)pattern".
package pathspec

import (
	"fmt"
	"strings"
)

// Magic is the set of magic signatures attached to a pathspec pattern.
type Magic uint8

const (
	MagicTop Magic = 1 << iota
	MagicLiteral
	MagicGlob
	MagicICase
	MagicExclude
	MagicAttr

	MagicNone Magic = 0
)

func (m Magic) Has(flag Magic) bool {
	return m&flag == flag
}

func (m Magic) String() string {
	if m == MagicNone {
		return "none"
	}
	var names []string
	for _, f := range []struct {
		flag Magic
		name string
	}{
		{MagicTop, "top"},
		{MagicLiteral, "literal"},
		{MagicGlob, "glob"},
		{MagicICase, "icase"},
		{MagicExclude, "exclude"},
		{MagicAttr, "attr"},
	} {
		if m.Has(f.flag) {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, ",")
}

// Rule is a single parsed pathspec pattern.
type Rule struct {
	Magic   Magic
	Pattern string
}

// PathSpec is an ordered list of rules. Order matters: the translator emits
// filters in rule order and rsync filter precedence is first match wins.
type PathSpec struct {
	Rules []Rule
}

// Parse parses a list of raw pathspec strings in order.
func Parse(patterns []string) (PathSpec, error) {
	rules := make([]Rule, 0, len(patterns))
	for i, pattern := range patterns {
		if pattern == "" {
			return PathSpec{}, fmt.Errorf("empty string found in pathspec %d", i)
		}
		rule, err := parseRule(pattern)
		if err != nil {
			return PathSpec{}, err
		}
		rules = append(rules, rule)
	}
	return PathSpec{Rules: rules}, nil
}

func parseRule(raw string) (Rule, error) {
	if !strings.HasPrefix(raw, ":") {
		return Rule{Magic: MagicNone, Pattern: raw}, nil
	}

	var rule Rule
	var err error
	if strings.HasPrefix(raw, ":(") {
		rule, err = parseLongForm(raw)
	} else {
		rule = parseShortForm(raw)
	}
	if err != nil {
		return Rule{}, err
	}

	if rule.Magic.Has(MagicGlob) && rule.Magic.Has(MagicLiteral) {
		return Rule{}, fmt.Errorf("glob magic and literal magic are mutually exclusive in %q", raw)
	}
	return rule, nil
}

// parseShortForm handles ":" followed by single-character signatures:
// "/" anchors at the repository root, "!" and "^" exclude. An optional
// second ":" terminates the signature run.
func parseShortForm(raw string) Rule {
	var magic Magic
	i := 1
	for ; i < len(raw); i++ {
		ch := raw[i]
		if ch == '/' {
			magic |= MagicTop
		} else if ch == '!' || ch == '^' {
			magic |= MagicExclude
		} else {
			if ch == ':' {
				i++
			}
			break
		}
	}
	return Rule{Magic: magic, Pattern: raw[i:]}
}

// parseLongForm handles ":(sig,sig,...)pattern".
func parseLongForm(raw string) (Rule, error) {
	heading, pattern, found := strings.Cut(raw[2:], ")")
	if !found {
		return Rule{}, fmt.Errorf("illegal magic signature for %q", raw)
	}

	var magic Magic
	for _, item := range strings.Split(heading, ",") {
		switch {
		case item == "top":
			magic |= MagicTop
		case item == "literal":
			magic |= MagicLiteral
		case item == "glob":
			magic |= MagicGlob
		case item == "icase":
			magic |= MagicICase
		case item == "exclude":
			magic |= MagicExclude
		case strings.HasPrefix(item, "attr:"):
			return Rule{}, fmt.Errorf("attr magic is not supported in %q", raw)
		default:
			return Rule{}, fmt.Errorf("unknown magic signature %q in %q", item, raw)
		}
	}
	return Rule{Magic: magic, Pattern: pattern}, nil
}
