package pathspec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gitrsync/git-rsync/utils"
)

// unsupportedMagic is whatever rsync filters cannot express. Case folding has
// no rsync counterpart, and attr magic is rejected at parse time already.
const unsupportedMagic = MagicICase | MagicAttr

// Translation is the outcome of mapping a pathspec onto rsync filters.
type Translation struct {
	// Filters are merge-format filter lines ("+ pattern" / "- pattern"),
	// in first-match-wins order, terminated by a catch-all rule.
	Filters []string
	// CommonPrefix is the longest wildcard-free directory prefix shared by
	// every rule, relative to the repository root. The transfer is rooted
	// there so rsync does not walk unrelated parts of the tree.
	CommonPrefix string
}

// rule is a PathSpec rule being translated: its pattern broken into path
// parts resolved against the repository root.
type rule struct {
	magic         Magic
	pattern       string
	parts         []string
	trailingSlash bool
	includes      []string
	excludes      []string
}

// Translate maps the pathspec onto rsync filter rules. prefix is the current
// directory relative to the repository root (git rev-parse --show-prefix),
// and relative patterns are resolved against it; top-magic patterns are
// resolved against the root itself.
//
// Each pattern becomes a chain of includes for its parent directories
// followed by "pattern/***" and "pattern" entries (excludes instead when the
// pattern carries exclude magic). Excludes are emitted first, then includes,
// then "- *" so everything unmatched stays home - unless every rule is an
// exclude, in which case the list ends with "+ ***".
func Translate(prefix string, ps PathSpec) (*Translation, error) {
	prefixParts := splitParts(prefix)

	rules := make([]*rule, 0, len(ps.Rules))
	allExcludes := len(ps.Rules) > 0
	for _, r := range ps.Rules {
		if bad := r.Magic & unsupportedMagic; bad != MagicNone {
			return nil, fmt.Errorf("%s magic is not supported", bad)
		}
		if !r.Magic.Has(MagicExclude) {
			allExcludes = false
		}

		base := prefixParts
		if r.Magic.Has(MagicTop) {
			base = nil
		}
		parts, err := absParts(base, splitParts(r.Pattern))
		if err != nil {
			return nil, fmt.Errorf("illegal pathspec %q: %w", r.Pattern, err)
		}

		rules = append(rules, &rule{
			magic:         r.Magic,
			pattern:       r.Pattern,
			parts:         parts,
			trailingSlash: hasTrailingSlash(r.Pattern),
		})
	}

	commonParts := findCommonParts(rules, prefixParts, allExcludes)
	utils.LogDebugInfo("Common parts", commonParts)

	for _, r := range rules {
		r.parts = r.parts[len(commonParts):]
		r.build()
	}

	var filters []string
	for _, r := range rules {
		for _, e := range r.excludes {
			filters = append(filters, "- "+e)
		}
	}
	for _, r := range rules {
		for _, i := range r.includes {
			filters = append(filters, "+ "+i)
		}
	}
	if allExcludes {
		// Everything not excluded still transfers.
		filters = append(filters, "+ ***")
	} else {
		filters = append(filters, "- *")
	}

	return &Translation{
		Filters:      filters,
		CommonPrefix: strings.Join(commonParts, "/"),
	}, nil
}

// build fills in the rule's include and exclude filter patterns from its
// parts relative to the common prefix.
func (r *rule) build() {
	if len(r.parts) == 0 {
		if r.magic.Has(MagicExclude) {
			r.excludes = append(r.excludes, "***")
		} else {
			r.includes = append(r.includes, "***")
		}
		return
	}

	rsyncParts := make([]string, len(r.parts))
	for i, part := range r.parts {
		switch {
		case r.magic.Has(MagicLiteral):
			rsyncParts[i] = escapeWildcards(part)
		case r.magic.Has(MagicGlob):
			rsyncParts[i] = part
		default:
			// Git's plain "*" crosses directory boundaries, rsync's
			// does not; widen it.
			rsyncParts[i] = widenStars(part)
		}
	}

	// Parents of the final element have to be included too, or rsync never
	// descends far enough to see it.
	dir := ""
	for _, part := range rsyncParts[:len(rsyncParts)-1] {
		dir += part + "/"
		r.includes = append(r.includes, dir)
	}

	finalPath := strings.Join(rsyncParts, "/")
	if r.magic.Has(MagicExclude) {
		r.excludes = append(r.excludes, finalPath+"/***")
		if !r.trailingSlash {
			r.excludes = append(r.excludes, finalPath)
		}
	} else {
		r.includes = append(r.includes, finalPath+"/***")
		if !r.trailingSlash {
			r.includes = append(r.includes, finalPath)
		}
	}
}

// splitParts breaks a slash-separated pattern into parts, dropping empty and
// "." components but keeping "..".
func splitParts(pattern string) []string {
	var parts []string
	for _, part := range strings.Split(pattern, "/") {
		if part == "" || part == "." {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}

func hasTrailingSlash(pattern string) bool {
	return strings.HasSuffix(pattern, "/") || strings.HasSuffix(pattern, "\\")
}

// absParts resolves parts against base, walking ".." upward but never past
// the repository root.
func absParts(base []string, parts []string) ([]string, error) {
	abs := append([]string(nil), base...)
	for _, part := range parts {
		if part == ".." {
			if len(abs) == 0 {
				return nil, errors.New("out of repository")
			}
			abs = abs[:len(abs)-1]
		} else {
			abs = append(abs, part)
		}
	}
	return abs, nil
}

// findCommonParts returns the longest directory prefix shared by every rule
// that is free of wildcard characters, so the transfer can be rooted there.
// When every rule is an exclude the current directory seeds the prefix.
func findCommonParts(rules []*rule, prefixParts []string, allExcludes bool) []string {
	var common []string
	haveCommon := false
	if allExcludes {
		common = prefixParts
		haveCommon = true
	}

	for _, r := range rules {
		parts := r.parts
		if !r.trailingSlash && len(parts) > 0 {
			// The last element names the target itself, not a
			// directory to root in.
			parts = parts[:len(parts)-1]
		}

		simple := parts
		if !r.magic.Has(MagicLiteral) {
			simple = nil
			for _, part := range parts {
				if strings.ContainsAny(part, "*[?") {
					break
				}
				simple = append(simple, part)
			}
		}

		if !haveCommon || len(simple) == 0 {
			common = simple
			haveCommon = true
			continue
		}

		i := 0
		for i < len(common) && i < len(simple) && common[i] == simple[i] {
			i++
		}
		common = common[:i]
	}
	return common
}

// widenStars replaces unescaped "*" with "**" so the pattern crosses
// directory separators the way git pathspecs do. Escaped wildcards are left
// alone.
func widenStars(part string) string {
	var b strings.Builder
	for i := 0; i < len(part); i++ {
		ch := part[i]
		if ch == '\\' && i+1 < len(part) {
			b.WriteByte(ch)
			b.WriteByte(part[i+1])
			i++
			continue
		}
		if ch == '*' {
			b.WriteString("**")
			continue
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// escapeWildcards backslash-escapes rsync wildcard characters so a literal
// pattern matches only itself.
func escapeWildcards(part string) string {
	var b strings.Builder
	for i := 0; i < len(part); i++ {
		ch := part[i]
		if ch == '*' || ch == '?' || ch == '[' {
			b.WriteByte('\\')
		}
		b.WriteByte(ch)
	}
	return b.String()
}
