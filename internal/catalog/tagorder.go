package catalog

import "sort"

// parseVersion consumes a leading run of digits and dots from s, packing
// dot-separated groups as acc = acc*100 + group, and returns the packed
// value along with the unconsumed remainder of s.
//
// A group already flushed at the last '.' is only folded again if the scan
// ran off the end of s while still inside (or just after) that group. If
// the scan instead stops at a name character, that group was already
// folded at the preceding dot and must not be folded twice.
func parseVersion(s string) (value int, rest string) {
	acc := 0
	group := 0
	i := 0

	for i < len(s) {
		c := s[i]

		if c >= '0' && c <= '9' {
			group = group*10 + int(c-'0')
			i++
			continue
		}

		if c == '.' {
			acc = acc*100 + group
			group = 0
			i++
			continue
		}

		return acc, s[i:]
	}

	acc = acc*100 + group

	return acc, s[i:]
}

// splitTag parses tag into (prefix, stream, suffix) per the grammar
// version ("." version)? name ("." version)?.
func splitTag(tag string) (prefix int, stream string, suffix int) {
	prefix, rest := parseVersion(tag)

	streamLen := 0

	for streamLen < len(rest) && rest[streamLen] != '.' {
		streamLen++
	}

	stream = rest[:streamLen]
	suffix, _ = parseVersion(rest[streamLen:])

	return prefix, stream, suffix
}

// CompareTags orders a before, equal to, or after b, with lastTag (when
// non-empty) always sorting last.
func CompareTags(a, b, lastTag string) int {
	if lastTag != "" {
		if a == lastTag {
			return 1
		}

		if b == lastTag {
			return -1
		}
	}

	aPrefix, aStream, aSuffix := splitTag(a)
	bPrefix, bStream, bSuffix := splitTag(b)

	if aPrefix != bPrefix {
		return cmpInt(aPrefix, bPrefix)
	}

	if aStream != bStream {
		if aStream < bStream {
			return -1
		}

		return 1
	}

	return cmpInt(aSuffix, bSuffix)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SortTags sorts tags in place per CompareTags, stably.
func SortTags(tags []string, lastTag string) {
	sort.SliceStable(tags, func(i, j int) bool {
		return CompareTags(tags[i], tags[j], lastTag) < 0
	})
}
