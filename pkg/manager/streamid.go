package manager

import (
	"strconv"
	"strings"
)

// compareStreamIDs implements the total order ShouldSkip relies on. Redis
// Stream IDs are "<unix-ms>-<seq>"; this orders two IDs numerically on
// both components rather than lexicographically, so
// "999-0" < "1000-0" holds even though it wouldn't as plain strings.
func compareStreamIDs(a, b string) int {
	aTS, aSeq := splitStreamID(a)
	bTS, bSeq := splitStreamID(b)
	switch {
	case aTS < bTS:
		return -1
	case aTS > bTS:
		return 1
	case aSeq < bSeq:
		return -1
	case aSeq > bSeq:
		return 1
	default:
		return 0
	}
}

func splitStreamID(id string) (int64, int64) {
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		ts, _ := strconv.ParseInt(id, 10, 64)
		return ts, 0
	}
	ts, _ := strconv.ParseInt(parts[0], 10, 64)
	seq, _ := strconv.ParseInt(parts[1], 10, 64)
	return ts, seq
}
