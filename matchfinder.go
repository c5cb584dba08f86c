package lizard

// A matchFinder searches for the longest run in the lookback window
// matching the front of the pending window. It walks the two windows
// once, growing a single candidate while bytes keep matching and
// restarting it on the first mismatch; that finds the long runs worth
// encoding without the cost of an exhaustive per-offset search.
type matchFinder struct {
	minMatch int
}

// findMatch reports the best copy for the current windows, or ok false
// when the front of pending should be emitted as a literal. A match
// never starts in pending, but one that begins in lookback may run
// into pending: those are the self-overlapping copies that encode
// repetition. Ties keep the first match found.
func (f matchFinder) findMatch(lookback, pending *window) (OffsetLen, bool) {
	lbLen := lookback.Len()
	pLen := pending.Len()
	if pLen == 0 {
		return OffsetLen{}, false
	}

	var (
		bestStart, bestLen int
		curStart, curLen   int
		active             bool
	)
	settle := func() {
		if active && curLen > bestLen {
			bestStart, bestLen = curStart, curLen
		}
		active = false
	}
	for i := 0; i < lbLen+pLen; i++ {
		var b byte
		if i < lbLen {
			b = lookback.At(i)
		} else {
			b = pending.At(i - lbLen)
		}
		if active {
			if curLen < pLen && b == pending.At(curLen) {
				curLen++
				continue
			}
			settle()
		}
		if i < lbLen && b == pending.At(0) {
			curStart, curLen, active = i, 1, true
		}
	}
	settle()

	if bestLen < f.minMatch {
		return OffsetLen{}, false
	}
	return OffsetLen{Offset: uint64(bestStart), Len: uint64(bestLen)}, true
}
