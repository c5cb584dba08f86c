package lizard

import "testing"

func windowOf(capacity int, s string) *window {
	w := newWindow(capacity)
	for i := 0; i < len(s); i++ {
		w.Append(s[i])
	}
	return w
}

func TestFindMatchBasic(t *testing.T) {
	f := matchFinder{minMatch: 3}
	ol, ok := f.findMatch(windowOf(8, "abcde"), windowOf(4, "bcd"))
	if !ok || ol != (OffsetLen{Offset: 1, Len: 3}) {
		t.Fatalf("findMatch = %+v,%v, want {1 3},true", ol, ok)
	}
}

// A match may not start inside pending, so a repetitive pending window
// alone yields nothing.
func TestFindMatchNeverStartsInPending(t *testing.T) {
	f := matchFinder{minMatch: 1}
	if ol, ok := f.findMatch(windowOf(8, ""), windowOf(8, "aaaa")); ok {
		t.Fatalf("found %+v in empty lookback", ol)
	}
}

// A match that starts in lookback may keep running into pending; the
// bytes it overruns are the ones the copy itself will produce.
func TestFindMatchRunsIntoPending(t *testing.T) {
	f := matchFinder{minMatch: 3}
	ol, ok := f.findMatch(windowOf(8, "ab"), windowOf(8, "ababab"))
	if !ok || ol != (OffsetLen{Offset: 0, Len: 6}) {
		t.Fatalf("findMatch = %+v,%v, want {0 6},true", ol, ok)
	}
}

func TestFindMatchSingleByteRun(t *testing.T) {
	f := matchFinder{minMatch: 3}
	ol, ok := f.findMatch(windowOf(8, "a"), windowOf(4, "aaaa"))
	if !ok || ol != (OffsetLen{Offset: 0, Len: 4}) {
		t.Fatalf("findMatch = %+v,%v, want {0 4},true", ol, ok)
	}
}

func TestFindMatchPrefersLonger(t *testing.T) {
	f := matchFinder{minMatch: 2}
	ol, ok := f.findMatch(windowOf(16, "abxabc"), windowOf(4, "abc"))
	if !ok || ol != (OffsetLen{Offset: 3, Len: 3}) {
		t.Fatalf("findMatch = %+v,%v, want {3 3},true", ol, ok)
	}
}

// Ties go to the first match found.
func TestFindMatchFirstWinsTies(t *testing.T) {
	f := matchFinder{minMatch: 2}
	ol, ok := f.findMatch(windowOf(16, "abcxabc"), windowOf(4, "abc"))
	if !ok || ol != (OffsetLen{Offset: 0, Len: 3}) {
		t.Fatalf("findMatch = %+v,%v, want {0 3},true", ol, ok)
	}
}

// Runs shorter than the minimum degrade to literals.
func TestFindMatchMinMatch(t *testing.T) {
	f := matchFinder{minMatch: 3}
	if ol, ok := f.findMatch(windowOf(8, "ab"), windowOf(4, "abxy")); ok {
		t.Fatalf("found %+v below min match", ol)
	}
	f.minMatch = 2
	ol, ok := f.findMatch(windowOf(8, "ab"), windowOf(4, "abxy"))
	if !ok || ol != (OffsetLen{Offset: 0, Len: 2}) {
		t.Fatalf("findMatch = %+v,%v, want {0 2},true", ol, ok)
	}
}

// The candidate may never read past the end of pending: a copy longer
// than the lookahead cannot be replayed.
func TestFindMatchCappedByPending(t *testing.T) {
	f := matchFinder{minMatch: 2}
	ol, ok := f.findMatch(windowOf(8, "aaaa"), windowOf(2, "aa"))
	if !ok || ol.Len != 2 {
		t.Fatalf("findMatch = %+v,%v, want len 2", ol, ok)
	}
}

func TestFindMatchEmptyPending(t *testing.T) {
	f := matchFinder{minMatch: 3}
	if ol, ok := f.findMatch(windowOf(8, "abc"), windowOf(4, "")); ok {
		t.Fatalf("found %+v with empty pending", ol)
	}
}

// A mismatch can close one candidate and open another at the same
// position.
func TestFindMatchRestartOnMismatch(t *testing.T) {
	f := matchFinder{minMatch: 3}
	ol, ok := f.findMatch(windowOf(16, "abaabc"), windowOf(4, "abc"))
	if !ok || ol != (OffsetLen{Offset: 3, Len: 3}) {
		t.Fatalf("findMatch = %+v,%v, want {3 3},true", ol, ok)
	}
}
