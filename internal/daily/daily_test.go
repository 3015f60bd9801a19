package daily

import (
	"testing"
	"time"
)

func TestDateKey_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2026, 3, 2, 5, 0, 0, 0, loc) // 2026-03-01 19:00 UTC
	if got := DateKey(ts); got != "2026-03-01" {
		t.Errorf("expected 2026-03-01, got %s", got)
	}
}

func TestWordIndex_StableWithinDay(t *testing.T) {
	morning := time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC)
	a := WordIndex(morning, "salt", 500)
	b := WordIndex(evening, "salt", 500)
	if a != b {
		t.Errorf("same day should give the same index, got %d and %d", a, b)
	}
	if a < 0 || a >= 500 {
		t.Errorf("index %d out of range", a)
	}
}

func TestWordIndex_EmptyList(t *testing.T) {
	if got := WordIndex(time.Now(), "salt", 0); got != 0 {
		t.Errorf("expected 0 for empty list, got %d", got)
	}
}

func TestWordIndex_SaltMatters(t *testing.T) {
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	differs := false
	for _, salt := range []string{"a", "b", "c", "d", "e", "f"} {
		if WordIndex(day, salt, 1000) != WordIndex(day, "base", 1000) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("expected the salt to influence the pick")
	}
}

func TestPick(t *testing.T) {
	day := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	list := []string{"apple", "river", "stone"}
	word, date := Pick(day, "salt", list)
	if date != "2026-10-19" {
		t.Errorf("unexpected date %s", date)
	}
	if want := list[WordIndex(day, "salt", len(list))]; word != want {
		t.Errorf("expected %q, got %q", want, word)
	}
	if w, _ := Pick(day, "salt", nil); w != "" {
		t.Errorf("expected empty word for empty list, got %q", w)
	}
}
