// Package daily picks a deterministic "phrase of the day" from a word list.
//
// The pick is HMAC(salt, YYYY-MM-DD) modulo the list length, so every server
// sharing a salt and a list agrees on the day's word without coordination,
// and the word cannot be predicted without the salt.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index in [0, n) for the day containing t.
func WordIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Pick returns the day's word from list and the date key it belongs to.
// It returns "" when list is empty.
func Pick(t time.Time, salt string, list []string) (word, date string) {
	date = DateKey(t)
	if len(list) == 0 {
		return "", date
	}
	return list[WordIndex(t, salt, len(list))], date
}
