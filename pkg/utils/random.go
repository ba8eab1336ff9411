package utils

import (
	"crypto/rand"
	"encoding/hex"
	mrand "math/rand"
	"time"
)

// GenerateID создает короткий уникальный ID (вместо UUID, без лишних зависимостей).
func GenerateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// PrefixedID - ID с префиксом типа сущности ("monster_3fa1...").
func PrefixedID(prefix string) string {
	return prefix + "_" + GenerateID()
}

// NewRand создает генератор по зерну. Нулевое зерно - от текущего времени.
func NewRand(seed int64) *mrand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return mrand.New(mrand.NewSource(seed))
}

// DurationBetween возвращает случайную длительность в [lo, hi].
func DurationBetween(rng *mrand.Rand, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rng.Int63n(int64(hi-lo)+1))
}
