package testutil

import (
	"crypto/rand"
	"strconv"
)

// UniqBreedName — случайное имя из латинских букв (проходит валидацию имени породы).
func UniqBreedName() string {
	b := make([]byte, 10)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = 'a' + b[i]%26
	}
	return "breed" + string(b)
}

// MakeSubBreeds — n детерминированных имён подпород: sub0, sub1, ...
func MakeSubBreeds(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, "sub"+strconv.Itoa(i))
	}
	return out
}
