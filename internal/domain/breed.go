package domain

import "strings"

// Breed — имя породы в том виде, в котором его передал вызывающий.
// Нулевое значение означает «имя отсутствует» (аналог NULL),
// и это допустимый вход для поиска.
type Breed struct {
	Name  string
	Valid bool
}

// BreedOf — присутствующее имя породы (без нормализации).
func BreedOf(name string) Breed { return Breed{Name: name, Valid: true} }

// AbsentBreed — отсутствующее имя породы.
func AbsentBreed() Breed { return Breed{} }

// Key — нормализованный ключ кэша: trim + lower; отсутствующее имя → «absent»-ключ.
func (b Breed) Key() CacheKey {
	if !b.Valid {
		return CacheKey{}
	}
	return CacheKey{name: strings.ToLower(strings.TrimSpace(b.Name)), present: true}
}

// String — представление для логов.
func (b Breed) String() string {
	if !b.Valid {
		return "<absent>"
	}
	return b.Name
}

// CacheKey — нормализованный идентификатор породы.
// Нулевое значение — ключ отсутствующего имени; он отличается от ключа пустой строки.
type CacheKey struct {
	name    string
	present bool
}

// Absent — true для ключа отсутствующего имени.
func (k CacheKey) Absent() bool { return !k.present }

// Name — нормализованное имя ("" для absent-ключа).
func (k CacheKey) Name() string { return k.name }

// String — стабильное строковое представление (метки, логи).
func (k CacheKey) String() string {
	if !k.present {
		return "absent"
	}
	return "name:" + k.name
}
