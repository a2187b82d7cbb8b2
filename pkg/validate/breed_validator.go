package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Gunvolt24/dogbreeds/internal/ports"
)

// Проверка, что BreedValidator удовлетворяет интерфейсу BreedNameValidator.
var _ ports.BreedNameValidator = (*BreedValidator)(nil)

// ErrInvalidBreedName — базовая (sentinel error) ошибка валидации имени породы.
var ErrInvalidBreedName = errors.New("invalid breed name")

// MaxBreedNameLen — предел длины имени после обрезки пробелов (в рунах).
const MaxBreedNameLen = 64

// BreedValidator — проверка имени породы на внешних входах (HTTP, CLI, Kafka).
// Ядро поиска имена не валидирует: его контракт — «любая строка».
type BreedValidator struct{}

// NewBreedValidator — конструктор BreedValidator.
// Возвращает ErrInvalidBreedName (с обёрнутой причиной) при любой проблеме.
func NewBreedValidator() *BreedValidator { return &BreedValidator{} }

// Validate — буквы, '-' и пробелы внутри имени; длина 1..MaxBreedNameLen.
func (v *BreedValidator) Validate(_ context.Context, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: имя не может быть пустым", ErrInvalidBreedName)
	}
	if n := utf8.RuneCountInString(trimmed); n > MaxBreedNameLen {
		return fmt.Errorf("%w: длина %d больше %d", ErrInvalidBreedName, n, MaxBreedNameLen)
	}

	for i, r := range trimmed {
		switch {
		case unicode.IsLetter(r), r == '-', r == ' ':
		default:
			return fmt.Errorf("%w: недопустимый символ %q в позиции %d", ErrInvalidBreedName, r, i)
		}
	}
	return nil
}

// SplitValid — разделить имена на прошедшие и не прошедшие валидацию (порядок сохраняется).
func SplitValid(ctx context.Context, validator ports.BreedNameValidator, names []string) (valid, invalid []string) {
	for _, name := range names {
		if err := validator.Validate(ctx, name); err != nil {
			invalid = append(invalid, name)
			continue
		}
		valid = append(valid, name)
	}
	return valid, invalid
}
