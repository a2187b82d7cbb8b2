package domain

import "errors"

var (
	// ErrBreedNotFound — единственный вид ошибки поиска: порода не найдена
	// либо источник не смог ответить (сеть, формат ответа, таймаут).
	ErrBreedNotFound = errors.New("breed not found")

	// ErrInvalidArgument — ошибка конструирования (не передана обязательная зависимость).
	ErrInvalidArgument = errors.New("invalid argument")
)
