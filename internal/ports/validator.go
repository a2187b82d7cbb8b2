package ports

import "context"

// BreedNameValidator — проверка имени породы на внешних входах (HTTP, CLI).
type BreedNameValidator interface {
	Validate(ctx context.Context, name string) error
}
