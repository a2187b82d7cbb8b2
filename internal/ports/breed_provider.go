package ports

import (
	"context"

	"github.com/Gunvolt24/dogbreeds/internal/domain"
)

// BreedProvider — «сырой» источник подпород (без кэша).
// Любая неудача сворачивается в ошибку, оборачивающую domain.ErrBreedNotFound.
type BreedProvider interface {
	SubBreeds(ctx context.Context, breed domain.Breed) ([]string, error)
}
