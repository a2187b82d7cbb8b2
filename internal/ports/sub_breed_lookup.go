package ports

import (
	"context"

	"github.com/Gunvolt24/dogbreeds/internal/domain"
)

// SubBreedLookup — сервис чтения подпород для внешних слоёв (HTTP, Kafka, CLI).
type SubBreedLookup interface {
	Lookup(ctx context.Context, breed domain.Breed) ([]string, error)
	CallsMade() int
}
