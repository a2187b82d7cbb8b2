//go:build !integration

package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/dogbreeds/internal/domain"
	"github.com/Gunvolt24/dogbreeds/internal/testutil"
	"github.com/Gunvolt24/dogbreeds/pkg/validate"
)

// --- Бенчмарки ---

// Базовый бенч: подпороды из «кэша» — сравниваем LEAN vs FULL пайплайн
func BenchmarkHTTP_GetSubBreeds(b *testing.B) {
	h := NewHandler(lookupStub{subBreeds: testutil.MakeSubBreeds(5)}, validate.NewBreedValidator(), nopLogger{}, 2*time.Second)

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, lean, "/breeds/hound/sub-breeds", http.StatusOK)
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, full, "/breeds/hound/sub-breeds", http.StatusOK)
	})
}

// Размер ответа: 10/50/100 подпород — рост аллокаций и времени
func BenchmarkHTTP_GetSubBreeds_ListSize(b *testing.B) {
	for _, n := range []int{10, 50, 100} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			h := NewHandler(lookupStub{subBreeds: testutil.MakeSubBreeds(n)}, validate.NewBreedValidator(), nopLogger{}, 2*time.Second)
			benchServeGET(b, makeLeanRouter(h), "/breeds/hound/sub-breeds?limit="+strconv.Itoa(n), http.StatusOK)
		})
	}
}

// Ошибочный путь: порода не найдена
func BenchmarkHTTP_NotFound(b *testing.B) {
	h := NewHandler(lookupStub{err: domain.ErrBreedNotFound}, validate.NewBreedValidator(), nopLogger{}, 2*time.Second)
	benchServeGET(b, makeLeanRouter(h), "/breeds/ghostbreed/sub-breeds", http.StatusNotFound)
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стаб ---

type lookupStub struct {
	subBreeds []string
	err       error
}

func (s lookupStub) Lookup(context.Context, domain.Breed) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.subBreeds, nil
}
func (s lookupStub) CallsMade() int { return 1 }

// --- функции-помощники ---

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	r.GET("/breeds/:breed/sub-breeds", h.getSubBreeds)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// prod пайплайн из NewRouter
	return NewRouter(h, "")
}

func benchServeGET(b *testing.B, r *gin.Engine, path string, wantStatus int) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, http.NoBody)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != wantStatus {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
