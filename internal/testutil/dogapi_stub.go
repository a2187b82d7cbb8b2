package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// DogAPIStub — локальная подмена dog.ceo: отвечает теми же конвертами
// и считает обращения по каждой породе.
type DogAPIStub struct {
	Server *httptest.Server

	mu     sync.Mutex
	breeds map[string][]string
	hits   map[string]int
}

// NewDogAPIStub — breeds: имя (в нижнем регистре) → подпороды. Сервер закрывается в tb.Cleanup.
func NewDogAPIStub(tb testing.TB, breeds map[string][]string) *DogAPIStub {
	tb.Helper()

	s := &DogAPIStub{breeds: breeds, hits: make(map[string]int)}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/breed/", s.serve)
	s.Server = httptest.NewServer(mux)
	tb.Cleanup(s.Server.Close)
	return s
}

// BaseURL — значение для BREEDS_DOGAPI_BASE_URL.
func (s *DogAPIStub) BaseURL() string { return s.Server.URL + "/api" }

// Hits — число запросов по породе (включая неизвестные).
func (s *DogAPIStub) Hits(breed string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[breed]
}

// TotalHits — общее число запросов.
func (s *DogAPIStub) TotalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.hits {
		total += n
	}
	return total
}

func (s *DogAPIStub) serve(w http.ResponseWriter, r *http.Request) {
	// /api/breed/{name}/list
	rest := strings.TrimPrefix(r.URL.Path, "/api/breed/")
	name, ok := strings.CutSuffix(rest, "/list")
	if !ok {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	s.hits[name]++
	subBreeds, found := s.breeds[name]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !found {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "error",
			"message": "Breed not found (master breed does not exist)",
			"code":    http.StatusNotFound,
		})
		return
	}
	if subBreeds == nil {
		subBreeds = []string{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": subBreeds,
		"status":  "success",
	})
}
