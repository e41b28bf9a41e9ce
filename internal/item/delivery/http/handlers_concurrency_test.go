package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"catalog/internal/item/repository/memory"
)

// serve is safe to call from any goroutine: it never touches t.
func serve(h http.Handler, method, path string, body any) int {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Code
}

func TestConcurrentRequestsOnOneItem(t *testing.T) {
	r := newRouter(memory.New())

	w := do(t, r, http.MethodPost, "/items", map[string]any{"name": "Elixir-50", "price": 50})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", w.Code)
	}
	created := decode[itemView](t, w)
	path := "/items/" + created.ID

	const rounds = 10
	codes := make(chan int, rounds*4)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 1; i <= rounds; i++ {
		price := i * 10
		wg.Add(4)
		go func() {
			defer wg.Done()
			<-start
			// name and price always travel together so a torn write is visible
			codes <- serve(r, http.MethodPut, path, map[string]any{"name": fmt.Sprintf("Elixir-%d", price), "price": price})
		}()
		go func() {
			defer wg.Done()
			<-start
			codes <- serve(r, http.MethodGet, path, nil)
		}()
		go func() {
			defer wg.Done()
			<-start
			codes <- serve(r, http.MethodPost, "/items", map[string]any{"name": "Potion", "price": 5})
		}()
		go func(i int) {
			defer wg.Done()
			<-start
			if i == rounds/2 {
				codes <- serve(r, http.MethodDelete, path, nil)
				return
			}
			codes <- serve(r, http.MethodGet, "/items", nil)
		}(i)
	}
	close(start)
	wg.Wait()
	close(codes)

	allowed := map[int]bool{
		http.StatusOK:        true,
		http.StatusCreated:   true,
		http.StatusNoContent: true,
		http.StatusNotFound:  true,
	}
	for code := range codes {
		if !allowed[code] {
			t.Errorf("unexpected status %d", code)
		}
	}

	w = do(t, r, http.MethodGet, path, nil)
	switch w.Code {
	case http.StatusNotFound:
	case http.StatusOK:
		got := decode[itemView](t, w)
		if got.ID != created.ID || !got.CreatedDate.Equal(created.CreatedDate) {
			t.Errorf("identity changed: %+v, created %+v", got, created)
		}
		if want := fmt.Sprintf("Elixir-%d", int(got.Price)); got.Name != want {
			t.Errorf("half-written item: name %q with price %v", got.Name, got.Price)
		}
	default:
		t.Fatalf("final get: expected 200 or 404, got %d", w.Code)
	}

	potions := 0
	for _, v := range decode[[]itemView](t, do(t, r, http.MethodGet, "/items?name=potion", nil)) {
		if v.Name == "Potion" {
			potions++
		}
	}
	if potions != rounds {
		t.Errorf("expected %d concurrently created items, got %d", rounds, potions)
	}
}
