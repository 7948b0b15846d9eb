package main

import (
	"context"
	"net/http"
	"time"

	"bookduck/internal/bookinfo"
	"bookduck/internal/excerpt"
	"bookduck/internal/friend"
	"bookduck/internal/httpx"
	"bookduck/internal/library"
	"bookduck/internal/skin"
	"bookduck/internal/user"
)

type handlers struct {
	books    *bookinfo.HTTPHandler
	library  *library.HTTPHandler
	excerpts *excerpt.HTTPHandler
	friends  *friend.HTTPHandler
	skins    *skin.HTTPHandler
	users    *user.HTTPHandler
}

// newRouter registers every /v1 route. ping backs /readyz.
func newRouter(h handlers, jwtSecret string, ping func(context.Context) error) *http.ServeMux {
	router := http.NewServeMux()
	auth := httpx.AuthMiddleware(jwtSecret)
	protected := func(fn http.HandlerFunc) http.Handler {
		return auth(fn)
	}

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("POST /v1/users/register", h.users.Register)
	router.HandleFunc("POST /v1/users/login", h.users.Login)
	router.Handle("GET /v1/me", protected(h.users.Me))

	router.Handle("GET /v1/books/search", protected(h.books.Search))
	router.Handle("GET /v1/volumes/{providerId}", protected(h.books.GetAPIBook))
	router.Handle("POST /v1/books", protected(h.books.Save))
	router.Handle("GET /v1/books/{id}", protected(h.books.Get))
	router.Handle("DELETE /v1/books/{id}", protected(h.books.Delete))
	router.Handle("GET /v1/books/{id}/excerpts", protected(h.excerpts.ListByBook))

	router.Handle("POST /v1/userbooks", protected(h.library.Add))
	router.Handle("GET /v1/userbooks", protected(h.library.List))
	router.Handle("PATCH /v1/userbooks/{id}/status", protected(h.library.ChangeStatus))
	router.Handle("DELETE /v1/userbooks/{id}", protected(h.library.Delete))

	router.Handle("POST /v1/excerpts", protected(h.excerpts.Create))
	router.Handle("GET /v1/excerpts/{id}", protected(h.excerpts.Get))
	router.Handle("PUT /v1/excerpts/{id}", protected(h.excerpts.Update))
	router.Handle("DELETE /v1/excerpts/{id}", protected(h.excerpts.Delete))

	router.Handle("POST /v1/friends/requests", protected(h.friends.SendRequest))
	router.Handle("GET /v1/friends/requests/sent", protected(h.friends.ListSent))
	router.Handle("GET /v1/friends/requests/received", protected(h.friends.ListReceived))
	router.Handle("POST /v1/friends/requests/{id}/accept", protected(h.friends.Accept))
	router.Handle("GET /v1/friends", protected(h.friends.List))

	router.HandleFunc("GET /v1/skins", h.skins.List)
	router.Handle("GET /v1/skins/equipped", protected(h.skins.Equipped))

	return router
}
