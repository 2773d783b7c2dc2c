// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package mockstore

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
)

// Handler returns the store's HTTP API, gzip-compressed when the client
// accepts it.
func (store *Store) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(store.logRequests)
	router.Use(store.delay)

	router.HandleFunc("/api/users", store.handleUsers).Methods(http.MethodGet)
	router.HandleFunc("/api/nicknames", store.handleNicknames).Methods(http.MethodGet)
	router.HandleFunc("/api/nicknames/user/{userId}", store.handleUserNicknames).Methods(http.MethodGet)
	router.HandleFunc("/api/nicknames/{id}", store.handleDelete).Methods(http.MethodDelete)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, messageBody{Message: "Route not found"})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, messageBody{Message: "Method not allowed"})
	})

	return gzhttp.GzipHandler(router)
}

type messageBody struct {
	Message string `json:"message"`
}

func (store *Store) handleUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.listUsers())
}

func (store *Store) handleNicknames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.listNicknames(""))
}

func (store *Store) handleUserNicknames(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	writeJSON(w, http.StatusOK, store.listNicknames(userID))
}

func (store *Store) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	switch store.deleteNickname(id) {
	case deleted:
		writeJSON(w, http.StatusOK, messageBody{Message: "Nickname deleted"})
	case deleteNotFound:
		writeJSON(w, http.StatusNotFound, messageBody{Message: "Nickname not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: "Delete failed"})
	}
}

// delay holds each request for the configured latency, returning early
// if the client goes away.
func (store *Store) delay(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if latency := store.currentLatency(); latency > 0 {
			timer := time.NewTimer(latency)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-r.Context().Done():
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (store *Store) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		store.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(status int) {
	recorder.status = status
	recorder.ResponseWriter.WriteHeader(status)
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(value)
}
