package main

import (
	"context"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/finance/interfaces"
)

type Response struct {
	Message string `json:"message"`
}

type healthChecker interface {
	Health(ctx context.Context) map[string]string
}

type Server struct {
	router             *http.ServeMux
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
	db                 healthChecker
}

func NewServer(categoryHandler *interfaces.CategoryHandler, transactionHandler *interfaces.TransactionHandler, db healthChecker) *Server {
	return &Server{
		categoryHandler:    categoryHandler,
		transactionHandler: transactionHandler,
		db:                 db,
		router:             http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	interfaces.RespondJSON(w, http.StatusNotFound, Response{Message: "Path not found"})
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	interfaces.RespondJSON(w, http.StatusOK, Response{Message: "Welcome to Personal Finance Tracker API"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	interfaces.RespondJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	stats := s.db.Health(r.Context())
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	interfaces.RespondJSON(w, status, stats)
}

func (s *Server) RegisterRoutes() {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)

	// collections answer with and without the trailing slash
	for _, path := range []string{"/categories", "/categories/{$}"} {
		mux.HandleFunc("POST "+path, s.categoryHandler.CreateCategory)
		mux.HandleFunc("GET "+path, s.categoryHandler.GetCategories)
	}
	mux.HandleFunc("PUT /categories/{id}", s.categoryHandler.UpdateCategory)
	mux.HandleFunc("DELETE /categories/{id}", s.categoryHandler.DeleteCategory)

	for _, path := range []string{"/transactions", "/transactions/{$}"} {
		mux.HandleFunc("POST "+path, s.transactionHandler.CreateTransaction)
		mux.HandleFunc("GET "+path, s.transactionHandler.GetTransactions)
	}
	mux.HandleFunc("PUT /transactions/{id}", s.transactionHandler.UpdateTransaction)
	mux.HandleFunc("DELETE /transactions/{id}", s.transactionHandler.DeleteTransaction)

	mux.HandleFunc("/", notFoundHandler)

	s.router = mux
}
