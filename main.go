package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ledgerkit/biztime/app/industries"
	"github.com/ledgerkit/biztime/app/invoices"
	"github.com/ledgerkit/biztime/database"
	"github.com/ledgerkit/biztime/models"
)

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func main() {
	_ = godotenv.Load()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	companies := models.NewCompaniesRepository(db)
	industriesHandler := industries.NewIndustriesHandler(models.NewIndustriesRepository(db), companies)
	invoicesHandler := invoices.NewInvoicesHandler(models.NewInvoicesRepository(db), companies)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /industries", industriesHandler.HandleCreate)
	mux.HandleFunc("POST /industries/associate", industriesHandler.HandleAssociate)
	mux.HandleFunc("GET /industries", industriesHandler.HandleGetAll)
	mux.HandleFunc("GET /invoices", invoicesHandler.HandleGetAll)
	mux.HandleFunc("GET /invoices/{id}", invoicesHandler.HandleGetByID)
	mux.HandleFunc("POST /invoices", invoicesHandler.HandleCreate)
	mux.HandleFunc("PUT /invoices/{id}", invoicesHandler.HandleUpdate)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{Addr: ":" + port, Handler: withLogging(mux)}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
