package main

import (
	"net/http"
	"os"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/mockserver"
)

func main() {
	log := logger.NewLogger("mock-journal-server")

	addr := os.Getenv("MOCKSERVER_ADDRESS")
	if addr == "" {
		addr = "localhost:8080"
	}

	handler := mockserver.NewHandler(log)

	log.Info().Str("address", addr).Msg("mock journal server listening")
	if err := http.ListenAndServe(addr, handler.Init()); err != nil {
		log.Fatal().Err(err).Msg("mock journal server stopped")
	}
}
