package main

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"skifall/config"
	"skifall/network"
	"skifall/room"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	config.Init()

	manager := room.NewManager(room.Config{TotalRounds: config.TotalRounds()})

	handler := &network.Handler{Manager: manager}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", handler.ServeWS)
	mux.HandleFunc("/api/rooms", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPost:
			code := manager.CreateRoom()
			_ = json.NewEncoder(w).Encode(map[string]string{"code": code})
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(manager.ListRooms())
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	addr := config.Addr()
	log.Info().Str("addr", addr).Msg("listening (ws endpoint: /ws)")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
