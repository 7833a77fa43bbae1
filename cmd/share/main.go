package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourname/share_lite/internal/app/sharehttp"
	"github.com/yourname/share_lite/internal/config"
)

// main инициализирует HTTP-сервис обмена файлами и обеспечивает корректное
// завершение по сигналу.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler, srv, err := sharehttp.NewServer(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Фоновый GC подчищает брошенные незавершённые загрузки.
	stopGC := srv.Files.StartGC(
		time.Duration(cfg.GCTTLHours)*time.Hour,
		time.Duration(cfg.GCIntervalMin)*time.Minute,
	)
	defer stopGC()

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: handler,
	}

	// Сценарий graceful shutdown при получении SIGTERM/SIGINT.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("SHARE shutdown error: %v", err)
		}
	}()

	log.Printf("SHARE listening on %s (staging=%s, content=%s, GC ttl=%dh, every=%dm)",
		cfg.ListenAddr, cfg.StagingDir, cfg.ContentBackend, cfg.GCTTLHours, cfg.GCIntervalMin)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("SHARE final shutdown error: %v", err)
	}
}
