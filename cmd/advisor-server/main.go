package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avendel/framework-advisor/internal/analysis"
	"github.com/avendel/framework-advisor/internal/catalog"
	"github.com/avendel/framework-advisor/internal/contextengine"
	"github.com/avendel/framework-advisor/internal/httpapi"
	"github.com/avendel/framework-advisor/internal/resultstore"
	"github.com/avendel/framework-advisor/internal/selection"
	"github.com/avendel/framework-advisor/internal/telemetry"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "advisor.db", "SQLite path for run persistence (empty disables)")
	synergyPath := flag.String("synergies", "", "Optional synergy table JSON")
	enhancementPath := flag.String("enhancements", "", "Optional enhancement table JSON")
	offline := flag.Bool("offline", false, "Skip the LLM; narrative analysis uses fallback text")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, "advisor-server")
	if err != nil {
		log.Fatal(err)
	}
	defer shutdownTracing(context.Background())

	cat := catalog.NewDefault()
	if err := cat.Validate(); err != nil {
		log.Fatal(err)
	}
	if err := cat.LoadSynergies(*synergyPath); err != nil {
		log.Fatal(err)
	}
	if err := cat.LoadEnhancements(*enhancementPath); err != nil {
		log.Fatal(err)
	}

	var caller analysis.NarrativeCaller
	if !*offline {
		c, err := analysis.NewAnthropicCallerFromEnv()
		if err != nil {
			log.Fatal(err)
		}
		caller = c
	}

	var store httpapi.RunStore
	if *dbPath != "" {
		s, err := resultstore.Open(*dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer s.Close()
		store = s
	}

	handler := httpapi.NewServer(
		cat,
		contextengine.NewEngine(cat),
		selection.NewSelector(cat),
		analysis.NewEngine(caller),
		store,
	)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("advisor-server listening on %s (frameworks=%d, offline=%v)", *addr, len(cat.IDs()), *offline)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
