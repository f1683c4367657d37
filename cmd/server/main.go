package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/light-bringer/teetime-pricing/internal/app/pricing/domain"
	"github.com/light-bringer/teetime-pricing/internal/app/pricing/engine"
	"github.com/light-bringer/teetime-pricing/internal/services"
)

type config struct {
	SpannerDB string
	HTTPPort  string
	CourseIDs []string
}

func loadConfig() config {
	return config{
		SpannerDB: getEnvOrDefault("SPANNER_DB",
			"projects/test-project/instances/dev-instance/databases/teetime-pricing-db"),
		HTTPPort:  getEnvOrDefault("HTTP_PORT", "8080"),
		CourseIDs: splitList(os.Getenv("COURSE_IDS")),
	}
}

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("failed to run server")
	}
}

func run(log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := loadConfig()
	log.Info().Str("spanner_db", cfg.SpannerDB).Str("http_port", cfg.HTTPPort).
		Strs("courses", cfg.CourseIDs).Msg("starting tee-time pricing service")

	opts, err := services.NewServiceOptions(ctx, cfg.SpannerDB, log)
	if err != nil {
		return err
	}
	defer opts.Close()

	// Preload each configured course. A failed load is surfaced but not
	// fatal: the course simply stays unpriced until a later reload.
	for _, courseID := range cfg.CourseIDs {
		if err := opts.Engine.Load(ctx, courseID); err != nil {
			log.Warn().Err(err).Str("course_id", courseID).Msg("course not loaded")
			continue
		}
		log.Info().Str("course_id", courseID).Msg("course loaded")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/quote", quoteHandler(opts.Engine, log))
	mux.HandleFunc("/api/v1/export", exportHandler(opts.Engine))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// quoteResponse wraps a quote for the HTTP surface. A blocked slot is not an
// error: it reads as unavailable.
type quoteResponse struct {
	Available bool          `json:"available"`
	Reason    string        `json:"reason,omitempty"`
	Quote     *domain.Quote `json:"quote,omitempty"`
}

func quoteHandler(eng *engine.Engine, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		q := r.URL.Query()
		players, err := strconv.ParseInt(q.Get("players"), 10, 64)
		if err != nil {
			http.Error(w, "players must be an integer", http.StatusBadRequest)
			return
		}
		req := domain.QuoteRequest{
			CourseID: q.Get("course"),
			Date:     q.Get("date"),
			Time:     q.Get("time"),
			Players:  players,
		}
		if v := q.Get("occupancy"); v != "" {
			occ, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				http.Error(w, "occupancy must be an integer", http.StatusBadRequest)
				return
			}
			req.OccupancyPct = &occ
		}

		quote, err := eng.QuoteCached(req)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, quoteResponse{Available: true, Quote: quote})
		case errors.Is(err, domain.ErrBlocked):
			writeJSON(w, http.StatusOK, quoteResponse{Available: false, Reason: "unavailable"})
		case errors.Is(err, domain.ErrNoBaseProduct):
			// Configuration problem, not a customer-facing $0 price.
			log.Error().Err(err).Str("course_id", req.CourseID).Msg("course is not configured")
			http.Error(w, "course is not configured for pricing", http.StatusServiceUnavailable)
		case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidTime),
			errors.Is(err, domain.ErrInvalidPlayers):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Error().Err(err).Msg("quote failed")
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

func exportHandler(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		courseID := r.URL.Query().Get("course")
		if courseID == "" {
			http.Error(w, "course is required", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, eng.Export(courseID))
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
