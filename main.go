package main

import (
	"context"
	"embed"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/widewildonline-ai/serp-tracker-web/batch"
	"github.com/widewildonline-ai/serp-tracker-web/config"
	"github.com/widewildonline-ai/serp-tracker-web/crawler"
	"github.com/widewildonline-ai/serp-tracker-web/data"
	"github.com/widewildonline-ai/serp-tracker-web/data/repos"
	"github.com/widewildonline-ai/serp-tracker-web/handlers"
	"github.com/widewildonline-ai/serp-tracker-web/jobs"
)

//go:embed data/migrations/*.sql
var embedMigrations embed.FS

func main() {
	config.LoadConfig()

	opts := slog.HandlerOptions{Level: config.Config.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &opts))
	slog.SetDefault(logger)

	db, err := sqlx.Connect("postgres", config.Config.PostgresURL)
	if err != nil {
		slog.Error("failed to connect to db", "error", err)
		os.Exit(1)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	if err := data.RunMigrations(db.DB, embedMigrations); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	accountRepo := repos.NewAccountRepo(db)
	keywordRepo := repos.NewKeywordRepo(db)
	contentRepo := repos.NewContentRepo(db)
	serpRepo := repos.NewSerpRepo(db)
	settingRepo := repos.NewSettingRepo(db)

	httpClient, err := crawler.NewHTTPClient(config.Config.ProxyURL)
	if err != nil {
		slog.Error("failed to create http client", "error", err)
		os.Exit(1)
	}

	runner := batch.NewRunner(logger, 2*time.Second)
	jobService := jobs.NewService(logger, httpClient, runner,
		accountRepo, keywordRepo, contentRepo, serpRepo, settingRepo)

	accounts := handlers.NewAccountHandler(accountRepo, jobService)
	keywords := handlers.NewKeywordHandler(keywordRepo, jobService)
	contents := handlers.NewContentHandler(contentRepo, keywordRepo, serpRepo)
	serp := handlers.NewSerpHandler(serpRepo)
	recommend := handlers.NewRecommendHandler(jobService)
	settings := handlers.NewSettingHandler(settingRepo)
	jobHandler := handlers.NewJobHandler(jobService)
	proxy := handlers.NewProxyHandler(settingRepo, httpClient)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := NewNotifier(serpRepo, settingRepo)
	go notifier.Start(ctx)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /accounts", private(accounts.CreateAccount))
	mux.HandleFunc("GET /accounts", public(accounts.GetAccounts))
	mux.HandleFunc("PUT /accounts/{id}", private(accounts.UpdateAccount))
	mux.HandleFunc("DELETE /accounts/{id}", private(accounts.DeleteAccount))
	mux.HandleFunc("POST /accounts/recalculate", private(accounts.RecalculateScores))

	mux.HandleFunc("POST /keywords", private(keywords.CreateKeyword))
	mux.HandleFunc("POST /keywords/bulk", private(keywords.BulkCreateKeywords))
	mux.HandleFunc("GET /keywords", public(keywords.GetKeywords))
	mux.HandleFunc("GET /keywords/{id}", public(keywords.GetKeyword))
	mux.HandleFunc("PUT /keywords/{id}", private(keywords.UpdateKeyword))
	mux.HandleFunc("DELETE /keywords/{id}", private(keywords.DeleteKeyword))
	mux.HandleFunc("POST /keywords/recalculate", private(keywords.RecalculateMetrics))
	mux.HandleFunc("GET /keywords/{id}/serp", public(serp.GetHistory))

	mux.HandleFunc("POST /contents", private(contents.CreateContent))
	mux.HandleFunc("GET /contents", public(contents.GetContents))
	mux.HandleFunc("PUT /contents/{id}", private(contents.UpdateContent))
	mux.HandleFunc("PUT /contents/{id}/active", private(contents.SetActive))
	mux.HandleFunc("DELETE /contents/{id}", private(contents.DeleteContent))

	mux.HandleFunc("GET /recommendations", public(recommend.GetRecommendations))

	mux.HandleFunc("GET /settings/{key}", private(settings.GetSetting))
	mux.HandleFunc("PUT /settings/{key}", private(settings.UpdateSetting))
	mux.HandleFunc("POST /settings/slack/test", private(settings.TestSlack))

	mux.HandleFunc("POST /jobs/serp", private(jobHandler.RunSerpBatch))
	mux.HandleFunc("POST /jobs/volume", private(jobHandler.RunVolumeBatch))
	mux.HandleFunc("POST /jobs/analyze", private(jobHandler.RunAnalyzeBatch))
	mux.HandleFunc("GET /jobs/health", public(jobHandler.GetHealth))
	mux.HandleFunc("POST /jobs/run", private(jobHandler.RunRemoteRank))
	mux.HandleFunc("POST /jobs/run-volume", private(jobHandler.RunRemoteVolume))
	mux.HandleFunc("POST /jobs/run-analysis", private(jobHandler.RunRemoteAnalysis))

	mux.HandleFunc("GET /api/ec2/{path...}", withAPIKey(proxy.Forward))
	mux.HandleFunc("POST /api/ec2/{path...}", withAPIKey(proxy.Forward))

	mux.Handle("GET /metrics", promhttp.Handler())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigCh
		slog.Info("Shutting down...")
		cancel()
		if err := db.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
		os.Exit(0)
	}()

	slog.Info("Starting server", "port", config.Config.Port)
	err = http.ListenAndServe(":"+config.Config.Port, withCORS(mux))
	if err != nil {
		slog.Error("failed to start server", "error", err)
	}
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, x-api-key")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// private guards mutating routes with the configured API key. An empty
// API_KEY leaves the instance open, for local use.
func private(handler handlers.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if config.Config.APIKey != "" && r.Header.Get("x-api-key") != config.Config.APIKey {
			slog.Debug("unauthorized request", "path", r.URL.Path)
			writeResult(w, handlers.Unauthorized("Invalid API key."))
			return
		}

		public(handler)(w, r)
	}
}

func withAPIKey(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if config.Config.APIKey != "" && r.Header.Get("x-api-key") != config.Config.APIKey {
			writeResult(w, handlers.Unauthorized("Invalid API key."))
			return
		}

		handler(w, r)
	}
}

func public(handler handlers.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts := time.Now()
		res := handler(w, r)
		elapsedMs := time.Since(ts).Milliseconds()
		slog.Debug("req", "method", r.Method, "path", r.URL.Path, "code", res.Code, "elapsed", elapsedMs)
		writeResult(w, res)
	}
}

func writeResult(w http.ResponseWriter, res handlers.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Code)
	if res.Body != nil {
		if err := json.NewEncoder(w).Encode(res.Body); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
	if res.Code == http.StatusInternalServerError && res.Error != nil {
		slog.Error("internal error", "error", res.Error.Error())
	}
}
