package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fieldcircle/cricket-admin/external/feed"
	"github.com/fieldcircle/cricket-admin/external/notify"
	"github.com/fieldcircle/cricket-admin/internal/config"
	"github.com/fieldcircle/cricket-admin/internal/domain/commentary"
	"github.com/fieldcircle/cricket-admin/internal/domain/match"
	"github.com/fieldcircle/cricket-admin/internal/domain/player"
	"github.com/fieldcircle/cricket-admin/internal/domain/powerplay"
	"github.com/fieldcircle/cricket-admin/internal/domain/series"
	"github.com/fieldcircle/cricket-admin/internal/domain/squad"
	"github.com/fieldcircle/cricket-admin/internal/domain/team"
	"github.com/fieldcircle/cricket-admin/internal/domain/tournament"
	"github.com/fieldcircle/cricket-admin/internal/infrastructure/account"
	"github.com/fieldcircle/cricket-admin/internal/infrastructure/repository/memory"
	"github.com/fieldcircle/cricket-admin/internal/infrastructure/repository/postgres"
	"github.com/fieldcircle/cricket-admin/internal/interfaces/httpapi"
	"github.com/fieldcircle/cricket-admin/internal/platform/cache"
	idgen "github.com/fieldcircle/cricket-admin/internal/platform/id"
	"github.com/fieldcircle/cricket-admin/internal/platform/logging"
	"github.com/fieldcircle/cricket-admin/internal/platform/resilience"
	"github.com/fieldcircle/cricket-admin/internal/usecase"
)

// repositories groups the persistence ports so the service wiring does not
// care whether it runs on postgres or the in-memory seed data.
type repositories struct {
	tournaments tournament.Repository
	series      series.Repository
	teams       team.Repository
	players     player.Repository
	matches     match.Repository
	squads      squad.Repository
	powerplays  powerplay.Repository
	commentary  commentary.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build repositories: %w", err)
	}

	ids := idgen.NewNanoGenerator()

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	notifier := notify.NewPublisher(notify.PublisherConfig{
		WebhookURL: cfg.NotifyWebhookURL,
		Token:      cfg.NotifyToken,
		Timeout:    cfg.NotifyTimeout,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.NotifyCircuitEnabled,
			FailureThreshold: cfg.NotifyCircuitFailureCount,
			OpenTimeout:      cfg.NotifyCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.NotifyCircuitHalfOpenMaxReq,
		},
	})

	tournamentSvc := usecase.NewTournamentService(repos.tournaments, ids)
	seriesSvc := usecase.NewSeriesService(repos.series, repos.tournaments, ids)
	teamSvc := usecase.NewTeamService(repos.teams, ids)
	playerSvc := usecase.NewPlayerService(repos.players, repos.teams, ids)
	matchSvc := usecase.NewMatchService(repos.matches, repos.teams, repos.tournaments, repos.series, ids)
	squadSvc := usecase.NewSquadService(repos.squads, repos.teams, repos.series, repos.players, ids)
	powerplaySvc := usecase.NewPowerplayService(repos.matches, repos.powerplays, ids, notifier, store, logger)
	commentarySvc := usecase.NewCommentaryService(repos.commentary, repos.matches, repos.players, powerplaySvc, ids, logger)
	dashboardSvc := usecase.NewDashboardService(repos.matches, repos.teams, repos.commentary, powerplaySvc)

	var liveSyncSvc *usecase.LiveSyncService
	if cfg.FeedEnabled {
		feedClient := feed.NewClient(feed.ClientConfig{
			BaseURL: cfg.FeedBaseURL,
			Token:   cfg.FeedToken,
			Timeout: cfg.FeedTimeout,
			Logger:  logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.FeedCircuitEnabled,
				FailureThreshold: cfg.FeedCircuitFailureCount,
				OpenTimeout:      cfg.FeedCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.FeedCircuitHalfOpenMaxReq,
			},
		})
		liveSyncSvc = usecase.NewLiveSyncService(repos.matches, feedClient, powerplaySvc, logger)
	}

	accountClient := account.NewClient(
		&http.Client{Timeout: cfg.AccountTimeout},
		cfg.AccountBaseURL,
		cfg.AccountIntrospectPath,
		cfg.AccountAdminKey,
		logger,
	)

	handler := httpapi.NewHandler(
		tournamentSvc,
		seriesSvc,
		teamSvc,
		playerSvc,
		matchSvc,
		squadSvc,
		powerplaySvc,
		commentarySvc,
		dashboardSvc,
		liveSyncSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, accountClient, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// buildRepositories picks the persistence backend: postgres when DB_URL is
// set, otherwise the in-memory seed fixtures used for local development.
func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Info("db url not set, using in-memory repositories with seed data")
		return memoryRepositories(), nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, err
	}

	logger.Info("connected to postgres", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		tournaments: postgres.NewTournamentRepository(db),
		series:      postgres.NewSeriesRepository(db),
		teams:       postgres.NewTeamRepository(db),
		players:     postgres.NewPlayerRepository(db),
		matches:     postgres.NewMatchRepository(db),
		squads:      postgres.NewSquadRepository(db),
		powerplays:  postgres.NewPowerplayRepository(db),
		commentary:  postgres.NewCommentaryRepository(db),
	}, nil
}

func memoryRepositories() repositories {
	return repositories{
		tournaments: memory.NewTournamentRepository(memory.SeedTournaments()),
		series:      memory.NewSeriesRepository(memory.SeedSeries()),
		teams:       memory.NewTeamRepository(memory.SeedTeams()),
		players:     memory.NewPlayerRepository(memory.SeedPlayers()),
		matches:     memory.NewMatchRepository(memory.SeedMatches()),
		squads:      memory.NewSquadRepository(memory.SeedSquads()),
		powerplays:  memory.NewPowerplayRepository(memory.SeedPowerplays()),
		commentary:  memory.NewCommentaryRepository(),
	}
}

const (
	dbMaxOpenConns    = 25
	dbMaxIdleConns    = 5
	dbConnMaxLifetime = 30 * time.Minute
)

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxLifetime(dbConnMaxLifetime)

	return db, nil
}
