package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"instituteapi/config"
	"instituteapi/handler"
	"instituteapi/model"
	"instituteapi/repository"
	"instituteapi/routes"
	"instituteapi/services"
	"instituteapi/storage"
	"instituteapi/usecase"
	"instituteapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var version = "dev"

func main() {
	cfg, err := config.Load(utils.GetEnvAsString("CONFIG_FILE", "config.yaml"))
	if err != nil {
		utils.Log().Fatal().Err(err).Msg("Failed to load configuration")
	}

	utils.ConfigureLogger(utils.LoggerConfig{Level: cfg.Logging.Level, Pretty: cfg.Logging.Pretty})
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := utils.ConnectMongo(ctx, utils.MongoOptions{
		URI:             cfg.Database.URI,
		MaxPoolSize:     cfg.Database.MaxPoolSize,
		MinPoolSize:     cfg.Database.MinPoolSize,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		RetryWrites:     cfg.Database.RetryWrites,
	})
	if err != nil {
		utils.Log().Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			utils.Log().Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()

	db := client.Database(cfg.Database.Name)
	if err := repository.SetupIndexes(ctx, db); err != nil {
		utils.Log().Fatal().Err(err).Msg("Failed to create indexes")
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		redisClient, err = services.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			utils.Log().Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()
	}

	var (
		revoker    services.TokenRevoker
		limitStore services.RateLimitStore
	)
	if redisClient != nil {
		revoker = services.NewRedisTokenBlacklist(redisClient)
		limitStore = services.NewRedisRateLimitStore(redisClient)
	} else {
		utils.Log().Warn().Msg("REDIS_URL not set, using in-process token blacklist and rate limits")
		revoker = services.NewMemoryTokenBlacklist()
		memLimits := services.NewMemoryRateLimitStore()
		memLimits.StartJanitor(time.Minute)
		defer memLimits.Close()
		limitStore = memLimits
	}

	stores := newContentStores(db)
	userStore := repository.NewMongoStore[model.User](db, repository.UsersCollection)

	events := usecase.NewEventService(stores.events)
	news := usecase.NewNewsService(stores.news)
	publications := usecase.NewPublicationService(stores.publications)
	articles := usecase.NewJournalArticleService(stores.articles)
	volumes := usecase.NewJournalVolumeService(stores.volumes)
	staff := usecase.NewStaffService(stores.staff)
	people := usecase.NewResourcePersonService(stores.people)
	homeContent := usecase.NewPageContentService[model.HomeContent](
		repository.NewMongoSingleton[model.HomeContent](db, repository.HomeContentCollection), "Home content")
	journalContent := usecase.NewPageContentService[model.JournalContent](
		repository.NewMongoSingleton[model.JournalContent](db, repository.JournalContentCollection), "Journal content")

	tokens := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	users := &usecase.UserService{
		Users:           repository.NewUsersRepo(userStore),
		Tokens:          tokens,
		Revoker:         revoker,
		AllowRoleSignup: cfg.Auth.AllowRoleSignup,
		TOTPIssuer:      cfg.Auth.TOTPIssuer,
	}
	if _, err := users.EnsureAdmin(ctx, cfg.Auth.AdminName, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		utils.Log().Error().Err(err).Msg("Failed to seed admin account")
	}

	purger := services.NewPurger(stores.purgeTargets(), cfg.Purge.Retention)
	if err := purger.Start(cfg.Purge.Schedule); err != nil {
		utils.Log().Fatal().Err(err).Str("schedule", cfg.Purge.Schedule).Msg("Invalid purge schedule")
	}
	defer purger.Stop()

	var signer storage.Signer
	if cfg.StorageConfigured() {
		ossSigner, err := storage.NewOSSSigner(storage.OSSConfig{
			Endpoint:      cfg.Storage.Endpoint,
			AccessKey:     cfg.Storage.AccessKey,
			SecretKey:     cfg.Storage.SecretKey,
			SecurityToken: cfg.Storage.SecurityToken,
			Bucket:        cfg.Storage.Bucket,
		})
		if err != nil {
			utils.Log().Fatal().Err(err).Msg("Failed to initialize object storage")
		}
		signer = ossSigner
	} else {
		utils.Log().Warn().Msg("Object storage not configured, document streaming disabled")
	}

	health := &handler.HealthHandler{
		Mongo: handler.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		}),
		Started:       time.Now(),
		Version:       version,
		IncludeSystem: true,
	}
	if redisClient != nil {
		health.Redis = handler.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	limits := routes.DefaultLimits(cfg.RateLimit.Window)
	limits.General.Limit = cfg.RateLimit.General
	limits.Auth.Limit = cfg.RateLimit.Auth
	limits.Write.Limit = cfg.RateLimit.Write

	router, err := routes.Setup(routes.Deps{
		Tokens:         tokens,
		Revoker:        revoker,
		LimitStore:     limitStore,
		Limits:         limits,
		CORSOrigins:    cfg.Server.CORSOrigins,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		TrustedProxies: cfg.Server.TrustedProxies,

		Events:          handler.NewEventHandler(events),
		News:            handler.NewNewsHandler(news),
		Publications:    handler.NewPublicationHandler(publications),
		JournalArticles: handler.NewJournalArticleHandler(articles),
		JournalVolumes:  handler.NewJournalVolumeHandler(volumes),
		JournalContent:  handler.NewJournalContentHandler(journalContent),
		HomeContent:     handler.NewHomeContentHandler(homeContent),
		Staff:           handler.NewStaffHandler(staff),
		ResourcePersons: handler.NewResourcePersonHandler(people),
		Dashboard: handler.NewDashboardHandler(&usecase.DashboardService{
			Events:          events,
			News:            news,
			Publications:    publications,
			JournalArticles: articles,
			JournalVolumes:  volumes,
			Staff:           staff,
			ResourcePersons: people,
			Users:           userStore,
		}),
		Auth:      handler.NewAuthHandler(users),
		Documents: handler.NewDocumentHandler(storage.NewStreamer(signer, cfg.Storage.PublicBase, cfg.Storage.SignedURLTTL)),
		Health:    health,
	})
	if err != nil {
		utils.Log().Fatal().Err(err).Msg("Failed to build router")
	}

	run(ctx, &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})
}

type contentStores struct {
	events       *repository.MongoStore[model.Event]
	news         *repository.MongoStore[model.NewsBlog]
	publications *repository.MongoStore[model.Publication]
	articles     *repository.MongoStore[model.JournalArticle]
	volumes      *repository.MongoStore[model.JournalVolume]
	staff        *repository.MongoStore[model.Staff]
	people       *repository.MongoStore[model.ResourcePerson]
}

func newContentStores(db *mongo.Database) contentStores {
	return contentStores{
		events:       repository.NewMongoStore[model.Event](db, repository.EventsCollection),
		news:         repository.NewMongoStore[model.NewsBlog](db, repository.NewsBlogsCollection),
		publications: repository.NewMongoStore[model.Publication](db, repository.PublicationsCollection),
		articles:     repository.NewMongoStore[model.JournalArticle](db, repository.JournalArticlesCollection),
		volumes:      repository.NewMongoStore[model.JournalVolume](db, repository.JournalVolumesCollection),
		staff:        repository.NewMongoStore[model.Staff](db, repository.StaffCollection),
		people:       repository.NewMongoStore[model.ResourcePerson](db, repository.ResourcePersonsCollection),
	}
}

// purgeTargets covers the soft-deleted content collections. Accounts are
// never soft-deleted, so users are not reaped.
func (s contentStores) purgeTargets() map[string]services.Purgeable {
	return map[string]services.Purgeable{
		repository.EventsCollection:          s.events,
		repository.NewsBlogsCollection:       s.news,
		repository.PublicationsCollection:    s.publications,
		repository.JournalArticlesCollection: s.articles,
		repository.JournalVolumesCollection:  s.volumes,
		repository.StaffCollection:           s.staff,
		repository.ResourcePersonsCollection: s.people,
	}
}

// run serves until ctx is cancelled, then drains in-flight requests
func run(ctx context.Context, srv *http.Server) {
	errCh := make(chan error, 1)
	go func() {
		utils.Log().Info().Str("addr", srv.Addr).Str("version", version).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			utils.Log().Fatal().Err(err).Msg("Failed to start server")
		}
		return
	case <-ctx.Done():
	}

	utils.Log().Info().Msg("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Log().Error().Err(err).Msg("Server shutdown failed")
		return
	}
	utils.Log().Info().Msg("Server shutdown complete")
}
