package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"resumescore-backend/internal/analyses"
	"resumescore-backend/internal/auth"
	"resumescore-backend/internal/extract"
	"resumescore-backend/internal/llm"
	"resumescore-backend/internal/llm/gemini"
	"resumescore-backend/internal/llm/openai"
	"resumescore-backend/internal/resumes"
	"resumescore-backend/internal/sessions"
	"resumescore-backend/internal/shared/config"
	"resumescore-backend/internal/shared/server"
	"resumescore-backend/internal/shared/server/middleware"
	"resumescore-backend/internal/shared/storage/db"
	"resumescore-backend/internal/shared/storage/object"
	localstore "resumescore-backend/internal/shared/storage/object/local"
	s3store "resumescore-backend/internal/shared/storage/object/s3"
	"resumescore-backend/internal/users"
)

// App holds the wired application dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	UsersRepo    users.Repo
	SessionsRepo sessions.Repo
	ResumesRepo  resumes.Repo
	AnalysesRepo analyses.Repo

	UsersService    *users.Service
	SessionsService *sessions.Service
	AnalysesService *analyses.Service

	AuthHandler     *auth.Handler
	GoogleAuth      *auth.GoogleService
	AnalysisHandler *analyses.Handler
}

// Build prepares all dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	extractor := buildExtractor(cfg)

	llmClient, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if sqlDB != nil {
		app.UsersRepo = &users.PGRepo{DB: sqlDB}
		app.SessionsRepo = &sessions.PGRepo{DB: sqlDB}
		app.ResumesRepo = &resumes.PGRepo{DB: sqlDB}
		app.AnalysesRepo = &analyses.PGRepo{DB: sqlDB}
	} else {
		usersRepo := users.NewMemoryRepo()
		app.UsersRepo = usersRepo
		app.SessionsRepo = sessions.NewMemoryRepo(func(ctx context.Context, userID int64) (string, string, error) {
			user, err := usersRepo.GetByID(ctx, userID)
			if err != nil {
				return "", "", err
			}
			return user.Email, user.DisplayName, nil
		})
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.AnalysesRepo = analyses.NewMemoryRepo()
	}

	app.UsersService = users.NewService(app.UsersRepo)
	app.SessionsService = sessions.NewService(app.SessionsRepo, cfg.SessionTTL)
	app.AnalysesService = analyses.NewService(app.ResumesRepo, app.AnalysesRepo, store, extractor, llmClient)

	app.AuthHandler = auth.NewHandler(app.UsersService, app.SessionsService)
	app.GoogleAuth = auth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
		app.UsersService,
		app.SessionsService,
	)
	app.AnalysisHandler = analyses.NewHandler(app.AnalysesService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		AuthHandler:      app.AuthHandler,
		GoogleAuth:       app.GoogleAuth,
		AnalysisHandler:  app.AnalysisHandler,
		IdentityResolver: &sessionResolver{sessions: app.SessionsService},
	})

	return app, nil
}

// sessionResolver adapts the sessions service to the auth middleware.
type sessionResolver struct {
	sessions *sessions.Service
}

func (r *sessionResolver) Resolve(ctx context.Context, token string) (middleware.Identity, error) {
	session, err := r.sessions.Get(ctx, token)
	if err != nil {
		return middleware.Identity{}, err
	}
	return middleware.Identity{
		UserID:      session.UserID,
		Email:       session.Email,
		DisplayName: session.DisplayName,
	}, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildExtractor(cfg config.Config) extract.Extractor {
	if strings.TrimSpace(cfg.ExtractAPIURL) != "" {
		return extract.NewConvertClient(cfg.ExtractAPIURL, cfg.ExtractAPIToken)
	}
	log.Printf("bootstrap: EXTRACT_API_URL empty; using in-process extraction")
	return extract.LocalExtractor{}
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" && isDevLike(cfg.Env) {
			log.Printf("bootstrap: OPENAI_API_KEY empty; using placeholder LLM client")
			return llm.PlaceholderClient{}, nil
		}
		return openai.NewClient(apiKey, cfg.LLMModel)
	case "gemini", "":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" && isDevLike(cfg.Env) {
			log.Printf("bootstrap: GEMINI_API_KEY empty; using placeholder LLM client")
			return llm.PlaceholderClient{}, nil
		}
		return gemini.NewClient(ctx, apiKey, cfg.LLMModel)
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
