package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"jobboard_backend/internal/app/di"
	"jobboard_backend/internal/app/router"
	applicationadapters "jobboard_backend/internal/feature/application/adapters"
	applicationhandler "jobboard_backend/internal/feature/application/transport/handler"
	applicationusecase "jobboard_backend/internal/feature/application/usecase"
	authadapters "jobboard_backend/internal/feature/auth/adapters"
	authhandler "jobboard_backend/internal/feature/auth/transport/handler"
	authusecase "jobboard_backend/internal/feature/auth/usecase"
	companyadapters "jobboard_backend/internal/feature/company/adapters"
	companyhandler "jobboard_backend/internal/feature/company/transport/handler"
	companyusecase "jobboard_backend/internal/feature/company/usecase"
	contacthandler "jobboard_backend/internal/feature/contact/transport/handler"
	jobhandler "jobboard_backend/internal/feature/job/transport/handler"
	jobusecase "jobboard_backend/internal/feature/job/usecase"
	profileadapters "jobboard_backend/internal/feature/profile/adapters"
	profilehandler "jobboard_backend/internal/feature/profile/transport/handler"
	profileusecase "jobboard_backend/internal/feature/profile/usecase"
	infradb "jobboard_backend/internal/platform/db"
	jwtmw "jobboard_backend/internal/platform/jwt"
	infraredis "jobboard_backend/internal/platform/redis"
	"jobboard_backend/internal/platform/storage"
	"jobboard_backend/internal/shared/ratelimiter"
)

func main() {
	// .env（ローカル開発用、なければ環境変数をそのまま使う）
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// ファイルストレージ（履歴書・ロゴ・ギャラリー画像）
	files := storage.NewLocalStore(os.Getenv("UPLOAD_DIR"))

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	profileRepo := profileadapters.NewProfilePostgres(db)
	companyRepo := companyadapters.NewCompanyPostgres(db)
	galleryRepo := companyadapters.NewGalleryPostgres(db)
	applicationRepo := applicationadapters.NewApplicationPostgres(db)

	// セッションはRedisが使えればRedis、なければPostgresに保存する
	sessionRepo := di.NewSessionRepository(rdb, db)

	// 公開求人一覧はRedisキャッシュでラップ
	jobRepo := di.NewJobRepository(rdb, db)

	// Usecase
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 15*time.Minute)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen)
	profileUC := profileusecase.NewProfileUsecase(profileRepo, files)
	jobUC := jobusecase.NewJobUsecase(jobRepo, profileUC, companyRepo, applicationRepo)
	applicationUC := applicationusecase.NewApplicationUsecase(applicationRepo, jobRepo, files)
	companyUC := companyusecase.NewCompanyUsecase(companyRepo, galleryRepo, jobRepo, files)

	// Handler
	h := router.Handlers{
		Auth:         authhandler.NewAuthHandler(authUC),
		Profiles:     profilehandler.NewProfileHandler(profileUC, jobRepo, applicationUC),
		Jobs:         jobhandler.NewJobHandler(jobUC),
		Home:         jobhandler.NewHomeHandler(jobRepo, applicationRepo, companyRepo),
		Applications: applicationhandler.NewApplicationHandler(applicationUC),
		Companies:    companyhandler.NewCompanyHandler(companyUC),
		Contact:      contacthandler.NewContactHandler(),
	}

	// 公開検索エンドポイントの保護
	searchLimiter := ratelimiter.NewRateLimiter(30, time.Minute)

	// ルータ生成
	r := router.NewRouter(h, searchLimiter)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
