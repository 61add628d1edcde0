package router

import (
	applicationhandler "jobboard_backend/internal/feature/application/transport/handler"
	authhandler "jobboard_backend/internal/feature/auth/transport/handler"
	companyhandler "jobboard_backend/internal/feature/company/transport/handler"
	contacthandler "jobboard_backend/internal/feature/contact/transport/handler"
	jobhandler "jobboard_backend/internal/feature/job/transport/handler"
	profilehandler "jobboard_backend/internal/feature/profile/transport/handler"
	"jobboard_backend/internal/platform/http/handler"
	jwtmw "jobboard_backend/internal/platform/jwt"
	"jobboard_backend/internal/shared/ratelimiter"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the HTTP handlers mounted by the router.
type Handlers struct {
	Auth         *authhandler.AuthHandler
	Profiles     *profilehandler.ProfileHandler
	Jobs         *jobhandler.JobHandler
	Home         *jobhandler.HomeHandler
	Applications *applicationhandler.ApplicationHandler
	Companies    *companyhandler.CompanyHandler
	Contact      *contacthandler.ContactHandler
}

// NewRouter assembles the gin engine with all routes. searchLimiter guards
// the public search endpoint.
func NewRouter(h Handlers, searchLimiter *ratelimiter.RateLimiter) *gin.Engine {
	r := gin.Default()

	// フロントエンドは別オリジンで動作する
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// トップページ（注目求人と統計）
	r.GET("/", h.Home.Home)

	// 認証関連
	r.POST("/signup", h.Auth.Signup)
	r.POST("/login", h.Auth.Login)
	r.POST("/refresh", h.Auth.Refresh)
	r.POST("/logout", h.Auth.Logout)

	// 公開求人一覧・検索
	r.GET("/jobs", h.Jobs.List)
	// ログイン中の閲覧者には応募済みフラグを付けるため、トークンがあれば読む
	r.GET("/jobs/:id", jwtmw.AuthOptional(), h.Jobs.Get)
	r.GET("/search", searchLimiter.Middleware(), h.Jobs.Search)

	// 公開企業ディレクトリ
	r.GET("/companies", h.Companies.List)
	r.GET("/companies/:slug", h.Companies.Get)

	// お問い合わせ
	r.POST("/contact", h.Contact.Submit)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		// 求人管理（雇用主のみ、所有チェックはユースケース側）
		auth.POST("/jobs", h.Jobs.Create)
		auth.PUT("/jobs/:id", h.Jobs.Update)
		auth.DELETE("/jobs/:id", h.Jobs.Delete)

		// 応募
		auth.POST("/jobs/:id/apply", h.Applications.Apply)
		auth.GET("/jobs/:id/applications", h.Applications.ListByJob)
		auth.GET("/applications/:id", h.Applications.Get)
		auth.POST("/applications/:id/status", h.Applications.UpdateStatus)

		// 企業管理
		auth.POST("/companies", h.Companies.Create)
		auth.POST("/companies/:slug", h.Companies.Update)
		auth.POST("/companies/:slug/gallery", h.Companies.UploadGallery)
		auth.DELETE("/gallery/:id", h.Companies.DeleteGallery)

		// アカウント
		auth.GET("/account/profile", h.Profiles.Get)
		auth.PUT("/account/profile", h.Profiles.Update)
		auth.POST("/account/type", h.Profiles.ChangeKind)
		auth.GET("/account/dashboard", h.Profiles.Dashboard)
	}

	return r
}
