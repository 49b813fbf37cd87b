package routes

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"vital-be/controllers"
	"vital-be/metrics"
	"vital-be/middlewares"
	"vital-be/services"
	authUtils "vital-be/utils"
)

// Deps are the wired services and settings the HTTP layer needs.
type Deps struct {
	Authorities  *services.AuthorityService
	Issues       *services.IssueService
	Villagers    *services.VillagerService
	FundRequests *services.FundRequestService

	Tokens  *authUtils.Tokens
	Limiter middlewares.Limiter
	Cookie  controllers.CookieSettings
	Domain  string

	IssueDailyLimit       int
	FundRequestDailyLimit int

	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

const rateWindow = 24 * time.Hour

// NewRouter builds the engine with every route registered.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(d.Logger, d.Metrics), cors.New(cors.Config{
		AllowOriginFunc:  allowOrigin(d.Domain),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	auth := middlewares.AuthMiddleware(d.Tokens, d.Authorities, d.Logger)
	reportLimit := middlewares.RateLimit(d.Limiter, "issues", d.IssueDailyLimit, rateWindow, middlewares.ByVillagerID, d.Logger)
	fundLimit := middlewares.RateLimit(d.Limiter, "fund-requests", d.FundRequestDailyLimit, rateWindow, middlewares.ByUserID, d.Logger)

	AuthRoutes(r, controllers.NewAuthController(d.Authorities, d.Tokens, d.Cookie, d.Logger), auth)
	IssueRoutes(r, controllers.NewIssueController(d.Issues, d.Logger), auth, reportLimit)
	VillagerRoutes(r, controllers.NewVillagerController(d.Villagers, d.Logger), auth)
	FundRequestRoutes(r, controllers.NewFundRequestController(d.FundRequests, d.Logger), auth, fundLimit)
	return r
}

// allowOrigin accepts any origin when no domain is configured, otherwise the domain and its
// subdomains.
func allowOrigin(domain string) func(string) bool {
	domain = strings.ToLower(strings.TrimSpace(domain))
	return func(origin string) bool {
		if domain == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		host := strings.ToLower(u.Hostname())
		return host == domain || strings.HasSuffix(host, "."+domain)
	}
}
