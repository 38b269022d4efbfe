package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"market-pulse/feeds"
	"market-pulse/poll"
)

type RouterDeps struct {
	DB          *gorm.DB
	Feeds       *feeds.Service
	NewsPerPage int
	ImpactLimit int
	Limiter     *rate.Limiter // nil disables rate limiting
	Logger      *zap.Logger
}

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(deps RouterDeps) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log))

	(&HealthHandler{DB: deps.DB}).Register(r)

	api := r.Group("/api")
	if deps.Limiter != nil {
		api.Use(RateLimit(deps.Limiter, log))
	}

	impact := feeds.GlobalImpactSource
	if deps.ImpactLimit > 0 {
		impact.Limit = deps.ImpactLimit
	}
	(&FeedHandler{
		Service:      deps.Feeds,
		News:         feeds.NewsSource,
		IPO:          feeds.IPOSource,
		GlobalImpact: impact,
		PerPage:      deps.NewsPerPage,
	}).Register(api)
	(&BrokerHandler{DB: deps.DB}).Register(api)
	(&PollHandler{Store: &poll.Store{DB: deps.DB}, Logger: log}).Register(api)

	return r
}
