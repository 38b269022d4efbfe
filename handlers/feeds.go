package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"market-pulse/classifier"
	"market-pulse/feeds"
)

type FeedHandler struct {
	Service      *feeds.Service
	News         feeds.Source
	IPO          feeds.Source
	GlobalImpact feeds.Source
	PerPage      int
}

type NewsPage struct {
	Items   []feeds.Entry[classifier.Theme] `json:"items"`
	Page    int                             `json:"page"`
	HasMore bool                            `json:"has_more"`
	Total   int                             `json:"total"`
}

type IPOFeed struct {
	Items []feeds.Entry[classifier.IPOVerdict] `json:"items"`
	Stats feeds.Stats                          `json:"stats"`
}

type ImpactFeed struct {
	Items []feeds.Entry[classifier.ImpactVerdict] `json:"items"`
	Stats feeds.Stats                             `json:"stats"`
}

type ClassifyRequest struct {
	Title string `json:"title"`
}

func (h *FeedHandler) Register(r gin.IRouter) {
	r.GET("/news", h.GetNews)
	r.GET("/ipos", h.GetIPOs)
	r.GET("/global-impact", h.GetGlobalImpact)
	r.POST("/classify/:kind", h.Classify)
}

// GetNews serves one infinite-scroll page of the general market feed.
func (h *FeedHandler) GetNews(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	// A failed fetch has already been logged and leaves an empty list.
	entries, _ := feeds.Load(c.Request.Context(), h.Service, h.News, classifier.ClassifyTheme)
	batch, more := feeds.Paginate(entries, page, h.PerPage)

	c.JSON(http.StatusOK, NewsPage{
		Items:   batch,
		Page:    page,
		HasMore: more,
		Total:   len(entries),
	})
}

func (h *FeedHandler) GetIPOs(c *gin.Context) {
	entries, _ := feeds.Load(c.Request.Context(), h.Service, h.IPO, classifier.ClassifyIPO)
	stats := feeds.Tally(entries,
		func(v classifier.IPOVerdict) string { return string(v.Sentiment) },
		string(classifier.IPOHot), string(classifier.IPOCold), string(classifier.IPONeutral),
	)
	c.JSON(http.StatusOK, IPOFeed{Items: entries, Stats: stats})
}

func (h *FeedHandler) GetGlobalImpact(c *gin.Context) {
	entries, _ := feeds.Load(c.Request.Context(), h.Service, h.GlobalImpact, classifier.ClassifyImpact)
	stats := feeds.Tally(entries,
		func(v classifier.ImpactVerdict) string { return string(v.Sentiment) },
		string(classifier.ImpactPositive), string(classifier.ImpactNegative), string(classifier.ImpactNeutral),
	)
	c.JSON(http.StatusOK, ImpactFeed{Items: entries, Stats: stats})
}

// Classify runs one classifier over a single title.
func (h *FeedHandler) Classify(c *gin.Context) {
	var request ClassifyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	switch c.Param("kind") {
	case "ipo":
		c.JSON(http.StatusOK, classifier.ClassifyIPO(request.Title))
	case "impact":
		c.JSON(http.StatusOK, classifier.ClassifyImpact(request.Title))
	case "theme":
		c.JSON(http.StatusOK, classifier.ClassifyTheme(request.Title))
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown classifier"})
	}
}
