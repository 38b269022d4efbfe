package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"market-pulse/models"
)

type BrokerHandler struct {
	DB *gorm.DB
}

func (h *BrokerHandler) Register(r gin.IRouter) {
	r.GET("/brokers", h.GetBrokers)
	r.GET("/brokers/:id", h.GetBroker)
}

func (h *BrokerHandler) GetBrokers(c *gin.Context) {
	brokerType := c.Query("type")
	search := strings.TrimSpace(c.Query("q"))

	query := h.DB.WithContext(c.Request.Context()).Model(&models.Broker{})
	if brokerType != "" {
		query = query.Where("type = ?", brokerType)
	}
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	brokers := []models.Broker{}
	if err := query.Order("id ASC").Find(&brokers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, brokers)
}

func (h *BrokerHandler) GetBroker(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid broker id"})
		return
	}

	var broker models.Broker
	if err := h.DB.WithContext(c.Request.Context()).First(&broker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Broker not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, broker)
}
