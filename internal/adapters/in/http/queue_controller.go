package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/enrollee-queue-bot/internal/config"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/in"
)

// QueueController - служебный read-only HTTP API для приемной комиссии:
// посмотреть свободные времена дня и позицию абитуриента в очереди.
// Все мутации очереди идут только через диалог бота.
type QueueController struct {
	allocator in.SlotAllocatorUseCase
	status    in.QueueStatusUseCase
	cfg       *config.Config
}

func NewQueueController(allocator in.SlotAllocatorUseCase, status in.QueueStatusUseCase, cfg *config.Config) *QueueController {
	return &QueueController{
		allocator: allocator,
		status:    status,
		cfg:       cfg,
	}
}

func (c *QueueController) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", c.health)

	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.GET("/slots/:date", c.availableTimes)
		api.GET("/queue/position/:enrolleeId", c.queuePosition)
	}
}

func (c *QueueController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": c.cfg.App.Version,
	})
}

func (c *QueueController) availableTimes(ctx *gin.Context) {
	date, err := time.Parse("2006-01-02", ctx.Param("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	times, err := c.allocator.AvailableTimes(ctx.Request.Context(), date)
	if errors.Is(err, domain.ErrScheduleNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No schedule for this date"})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"date":  ctx.Param("date"),
		"times": times,
	})
}

func (c *QueueController) queuePosition(ctx *gin.Context) {
	enrolleeID, err := strconv.ParseInt(ctx.Param("enrolleeId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enrollee ID format"})
		return
	}

	position, err := c.status.QueuePosition(ctx.Request.Context(), enrolleeID)
	if errors.Is(err, domain.ErrNotBooked) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Enrollee has no active booking"})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"enrolleeId": enrolleeID,
		"position":   position,
	})
}

func (c *QueueController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(username), []byte(c.cfg.HTTP.BasicUsername)) != 1 ||
			subtle.ConstantTimeCompare([]byte(password), []byte(c.cfg.HTTP.BasicPassword)) != 1 {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Next()
	}
}
