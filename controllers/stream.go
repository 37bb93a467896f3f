package controllers

import (
	"io"
	"time"

	"digitaltailor-backend/models"
	"digitaltailor-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type directorySnapshot struct {
	Customers []models.Customer    `json:"customers"`
	Orders    []services.OrderView `json:"orders"`
}

type StreamController struct {
	Orders    *services.OrderService
	Hub       *services.Hub
	Logger    *zap.Logger
	KeepAlive time.Duration
}

// StreamDirectory pushes the full customer and order directory as a
// "directory" event on connect and after every change.
func (sc *StreamController) StreamDirectory(c *gin.Context) {
	ctx := c.Request.Context()
	changes, cancel := sc.Hub.Subscribe()
	defer cancel()

	keepAlive := sc.KeepAlive
	if keepAlive <= 0 {
		keepAlive = 30 * time.Second
	}
	ticker := time.NewTicker(keepAlive)
	defer ticker.Stop()

	send := func() bool {
		customers, orders, err := sc.Orders.Snapshot(ctx)
		if err != nil {
			sc.Logger.Error("Failed to load directory snapshot", zap.Error(err))
			c.SSEvent("error", gin.H{"error": "Failed to load directory"})
			return true
		}
		if customers == nil {
			customers = []models.Customer{}
		}
		c.SSEvent("directory", directorySnapshot{Customers: customers, Orders: orders})
		return true
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	first := true
	c.Stream(func(w io.Writer) bool {
		if first {
			first = false
			return send()
		}
		select {
		case <-ctx.Done():
			return false
		case <-changes:
			return send()
		case <-ticker.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		}
	})
}
