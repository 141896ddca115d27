package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"rocketshoes-cart/internal/domain"
	"github.com/gin-gonic/gin"
)

type amountRequest struct {
	Amount *int `json:"amount" binding:"required"`
}

type errorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

func registerCartRoutes(router *gin.Engine, view cartView, logger *log.Logger) {
	g := router.Group("/cart")

	g.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, view.Render())
	})

	g.POST("/products/:id", cartAction(view, logger, http.StatusCreated, func(ctx context.Context, c *gin.Context, id int64) error {
		return view.Add(ctx, id)
	}))

	g.PUT("/products/:id", cartAction(view, logger, http.StatusOK, func(ctx context.Context, c *gin.Context, id int64) error {
		var req amountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return errBadRequest
		}
		return view.SetAmount(ctx, id, *req.Amount)
	}))

	g.POST("/products/:id/increment", cartAction(view, logger, http.StatusOK, func(ctx context.Context, c *gin.Context, id int64) error {
		return view.Increment(ctx, id)
	}))

	g.POST("/products/:id/decrement", cartAction(view, logger, http.StatusOK, func(ctx context.Context, c *gin.Context, id int64) error {
		return view.Decrement(ctx, id)
	}))

	g.DELETE("/products/:id", cartAction(view, logger, http.StatusOK, func(ctx context.Context, c *gin.Context, id int64) error {
		return view.Delete(ctx, id)
	}))

	g.POST("/order", func(c *gin.Context) {
		if err := view.PlaceOrder(c.Request.Context()); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"status": "not processed"})
	})
}

var errBadRequest = errors.New("amount is required")

// cartAction parses the product id, runs fn and answers with the re-rendered
// cart, or with the user-facing error message.
func cartAction(view cartView, logger *log.Logger, okStatus int, fn func(ctx context.Context, c *gin.Context, id int64) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid product id", RequestID: c.GetString(requestIDKey)})
			return
		}
		if err := fn(c.Request.Context(), c, id); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(okStatus, view.Render())
	}
}

func writeError(c *gin.Context, logger *log.Logger, err error) {
	reqID := c.GetString(requestIDKey)
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Printf("http: request_id=%s %s %s error=%v", reqID, c.Request.Method, c.Request.URL.Path, err)
	}
	msg := domain.Message(err)
	if errors.Is(err, errBadRequest) {
		msg = err.Error()
	}
	c.JSON(status, errorResponse{Message: msg, RequestID: reqID})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrOutOfStock):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
