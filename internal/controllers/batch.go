package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/st970703/step-function-map-io/internal/middleware"
	"github.com/st970703/step-function-map-io/task"
	"go.uber.org/zap"
)

// MaxBodyBytes caps the size of a batch request body.
const MaxBodyBytes int64 = 1 << 20

type Controller struct {
	service task.Usecase
	logger  *zap.Logger
}

func NewController(s task.Usecase, l *zap.Logger) *Controller {
	return &Controller{
		service: s,
		logger:  l,
	}
}

// CreateBatches godoc
// @Summary      Splits resource paths into tasks
// @Description  Partitions ResourcePaths into groups of MAX_CONCURRENCY and pairs each group with BaseUrl and LambdaConcur
// @Tags         batch
// @Accept       json
// @Produce      json
// @Param        payload  body      task.InputPayload  true  "Batch input"
// @Success      200      {object}  task.OutputPayload
// @Failure      400      {object}  object
// @Failure      500      {object}  object
// @Router       /batches [post]
func (ctrl *Controller) CreateBatches(ctx *gin.Context) {
	logger := middleware.Logger(ctx, ctrl.logger)

	body, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unable to read request body"})
		return
	}

	payload, err := task.DecodeInput(body)
	if err != nil {
		logger.Warn("rejecting payload", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ctrl.service.Split(ctx.Request.Context(), payload)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, task.ErrMalformedInput) {
			status = http.StatusBadRequest
		}
		logger.Error("split failed", zap.Error(err))
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (ctrl *Controller) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
