package forageapi

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	dmn "github.com/beka-birhanu/vinom-forager/domain"
	"github.com/beka-birhanu/vinom-forager/forage"
	"github.com/beka-birhanu/vinom-forager/infrastruture/plot"
	"github.com/beka-birhanu/vinom-forager/service"
	"github.com/beka-birhanu/vinom-forager/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ForageController serves agent training and run history.
type ForageController struct {
	forager i.Forager
}

// NewForageController initializes a ForageController.
func NewForageController(f i.Forager) (*ForageController, error) {
	if f == nil {
		return nil, errors.New("forager service is required")
	}
	return &ForageController{forager: f}, nil
}

// Register registers the training routes.
func (fc *ForageController) Register(route *gin.RouterGroup) {
	ailogic := route.Group("/ailogic")
	{
		ailogic.POST("/", fc.train)
		ailogic.GET("/recent", fc.recent)
		ailogic.GET("/runs/:ID", fc.run)
		ailogic.GET("/runs/:ID/heatmap", fc.heatmap)
	}
}

// train handles training requests.
func (fc *ForageController) train(ctx *gin.Context) {
	var request TrainRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := fc.forager.Train(ctx, dmn.RunRequest{
		NumFood:   *request.NumFood,
		Dimension: request.WorldDimension,
		Episodes:  request.NumEpisodes,
		Seed:      request.Seed,
		Food:      request.FoodLocations,
	})
	if err != nil {
		if isCallerError(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "training failed"})
		return
	}

	ctx.JSON(http.StatusOK, newTrainResponse(run))
}

// recent lists the newest stored runs.
func (fc *ForageController) recent(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil || limit < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
	}

	runs, err := fc.forager.Recent(ctx, limit)
	if err != nil {
		if errors.Is(err, service.ErrHistoryDisabled) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "listing runs failed"})
		return
	}

	summaries := make([]RunSummary, 0, len(runs))
	for _, run := range runs {
		summaries = append(summaries, newRunSummary(run))
	}
	ctx.JSON(http.StatusOK, summaries)
}

// run retrieves a stored run.
func (fc *ForageController) run(ctx *gin.Context) {
	run, ok := fc.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newTrainResponse(run))
}

// heatmap renders the state values of a stored run.
func (fc *ForageController) heatmap(ctx *gin.Context) {
	run, ok := fc.lookup(ctx)
	if !ok {
		return
	}

	var page bytes.Buffer
	title := fmt.Sprintf("run %s (%dx%d, %d episodes)", run.ID, run.Dimension, run.Dimension, run.Episodes)
	if err := plot.RenderHeatmap(&page, title, run.StateValues()); err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "rendering heatmap failed"})
		return
	}
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", page.Bytes())
}

func (fc *ForageController) lookup(ctx *gin.Context) (*dmn.Run, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return nil, false
	}

	run, err := fc.forager.Run(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return nil, false
	}
	return run, true
}

// isCallerError reports whether err was caused by the request parameters.
func isCallerError(err error) bool {
	for _, target := range []error{
		forage.ErrDimensionTooSmall,
		forage.ErrNegativeFood,
		forage.ErrNoEpisodes,
		forage.ErrFoodOutOfBounds,
		service.ErrRequestTooLarge,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
