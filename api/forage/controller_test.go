package forageapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-forager/domain"
	"github.com/beka-birhanu/vinom-forager/forage"
	"github.com/beka-birhanu/vinom-forager/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockForager struct{ mock.Mock }

func (m *mockForager) Train(ctx context.Context, req dmn.RunRequest) (*dmn.Run, error) {
	args := m.Called(req)
	run, _ := args.Get(0).(*dmn.Run)
	return run, args.Error(1)
}

func (m *mockForager) Run(id uuid.UUID) (*dmn.Run, error) {
	args := m.Called(id)
	run, _ := args.Get(0).(*dmn.Run)
	return run, args.Error(1)
}

func (m *mockForager) Recent(ctx context.Context, limit int) ([]*dmn.Run, error) {
	args := m.Called(limit)
	runs, _ := args.Get(0).([]*dmn.Run)
	return runs, args.Error(1)
}

func newTestEngine(t *testing.T, f *mockForager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	c, err := NewForageController(f)
	require.NoError(t, err)

	engine := gin.New()
	c.Register(engine.Group("/"))
	return engine
}

func do(engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func sampleRun() *dmn.Run {
	return &dmn.Run{
		ID:            uuid.New(),
		NumFood:       1,
		Dimension:     2,
		Episodes:      10,
		QTable:        [][][]float64{{{0, 1, 0, 2}, {0, 0, 0, 0}}, {{0, 0, 0, 3}, {0, 0, 0, 0}}},
		BestPath:      []string{"right", "down"},
		FoodLocations: []forage.Position{{Row: 1, Col: 1}},
		CreatedAt:     time.Now(),
	}
}

func TestTrain(t *testing.T) {
	f := &mockForager{}
	run := sampleRun()
	f.On("Train", dmn.RunRequest{NumFood: 1, Dimension: 2, Episodes: 10}).Return(run, nil)

	w := do(newTestEngine(t, f), http.MethodPost, "/ailogic/", `{"num_food":1,"world_dimension":2,"num_episodes":10}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.JSONEq(t, `[[[0,1,0,2],[0,0,0,0]],[[0,0,0,3],[0,0,0,0]]]`, string(body["q_table"]))
	assert.JSONEq(t, `["right","down"]`, string(body["best_path"]))
	assert.JSONEq(t, `[[1,1]]`, string(body["food_locations"]))
	assert.JSONEq(t, `"`+run.ID.String()+`"`, string(body["id"]))
}

func TestTrainForwardsOptionalFields(t *testing.T) {
	f := &mockForager{}
	seed := int64(9)
	want := dmn.RunRequest{
		NumFood:   0,
		Dimension: 4,
		Episodes:  500,
		Seed:      &seed,
		Food:      []forage.Position{{Row: 2, Col: 2}},
	}
	f.On("Train", want).Return(sampleRun(), nil)

	w := do(newTestEngine(t, f), http.MethodPost, "/ailogic/",
		`{"num_food":0,"world_dimension":4,"num_episodes":500,"seed":9,"food_locations":[[2,2]]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	f.AssertExpectations(t)
}

func TestTrainKeepsZeroSeed(t *testing.T) {
	f := &mockForager{}
	f.On("Train", mock.MatchedBy(func(r dmn.RunRequest) bool { return r.Seed != nil && *r.Seed == 0 })).
		Return(sampleRun(), nil)

	w := do(newTestEngine(t, f), http.MethodPost, "/ailogic/",
		`{"num_food":1,"world_dimension":3,"num_episodes":5,"seed":0}`)

	assert.Equal(t, http.StatusOK, w.Code)
	f.AssertExpectations(t)
}

func TestTrainBadRequests(t *testing.T) {
	f := &mockForager{}
	f.On("Train", mock.MatchedBy(func(r dmn.RunRequest) bool { return r.Dimension == 1 })).
		Return(nil, forage.ErrDimensionTooSmall)
	f.On("Train", mock.MatchedBy(func(r dmn.RunRequest) bool { return r.Dimension == 999 })).
		Return(nil, service.ErrRequestTooLarge)
	engine := newTestEngine(t, f)

	for _, body := range []string{
		`not json`,
		`{"world_dimension":4,"num_episodes":5}`,
		`{"num_food":1,"world_dimension":4}`,
		`{"num_food":1,"world_dimension":1,"num_episodes":5}`,
		`{"num_food":1,"world_dimension":999,"num_episodes":5}`,
	} {
		w := do(engine, http.MethodPost, "/ailogic/", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestTrainInternalFailureIsOpaque(t *testing.T) {
	f := &mockForager{}
	f.On("Train", mock.Anything).Return(nil, errors.New("boom"))

	w := do(newTestEngine(t, f), http.MethodPost, "/ailogic/", `{"num_food":1,"world_dimension":4,"num_episodes":5}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"training failed"}`, w.Body.String())
}

func TestRunLookup(t *testing.T) {
	f := &mockForager{}
	run := sampleRun()
	missing := uuid.New()
	f.On("Run", run.ID).Return(run, nil)
	f.On("Run", missing).Return(nil, service.ErrRunNotFound)
	engine := newTestEngine(t, f)

	w := do(engine, http.MethodGet, "/ailogic/runs/"+run.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"best_path":["right","down"]`)

	w = do(engine, http.MethodGet, "/ailogic/runs/"+missing.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(engine, http.MethodGet, "/ailogic/runs/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHeatmap(t *testing.T) {
	f := &mockForager{}
	run := sampleRun()
	f.On("Run", run.ID).Return(run, nil)

	w := do(newTestEngine(t, f), http.MethodGet, "/ailogic/runs/"+run.ID.String()+"/heatmap", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "state value")
}

func TestHeatmapRenderFailure(t *testing.T) {
	f := &mockForager{}
	run := &dmn.Run{ID: uuid.New()}
	f.On("Run", run.ID).Return(run, nil)

	w := do(newTestEngine(t, f), http.MethodGet, "/ailogic/runs/"+run.ID.String()+"/heatmap", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "<html")
}

func TestRecent(t *testing.T) {
	f := &mockForager{}
	run := sampleRun()
	f.On("Recent", 5).Return([]*dmn.Run{run}, nil)
	f.On("Recent", 0).Return(nil, service.ErrHistoryDisabled)
	engine := newTestEngine(t, f)

	w := do(engine, http.MethodGet, "/ailogic/recent?limit=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	var summaries []RunSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, run.ID.String(), summaries[0].ID)
	assert.Equal(t, 2, summaries[0].PathLength)

	w = do(engine, http.MethodGet, "/ailogic/recent", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(engine, http.MethodGet, "/ailogic/recent?limit=x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewForageControllerRequiresService(t *testing.T) {
	_, err := NewForageController(nil)
	assert.Error(t, err)
}
