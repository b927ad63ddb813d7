package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ohd/internal/models"
	"ohd/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mondayJSON = `{"monday":[{"type":"open","value":32400},{"type":"close","value":72000}]}`

// --- helpers ---

func newTestController(svc *testutil.MockScheduleService, cache *testutil.MockCache) (*ApiController, *testutil.MockMetrics) {
	metrics := &testutil.MockMetrics{}
	return NewApiController(&testutil.MockLogger{}, svc, cache, metrics), metrics
}

func mondaySchedule() models.WeekSchedule {
	return models.WeekSchedule{
		models.Monday: {
			{Type: models.EventOpen, Value: 32400},
			{Type: models.EventClose, Value: 72000},
		},
	}
}

// --- ComputeOpeningTimes ---

func TestComputeOpeningTimes_ValidPayload(t *testing.T) {
	svc := &testutil.MockScheduleService{}
	ac, _ := newTestController(svc, testutil.NewMockCache())

	body := `{"monday":[{"type":"open","value":32400}],"tuesday":[{"type":"close","value":3600}]}`
	req := httptest.NewRequest(http.MethodPost, "/opening-times", strings.NewReader(body))
	rr := httptest.NewRecorder()

	ac.ComputeOpeningTimes(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"monday":[{"open":32400,"close":3600}],"tuesday":[],"wednesday":[],"thursday":[],"friday":[],"saturday":[],"sunday":[]}`,
		rr.Body.String())
	assert.Equal(t, 0, svc.ReplaceCalls)
}

func TestComputeOpeningTimes_InvalidJSON(t *testing.T) {
	ac, _ := newTestController(&testutil.MockScheduleService{}, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodPost, "/opening-times", strings.NewReader("not json"))
	rr := httptest.NewRecorder()

	ac.ComputeOpeningTimes(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), invalidScheduleMessage)
}

func TestComputeOpeningTimes_OversizedBody(t *testing.T) {
	ac, _ := newTestController(&testutil.MockScheduleService{}, testutil.NewMockCache())

	big := strings.Repeat("x", maxRequestBodySize+1)
	req := httptest.NewRequest(http.MethodPost, "/opening-times", strings.NewReader(big))
	rr := httptest.NewRecorder()

	ac.ComputeOpeningTimes(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// --- FormatInterval ---

func TestFormatInterval_ReversedKeys(t *testing.T) {
	ac, _ := newTestController(&testutil.MockScheduleService{}, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodPost, "/format", strings.NewReader(`{"close":3600,"open":72000}`))
	rr := httptest.NewRecorder()

	ac.FormatInterval(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"display":"8 PM - 1 AM"}`, rr.Body.String())
}

func TestFormatInterval_MissingField(t *testing.T) {
	ac, _ := newTestController(&testutil.MockScheduleService{}, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodPost, "/format", strings.NewReader(`{"open":72000}`))
	rr := httptest.NewRecorder()

	ac.FormatInterval(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// --- GetSchedule / ReplaceSchedule ---

func TestGetSchedule_ReturnsStored(t *testing.T) {
	svc := &testutil.MockScheduleService{Schedule: mondaySchedule()}
	ac, _ := newTestController(svc, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodGet, "/schedule", nil)
	rr := httptest.NewRecorder()

	ac.GetSchedule(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, mondayJSON, rr.Body.String())
}

func TestReplaceSchedule_Valid(t *testing.T) {
	svc := &testutil.MockScheduleService{}
	cache := testutil.NewMockCache()
	cache.Set("opening-times:v0", []byte("stale"))
	ac, _ := newTestController(svc, cache)

	req := httptest.NewRequest(http.MethodPut, "/schedule", strings.NewReader(mondayJSON))
	rr := httptest.NewRecorder()

	ac.ReplaceSchedule(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":1}`, rr.Body.String())
	assert.Equal(t, mondaySchedule(), svc.GetSchedule())
	assert.Equal(t, 1, cache.ClearCalls)
	_, ok := cache.Get("opening-times:v0")
	assert.False(t, ok)
}

func TestReplaceSchedule_InvalidKeepsPrevious(t *testing.T) {
	svc := &testutil.MockScheduleService{Schedule: mondaySchedule(), Version: 4}
	cache := testutil.NewMockCache()
	ac, metrics := newTestController(svc, cache)

	req := httptest.NewRequest(http.MethodPut, "/schedule", strings.NewReader(`{"monday": [{"type": "open"`))
	rr := httptest.NewRecorder()

	ac.ReplaceSchedule(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), invalidScheduleMessage)
	assert.Equal(t, mondaySchedule(), svc.GetSchedule())
	assert.Equal(t, uint64(4), svc.GetVersion())
	assert.Equal(t, 0, cache.ClearCalls)
	assert.Equal(t, 1, metrics.RejectedSchedules)
}

func TestReplaceSchedule_UnexpectedError(t *testing.T) {
	svc := &testutil.MockScheduleService{ReplaceErr: errors.New("disk on fire")}
	ac, _ := newTestController(svc, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodPut, "/schedule", strings.NewReader(mondayJSON))
	rr := httptest.NewRecorder()

	ac.ReplaceSchedule(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// --- GetOpeningTimes / GetDisplay ---

func TestGetOpeningTimes_ReturnsJSON(t *testing.T) {
	svc := &testutil.MockScheduleService{Schedule: mondaySchedule(), Version: 2}
	ac, _ := newTestController(svc, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodGet, "/opening-times", nil)
	rr := httptest.NewRecorder()

	ac.GetOpeningTimes(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var result map[string][]models.Interval
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Len(t, result, models.DaysInWeek)
	assert.Equal(t, []models.Interval{{Open: 32400, Close: 72000}}, result["monday"])
	assert.Empty(t, result["sunday"])
}

func TestGetDisplay_FlagsToday(t *testing.T) {
	svc := &testutil.MockScheduleService{Schedule: mondaySchedule(), TodayValue: models.Monday}
	ac, _ := newTestController(svc, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodGet, "/display", nil)
	rr := httptest.NewRecorder()

	ac.GetDisplay(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var rows []models.DayDisplay
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rows))
	require.Len(t, rows, models.DaysInWeek)
	assert.True(t, rows[0].Today)
	assert.Equal(t, "9 AM - 8 PM", rows[0].Hours)
	assert.True(t, rows[1].Closed)
}

// --- Cache behavior ---

func TestCacheHit_ServiceNotCalled(t *testing.T) {
	cache := testutil.NewMockCache()
	cache.Set("opening-times:v3", []byte(`{"cached":true}`))

	svc := &testutil.MockScheduleService{Schedule: mondaySchedule(), Version: 3}
	ac, _ := newTestController(svc, cache)

	req := httptest.NewRequest(http.MethodGet, "/opening-times", nil)
	rr := httptest.NewRecorder()

	ac.GetOpeningTimes(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"cached":true}`, rr.Body.String())
}

func TestCacheMiss_SavesResult(t *testing.T) {
	cache := testutil.NewMockCache()
	svc := &testutil.MockScheduleService{Schedule: mondaySchedule(), Version: 7}
	ac, _ := newTestController(svc, cache)

	req := httptest.NewRequest(http.MethodGet, "/opening-times", nil)
	rr := httptest.NewRecorder()

	ac.GetOpeningTimes(rr, req)

	val, ok := cache.Get("opening-times:v7")
	assert.True(t, ok)
	assert.Equal(t, rr.Body.Bytes(), val)
}

func TestCacheKey_DisplayIncludesToday(t *testing.T) {
	cache := testutil.NewMockCache()
	svc := &testutil.MockScheduleService{Version: 1, TodayValue: models.Saturday}
	ac, _ := newTestController(svc, cache)

	req := httptest.NewRequest(http.MethodGet, "/display", nil)
	rr := httptest.NewRecorder()

	ac.GetDisplay(rr, req)

	_, ok := cache.Get("display:v1:saturday")
	assert.True(t, ok)
}

func TestContentType_AllGetEndpoints(t *testing.T) {
	svc := &testutil.MockScheduleService{Schedule: mondaySchedule()}
	ac, _ := newTestController(svc, testutil.NewMockCache())

	endpoints := []struct {
		path    string
		handler func(http.ResponseWriter, *http.Request)
	}{
		{"/schedule", ac.GetSchedule},
		{"/opening-times", ac.GetOpeningTimes},
		{"/display", ac.GetDisplay},
	}

	for _, ep := range endpoints {
		t.Run(ep.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, ep.path, nil)
			rr := httptest.NewRecorder()
			ep.handler(rr, req)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

func TestReplaceSchedule_MissingValueKeepsPrevious(t *testing.T) {
	svc := &testutil.MockScheduleService{Schedule: mondaySchedule(), Version: 2}
	ac, _ := newTestController(svc, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodPut, "/schedule", strings.NewReader(`{"monday":[{"type":"open"}]}`))
	rr := httptest.NewRecorder()

	ac.ReplaceSchedule(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, mondaySchedule(), svc.GetSchedule())
	assert.Equal(t, uint64(2), svc.GetVersion())
}
