package api

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/responses"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	handler := NewSchedulerHandlerImpl(&config.SchedulerConfig{
		Port:                  9095,
		RoundRobinTimeQuantum: 2,
		PriorityAging:         false,
	})
	RegisterRoutes(app, handler)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestRoundRobinEndpoint(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/api/v1/rr", `{
		"processes": [
			{"process_id": 1, "arrival_time": 0, "burst_time": 5},
			{"process_id": 2, "arrival_time": 0, "burst_time": 3}
		],
		"time_quantum": 2
	}`)
	require.Equal(t, fiber.StatusOK, status)

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &response))

	assert.Equal(t, "rr", response.Algorithm)
	assert.Equal(t, 8, response.TotalTime)
	require.Len(t, response.Segments, 5)
	assert.Equal(t, responses.SegmentResponse{ProcessId: 2, StartTime: 6, EndTime: 7, Duration: 1}, response.Segments[3])
}

func TestRoundRobinEndpointDefaultsQuantumFromConfig(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/api/v1/rr", `{
		"processes": [{"process_id": 1, "arrival_time": 0, "burst_time": 5}]
	}`)
	require.Equal(t, fiber.StatusOK, status)

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &response))
	// quantum 2 from config slices the burst of 5 into three segments
	assert.Len(t, response.Segments, 3)
}

func TestRoundRobinEndpointRejectsNegativeQuantum(t *testing.T) {
	app := newTestApp()

	status, _ := postJSON(t, app, "/api/v1/rr", `{
		"processes": [{"process_id": 1, "arrival_time": 0, "burst_time": 5}],
		"time_quantum": -1
	}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestScheduleEndpointsRejectBadInput(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed body", body: `not json`},
		{name: "empty process set", body: `{"processes": []}`},
		{name: "duplicate id", body: `{"processes": [
			{"process_id": 1, "arrival_time": 0, "burst_time": 5},
			{"process_id": 1, "arrival_time": 1, "burst_time": 3}
		]}`},
		{name: "zero burst", body: `{"processes": [
			{"process_id": 1, "arrival_time": 0, "burst_time": 0}
		]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := postJSON(t, app, "/api/v1/fcfs", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
		})
	}
}

func TestPriorityEndpointAgingFlag(t *testing.T) {
	app := newTestApp()
	body := `{
		"processes": [
			{"process_id": 1, "arrival_time": 0, "burst_time": 12, "priority": 0},
			{"process_id": 2, "arrival_time": 0, "burst_time": 3, "priority": 3},
			{"process_id": 3, "arrival_time": 10, "burst_time": 3, "priority": 1}
		],
		"with_aging": true
	}`

	status, respBody := postJSON(t, app, "/api/v1/priority", body)
	require.Equal(t, fiber.StatusOK, status)

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(respBody, &response))
	// aging lets the long waiter overtake the nominally higher priority
	assert.Equal(t, 2, response.Segments[1].ProcessId)
}

func TestAllAlgorithmsEndpoint(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/api/v1/all", `{
		"processes": [
			{"process_id": 1, "arrival_time": 0, "burst_time": 8, "priority": 1},
			{"process_id": 2, "arrival_time": 1, "burst_time": 4, "priority": 2},
			{"process_id": 3, "arrival_time": 2, "burst_time": 2, "priority": 1}
		]
	}`)
	require.Equal(t, fiber.StatusOK, status)

	var results []responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &results))
	require.Len(t, results, 4)

	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Algorithm)
		assert.Len(t, r.Details, 3, r.Algorithm)
	}
	assert.Equal(t, []string{"fcfs", "sjf", "rr", "priority"}, names)
}
