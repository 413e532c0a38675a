//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	v1 "github.com/vitae-lab/healthbridge/internal/api/v1"
	"github.com/vitae-lab/healthbridge/internal/health"
	"github.com/vitae-lab/healthbridge/internal/native"
	"github.com/vitae-lab/healthbridge/internal/native/simstore"
	"github.com/vitae-lab/healthbridge/internal/server"
)

const seedFixture = `
permissions:
  - permission: "android.permission.health.READ_STEPS"
    granted: true
records:
  - type: "StepsRecord"
    start: 2026-03-09T07:00:00Z
    end: 2026-03-09T07:30:00Z
    value: 1250
    unit: "count"
  - type: "StepsRecord"
    start: 2026-03-09T12:00:00Z
    end: 2026-03-09T12:30:00Z
    value: 2750
    unit: "count"
  - type: "ExerciseSessionRecord"
    start: 2026-03-09T18:00:00Z
    end: 2026-03-09T18:45:00Z
    exerciseType: 56
`

type integrationHarness struct {
	baseURL    string
	client     *http.Client
	store      *simstore.Store
	cancel     context.CancelFunc
	serverDone chan error
}

func (h *integrationHarness) close(t *testing.T) {
	t.Helper()

	h.cancel()
	select {
	case <-h.serverDone:
	case <-time.After(5 * time.Second):
		t.Log("server shutdown timed out")
	}

	require.NoError(t, h.store.Close())
}

func startHarness(t *testing.T, opts simstore.Options) *integrationHarness {
	t.Helper()

	dir := t.TempDir()
	logger := slog.New(slog.DiscardHandler)

	store, err := simstore.Open(filepath.Join(dir, "sim.db"), opts, logger)
	require.NoError(t, err)

	seedPath := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(seedFixture), 0o644))
	require.NoError(t, store.LoadSeed(context.Background(), seedPath))

	addr := fmt.Sprintf("127.0.0.1:%d", freePort(t))
	httpServer := server.New(addr, store, "release")
	health.NewService(store, "integration", logger).RegisterRoutes(httpServer.Engine)

	ctx, cancel := context.WithCancel(context.Background())
	serverDone := make(chan error, 1)
	go func() { serverDone <- httpServer.Run(ctx) }()

	baseURL := "http://" + addr
	waitForServer(t, baseURL)

	return &integrationHarness{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: 5 * time.Second},
		store:      store,
		cancel:     cancel,
		serverDone: serverDone,
	}
}

func TestAPI_SampleLifecycle(t *testing.T) {
	h := startHarness(t, simstore.Options{Platform: native.PlatformHealthConnect})
	defer h.close(t)

	status, body := postJSON(t, h.client, h.baseURL+"/v1/authorization/request", v1.AuthorizationRequest{
		Read:  []string{"steps", "workouts"},
		Write: []string{"steps"},
	})
	require.Equal(t, http.StatusOK, status, string(body))

	var auth v1.AuthorizationStatus
	require.NoError(t, json.Unmarshal(body, &auth))
	require.ElementsMatch(t, []string{"steps", "workouts"}, auth.ReadAuthorized)
	require.Equal(t, []string{"steps"}, auth.WriteAuthorized)

	status, body = postJSON(t, h.client, h.baseURL+"/v1/samples", v1.SaveSampleRequest{
		DataType:  "steps",
		Value:     500,
		StartDate: "2026-03-09T15:00:00Z",
		EndDate:   "2026-03-09T15:10:00Z",
	})
	require.Equal(t, http.StatusNoContent, status, string(body))

	status, body = postJSON(t, h.client, h.baseURL+"/v1/samples/query", v1.ReadSamplesRequest{
		DataType:  "steps",
		StartDate: "2026-03-09T00:00:00Z",
		EndDate:   "2026-03-10T00:00:00Z",
		Ascending: true,
	})
	require.Equal(t, http.StatusOK, status, string(body))

	var samples v1.ReadSamplesResult
	require.NoError(t, json.Unmarshal(body, &samples))
	require.Len(t, samples.Samples, 3)
	require.Equal(t, float64(1250), samples.Samples[0].Value)
	require.Equal(t, float64(500), samples.Samples[1].Value)
	require.Equal(t, float64(2750), samples.Samples[2].Value)

	status, body = postJSON(t, h.client, h.baseURL+"/v1/aggregates/query", v1.QueryAggregatedRequest{
		DataType:  "steps",
		StartDate: "2026-03-09T00:00:00Z",
		EndDate:   "2026-03-10T00:00:00Z",
		Bucket:    "day",
	})
	require.Equal(t, http.StatusOK, status, string(body))

	var aggregates v1.QueryAggregatedResult
	require.NoError(t, json.Unmarshal(body, &aggregates))
	require.Len(t, aggregates.Data, 1)
	require.Equal(t, float64(4500), aggregates.Data[0].Value)
}

func TestAPI_WorkoutsQuery(t *testing.T) {
	h := startHarness(t, simstore.Options{Platform: native.PlatformHealthConnect})
	defer h.close(t)

	status, body := postJSON(t, h.client, h.baseURL+"/v1/workouts/query", v1.QueryWorkoutsRequest{
		StartDate: "2026-03-09T00:00:00Z",
		EndDate:   "2026-03-10T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, status, string(body))

	var workouts v1.QueryWorkoutsResult
	require.NoError(t, json.Unmarshal(body, &workouts))
	require.Len(t, workouts.Workouts, 1)
	require.Equal(t, "running", workouts.Workouts[0].WorkoutType)
	require.Equal(t, int64(2700), workouts.Workouts[0].Duration)
	require.Empty(t, workouts.Anchor)
}

func TestAPI_UnavailableStore(t *testing.T) {
	h := startHarness(t, simstore.Options{
		Platform:    native.PlatformHealthKit,
		Unavailable: true,
		Reason:      "health data restricted",
	})
	defer h.close(t)

	resp, err := h.client.Get(h.baseURL + "/v1/availability")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var avail v1.Availability
	require.NoError(t, json.Unmarshal(respBody, &avail))
	require.False(t, avail.Available)
	require.Equal(t, "health data restricted", avail.Reason)

	status, body := postJSON(t, h.client, h.baseURL+"/v1/samples/query", v1.ReadSamplesRequest{DataType: "steps"})
	require.Equal(t, http.StatusServiceUnavailable, status, string(body))
}

func waitForServer(t *testing.T, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(baseURL + "/v1/availability")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Fatalf("server did not come up at %s", baseURL)
}

func postJSON(t *testing.T, client *http.Client, endpoint string, payload interface{}) (int, []byte) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBody
}

func freePort(t *testing.T) int {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}
