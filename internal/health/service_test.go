package health

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/vitae-lab/healthbridge/internal/api/v1"
	healtherr "github.com/vitae-lab/healthbridge/internal/core/errors"
	"github.com/vitae-lab/healthbridge/internal/health/catalog"
	"github.com/vitae-lab/healthbridge/internal/native"
	"github.com/vitae-lab/healthbridge/internal/native/nativetest"
)

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, platform native.Platform) (*nativetest.Store, *Service, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := nativetest.New(platform)
	svc := NewService(store, "test", slog.New(slog.DiscardHandler))
	svc.now = func() time.Time { return testNow }

	r := gin.New()
	svc.RegisterRoutes(r)
	return store, svc, r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) healtherr.ErrorResponse {
	t.Helper()
	var resp healtherr.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func stepsRecord(store *nativetest.Store, start time.Time, value float64) {
	d, _ := catalog.Resolve(string(catalog.Steps))
	nt := d.NativeType(store.Platform())
	store.Records[nt] = append(store.Records[nt], native.Record{
		ID:    "rec",
		Type:  nt,
		Start: start,
		End:   start.Add(time.Minute),
		Value: value,
	})
}

func TestHandleAvailability(t *testing.T) {
	store, _, r := newTestServer(t, native.PlatformHealthConnect)

	w := doRequest(r, http.MethodGet, "/v1/availability", "")
	require.Equal(t, http.StatusOK, w.Code)

	var avail v1.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &avail))
	assert.True(t, avail.Available)
	assert.Equal(t, "healthconnect", avail.Platform)

	store.SetUnavailable("no provider installed")
	w = doRequest(r, http.MethodGet, "/v1/availability", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &avail))
	assert.False(t, avail.Available)
	assert.Equal(t, "no provider installed", avail.Reason)
}

func TestHandleVersion(t *testing.T) {
	_, _, r := newTestServer(t, native.PlatformHealthKit)

	w := doRequest(r, http.MethodGet, "/v1/version", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "test", resp["version"])
	assert.Equal(t, "healthkit", resp["platform"])
}

func TestDataEndpointsFailClosedWhenStoreUnavailable(t *testing.T) {
	store, _, r := newTestServer(t, native.PlatformHealthConnect)
	store.SetUnavailable("emulated device")

	paths := []string{
		"/v1/authorization/request",
		"/v1/authorization/check",
		"/v1/samples/query",
		"/v1/samples",
		"/v1/aggregates/query",
		"/v1/workouts/query",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, path, `{"dataType":"steps","value":1}`)
			require.Equal(t, http.StatusServiceUnavailable, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, string(healtherr.KindStoreUnavailable), resp.ErrorType)
		})
	}
}

func TestBindRejectsMalformedBody(t *testing.T) {
	_, _, r := newTestServer(t, native.PlatformHealthConnect)

	w := doRequest(r, http.MethodPost, "/v1/samples/query", `{"dataType": nope}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "invalid_json", resp.ErrorType)
}

func TestReadSamples_UnknownTypeWinsOverBadDates(t *testing.T) {
	_, _, r := newTestServer(t, native.PlatformHealthConnect)

	w := doRequest(r, http.MethodPost, "/v1/samples/query",
		`{"dataType":"shoeSize","startDate":"not-a-date"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, string(healtherr.KindInvalidDataType), resp.ErrorType)
}

func TestReadSamples_DefaultWindowAndEmptyResult(t *testing.T) {
	store, _, r := newTestServer(t, native.PlatformHealthConnect)

	// One sample inside the default 24h window, one well before it.
	stepsRecord(store, testNow.Add(-2*time.Hour), 500)
	stepsRecord(store, testNow.Add(-72*time.Hour), 9000)

	w := doRequest(r, http.MethodPost, "/v1/samples/query", `{"dataType":"steps"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result v1.ReadSamplesResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Samples, 1)
	assert.Equal(t, float64(500), result.Samples[0].Value)
	assert.Equal(t, "count", result.Samples[0].Unit)

	// No matching data still serializes an empty array, not null.
	w = doRequest(r, http.MethodPost, "/v1/samples/query", `{"dataType":"restingHeartRate"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"samples":[]`)
}

func TestReadSamples_ErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		platform       native.Platform
		body           string
		setup          func(store *nativetest.Store)
		expectedStatus int
		expectedKind   healtherr.Kind
	}{
		{
			name:           "unknown data type returns 400",
			platform:       native.PlatformHealthConnect,
			body:           `{"dataType":"midichlorians"}`,
			expectedStatus: http.StatusBadRequest,
			expectedKind:   healtherr.KindInvalidDataType,
		},
		{
			name:           "malformed date returns 400",
			platform:       native.PlatformHealthConnect,
			body:           `{"dataType":"steps","startDate":"yesterday-ish"}`,
			expectedStatus: http.StatusBadRequest,
			expectedKind:   healtherr.KindInvalidDate,
		},
		{
			name:           "inverted range returns 400",
			platform:       native.PlatformHealthConnect,
			body:           `{"dataType":"steps","startDate":"2026-05-01T12:00:00Z","endDate":"2026-05-01T11:00:00Z"}`,
			expectedStatus: http.StatusBadRequest,
			expectedKind:   healtherr.KindInvalidDateRange,
		},
		{
			name:           "platform gap returns 422",
			platform:       native.PlatformHealthKit,
			body:           `{"dataType":"totalCalories"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedKind:   healtherr.KindDataTypeUnavailable,
		},
		{
			name:     "native read failure returns 500",
			platform: native.PlatformHealthConnect,
			body:     `{"dataType":"steps"}`,
			setup: func(store *nativetest.Store) {
				store.ReadErr = assert.AnError
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKind:   healtherr.KindOperationFailed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, _, r := newTestServer(t, tc.platform)
			if tc.setup != nil {
				tc.setup(store)
			}
			w := doRequest(r, http.MethodPost, "/v1/samples/query", tc.body)
			require.Equal(t, tc.expectedStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, string(tc.expectedKind), resp.ErrorType)
		})
	}
}

func TestHandleSaveSample(t *testing.T) {
	store, _, r := newTestServer(t, native.PlatformHealthConnect)

	w := doRequest(r, http.MethodPost, "/v1/samples", `{"dataType":"weight","value":72.4}`)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	require.Len(t, store.Written, 1)
	rec := store.Written[0]
	assert.Equal(t, 72.4, rec.Value)
	assert.Equal(t, "kilogram", rec.Unit)
	// Weight is an instant type: omitted dates collapse to the current time.
	assert.True(t, rec.Start.Equal(testNow))
	assert.True(t, rec.End.Equal(testNow))
}

func TestHandleSaveSample_Errors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedKind   healtherr.Kind
	}{
		{
			name:           "blood pressure without diastolic returns 422",
			body:           `{"dataType":"bloodPressure","systolic":120}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedKind:   healtherr.KindUnsupportedWrite,
		},
		{
			name:           "end before start returns 400",
			body:           `{"dataType":"steps","value":10,"startDate":"2026-05-01T10:00:00Z","endDate":"2026-05-01T09:00:00Z"}`,
			expectedStatus: http.StatusBadRequest,
			expectedKind:   healtherr.KindInvalidDateRange,
		},
		{
			name:           "unknown type returns 400",
			body:           `{"dataType":"aura","value":1}`,
			expectedStatus: http.StatusBadRequest,
			expectedKind:   healtherr.KindInvalidDataType,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, _, r := newTestServer(t, native.PlatformHealthConnect)
			w := doRequest(r, http.MethodPost, "/v1/samples", tc.body)
			require.Equal(t, tc.expectedStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, string(tc.expectedKind), resp.ErrorType)
			assert.Empty(t, store.Written)
		})
	}
}

func TestHandleQueryAggregated_Defaults(t *testing.T) {
	store, _, r := newTestServer(t, native.PlatformHealthConnect)
	store.Stats = map[string]native.Statistic{
		"StepsRecord": {Sum: 1200, Avg: 600, Min: 200, Max: 1000, Count: 2},
	}

	// Bucket defaults to day, the statistic to sum.
	w := doRequest(r, http.MethodPost, "/v1/aggregates/query",
		`{"dataType":"steps","startDate":"2026-04-06T00:00:00Z","endDate":"2026-04-07T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result v1.QueryAggregatedResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Data, 1)
	assert.Equal(t, float64(1200), result.Data[0].Value)
	assert.Equal(t, "count", result.Data[0].Unit)
	assert.Equal(t, "2026-04-06T00:00:00.000Z", result.Data[0].StartDate)
}

func TestHandleQueryAggregated_UnsupportedTypeReturns422(t *testing.T) {
	_, _, r := newTestServer(t, native.PlatformHealthConnect)

	w := doRequest(r, http.MethodPost, "/v1/aggregates/query", `{"dataType":"sleep"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, string(healtherr.KindUnsupportedAggregation), resp.ErrorType)
}

func TestHandleQueryAggregated_UnknownBucketReturns400(t *testing.T) {
	_, _, r := newTestServer(t, native.PlatformHealthConnect)

	w := doRequest(r, http.MethodPost, "/v1/aggregates/query", `{"dataType":"steps","bucket":"fortnight"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, string(healtherr.KindInvalidBucket), resp.ErrorType)
}

func TestHandleQueryWorkouts_EmptyResult(t *testing.T) {
	_, _, r := newTestServer(t, native.PlatformHealthConnect)

	w := doRequest(r, http.MethodPost, "/v1/workouts/query", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"workouts":[]`)
}

func TestHandleQueryWorkouts_UnknownFilterReturns400(t *testing.T) {
	_, _, r := newTestServer(t, native.PlatformHealthConnect)

	w := doRequest(r, http.MethodPost, "/v1/workouts/query", `{"workoutType":"quidditch"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, string(healtherr.KindInvalidDataType), resp.ErrorType)
}

func TestHandleAuthorization(t *testing.T) {
	store, _, r := newTestServer(t, native.PlatformHealthConnect)

	w := doRequest(r, http.MethodPost, "/v1/authorization/check",
		`{"read":["steps","workouts"],"write":["weight"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var status v1.AuthorizationStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	// No grants recorded yet: everything is denied.
	assert.Empty(t, status.ReadAuthorized)
	assert.ElementsMatch(t, []string{"steps", "workouts"}, status.ReadDenied)
	assert.Equal(t, []string{"weight"}, status.WriteDenied)

	w = doRequest(r, http.MethodPost, "/v1/authorization/request",
		`{"read":["steps","workouts"],"write":["weight"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.ElementsMatch(t, []string{"steps", "workouts"}, status.ReadAuthorized)
	assert.Equal(t, []string{"weight"}, status.WriteAuthorized)
	assert.Empty(t, status.ReadDenied)
	require.Len(t, store.Requested, 1)

	// "workouts" is a read-only pseudo-type.
	w = doRequest(r, http.MethodPost, "/v1/authorization/check",
		`{"write":["workouts"]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, string(healtherr.KindInvalidDataType), resp.ErrorType)
}
