package misc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

type testDB struct {
	err error
}

func (db *testDB) Ping(_ context.Context) error {
	return db.err
}

func setupRouterForTests(t *testing.T, db dbPinger, redisClient *redis.Client) *mux.Router {
	t.Helper()
	r := mux.NewRouter()
	NewHandler(db, redisClient, "v1.2.3").SetupRoutes(r)
	return r
}

func serve(t *testing.T, r *mux.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest("GET", path, nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHandler_RootAndHealth(t *testing.T) {
	r := setupRouterForTests(t, &testDB{err: errors.New("down")}, nil)

	rr := serve(t, r, "/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"FitPlan API is running"}`, rr.Body.String())

	// liveness does not depend on the database
	rr = serve(t, r, "/health")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())

	rr = serve(t, r, "/version")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1.2.3", rr.Body.String())
}

func TestHandler_Ready(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	defer redisClient.Close()
	r := setupRouterForTests(t, &testDB{}, redisClient)

	redisMock.ExpectPing().SetVal("PONG")
	rr := serve(t, r, "/health/ready")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy","checks":{"postgres":"ok","redis":"ok"}}`, rr.Body.String())

	redisMock.ExpectPing().SetErr(errors.New("connection refused"))
	rr = serve(t, r, "/health/ready")
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"status":"unhealthy","checks":{"postgres":"ok","redis":"unavailable"}}`, rr.Body.String())

	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_Ready_NoRedis(t *testing.T) {
	r := setupRouterForTests(t, &testDB{err: errors.New("too many connections")}, nil)

	rr := serve(t, r, "/health/ready")
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"status":"unhealthy","checks":{"postgres":"unavailable"}}`, rr.Body.String())
}
