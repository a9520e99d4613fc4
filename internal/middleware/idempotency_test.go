package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupIdempotencyRouter(rdb *redis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/advances/credit", middleware.Idempotency(rdb), func(c *gin.Context) {
		result := gin.H{"new_balance": "7000.00"}
		middleware.StoreIdempotentResult(c, rdb, result, time.Hour)
		c.JSON(http.StatusOK, gin.H{"ok": true, "data": result})
	})
	return router
}

func TestIdempotency_NoHeaderPassesThrough(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	router := setupIdempotencyRouter(rdb)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/advances/credit", strings.NewReader("{}"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_FirstRequestRunsAndCaches(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	router := setupIdempotencyRouter(rdb)

	cacheKey := "idemp:/advances/credit::key-1"
	lockKey := cacheKey + ":lock"

	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(cacheKey, []byte(`{"new_balance":"7000.00"}`), time.Hour).SetVal("OK")
	mock.ExpectDel(lockKey).SetVal(1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/advances/credit", strings.NewReader("{}"))
	req.Header.Set("Idempotency-Key", "key-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	router := setupIdempotencyRouter(rdb)

	cacheKey := "idemp:/advances/credit::key-1"
	mock.ExpectGet(cacheKey).SetVal(`{"new_balance":"7000.00"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/advances/credit", strings.NewReader("{}"))
	req.Header.Set("Idempotency-Key", "key-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"replayed":true`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ConcurrentDuplicateRejected(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	router := setupIdempotencyRouter(rdb)

	cacheKey := "idemp:/advances/credit::key-1"
	lockKey := cacheKey + ":lock"

	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/advances/credit", strings.NewReader("{}"))
	req.Header.Set("Idempotency-Key", "key-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
