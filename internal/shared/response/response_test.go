package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/miguelF21/Facepay/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{"exact pages", 50, 25, 2},
		{"partial last page", 51, 25, 3},
		{"empty", 0, 25, 0},
		{"no page size", 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := response.NewPaginationMeta(tt.total, 1, tt.pageSize)
			assert.Equal(t, tt.want, meta.TotalPages)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty list keeps meta", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		meta := response.NewPaginationMeta(0, 1, 25)

		response.Success(c, http.StatusOK, []string{}, &meta)

		assert.JSONEq(t,
			`{"ok":true,"data":[],"meta":{"total":0,"totalPages":0,"page":1,"pageSize":25}}`,
			rec.Body.String())
	})

	t.Run("error body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Terminal not found", nil)

		var env map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, false, env["ok"])
		assert.NotContains(t, env, "data")
		assert.Equal(t, "Terminal not found", env["error"].(map[string]any)["message"])
	})
}
