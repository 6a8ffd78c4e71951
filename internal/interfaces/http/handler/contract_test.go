package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	contractapp "github.com/tradedesk/backend/internal/application/contract"
	"github.com/tradedesk/backend/internal/interfaces/http/dto"
)

// newContractRouter wires a handler whose service never reaches a
// repository: these tests cover binding and the pure calculation path.
func newContractRouter() *gin.Engine {
	service := contractapp.NewContractService(nil, nil, nil, nil, nil, "CON", zap.NewNop())
	h := NewContractHandler(service)

	router := gin.New()
	router.POST("/contracts/calculate", h.Calculate)
	router.GET("/contracts/search", h.Search)
	router.GET("/contracts/:id", h.Get)
	router.DELETE("/contracts/:id", h.Delete)
	return router
}

func TestContractHandlerCalculate(t *testing.T) {
	router := newContractRouter()

	t.Run("returns financial preview", func(t *testing.T) {
		body := `{"quantity":"100","unit_price":"10","tolerance":"10"}`
		req := httptest.NewRequest("POST", "/contracts/calculate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool                          `json:"success"`
			Data    contractapp.CalculateResponse `json:"data"`
		}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "1000", resp.Data.TotalAmount.String())
		assert.Equal(t, "US Dollars One Thousand only", resp.Data.TotalAmountText)
		assert.Equal(t, "90", resp.Data.QuantityRange.Min.String())
		assert.Equal(t, "110", resp.Data.QuantityRange.Max.String())
		assert.Equal(t, "900", resp.Data.AmountRange.Min.String())
		assert.Equal(t, "1100", resp.Data.AmountRange.Max.String())
	})

	t.Run("zero inputs yield zero preview", func(t *testing.T) {
		body := `{"quantity":"0","unit_price":"0"}`
		req := httptest.NewRequest("POST", "/contracts/calculate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data contractapp.CalculateResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Data.TotalAmount.IsZero())
		assert.Equal(t, "US Dollars Zero only", resp.Data.TotalAmountText)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/contracts/calculate", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeBadRequest)
	})
}

func TestContractHandlerSearch(t *testing.T) {
	router := newContractRouter()

	t.Run("missing query returns 400", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/contracts/search", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Query parameter is required")
	})
}

func TestContractHandlerInvalidID(t *testing.T) {
	router := newContractRouter()

	t.Run("get with malformed UUID returns 400", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/contracts/not-a-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid contract ID")
	})

	t.Run("delete with malformed UUID returns 400", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/contracts/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
