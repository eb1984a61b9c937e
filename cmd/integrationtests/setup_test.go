package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	bid "slot-auction/internal/bidService"
	"slot-auction/internal/locker"
	product "slot-auction/internal/productService"
	"slot-auction/internal/repository"
	result "slot-auction/internal/resultService"
	"slot-auction/internal/server"
	slot "slot-auction/internal/slotService"
	"slot-auction/utils"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the full router over an in-memory repository
// for integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	locks := locker.New()

	productSvc := product.NewService(repo, utils.NewEntry("product"))
	slotSvc := slot.NewService(repo, utils.NewEntry("slot"))
	bidSvc := bid.NewService(repo, locks, utils.NewEntry("bid"))
	resultSvc := result.NewService(repo, locks, utils.NewEntry("result"), nil)

	return server.SetupRouter(productSvc, slotSvc, bidSvc, resultSvc)
}

// ExecuteRequestAndParse executes an HTTP request on the given router as the
// given user and parses the JSON response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, userID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// DataObject extracts the data payload of a response envelope as an object
func DataObject(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response data is not an object: %v", resp)
	}
	return data
}

// DataArray extracts the data payload of a response envelope as an array
func DataArray(t *testing.T, resp map[string]any) []any {
	t.Helper()

	data, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response data is not an array: %v", resp)
	}
	return data
}
