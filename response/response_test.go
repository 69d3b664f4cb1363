package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("không decode được body: %v", err)
	}
	return body
}

func TestSuccess(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Success(c, gin.H{"id": 1})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, muốn %d", w.Code, http.StatusOK)
	}
	body := decodeBody(t, w)
	if !body.Success {
		t.Error("success phải là true")
	}
	if body.Data == nil {
		t.Error("data không được rỗng")
	}
}

func TestCreated(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Created(c, "Tạo thành công", nil)
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, muốn %d", w.Code, http.StatusCreated)
	}
	body := decodeBody(t, w)
	if body.Message != "Tạo thành công" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestSuccessWithPagination(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		SuccessWithPagination(c, []int{1, 2}, 2, 10, 25)
	})

	body := decodeBody(t, w)
	if body.Pagination == nil {
		t.Fatal("pagination không được rỗng")
	}
	if body.Pagination.Page != 2 || body.Pagination.Limit != 10 || body.Pagination.Total != 25 {
		t.Errorf("pagination = %+v", body.Pagination)
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		handler gin.HandlerFunc
		code    int
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "dữ liệu sai") }, http.StatusBadRequest},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c) }, http.StatusUnauthorized},
		{"forbidden", func(c *gin.Context) { Forbidden(c) }, http.StatusForbidden},
		{"not found", func(c *gin.Context) { NotFound(c, "") }, http.StatusNotFound},
		{"server error", func(c *gin.Context) { ServerError(c) }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(tt.handler)
			if w.Code != tt.code {
				t.Fatalf("status = %d, muốn %d", w.Code, tt.code)
			}
			body := decodeBody(t, w)
			if body.Success {
				t.Error("success phải là false")
			}
			if body.Message == "" {
				t.Error("message không được rỗng")
			}
		})
	}
}
