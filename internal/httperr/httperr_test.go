package httperr

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func record(write func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)
	return w
}

func TestWriters(t *testing.T) {
	cases := []struct {
		name   string
		write  func(c *gin.Context)
		status int
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "invalid_request", "Bad input.") }, http.StatusBadRequest},
		{"not found", func(c *gin.Context) { NotFound(c, "appointment_not_found", "Missing.") }, http.StatusNotFound},
		{"conflict", func(c *gin.Context) { Conflict(c, "appointment_overlap", "Taken.") }, http.StatusConflict},
		{"internal", func(c *gin.Context) { Internal(c, "failed_to_book_appointment", "Please try again later.") }, http.StatusInternalServerError},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "invalid_token", "Log in.") }, http.StatusUnauthorized},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "forbidden_for_role", "No.") }, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := record(tc.write)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestInternalBody(t *testing.T) {
	w := record(func(c *gin.Context) {
		Internal(c, "failed_to_book_appointment", "Please try again later.")
	})

	assert.JSONEq(t,
		`{"error_code":"failed_to_book_appointment","message":"Please try again later."}`,
		w.Body.String(),
	)
}
