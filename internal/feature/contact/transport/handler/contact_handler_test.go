package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		expectedStatus int
	}{
		{
			name: "success: acknowledged with personalized message",
			requestBody: gin.H{
				"name":       "Taro",
				"email":      "taro@example.com",
				"subject":    "Question",
				"message":    "Hello",
				"newsletter": true,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: missing message",
			requestBody:    gin.H{"name": "Taro", "email": "taro@example.com", "subject": "Question"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: invalid email",
			requestBody:    gin.H{"name": "Taro", "email": "bad", "subject": "Q", "message": "x"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewContactHandler()

			r := gin.New()
			r.POST("/contact", h.Submit)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var res map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
				assert.Contains(t, res["message"], "Thank you Taro!")
			}
		})
	}
}
