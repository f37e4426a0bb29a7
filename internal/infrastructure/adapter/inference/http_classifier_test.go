package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	errs "github.com/nsokolova/prediction-service/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClassifierPredict(t *testing.T) {
	ctx := context.Background()

	t.Run("Posts the feature column and returns the category id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req predictRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, []string{"iPhone 14 Pro", "LG OLED C3"}, req.Instances)

			json.NewEncoder(w).Encode(predictResponse{CategoryID: 2612})
		}))
		defer server.Close()

		classifier := NewHTTPClassifier("rf_model", server.URL)

		categoryID, err := classifier.Predict(ctx, []string{"iPhone 14 Pro", "LG OLED C3"})

		require.NoError(t, err)
		assert.Equal(t, 2612, categoryID)
	})

	t.Run("Non-200 status surfaces as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not loaded", http.StatusInternalServerError)
		}))
		defer server.Close()

		classifier := NewHTTPClassifier("rf_model", server.URL)

		_, err := classifier.Predict(ctx, []string{"some input"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "rf_model")
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("Malformed response body surfaces as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		classifier := NewHTTPClassifier("rf_model", server.URL)

		_, err := classifier.Predict(ctx, []string{"some input"})

		assert.Error(t, err)
	})

	t.Run("Context deadline aborts a slow model server", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		classifier := NewHTTPClassifier("rf_model", server.URL)

		deadlineCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		_, err := classifier.Predict(deadlineCtx, []string{"some input"})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Unreachable server surfaces as an error", func(t *testing.T) {
		classifier := NewHTTPClassifier("rf_model", "http://127.0.0.1:1/predict")

		_, err := classifier.Predict(ctx, []string{"some input"})

		assert.Error(t, err)
	})
}

func TestStaticRegistry(t *testing.T) {
	registry := NewDefaultRegistry(
		"http://localhost:9001/predict",
		"http://localhost:9002/predict",
		"http://localhost:9003/predict",
	)

	t.Run("Resolves every catalog model", func(t *testing.T) {
		for _, name := range []string{"rf_model", "svc_model", "catboost_model"} {
			classifier, err := registry.Resolve(name)
			require.NoError(t, err, name)
			assert.NotNil(t, classifier)
		}
	})

	t.Run("Unknown name fails with ErrModelNotFound", func(t *testing.T) {
		classifier, err := registry.Resolve("gpt_model")
		assert.Nil(t, classifier)
		assert.ErrorIs(t, err, errs.ErrModelNotFound)
	})
}
