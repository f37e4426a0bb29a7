package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nsokolova/prediction-service/internal/domain/entity"
	errs "github.com/nsokolova/prediction-service/internal/domain/error"
	"github.com/nsokolova/prediction-service/internal/domain/usecase/auth"
	"github.com/nsokolova/prediction-service/internal/domain/usecase/billing"
	"github.com/nsokolova/prediction-service/internal/domain/usecase/catalog"
	"github.com/nsokolova/prediction-service/internal/domain/usecase/prediction"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/api/dto"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/api/handler"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/logger"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/security"
	timeProvider "github.com/nsokolova/prediction-service/internal/infrastructure/adapter/time"
	inferencemocks "github.com/nsokolova/prediction-service/mocks/port/inference"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userStore is an in-memory UserRepository backing the route tests
type userStore struct {
	mu     sync.Mutex
	nextID uint64
	byID   map[uint64]*storedUser
	byName map[string]uint64
}

type storedUser struct {
	id           uint64
	username     string
	email        string
	passwordHash string
	balance      int64
}

func newUserStore() *userStore {
	return &userStore{
		nextID: 1,
		byID:   make(map[uint64]*storedUser),
		byName: make(map[string]uint64),
	}
}

func (s *userStore) toEntity(stored *storedUser) *entity.User {
	user := &entity.User{
		ID:           stored.id,
		Username:     stored.username,
		Email:        stored.email,
		PasswordHash: stored.passwordHash,
	}
	user.SetBalance(stored.balance, timeProvider.NewRealTimeProvider())
	return user
}

func (s *userStore) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byName[user.Username]; taken {
		return errs.ErrDuplicateUser
	}
	stored := &storedUser{
		id:           s.nextID,
		username:     user.Username,
		email:        user.Email,
		passwordHash: user.PasswordHash,
		balance:      user.Balance(),
	}
	s.byID[stored.id] = stored
	s.byName[stored.username] = stored.id
	user.ID = stored.id
	s.nextID++
	return nil
}

func (s *userStore) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.byID[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return s.toEntity(stored), nil
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byName[username]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return s.toEntity(s.byID[id]), nil
}

func (s *userStore) Credit(ctx context.Context, userID uint64, amountInCents int64) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.byID[userID]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	stored.balance += amountInCents
	return s.toEntity(stored), nil
}

func (s *userStore) DebitIfSufficient(ctx context.Context, userID uint64, amountInCents int64) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.byID[userID]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	if stored.balance < amountInCents {
		return nil, errs.ErrInsufficientBalance
	}
	stored.balance -= amountInCents
	return s.toEntity(stored), nil
}

// modelStore is an in-memory ModelRepository seeded through catalog.Seed
type modelStore struct {
	mu     sync.Mutex
	byName map[string]*entity.Model
	order  []*entity.Model
}

func newModelStore() *modelStore {
	return &modelStore{byName: make(map[string]*entity.Model)}
}

func (s *modelStore) Create(ctx context.Context, model *entity.Model) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byName[model.Name]; taken {
		return errs.ErrDuplicateModel
	}
	s.byName[model.Name] = model
	s.order = append(s.order, model)
	return nil
}

func (s *modelStore) GetByName(ctx context.Context, name string) (*entity.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	model, ok := s.byName[name]
	if !ok {
		return nil, errs.ErrModelNotFound
	}
	return model, nil
}

func (s *modelStore) List(ctx context.Context) ([]*entity.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entity.Model(nil), s.order...), nil
}

// predictionStore is an in-memory PredictionRepository
type predictionStore struct {
	mu   sync.Mutex
	rows []*entity.Prediction
}

func (s *predictionStore) CreateBatch(ctx context.Context, predictions []*entity.Prediction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range predictions {
		p.ID = uint64(len(s.rows) + 1)
		s.rows = append(s.rows, p)
	}
	return nil
}

func (s *predictionStore) ListByUser(ctx context.Context, userID uint64) ([]*entity.Prediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*entity.Prediction
	for _, p := range s.rows {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

// newTestRouter wires the full route surface over in-memory stores and a
// mocked classifier registry
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	tp := timeProvider.NewRealTimeProvider()

	users := newUserStore()
	models := newModelStore()
	predictions := &predictionStore{}

	tokens, err := security.NewJWTManager("test-secret", tp)
	require.NoError(t, err)
	hasher := security.NewBcryptHasher(4)

	mockClassifier := inferencemocks.NewMockClassifier(t)
	mockClassifier.EXPECT().Predict(mock.Anything, mock.Anything).Return(2612, nil).Maybe()
	mockRegistry := inferencemocks.NewMockRegistry(t)
	mockRegistry.EXPECT().Resolve(mock.Anything).Return(mockClassifier, nil).Maybe()

	authService := auth.NewService(users, hasher, tokens, tp, log, 30*time.Minute)
	catalogService := catalog.NewService(models, log)
	ledger := billing.NewLedger(users, log)
	workflow := prediction.NewWorkflow(catalogService, ledger, mockRegistry, predictions, tp, log, 5*time.Second)

	require.NoError(t, catalogService.Seed(context.Background()))

	router := gin.New()
	SetupRoutes(
		router,
		authService,
		handler.NewAuthHandler(authService, log),
		handler.NewPredictionHandler(catalogService, workflow, log),
		handler.NewBalanceHandler(ledger, log),
	)
	return router
}

func registerUser(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	body := `{"username":"` + username + `","password":"secret","email":"` + username + `@example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "bearer", resp.TokenType)
	return resp.AccessToken
}

func doAuthorized(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Registration issues a usable bearer token", func(t *testing.T) {
		token := registerUser(t, router, "alice")

		w := doAuthorized(router, http.MethodGet, "/users/me/", token, "")
		require.Equal(t, http.StatusOK, w.Code)

		var me dto.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
		assert.Equal(t, "alice", me.Username)
		assert.Equal(t, "alice@example.com", me.Email)
	})

	t.Run("Duplicate username answers 409", func(t *testing.T) {
		registerUser(t, router, "bob")

		body := `{"username":"bob","password":"other","email":"bob2@example.com"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Form login returns a token", func(t *testing.T) {
		registerUser(t, router, "carol")

		form := url.Values{"username": {"carol"}, "password": {"secret"}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp dto.TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("Wrong password answers 401", func(t *testing.T) {
		registerUser(t, router, "dave")

		form := url.Values{"username": {"dave"}, "password": {"wrong"}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	})
}

func TestAuthenticationGuard(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Missing Authorization header answers 401", func(t *testing.T) {
		for _, path := range []string{"/users/me/", "/get_predictions", "/get_balance"} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, path, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code, path)
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"), path)
		}
	})

	t.Run("Garbage token answers 401", func(t *testing.T) {
		w := doAuthorized(router, http.MethodGet, "/users/me/", "not-a-jwt", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetModels(t *testing.T) {
	router := newTestRouter(t)

	// Public endpoint, no token needed
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get_models", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ModelListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Models, 3)
	assert.Equal(t, "rf_model", resp.Models[0].Name)
	assert.Equal(t, "70.00", resp.Models[0].Cost)
	assert.Equal(t, "svc_model", resp.Models[1].Name)
	assert.Equal(t, "100.00", resp.Models[1].Cost)
	assert.Equal(t, "catboost_model", resp.Models[2].Name)
	assert.Equal(t, "130.00", resp.Models[2].Cost)
}

func TestPredictEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "alice")

	t.Run("Successful prediction debits and records history", func(t *testing.T) {
		w := doAuthorized(router, http.MethodPost, "/predict?model_name=rf_model", token,
			`{"data":["iPhone 14 Pro"]}`)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp dto.PredictResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2612, resp.CategoryID)
		assert.Equal(t, "Mobile Phones", resp.CategoryName)

		// 300.00 less one rf_model call at 70.00
		balanceW := doAuthorized(router, http.MethodGet, "/get_balance", token, "")
		require.Equal(t, http.StatusOK, balanceW.Code)
		var balance dto.BalanceResponse
		require.NoError(t, json.Unmarshal(balanceW.Body.Bytes(), &balance))
		assert.Equal(t, "230.00", balance.Balance)

		historyW := doAuthorized(router, http.MethodGet, "/get_predictions", token, "")
		require.Equal(t, http.StatusOK, historyW.Code)
		var history []dto.PredictionItem
		require.NoError(t, json.Unmarshal(historyW.Body.Bytes(), &history))
		require.Len(t, history, 1)
		assert.Equal(t, "iPhone 14 Pro", history[0].InputData)
		assert.Equal(t, "Mobile Phones", history[0].Result)
	})

	t.Run("Unknown model answers 404 without charging", func(t *testing.T) {
		w := doAuthorized(router, http.MethodPost, "/predict?model_name=gpt_model", token,
			`{"data":["some input"]}`)

		assert.Equal(t, http.StatusNotFound, w.Code)

		balanceW := doAuthorized(router, http.MethodGet, "/get_balance", token, "")
		var balance dto.BalanceResponse
		require.NoError(t, json.Unmarshal(balanceW.Body.Bytes(), &balance))
		assert.Equal(t, "230.00", balance.Balance)
	})

	t.Run("Missing model_name answers 400", func(t *testing.T) {
		w := doAuthorized(router, http.MethodPost, "/predict", token, `{"data":["some input"]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Empty data answers 400", func(t *testing.T) {
		w := doAuthorized(router, http.MethodPost, "/predict?model_name=rf_model", token, `{"data":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Balance below model cost answers 400 and does not charge", func(t *testing.T) {
		// Drain 230.00 to 100.00 with one catboost_model call, which the
		// second call at 130.00 can no longer afford
		w := doAuthorized(router, http.MethodPost, "/predict?model_name=catboost_model", token,
			`{"data":["some input"]}`)
		require.Equal(t, http.StatusOK, w.Code)

		// Balance is now 100.00, catboost_model costs 130.00
		w = doAuthorized(router, http.MethodPost, "/predict?model_name=catboost_model", token,
			`{"data":["some input"]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		balanceW := doAuthorized(router, http.MethodGet, "/get_balance", token, "")
		var balance dto.BalanceResponse
		require.NoError(t, json.Unmarshal(balanceW.Body.Bytes(), &balance))
		assert.Equal(t, "100.00", balance.Balance)
	})
}

func TestIncrementMoney(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "alice")

	t.Run("Valid amount credits the balance", func(t *testing.T) {
		w := doAuthorized(router, http.MethodPost, "/increment_money?amount=50.00", token, "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp dto.MoneyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "alice", resp.Username)
		assert.Equal(t, "350.00", resp.Money)
	})

	t.Run("Invalid amount answers 400", func(t *testing.T) {
		w := doAuthorized(router, http.MethodPost, "/increment_money?amount=abc", token, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Negative amount answers 400", func(t *testing.T) {
		w := doAuthorized(router, http.MethodPost, "/increment_money?amount=-10", token, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing amount answers 400", func(t *testing.T) {
		w := doAuthorized(router, http.MethodPost, "/increment_money", token, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
