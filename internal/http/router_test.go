package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authRepo "github.com/srkarthi1982/language-learning-buddy/internal/data/repos/auth"
	learningRepo "github.com/srkarthi1982/language-learning-buddy/internal/data/repos/learning"
	"github.com/srkarthi1982/language-learning-buddy/internal/data/repos/testutil"
	userRepo "github.com/srkarthi1982/language-learning-buddy/internal/data/repos/user"
	internalHTTP "github.com/srkarthi1982/language-learning-buddy/internal/http"
	httpH "github.com/srkarthi1982/language-learning-buddy/internal/http/handlers"
	httpMW "github.com/srkarthi1982/language-learning-buddy/internal/http/middleware"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/ids"
	"github.com/srkarthi1982/language-learning-buddy/internal/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	log := testutil.Logger(t)
	idSource := ids.Random()

	users := userRepo.NewUserRepo(db, log)
	tokens := authRepo.NewUserTokenRepo(db, log)
	profiles := learningRepo.NewLanguageProfileRepo(db, log)
	items := learningRepo.NewVocabularyItemRepo(db, log)
	sessions := learningRepo.NewPracticeSessionRepo(db, log)

	authService := services.NewAuthService(db, log, idSource, users, tokens, "test-secret", time.Hour, 24*time.Hour)
	profileService := services.NewLanguageProfileService(db, log, idSource, profiles)
	vocabService := services.NewVocabularyService(db, log, idSource, items, profiles)
	sessionService := services.NewPracticeSessionService(db, log, idSource, sessions, profiles)

	return internalHTTP.NewRouter(internalHTTP.RouterConfig{
		Log:            log,
		AuthMiddleware: httpMW.NewAuthMiddleware(log, authService),
		HealthHandler:  httpH.NewHealthHandler(),
		AuthHandler:    httpH.NewAuthHandler(authService),
		ProfileHandler: httpH.NewLanguageProfileHandler(profileService),
		VocabHandler:   httpH.NewVocabularyHandler(vocabService),
		SessionHandler: httpH.NewPracticeSessionHandler(sessionService),
	})
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	}
	return w.Code, env
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	code, _ := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"email": email, "password": "correct-horse", "name": "Test",
	})
	require.Equal(t, http.StatusOK, code)

	code, env := doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email": email, "password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, code)
	var pair struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &pair))
	require.NotEmpty(t, pair.AccessToken)
	return pair.AccessToken
}

func TestHealthcheck(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	code, env := doJSON(t, r, http.MethodGet, "/api/profiles", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	assert.False(t, env.Success)

	code, env = doJSON(t, r, http.MethodGet, "/api/profiles", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestCreateProfileValidationEnvelope(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "a@example.com")

	code, env := doJSON(t, r, http.MethodPost, "/api/profiles", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestVocabularyOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "b@example.com")

	code, env := doJSON(t, r, http.MethodPost, "/api/profiles", token, gin.H{"target_language": "es"})
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success)
	var created struct {
		Profile struct {
			ID       string `json:"id"`
			IsActive bool   `json:"is_active"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.True(t, created.Profile.IsActive)

	code, env = doJSON(t, r, http.MethodPut, "/api/vocabulary", token, gin.H{
		"language_profile_id": created.Profile.ID,
		"term":                "hola",
	})
	require.Equal(t, http.StatusOK, code)
	var upserted struct {
		Item struct {
			ID   string `json:"id"`
			Term string `json:"term"`
		} `json:"item"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &upserted))
	assert.Equal(t, "hola", upserted.Item.Term)

	listPath := fmt.Sprintf("/api/vocabulary?language_profile_id=%s&page=1&page_size=20", created.Profile.ID)
	code, env = doJSON(t, r, http.MethodGet, listPath, token, nil)
	require.Equal(t, http.StatusOK, code)
	var page struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, upserted.Item.ID, page.Items[0].ID)
	assert.Equal(t, 1, page.Total)

	// Delete returns the bare success envelope; a second delete is 404.
	code, env = doJSON(t, r, http.MethodDelete, "/api/vocabulary/"+upserted.Item.ID, token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.Nil(t, env.Data)

	code, env = doJSON(t, r, http.MethodDelete, "/api/vocabulary/"+upserted.Item.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestPracticeSessionOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "c@example.com")

	code, env := doJSON(t, r, http.MethodPost, "/api/profiles", token, gin.H{"target_language": "es"})
	require.Equal(t, http.StatusOK, code)
	var created struct {
		Profile struct {
			ID string `json:"id"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	code, env = doJSON(t, r, http.MethodPost, "/api/practice-sessions", token, gin.H{
		"language_profile_id": created.Profile.ID,
		"mode":                "quiz",
	})
	require.Equal(t, http.StatusOK, code)
	var started struct {
		Session struct {
			ID      string     `json:"id"`
			EndedAt *time.Time `json:"ended_at"`
		} `json:"session"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &started))
	assert.Nil(t, started.Session.EndedAt)

	code, env = doJSON(t, r, http.MethodPost, "/api/practice-sessions/"+started.Session.ID+"/complete", token, gin.H{
		"correct_answers": 8,
		"total_questions": 10,
	})
	require.Equal(t, http.StatusOK, code)
	var completed struct {
		Session struct {
			EndedAt        *time.Time `json:"ended_at"`
			CorrectAnswers *int       `json:"correct_answers"`
			TotalQuestions *int       `json:"total_questions"`
		} `json:"session"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &completed))
	require.NotNil(t, completed.Session.EndedAt)
	require.NotNil(t, completed.Session.CorrectAnswers)
	assert.Equal(t, 8, *completed.Session.CorrectAnswers)
	assert.Equal(t, 10, *completed.Session.TotalQuestions)
}

func TestCrossUserIsolationOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	aliceToken := registerAndLogin(t, r, "alice@example.com")
	bobToken := registerAndLogin(t, r, "bob@example.com")

	code, env := doJSON(t, r, http.MethodPost, "/api/profiles", aliceToken, gin.H{"target_language": "es"})
	require.Equal(t, http.StatusOK, code)
	var created struct {
		Profile struct {
			ID string `json:"id"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	code, env = doJSON(t, r, http.MethodPatch, "/api/profiles/"+created.Profile.ID, bobToken, gin.H{"goals": "hijack"})
	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
