package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bookmark_backend/internal/api"
	authentity "bookmark_backend/internal/feature/auth/domain/entity"
	"bookmark_backend/internal/feature/categories/domain/entity"
	"bookmark_backend/internal/feature/categories/usecase"
	"bookmark_backend/internal/platform/http/response"
	jwtmw "bookmark_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	response.RegisterJSONFieldNames()
	os.Exit(m.Run())
}

type mockCategoryUsecase struct {
	ListFunc   func(userID uint) ([]entity.Category, error)
	GetFunc    func(userID, id uint) (*entity.Category, error)
	CreateFunc func(userID uint, in usecase.CreateInput) (*entity.Category, error)
	UpdateFunc func(userID, id uint, in usecase.UpdateInput) (*entity.Category, error)
	DeleteFunc func(userID, id uint) error
}

func (m *mockCategoryUsecase) List(_ context.Context, userID uint) ([]entity.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(userID)
	}
	return []entity.Category{}, nil
}

func (m *mockCategoryUsecase) Get(_ context.Context, userID, id uint) (*entity.Category, error) {
	if m.GetFunc != nil {
		return m.GetFunc(userID, id)
	}
	return nil, usecase.ErrCategoryNotFound
}

func (m *mockCategoryUsecase) Create(_ context.Context, userID uint, in usecase.CreateInput) (*entity.Category, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(userID, in)
	}
	return &entity.Category{ID: 1, Name: in.Name, Color: entity.DefaultColor, UserID: userID}, nil
}

func (m *mockCategoryUsecase) Update(_ context.Context, userID, id uint, in usecase.UpdateInput) (*entity.Category, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(userID, id, in)
	}
	return nil, usecase.ErrCategoryNotFound
}

func (m *mockCategoryUsecase) Delete(_ context.Context, userID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(userID, id)
	}
	return nil
}

func newRouter(uc CategoryUsecase, userID uint) *gin.Engine {
	h := NewCategoryHandler(uc, zap.NewNop())
	r := gin.New()
	g := r.Group("/categories", func(c *gin.Context) {
		c.Set(jwtmw.ContextIdentity, jwtmw.Identity{UserID: userID, Role: authentity.RoleUser})
		c.Next()
	})
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

func serve(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCategoryHandler_List(t *testing.T) {
	uc := &mockCategoryUsecase{
		ListFunc: func(userID uint) ([]entity.Category, error) {
			return []entity.Category{{ID: 1, Name: "Work", Color: "#fff", UserID: userID, LinkCount: 2}}, nil
		},
	}

	w := serve(t, newRouter(uc, 3), http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Work", body[0]["name"])
	assert.Equal(t, float64(3), body[0]["userId"])
	assert.Equal(t, map[string]any{"links": float64(2)}, body[0]["_count"])
}

func TestCategoryHandler_EmptyListIsArray(t *testing.T) {
	w := serve(t, newRouter(&mockCategoryUsecase{}, 3), http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCategoryHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{"own category", "/categories/1", http.StatusOK},
		{"missing or foreign", "/categories/2", http.StatusNotFound},
		{"malformed id", "/categories/abc", http.StatusBadRequest},
		{"zero id", "/categories/0", http.StatusBadRequest},
	}

	uc := &mockCategoryUsecase{
		GetFunc: func(userID, id uint) (*entity.Category, error) {
			if id == 1 {
				return &entity.Category{ID: 1, Name: "Work", UserID: userID}, nil
			}
			return nil, usecase.ErrCategoryNotFound
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, newRouter(uc, 3), http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCategoryHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           gin.H
		createFunc     func(userID uint, in usecase.CreateInput) (*entity.Category, error)
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "created with default color",
			body:           gin.H{"name": "Work"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           gin.H{"color": "#fff"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "validation failed",
		},
		{
			name: "duplicate name",
			body: gin.H{"name": "Work"},
			createFunc: func(uint, usecase.CreateInput) (*entity.Category, error) {
				return nil, usecase.ErrCategoryExists
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "category already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, newRouter(&mockCategoryUsecase{CreateFunc: tt.createFunc}, 3), http.MethodPost, "/categories", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var body api.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedError, body.Error)
				return
			}
			assert.Contains(t, w.Body.String(), `"color":"#3B82F6"`)
		})
	}
}

func TestCategoryHandler_Update(t *testing.T) {
	var got usecase.UpdateInput
	uc := &mockCategoryUsecase{
		UpdateFunc: func(userID, id uint, in usecase.UpdateInput) (*entity.Category, error) {
			got = in
			return &entity.Category{ID: id, Name: "Work", Color: *in.Color, UserID: userID}, nil
		},
	}

	w := serve(t, newRouter(uc, 3), http.MethodPut, "/categories/1", gin.H{"color": "#000"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, got.Name)
	require.NotNil(t, got.Color)
	assert.Equal(t, "#000", *got.Color)
}

func TestCategoryHandler_Delete(t *testing.T) {
	uc := &mockCategoryUsecase{
		DeleteFunc: func(userID, id uint) error {
			if id != 1 {
				return usecase.ErrCategoryNotFound
			}
			return nil
		},
	}

	w := serve(t, newRouter(uc, 3), http.MethodDelete, "/categories/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = serve(t, newRouter(uc, 3), http.MethodDelete, "/categories/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
