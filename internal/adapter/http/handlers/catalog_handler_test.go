package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"lab_management/internal/adapter/http/handlers/mocks"
	"lab_management/internal/domain/entities"
	"lab_management/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func catalogRouter(h *CatalogHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/categories", h.CreateCategory)
	r.GET("/v1/categories", h.ListCategories)
	r.POST("/v1/test-types", h.CreateTestType)
	r.GET("/v1/test-types", h.ListTestTypes)
	r.GET("/v1/test-types/:id", h.GetTestType)
	r.PUT("/v1/test-types/:id", h.UpdateTestType)
	r.DELETE("/v1/test-types/:id", h.DeleteTestType)
	return r
}

func TestCatalogHandler_CreateTestType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := catalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().CreateTestType(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, tt entities.TestType) (entities.TestType, error) {
			if tt.ID != "" || tt.Name != "Complete Blood Count" || len(tt.Parameters) != 2 {
				t.Fatalf("unexpected test type: %+v", tt)
			}
			tt.ID = "cbc"
			return tt, nil
		})

		body := `{"name":"Complete Blood Count","price":25,"parameters":[
			{"name":"Hemoglobin","normal_range":"13.0 - 17.0","unit":"g/dL"},
			{"name":"WBC","normal_range":"4.5 - 11.0"}]}`
		w := doJSON(r, http.MethodPost, "/v1/test-types", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("parameter without range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := catalogRouter(NewCatalogHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/test-types", `{"name":"CBC","parameters":[{"name":"Hemoglobin"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate parameter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := catalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().CreateTestType(gomock.Any(), gomock.Any()).Return(entities.TestType{}, usecase.ErrDuplicateParameter)

		w := doJSON(r, http.MethodPost, "/v1/test-types", `{"name":"CBC","parameters":[
			{"name":"Hemoglobin","normal_range":"1"},{"name":"Hemoglobin","normal_range":"1"}]}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "VALIDATION_FAILED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_UpdateTestType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	r := catalogRouter(NewCatalogHandler(uc))

	uc.EXPECT().UpdateTestType(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, tt entities.TestType) (entities.TestType, error) {
		if tt.ID != "cbc" || tt.Parameters[0].ID != "hb" || tt.Parameters[0].TestTypeID != "cbc" {
			t.Fatalf("unexpected test type: %+v", tt)
		}
		return tt, nil
	})

	w := doJSON(r, http.MethodPut, "/v1/test-types/cbc", `{"name":"CBC","price":30,"parameters":[{"id":"hb","name":"Hemoglobin","normal_range":"13 - 17"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestCatalogHandler_DeleteTestType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "deleted", status: http.StatusNoContent},
		{name: "in use", err: usecase.ErrTestTypeInUse, status: http.StatusConflict},
		{name: "not found", err: usecase.ErrTestTypeNotFound, status: http.StatusNotFound},
		{name: "store failure", err: errors.New("connection reset"), status: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockICatalogUseCase(ctrl)
			r := catalogRouter(NewCatalogHandler(uc))

			uc.EXPECT().DeleteTestType(gomock.Any(), "cbc").Return(tc.err)

			w := doJSON(r, http.MethodDelete, "/v1/test-types/cbc", "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestCatalogHandler_Lists(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	r := catalogRouter(NewCatalogHandler(uc))

	uc.EXPECT().ListTestTypes(gomock.Any(), "haem").Return([]entities.TestType{{ID: "cbc", CategoryID: "haem"}}, nil)
	uc.EXPECT().ListCategories(gomock.Any()).Return([]entities.TestCategory{{ID: "haem", Name: "Haematology"}}, nil)
	uc.EXPECT().CreateCategory(gomock.Any(), entities.TestCategory{Name: "Biochemistry"}).
		Return(entities.TestCategory{ID: "bio", Name: "Biochemistry"}, nil)
	uc.EXPECT().GetTestType(gomock.Any(), "nope").Return(entities.TestType{}, usecase.ErrTestTypeNotFound)

	if w := doJSON(r, http.MethodGet, "/v1/test-types?category_id=haem", ""); w.Code != http.StatusOK {
		t.Fatalf("list test types: expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/v1/categories", ""); w.Code != http.StatusOK {
		t.Fatalf("list categories: expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/v1/categories", `{"name":" Biochemistry "}`); w.Code != http.StatusCreated {
		t.Fatalf("create category: expected 201, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/v1/test-types/nope", ""); w.Code != http.StatusNotFound {
		t.Fatalf("get test type: expected 404, got %d", w.Code)
	}
}
