package routes

import (
	"lab_management/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCategories = "/categories"
	PathTestTypes  = "/test-types"
	PathPatients   = "/patients"
	PathResults    = "/results"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	categories := rg.Group(PathCategories)
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.ListCategories)
	}

	testTypes := rg.Group(PathTestTypes)
	{
		testTypes.POST("", h.CreateTestType)
		testTypes.GET("", h.ListTestTypes)
		testTypes.GET("/:id", h.GetTestType)
		testTypes.PUT("/:id", h.UpdateTestType)
		testTypes.DELETE("/:id", h.DeleteTestType)
	}
}

func addPatientRoutes(rg *gin.RouterGroup, h *handlers.PatientHandler) {
	patients := rg.Group(PathPatients)
	{
		patients.POST("", h.Register)
		patients.GET("", h.List)
		patients.GET("/:id", h.Get)
		patients.PUT("/:id", h.Update)
	}
}

func addResultRoutes(rg *gin.RouterGroup, h *handlers.TestResultHandler) {
	results := rg.Group(PathResults)
	{
		results.POST("", h.Create)
		results.POST("/preview", h.Preview)
		results.GET("", h.List)
		results.GET("/:id", h.Get)
		results.PUT("/:id/tests", h.UpdateTests)
		results.PATCH("/:id/values", h.RecordValues)
		results.PATCH("/:id/bill-lines/:line_id", h.OverrideBillAmount)
		results.PUT("/:id/patient", h.UpdateDemographics)
		// save_and_bill, start_test, print_result, cancel_test,
		// reset_to_draft, edit_result
		results.POST("/:id/actions/:action", h.ApplyAction)
	}
}
