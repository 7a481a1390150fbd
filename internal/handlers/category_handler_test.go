package handlers

import (
	"net/http"
	"testing"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

type CategoryHandlerSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockService *service_mocks.MockCategoryServiceInterface
	handler     *CategoryHandler
}

func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerSuite))
}

func (s *CategoryHandlerSuite) SetupTest() {
	s.echo = newTestEcho()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.mockService, zerolog.Nop())
}

func (s *CategoryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryHandlerSuite) TestListCategories_FilterByType() {
	s.mockService.EXPECT().ListCategories(gomock.Any(), testUserID, models.TransactionTypeIncome).
		Return([]models.Category{{ID: uuid.New(), Name: "Salary", Icon: "💰", Type: models.TransactionTypeIncome}}, nil)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/categories?type=income", nil)
	s.NoError(s.handler.ListCategories(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"name":"Salary"`)
}

func (s *CategoryHandlerSuite) TestListCategories_AllTypes() {
	s.mockService.EXPECT().ListCategories(gomock.Any(), testUserID, models.TransactionType("")).
		Return([]models.Category{}, nil)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/categories", nil)
	s.NoError(s.handler.ListCategories(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *CategoryHandlerSuite) TestCreateCategory() {
	s.mockService.EXPECT().CreateCategory(gomock.Any(), testUserID, "Salary", "💰", models.TransactionTypeIncome).
		Return(&models.Category{ID: uuid.New(), Name: "Salary", Icon: "💰", Type: models.TransactionTypeIncome}, nil)

	c, rec := newAuthedContext(s.echo, http.MethodPost, "/api/categories", `{"name":"Salary","icon":"💰","type":"income"}`)
	s.NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *CategoryHandlerSuite) TestCreateCategory_Conflict() {
	s.mockService.EXPECT().CreateCategory(gomock.Any(), testUserID, "Salary", "", models.TransactionTypeIncome).
		Return(nil, services.ErrCategoryAlreadyExists)

	c, rec := newAuthedContext(s.echo, http.MethodPost, "/api/categories", `{"name":"Salary","type":"income"}`)
	s.NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("CATEGORY_002", decodeError(rec).Error.Code)
}

func (s *CategoryHandlerSuite) TestCreateCategory_NameTooShort() {
	c, rec := newAuthedContext(s.echo, http.MethodPost, "/api/categories", `{"name":"ab","type":"income"}`)
	s.NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(decodeError(rec).Error.Details[0], "name")
}

func (s *CategoryHandlerSuite) TestDeleteCategory() {
	s.mockService.EXPECT().DeleteCategory(gomock.Any(), testUserID, "Rent", models.TransactionTypeExpense).Return(nil)

	c, rec := newAuthedContext(s.echo, http.MethodDelete, "/api/categories?name=Rent&type=expense", nil)
	s.NoError(s.handler.DeleteCategory(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Category deleted")
}

func (s *CategoryHandlerSuite) TestDeleteCategory_NotFound() {
	s.mockService.EXPECT().DeleteCategory(gomock.Any(), testUserID, "Rent", models.TransactionTypeExpense).
		Return(services.ErrCategoryNotFound)

	c, rec := newAuthedContext(s.echo, http.MethodDelete, "/api/categories?name=Rent&type=expense", nil)
	s.NoError(s.handler.DeleteCategory(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
