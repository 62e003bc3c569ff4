package handler

import (
	"net/http"
	"testing"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	mockUsecase "servicehub/internal/mocks/usecase"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestServiceEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockServiceUsecase) {
	t.Helper()

	serviceUC := mockUsecase.NewMockServiceUsecase(t)
	h := NewServiceHandler(ServiceHandlerParams{
		ServiceUC: serviceUC,
		Config:    newTestConfig(),
		Logger:    newTestLogger(),
	})

	e := newTestEcho()
	e.GET("/services", h.ListServices)
	e.GET("/services-all", h.ListAllServices)
	e.GET("/services/:id", h.GetService)
	e.POST("/services", h.CreateService)
	e.PUT("/services/:id", h.UpdateService)
	e.DELETE("/services-all/:id", h.DeleteService)

	return e, serviceUC
}

func TestServiceHandler_ListLimits(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantLimit int
	}{
		{name: "default page", target: "/services", wantLimit: 4},
		{name: "explicit limit", target: "/services?limit=10", wantLimit: 10},
		{name: "zero means all", target: "/services?limit=0", wantLimit: 0},
		{name: "all", target: "/services-all", wantLimit: 0},
		{name: "all capped", target: "/services-all?limit=2", wantLimit: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, serviceUC := newTestServiceEcho(t)
			serviceUC.EXPECT().ListServices(mock.Anything, tt.wantLimit).Return([]*entity.Service{}, nil)

			rec := serve(e, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `[]`, rec.Body.String())
		})
	}
}

func TestServiceHandler_ListRejectsBadLimit(t *testing.T) {
	for _, target := range []string{"/services?limit=-1", "/services-all?limit=abc"} {
		t.Run(target, func(t *testing.T) {
			e, _ := newTestServiceEcho(t)

			rec := serve(e, http.MethodGet, target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestServiceHandler_GetService(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, serviceUC := newTestServiceEcho(t)
		id := uuid.New()
		serviceUC.EXPECT().GetService(mock.Anything, id).Return(&entity.Service{ID: id, ServiceName: "Plumbing"}, nil)

		rec := serve(e, http.MethodGet, "/services/"+id.String(), "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"_id":"`+id.String()+`"`)
		assert.Contains(t, rec.Body.String(), `"serviceName":"Plumbing"`)
	})

	t.Run("not found", func(t *testing.T) {
		e, serviceUC := newTestServiceEcho(t)
		id := uuid.New()
		serviceUC.EXPECT().GetService(mock.Anything, id).Return(nil, domainerrors.ErrServiceNotFound)

		rec := serve(e, http.MethodGet, "/services/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Service not found"}`, rec.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		e, _ := newTestServiceEcho(t)

		rec := serve(e, http.MethodGet, "/services/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServiceHandler_CreateService(t *testing.T) {
	e, serviceUC := newTestServiceEcho(t)
	insertedID := uuid.New()

	serviceUC.EXPECT().
		CreateService(mock.Anything, (*entity.Identity)(nil), &usecase.ServiceInput{
			ServiceName: "Plumbing",
			UserEmail:   "p@x.com",
			Price:       entity.Price(25.5),
		}).
		Return(&entity.InsertResult{Acknowledged: true, InsertedID: insertedID}, nil)

	rec := serve(e, http.MethodPost, "/services", `{"serviceName":"Plumbing","userEmail":"p@x.com","price":"25.5"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"insertedId":"`+insertedID.String()+`"}`, rec.Body.String())
}

func TestServiceHandler_CreateService_BadBody(t *testing.T) {
	bodies := []string{
		`{"price":{}}`,
		`{"price":"NaN"}`,
		`{"price":"Inf"}`,
		`{"price":"-infinity"}`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			e, _ := newTestServiceEcho(t)

			rec := serve(e, http.MethodPost, "/services", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"message":"Invalid request body"}`, rec.Body.String())
		})
	}
}

func TestServiceHandler_UpdateService(t *testing.T) {
	e, serviceUC := newTestServiceEcho(t)
	id := uuid.New()

	serviceUC.EXPECT().
		UpdateService(mock.Anything, (*entity.Identity)(nil), id, mock.AnythingOfType("*usecase.ServiceInput")).
		Return(&entity.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

	rec := serve(e, http.MethodPut, "/services/"+id.String(), `{"serviceName":"Plumbing"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1,"upsertedId":null,"upsertedCount":0}`, rec.Body.String())
}

func TestServiceHandler_DeleteService(t *testing.T) {
	e, serviceUC := newTestServiceEcho(t)
	id := uuid.New()

	serviceUC.EXPECT().
		DeleteService(mock.Anything, (*entity.Identity)(nil), id).
		Return(&entity.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)

	rec := serve(e, http.MethodDelete, "/services-all/"+id.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, rec.Body.String())
}

func TestServiceHandler_ForbiddenFromUsecase(t *testing.T) {
	e, serviceUC := newTestServiceEcho(t)
	id := uuid.New()

	serviceUC.EXPECT().
		DeleteService(mock.Anything, mock.Anything, id).
		Return(nil, domainerrors.ErrForbiddenAccess)

	rec := serve(e, http.MethodDelete, "/services-all/"+id.String(), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Forbidden Access"}`, rec.Body.String())
}
