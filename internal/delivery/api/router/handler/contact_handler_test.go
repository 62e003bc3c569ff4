package handler

import (
	"net/http"
	"testing"

	"servicehub/internal/domain/entity"
	mockUsecase "servicehub/internal/mocks/usecase"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContactHandler_SubmitContact(t *testing.T) {
	contactUC := mockUsecase.NewMockContactUsecase(t)
	h := NewContactHandler(contactUC)

	e := newTestEcho()
	e.POST("/contact", h.SubmitContact)

	contactUC.EXPECT().
		SubmitContact(mock.Anything, &usecase.ContactInput{Name: "V", Email: "v@x.com", Message: "hi"}).
		Return(&entity.InsertResult{Acknowledged: true, InsertedID: uuid.New()}, nil)

	rec := serve(e, http.MethodPost, "/contact", `{"name":"V","email":"v@x.com","message":"hi"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"acknowledged":true`)
}

func TestRootAndHealth(t *testing.T) {
	e := newTestEcho()
	e.GET("/", Root)
	e.GET("/health", HealthCheck)

	rec := serve(e, http.MethodGet, "/", "")
	assert.Equal(t, "Server Side is Running", rec.Body.String())

	rec = serve(e, http.MethodGet, "/health", "")
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
