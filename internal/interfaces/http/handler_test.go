package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/credit-service/internal/application/credit"
	"github.com/jhoicas/credit-service/internal/application/creditcard"
	"github.com/jhoicas/credit-service/internal/application/dto"
	"github.com/jhoicas/credit-service/internal/application/eligibility"
	mock_ports "github.com/jhoicas/credit-service/internal/application/ports/mocks"
	"github.com/jhoicas/credit-service/internal/domain/entity"
	mock_repository "github.com/jhoicas/credit-service/internal/domain/repository/mocks"
	apphttp "github.com/jhoicas/credit-service/internal/interfaces/http"
	"github.com/jhoicas/credit-service/pkg/logger"
)

// buildTestApp monta el router completo sobre repositorios y puertos mockeados.
func buildTestApp(t *testing.T) (*fiber.App, *mock_repository.MockCreditRepository, *mock_repository.MockCreditCardRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	creditRepo := mock_repository.NewMockCreditRepository(ctrl)
	cardRepo := mock_repository.NewMockCreditCardRepository(ctrl)
	resolver := mock_ports.NewMockCustomerResolver(ctrl)
	accounts := mock_ports.NewMockAccountClient(ctrl)
	customerCl := mock_ports.NewMockCustomerClient(ctrl)
	creditEvents := mock_ports.NewMockCreditEventPublisher(ctrl)
	cardEvents := mock_ports.NewMockCreditCardEventPublisher(ctrl)
	eligibilitySvc := eligibility.NewService(creditRepo, cardRepo, logger.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CreditUC:      credit.NewUseCase(creditRepo, resolver, eligibilitySvc, creditEvents, logger.Nop()),
		CreditCardUC:  creditcard.NewUseCase(cardRepo, resolver, accounts, customerCl, cardEvents, logger.Nop()),
		EligibilitySv: eligibilitySvc,
	})
	return app, creditRepo, cardRepo
}

func decodeResponse(t *testing.T, resp *http.Response) dto.BaseResponse {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out dto.BaseResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestCreditHandler_GetByID(t *testing.T) {
	t.Run("existente responde la envoltura estándar", func(t *testing.T) {
		app, creditRepo, _ := buildTestApp(t)
		creditRepo.EXPECT().GetByID(gomock.Any(), "cr-1").Return(&entity.Credit{ID: "cr-1"}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/credits/cr-1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeResponse(t, resp)
		assert.Equal(t, http.StatusOK, body.Status)
		assert.NotNil(t, body.Data)
	})

	t.Run("inexistente responde 404", func(t *testing.T) {
		app, creditRepo, _ := buildTestApp(t)
		creditRepo.EXPECT().GetByID(gomock.Any(), "cr-x").Return(nil, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/credits/cr-x", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCreditHandler_GetAll_Empty(t *testing.T) {
	app, creditRepo, _ := buildTestApp(t)
	creditRepo.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/credits/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "sin créditos registrados se reporta 404")
}

func TestEligibilityHandler(t *testing.T) {
	t.Run("cliente con deuda vencida", func(t *testing.T) {
		app, creditRepo, cardRepo := buildTestApp(t)
		creditRepo.EXPECT().GetByCustomerID(gomock.Any(), "c-1").Return([]*entity.Credit{{
			ID:            "cr-1",
			CreditStatus:  entity.CreditStatusActive,
			PaymentStatus: entity.PaymentStatusOverdue,
		}}, nil)
		cardRepo.EXPECT().GetByCustomerID(gomock.Any(), "c-1").Return(nil, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/customer-eligibility/has-overdue-debt/c-1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeResponse(t, resp)
		assert.Equal(t, true, body.Data)
	})

	t.Run("fallo interno asume deuda (respuesta pesimista)", func(t *testing.T) {
		app, creditRepo, cardRepo := buildTestApp(t)
		creditRepo.EXPECT().GetByCustomerID(gomock.Any(), "c-1").Return(nil, assert.AnError)
		cardRepo.EXPECT().GetByCustomerID(gomock.Any(), "c-1").Return(nil, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/customer-eligibility/has-overdue-debt/c-1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body := decodeResponse(t, resp)
		assert.Equal(t, true, body.Data, "ante la duda se asume que hay deuda")
	})

	t.Run("fallo interno asume no elegible", func(t *testing.T) {
		app, creditRepo, cardRepo := buildTestApp(t)
		creditRepo.EXPECT().GetByCustomerID(gomock.Any(), "c-1").Return(nil, assert.AnError)
		cardRepo.EXPECT().GetByCustomerID(gomock.Any(), "c-1").Return(nil, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/customer-eligibility/is-eligible/c-1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body := decodeResponse(t, resp)
		assert.Equal(t, false, body.Data, "ante la duda el cliente no es elegible")
	})
}
