package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crm/config"
	"crm/internal/delivery/api/response"
	"crm/internal/delivery/api/router"
	"crm/internal/delivery/api/router/handler"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/errors"
	mockUsecase "crm/internal/mocks/usecase"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo       *echo.Echo
	customerUC *mockUsecase.MockCustomerUsecase
	addressUC  *mockUsecase.MockAddressUsecase
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  response.MetaInfo   `json:"meta"`
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	customerUC := mockUsecase.NewMockCustomerUsecase(t)
	addressUC := mockUsecase.NewMockAddressUsecase(t)

	e := NewEcho(cfg, logger, router.RouterParams{
		CustomerHandler: handler.NewCustomerHandler(handler.CustomerHandlerParams{CustomerUC: customerUC, Logger: logger}),
		AddressHandler:  handler.NewAddressHandler(handler.AddressHandlerParams{AddressUC: addressUC, Logger: logger}),
	})

	return testServer{echo: e, customerUC: customerUC, addressUC: addressUC}
}

func (s testServer) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	s.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func sampleCustomer() *entity.Customer {
	return &entity.Customer{
		ID:           3,
		Title:        "Mr",
		Forename:     "John",
		Surname:      "Smith",
		EmailAddress: "john@x.com",
		MobileNo:     "07700900123",
		IsActive:     true,
		Addresses: []*entity.Address{
			{ID: 5, CustomerID: 3, AddressLine1: "1 High Street", Town: "London", Postcode: "E1 6AN", Country: "UK", IsMain: true},
		},
	}
}

const validCustomerBody = `{"title":"Mr","forename":"John","surname":"Smith","emailAddress":"John@X.com","mobileNo":"07700900123",
"addresses":[{"addressLine1":"1 High Street","town":"London","postcode":"E1 6AN","isMain":true}]}`

const validAddressBody = `{"addressLine1":"2 Low Road","town":"Leeds","postcode":"LS1 1AA","isMain":true}`

func TestServer_HealthCheck(t *testing.T) {
	srv := newTestServer(t)

	rec, env := srv.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, rec.Header().Get("X-Request-Id"), env.Meta.RequestID)
}

func TestServer_PropagatesClientRequestID(t *testing.T) {
	srv := newTestServer(t)
	srv.customerUC.EXPECT().ListCustomers(mock.Anything).Return([]*entity.Customer{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	req.Header.Set("X-Request-Id", "trace-123")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-123", rec.Header().Get("X-Request-Id"))
	assert.Contains(t, rec.Body.String(), `"request_id":"trace-123"`)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestServer_ListCustomers(t *testing.T) {
	srv := newTestServer(t)
	srv.customerUC.EXPECT().ListCustomers(mock.Anything).Return([]*entity.Customer{sampleCustomer()}, nil)

	rec, env := srv.do(t, http.MethodGet, "/customers", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var customers []handler.CustomerResponse
	require.NoError(t, json.Unmarshal(env.Data, &customers))
	require.Len(t, customers, 1)
	assert.Equal(t, "john@x.com", customers[0].EmailAddress)
	require.Len(t, customers[0].Addresses, 1)
	assert.True(t, customers[0].Addresses[0].IsMain)
	assert.Equal(t, int64(3), customers[0].Addresses[0].CustomerID)
}

func TestServer_ListActiveCustomersIsNotAnID(t *testing.T) {
	srv := newTestServer(t)
	srv.customerUC.EXPECT().ListActiveCustomers(mock.Anything).Return([]*entity.Customer{}, nil)

	rec, _ := srv.do(t, http.MethodGet, "/customers/active", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_GetCustomer(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		srv := newTestServer(t)
		srv.customerUC.EXPECT().GetCustomer(mock.Anything, int64(3)).Return(sampleCustomer(), nil)

		rec, env := srv.do(t, http.MethodGet, "/customers/3", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"forename":"John"`)
	})

	t.Run("not found", func(t *testing.T) {
		srv := newTestServer(t)
		srv.customerUC.EXPECT().GetCustomer(mock.Anything, int64(9)).
			Return(nil, domainerrors.ErrCustomerNotFound.WrapMessage("failed to get customer"))

		rec, env := srv.do(t, http.MethodGet, "/customers/9", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "CUSTOMER_NOT_FOUND", env.Error.Code)
	})

	for _, path := range []string{"/customers/abc", "/customers/0", "/customers/-4"} {
		t.Run("invalid id "+path, func(t *testing.T) {
			srv := newTestServer(t)

			rec, env := srv.do(t, http.MethodGet, path, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "INVALID_ID", env.Error.Code)
		})
	}
}

func TestServer_CreateCustomer(t *testing.T) {
	srv := newTestServer(t)
	srv.customerUC.EXPECT().
		CreateCustomer(mock.Anything, mock.MatchedBy(func(in *usecase.CreateCustomerInput) bool {
			return in.EmailAddress == "John@X.com" && in.IsActive == nil &&
				len(in.Addresses) == 1 && in.Addresses[0].IsMain && in.Addresses[0].Country == ""
		})).
		Return(sampleCustomer(), nil)

	rec, env := srv.do(t, http.MethodPost, "/customers", validCustomerBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var customer handler.CustomerResponse
	require.NoError(t, json.Unmarshal(env.Data, &customer))
	assert.Equal(t, int64(3), customer.ID)
	assert.True(t, customer.IsActive)
}

func TestServer_CreateCustomer_AcceptsLandlineFormat(t *testing.T) {
	srv := newTestServer(t)
	srv.customerUC.EXPECT().
		CreateCustomer(mock.Anything, mock.MatchedBy(func(in *usecase.CreateCustomerInput) bool {
			return in.MobileNo == "(020) 7946 0958"
		})).
		Return(sampleCustomer(), nil)

	body := `{"title":"Mr","forename":"John","surname":"Smith","emailAddress":"john@x.com","mobileNo":"(020) 7946 0958"}`
	rec, _ := srv.do(t, http.MethodPost, "/customers", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestServer_CreateCustomer_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{name: "null body", body: "null", wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{name: "malformed json", body: `{"title":`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{name: "duplicate email", body: validCustomerBody, ucErr: domainerrors.ErrEmailAlreadyExists.WrapMessage("failed to create customer"), wantStatus: http.StatusConflict, wantCode: "EMAIL_ALREADY_EXISTS"},
		{name: "store failure is hidden", body: validCustomerBody, ucErr: errors.New("connection refused"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
		{name: "body too large", body: `{"title":"` + strings.Repeat("x", 2048) + `"}`, wantStatus: http.StatusRequestEntityTooLarge, wantCode: "PAYLOAD_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			if tt.ucErr != nil {
				srv.customerUC.EXPECT().CreateCustomer(mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec, env := srv.do(t, http.MethodPost, "/customers", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantStatus >= http.StatusInternalServerError {
				assert.Nil(t, env.Error.Details)
				assert.NotContains(t, rec.Body.String(), "connection refused")
			}
		})
	}
}

func TestServer_CreateCustomer_ReportsEveryViolation(t *testing.T) {
	srv := newTestServer(t)

	body := `{"title":"","forename":"John","surname":"Smith","emailAddress":"not-an-email","mobileNo":"abc",
"addresses":[{"addressLine1":"","town":"London","postcode":"E1"}]}`
	rec, env := srv.do(t, http.MethodPost, "/customers", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	raw, err := json.Marshal(env.Error.Details)
	require.NoError(t, err)
	var violations []struct {
		Field  string `json:"field"`
		Reason string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(raw, &violations))

	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"title", "emailAddress", "mobileNo", "addresses[0].addressLine1"}, fields)
}

func TestServer_UpdateCustomer(t *testing.T) {
	body := `{"id":3,"title":"Dr","forename":"John","surname":"Smith","emailAddress":"john@x.com","mobileNo":"07700900123"}`

	t.Run("no content", func(t *testing.T) {
		srv := newTestServer(t)
		srv.customerUC.EXPECT().
			UpdateCustomer(mock.Anything, int64(3), mock.MatchedBy(func(in *usecase.UpdateCustomerInput) bool {
				return in.ID == 3 && in.Title == "Dr"
			})).
			Return(nil)

		rec, _ := srv.do(t, http.MethodPut, "/customers/3", body)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("id mismatch", func(t *testing.T) {
		srv := newTestServer(t)
		srv.customerUC.EXPECT().UpdateCustomer(mock.Anything, int64(4), mock.Anything).
			Return(domainerrors.ErrIDMismatch.WithDetails(map[string]int64{"pathId": 4, "payloadId": 3}))

		rec, env := srv.do(t, http.MethodPut, "/customers/4", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "ID_MISMATCH", env.Error.Code)
		assert.NotNil(t, env.Error.Details)
	})

	t.Run("concurrent modification is fatal", func(t *testing.T) {
		srv := newTestServer(t)
		srv.customerUC.EXPECT().UpdateCustomer(mock.Anything, int64(3), mock.Anything).
			Return(errors.Wrap(domainerrors.ErrConcurrentModification.WithDetails("customer 3 at version 2"), "failed to update customer"))

		rec, env := srv.do(t, http.MethodPut, "/customers/3", body)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "CONCURRENCY_CONFLICT", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})
}

func TestServer_ChangeCustomerStatus(t *testing.T) {
	srv := newTestServer(t)
	inactive := sampleCustomer()
	inactive.IsActive = false
	srv.customerUC.EXPECT().DeactivateCustomer(mock.Anything, int64(3)).Return(inactive, nil)
	srv.customerUC.EXPECT().ActivateCustomer(mock.Anything, int64(3)).Return(sampleCustomer(), nil)

	rec, env := srv.do(t, http.MethodPut, "/customers/deactivate/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"isActive":false`)

	rec, env = srv.do(t, http.MethodPut, "/customers/activate/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"isActive":true`)
}

func TestServer_DeleteCustomer(t *testing.T) {
	srv := newTestServer(t)
	srv.customerUC.EXPECT().DeleteCustomer(mock.Anything, int64(3)).Return(nil)
	srv.customerUC.EXPECT().DeleteCustomer(mock.Anything, int64(8)).Return(domainerrors.ErrCustomerNotFound)

	rec, _ := srv.do(t, http.MethodDelete, "/customers/3", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, env := srv.do(t, http.MethodDelete, "/customers/8", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", env.Error.Code)
}

func TestServer_AddressRoutes(t *testing.T) {
	srv := newTestServer(t)
	address := sampleCustomer().Addresses[0]

	srv.addressUC.EXPECT().ListAddresses(mock.Anything, int64(3)).Return([]*entity.Address{address}, nil)
	srv.addressUC.EXPECT().GetAddress(mock.Anything, int64(3), int64(5)).Return(address, nil)
	srv.addressUC.EXPECT().
		CreateAddress(mock.Anything, int64(3), mock.MatchedBy(func(in *usecase.AddressInput) bool {
			return in.AddressLine1 == "2 Low Road" && in.IsMain
		})).
		Return(&entity.Address{ID: 6, CustomerID: 3, AddressLine1: "2 Low Road", Town: "Leeds", Postcode: "LS1 1AA", Country: "UK", IsMain: true}, nil)
	srv.addressUC.EXPECT().
		UpdateAddress(mock.Anything, int64(3), int64(6), mock.MatchedBy(func(in *usecase.UpdateAddressInput) bool {
			return in.ID == 6 && in.CustomerID == 3 && in.Town == "Leeds"
		})).
		Return(nil)
	srv.addressUC.EXPECT().DeleteAddress(mock.Anything, int64(3), int64(6)).Return(nil)

	rec, env := srv.do(t, http.MethodGet, "/customers/3/addresses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"postcode":"E1 6AN"`)

	rec, _ = srv.do(t, http.MethodGet, "/customers/3/addresses/5", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = srv.do(t, http.MethodPost, "/customers/3/addresses", validAddressBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), `"id":6`)

	updateBody := `{"id":6,"customerId":3,"addressLine1":"2 Low Road","town":"Leeds","postcode":"LS1 1AA","isMain":true}`
	rec, _ = srv.do(t, http.MethodPut, "/customers/3/addresses/6", updateBody)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = srv.do(t, http.MethodDelete, "/customers/3/addresses/6", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_AddressFailures(t *testing.T) {
	t.Run("last address", func(t *testing.T) {
		srv := newTestServer(t)
		srv.addressUC.EXPECT().DeleteAddress(mock.Anything, int64(3), int64(5)).Return(domainerrors.ErrLastAddress)

		rec, env := srv.do(t, http.MethodDelete, "/customers/3/addresses/5", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "LAST_ADDRESS", env.Error.Code)
		assert.Equal(t, "A customer must have at least one address.", env.Error.Message)
	})

	t.Run("unknown customer on list", func(t *testing.T) {
		srv := newTestServer(t)
		srv.addressUC.EXPECT().ListAddresses(mock.Anything, int64(77)).Return(nil, domainerrors.ErrCustomerNotFound)

		rec, env := srv.do(t, http.MethodGet, "/customers/77/addresses", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "CUSTOMER_NOT_FOUND", env.Error.Code)
	})

	t.Run("invalid address id", func(t *testing.T) {
		srv := newTestServer(t)

		rec, env := srv.do(t, http.MethodGet, "/customers/3/addresses/x", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_ID", env.Error.Code)
	})

	t.Run("invalid address body", func(t *testing.T) {
		srv := newTestServer(t)

		rec, env := srv.do(t, http.MethodPost, "/customers/3/addresses", `{"town":"Leeds","postcode":"12345678901"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, rec.Body.String(), `"field":"addressLine1"`)
		assert.Contains(t, rec.Body.String(), `"field":"postcode"`)
	})
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	rec, env := srv.do(t, http.MethodGet, "/orders", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ROUTE_NOT_FOUND", env.Error.Code)
}
