package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crm/config"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/service"
	"crm/internal/errors"
	mockUsecase "crm/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestHandler(t *testing.T, workerCfg *config.WorkerConfig) (*PushHandler, *mockUsecase.MockCustomerUsecase, *bytes.Buffer) {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	customerUC := mockUsecase.NewMockCustomerUsecase(t)

	h := NewPushHandler(PushHandlerParams{
		Config:     &config.Config{Worker: workerCfg},
		Logger:     logger,
		CustomerUC: customerUC,
	})

	return h, customerUC, logs
}

func pushBody(t *testing.T, event *service.DomainEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/test/subscriptions/crm-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func healthyCustomer() *entity.Customer {
	return &entity.Customer{
		ID:           7,
		EmailAddress: "jane@example.com",
		Addresses: []*entity.Address{
			{ID: 1, CustomerID: 7, IsMain: true},
			{ID: 2, CustomerID: 7},
		},
	}
}

func TestHandlePush_AuditsCustomer(t *testing.T) {
	h, customerUC, logs := newTestHandler(t, nil)

	customerUC.EXPECT().GetCustomer(mock.Anything, int64(7)).Return(healthyCustomer(), nil)

	event := &service.DomainEvent{EventID: "evt-1", Type: service.EventAddressCreated, CustomerID: 7, AddressID: 2}
	rec := servePush(h, pushBody(t, event, nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, logs.String(), "Customer invariant violated")
}

func TestHandlePush_ReportsBrokenInvariants(t *testing.T) {
	h, customerUC, logs := newTestHandler(t, nil)

	customer := healthyCustomer()
	customer.EmailAddress = "Jane@Example.com"
	customer.Addresses[1].IsMain = true
	customerUC.EXPECT().GetCustomer(mock.Anything, int64(7)).Return(customer, nil)

	event := &service.DomainEvent{EventID: "evt-2", Type: service.EventAddressUpdated, CustomerID: 7, AddressID: 2}
	rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "req-abc"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	output := logs.String()
	assert.Contains(t, output, "Customer invariant violated")
	assert.Contains(t, output, "2 main addresses")
	assert.Contains(t, output, "email address is not normalized")
	assert.Contains(t, output, `"request_id":"req-abc"`)
}

func TestHandlePush_CustomerGone(t *testing.T) {
	tests := []struct {
		name      string
		eventType service.EventType
	}{
		{name: "after delete", eventType: service.EventCustomerDeleted},
		{name: "after update", eventType: service.EventCustomerUpdated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, customerUC, _ := newTestHandler(t, nil)

			customerUC.EXPECT().GetCustomer(mock.Anything, int64(7)).
				Return(nil, domainerrors.ErrCustomerNotFound.WithDetails(map[string]any{"id": 7}))

			event := &service.DomainEvent{EventID: "evt-3", Type: tt.eventType, CustomerID: 7}
			rec := servePush(h, pushBody(t, event, nil), nil)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestHandlePush_DeletedCustomerStillPresent(t *testing.T) {
	h, customerUC, logs := newTestHandler(t, nil)

	customerUC.EXPECT().GetCustomer(mock.Anything, int64(7)).Return(healthyCustomer(), nil)

	event := &service.DomainEvent{EventID: "evt-4", Type: service.EventCustomerDeleted, CustomerID: 7}
	rec := servePush(h, pushBody(t, event, nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logs.String(), "Deleted customer is still readable")
}

func TestHandlePush_StoreFailureIsRetried(t *testing.T) {
	h, customerUC, _ := newTestHandler(t, nil)

	customerUC.EXPECT().GetCustomer(mock.Anything, int64(7)).Return(nil, errors.New("connection refused"))

	event := &service.DomainEvent{EventID: "evt-5", Type: service.EventCustomerUpdated, CustomerID: 7}
	rec := servePush(h, pushBody(t, event, nil), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "data not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`},
		{name: "event without customer", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(`{"type":"customer.created"}`)) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newTestHandler(t, nil)

			rec := servePush(h, tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_VerifiesToken(t *testing.T) {
	event := &service.DomainEvent{EventID: "evt-6", Type: service.EventCustomerCreated, CustomerID: 7}

	tests := []struct {
		name       string
		header     string
		issuer     string
		validErr   error
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer abc", validErr: errors.New("bad signature"), wantStatus: http.StatusUnauthorized},
		{name: "wrong issuer", header: "Bearer abc", issuer: "https://evil.example.com", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer abc", issuer: "https://accounts.google.com", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, customerUC, _ := newTestHandler(t, &config.WorkerConfig{VerifyPushAuth: true, PushAudience: "https://crm.example.com/push"})

			var gotAudience string
			h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				gotAudience = audience
				if tt.validErr != nil {
					return nil, tt.validErr
				}

				return &idtoken.Payload{Issuer: tt.issuer, Claims: map[string]any{"email_verified": true}}, nil
			}

			if tt.wantStatus == http.StatusOK {
				customerUC.EXPECT().GetCustomer(mock.Anything, int64(7)).Return(healthyCustomer(), nil)
			}

			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}
			rec := servePush(h, pushBody(t, event, nil), header)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.issuer != "" {
				assert.Equal(t, "https://crm.example.com/push", gotAudience)
			}
		})
	}
}

func TestAuditCustomer_ForeignAddress(t *testing.T) {
	customer := healthyCustomer()
	customer.Addresses[1].CustomerID = 8

	findings := auditCustomer(customer)

	assert.Equal(t, []string{"address 2 belongs to customer 8"}, findings)
}
