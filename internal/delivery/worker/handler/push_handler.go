package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/service"
	"crm/internal/errors"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator checks a push request's OIDC token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler receives customer and address events and audits the affected customer.
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	validateToken  tokenValidator
	logger         *slog.Logger
	customerUC     usecase.CustomerUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	CustomerUC usecase.CustomerUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validateToken: idtoken.Validate,
		logger:        params.Logger,
		customerUC:    params.CustomerUC,
	}
	if workerCfg := params.Config.Worker; workerCfg != nil {
		h.verifyPushAuth = workerCfg.VerifyPushAuth
		h.pushAudience = workerCfg.PushAudience
	}

	return h
}

// HandlePush acknowledges with 200 unless processing failed transiently (503) or the message is unusable (400).
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.DomainEvent
	if err := json.Unmarshal(data, &event); err != nil || event.CustomerID <= 0 {
		h.logger.Error("[Worker] Failed to parse domain event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Trace with the id of the request that caused the event.
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	ctx = deliverycontext.Bind(ctx, requestID, h.logger)
	reqLogger := deliverycontext.Logger(ctx, h.logger)

	reqLogger.Info("[Worker] Processing domain event",
		slog.String("event_id", event.EventID),
		slog.String("event_type", string(event.Type)),
		slog.Int64("customer_id", event.CustomerID),
		slog.Int64("address_id", event.AddressID),
	)

	if err := h.processEvent(ctx, reqLogger, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process domain event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.DomainEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.RequestID(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent reloads the customer the event refers to and reports any broken invariant.
// Events arrive after the fact, so a customer deleted in the meantime is not an error.
func (h *PushHandler) processEvent(ctx context.Context, logger *slog.Logger, event *service.DomainEvent) error {
	customer, err := h.customerUC.GetCustomer(ctx, event.CustomerID)
	if errors.Is(err, domainerrors.ErrCustomerNotFound) {
		if event.Type != service.EventCustomerDeleted {
			logger.Debug("[Worker] Customer no longer exists", slog.Int64("customer_id", event.CustomerID))
		}

		return nil
	}
	if err != nil {
		return newRetryableError(err)
	}

	if event.Type == service.EventCustomerDeleted {
		logger.Warn("[Worker] Deleted customer is still readable", slog.Int64("customer_id", event.CustomerID))

		return nil
	}

	if findings := auditCustomer(customer); len(findings) > 0 {
		logger.Warn("[Worker] Customer invariant violated",
			slog.Int64("customer_id", customer.ID),
			slog.Any("findings", findings),
		)
	}

	return nil
}

// auditCustomer lists the stored-state rules the customer breaks.
func auditCustomer(customer *entity.Customer) []string {
	var findings []string

	for _, address := range customer.Addresses {
		if address.CustomerID != customer.ID {
			findings = append(findings, fmt.Sprintf("address %d belongs to customer %d", address.ID, address.CustomerID))
		}
	}
	if mains := customer.MainAddresses(); len(mains) > 1 {
		findings = append(findings, fmt.Sprintf("%d main addresses", len(mains)))
	}

	if customer.EmailAddress != strings.ToLower(strings.TrimSpace(customer.EmailAddress)) {
		findings = append(findings, "email address is not normalized")
	}

	return findings
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.pushAudience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
