package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "crm/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestPathID(t *testing.T) {
	tests := []struct {
		value   string
		want    int64
		wantErr bool
	}{
		{value: "42", want: 42},
		{value: "9223372036854775807", want: 9223372036854775807},
		{value: "0", wantErr: true},
		{value: "-1", wantErr: true},
		{value: "1.5", wantErr: true},
		{value: "", wantErr: true},
		{value: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c := newContext("")
			c.SetParamNames("id")
			c.SetParamValues(tt.value)

			got, err := pathID(c, "id")

			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidID)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBindBody(t *testing.T) {
	req, err := bindBody[AddressRequest](newContext(`{"addressLine1":"1 High Street","isMain":true}`))
	require.NoError(t, err)
	assert.Equal(t, "1 High Street", req.AddressLine1)
	assert.True(t, req.IsMain)

	for _, body := range []string{"", "null", "[1,2]", `{"isMain":"yes"}`} {
		_, err := bindBody[AddressRequest](newContext(body))
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput, "body %q", body)
	}
}

func TestCreateCustomerRequest_ToInput(t *testing.T) {
	active := false
	req := &CreateCustomerRequest{
		Title:     "Ms",
		IsActive:  &active,
		Addresses: []*AddressRequest{{AddressLine1: "1 High Street", IsMain: true}, {AddressLine1: "2 High Street"}},
	}

	input := req.toInput()

	require.Len(t, input.Addresses, 2)
	assert.True(t, input.Addresses[0].IsMain)
	assert.False(t, input.Addresses[1].IsMain)
	assert.Same(t, &active, input.IsActive)
}
