package dhcp_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/pfsense-client/internal/domains/dhcp"
	"github.com/Fivegen-LLC/pfsense-client/internal/domains/dhcp/dhcp_mocks"
	"github.com/Fivegen-LLC/pfsense-client/internal/entities"
	"github.com/Fivegen-LLC/pfsense-client/internal/errs"
)

var (
	errTestError = errors.New("test error")
)

const (
	testLeasePath = "/api/v1/services/dhcpd/lease"
)

type serviceFields struct {
	apiClient *dhcp_mocks.MockIAPIClient
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		apiClient: dhcp_mocks.NewMockIAPIClient(t),
	}
}

func TestService_ListLeases(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name           string
		prepare        func(f *serviceFields)
		expectedLeases entities.Leases
		expectedErr    error
	}{
		{
			name: "leases in api order",
			prepare: func(f *serviceFields) {
				f.apiClient.EXPECT().
					Get(mock.Anything, testLeasePath).
					Return(entities.Envelope{
						Status: "ok",
						Code:   200,
						Data:   json.RawMessage(`[{"ip":"1.2.3.5","online":false},{"ip":"1.2.3.4","online":true}]`),
					}, nil).
					Times(1)
			},
			expectedLeases: entities.Leases{
				{"ip": "1.2.3.5", "online": false},
				{"ip": "1.2.3.4", "online": true},
			},
		},
		{
			name: "error envelope without data",
			prepare: func(f *serviceFields) {
				f.apiClient.EXPECT().
					Get(mock.Anything, testLeasePath).
					Return(entities.Envelope{
						Status:  "forbidden",
						Code:    403,
						Message: "Authentication failed",
						Data:    json.RawMessage(`null`),
					}, nil).
					Times(1)
			},
			expectedLeases: entities.Leases{},
		},
		{
			name: "data is not a list",
			prepare: func(f *serviceFields) {
				f.apiClient.EXPECT().
					Get(mock.Anything, testLeasePath).
					Return(entities.Envelope{
						Code: 200,
						Data: json.RawMessage(`{"ip":"1.2.3.4"}`),
					}, nil).
					Times(1)
			},
			expectedErr: errs.ErrInvalidEnvelope,
		},
		{
			name: "api client error",
			prepare: func(f *serviceFields) {
				f.apiClient.EXPECT().
					Get(mock.Anything, testLeasePath).
					Return(entities.Envelope{}, errTestError).
					Times(1)
			},
			expectedErr: errTestError,
		},
	}

	for _, testCase := range testTable {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			service := dhcp.NewService(f.apiClient)

			leases, err := service.ListLeases(context.Background())
			if testCase.expectedErr != nil {
				require.ErrorIs(t, err, testCase.expectedErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, testCase.expectedLeases, leases)
		})
	}
}

func TestService_FetchLeaseEnvelope(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.apiClient.EXPECT().
		Get(mock.Anything, testLeasePath).
		Return(entities.Envelope{Status: "ok", Code: 200, Message: "Success"}, nil).
		Times(1)

	envelope, err := dhcp.NewService(f.apiClient).FetchLeaseEnvelope(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Success", envelope.Message)
}
