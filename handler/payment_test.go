package handler

import (
	"net/url"
	"strings"
	"testing"

	"resort_booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGateway() *Gateway {
	return &Gateway{
		MerchantId: "TESTMERCHANT",
		HashSecret: "test-secret",
		BaseURL:    "https://pay.example.com/checkout",
		ReturnURL:  "https://app.example.com/api/v1/payments/return",
		IPNURL:     "https://app.example.com/api/v1/payments/ipn",
	}
}

func TestBuildPaymentUrlIsSigned(t *testing.T) {
	gateway := testGateway()

	paymentUrl, err := gateway.BuildPaymentUrl(model.PaymentRequest{
		Amount:    610.50,
		Currency:  "USD",
		OrderInfo: "Booking MRB-TEST",
		TxnRef:    "txn-123",
		IPAddr:    "10.0.0.1",
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(paymentUrl, gateway.BaseURL+"?"))

	parsed, err := url.Parse(paymentUrl)
	require.NoError(t, err)
	query := parsed.Query()

	assert.Equal(t, "61050", query.Get("pay_Amount"))
	assert.Equal(t, "txn-123", query.Get("pay_TxnRef"))
	assert.NotEmpty(t, query.Get("pay_SecureHash"))
}

func TestVerifyCallback(t *testing.T) {
	gateway := testGateway()

	signed := func(values url.Values) url.Values {
		values.Set("pay_SecureHash", gateway.generateHash(values.Encode()))
		return values
	}

	t.Run("valid success callback", func(t *testing.T) {
		query := signed(url.Values{
			"pay_ResponseCode": {"00"},
			"pay_TxnRef":       {"txn-123"},
		})
		result := gateway.VerifyCallback(query)
		assert.True(t, result.IsSuccess)
		assert.Equal(t, "txn-123", result.TxnRef)
	})

	t.Run("declined payment", func(t *testing.T) {
		query := signed(url.Values{
			"pay_ResponseCode": {"24"},
			"pay_TxnRef":       {"txn-123"},
		})
		result := gateway.VerifyCallback(query)
		assert.False(t, result.IsSuccess)
		assert.Equal(t, "txn-123", result.TxnRef)
	})

	t.Run("tampered parameters fail the hash", func(t *testing.T) {
		query := signed(url.Values{
			"pay_ResponseCode": {"24"},
			"pay_TxnRef":       {"txn-123"},
		})
		query.Set("pay_ResponseCode", "00")
		result := gateway.VerifyCallback(query)
		assert.False(t, result.IsSuccess)
		assert.Equal(t, "Invalid hash", result.Message)
	})

	t.Run("missing hash", func(t *testing.T) {
		query := url.Values{"pay_ResponseCode": {"00"}}
		result := gateway.VerifyCallback(query)
		assert.False(t, result.IsSuccess)
	})
}
