package daraja_test

import (
	"encoding/json"
	"testing"

	"github.com/Cheruiyot/mpesa-services/stkgateway/pkg/daraja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackEnvelope_Decode(t *testing.T) {
	t.Run("numeric result code", func(t *testing.T) {
		payload := `{
			"Body": {
				"stkCallback": {
					"MerchantRequestID": "M1",
					"CheckoutRequestID": "C1",
					"ResultCode": 0,
					"ResultDesc": "The service request is processed successfully.",
					"CallbackMetadata": {
						"Item": [
							{"Name": "Amount", "Value": 10},
							{"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"}
						]
					}
				}
			}
		}`

		var envelope daraja.CallbackEnvelope
		require.NoError(t, json.Unmarshal([]byte(payload), &envelope))

		stk := envelope.Body.StkCallback
		assert.Equal(t, "C1", stk.CheckoutRequestID)
		assert.Equal(t, "0", stk.ResultCode.String())
		assert.Equal(t, "The service request is processed successfully.", stk.ResultDesc)
		require.NotNil(t, stk.CallbackMetadata)
		assert.Len(t, stk.CallbackMetadata.Item, 2)
	})

	t.Run("string result code", func(t *testing.T) {
		payload := `{"Body": {"stkCallback": {"CheckoutRequestID": "C1", "ResultCode": "1032", "ResultDesc": "Request cancelled by user"}}}`

		var envelope daraja.CallbackEnvelope
		require.NoError(t, json.Unmarshal([]byte(payload), &envelope))

		assert.Equal(t, "1032", envelope.Body.StkCallback.ResultCode.String())
	})

	t.Run("missing nested structure decodes to zero values", func(t *testing.T) {
		var envelope daraja.CallbackEnvelope
		require.NoError(t, json.Unmarshal([]byte(`{}`), &envelope))

		stk := envelope.Body.StkCallback
		assert.Empty(t, stk.CheckoutRequestID)
		assert.Empty(t, stk.ResultCode.String())
		assert.Nil(t, stk.CallbackMetadata)
	})

	t.Run("null result code", func(t *testing.T) {
		payload := `{"Body": {"stkCallback": {"CheckoutRequestID": "C1", "ResultCode": null}}}`

		var envelope daraja.CallbackEnvelope
		require.NoError(t, json.Unmarshal([]byte(payload), &envelope))

		assert.Empty(t, envelope.Body.StkCallback.ResultCode.String())
	})
}
