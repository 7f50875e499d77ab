package serverutils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessResponse(t *testing.T) {
	res := SuccessResponse("Data fetched", map[string]int{"count": 3})

	assert.True(t, res.Success)
	assert.Equal(t, "Data fetched", res.Message)
	assert.Equal(t, 3, res.Data["count"])
}

func TestErrorResponse(t *testing.T) {
	res := ErrorResponse(404, "Session not found")

	assert.False(t, res.Success)
	assert.Equal(t, 404, res.Code)
	assert.Equal(t, "Session not found", res.Message)
}

func TestBaseResponseJSONShape(t *testing.T) {
	raw, err := json.Marshal(SuccessResponse[any]("OK", nil))
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, true, decoded["success"])
	assert.Equal(t, "OK", decoded["message"])

	// Zero code and nil data are omitted on the wire.
	_, hasCode := decoded["code"]
	assert.False(t, hasCode)
	_, hasData := decoded["data"]
	assert.False(t, hasData)
}
