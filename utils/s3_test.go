package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURI(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(payload)

	data, contentType, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestDecodeDataURIRejectsGarbage(t *testing.T) {
	_, _, err := DecodeDataURI("not a data uri")
	assert.Error(t, err)

	_, _, err = DecodeDataURI("data:image/png;base64,@@@@")
	assert.Error(t, err)
}
