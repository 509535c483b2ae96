package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	fenced := "```json\n{\"calories\":200}\n```"
	assert.Equal(t, "{\"calories\":200}", stripCodeFences(fenced))

	plain := `{"calories":200}`
	assert.Equal(t, plain, stripCodeFences(plain))
}
