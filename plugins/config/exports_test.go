package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectNames(t *testing.T) {
	names := []string{"1-2-3.yaml", "тест7.yaml", "-data.yml", "test.data.yaml", "configs/gluehome.yaml"}

	for _, v := range names {
		assert.True(t, IsValidConfigFileName(v), v)
	}
}

func TestInCorrectNames(t *testing.T) {
	names := []string{"__", ".", "123.data", "test.yaml.data", "configs/_secrets.yaml", "_users"}

	for _, v := range names {
		assert.False(t, IsValidConfigFileName(v), v)
	}
}
