package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpsertEventRequest_Validate(t *testing.T) {
	valid := UpsertEventRequest{
		Name:  "Bahar Etkinliği",
		Words: []string{"elma", "çiçek", "ağaç"},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*UpsertEventRequest)
	}{
		{"empty name", func(r *UpsertEventRequest) { r.Name = "" }},
		{"no words", func(r *UpsertEventRequest) { r.Words = nil }},
		{"word with space", func(r *UpsertEventRequest) { r.Words = []string{"iki kelime"} }},
		{"word with digit", func(r *UpsertEventRequest) { r.Words = []string{"elma1"} }},
		{"empty word", func(r *UpsertEventRequest) { r.Words = []string{""} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestUpsertEventRequest_ApplyDefaults(t *testing.T) {
	var req UpsertEventRequest
	req.ApplyDefaults()

	assert.Equal(t, 12, req.GridSize)
	assert.Equal(t, 100, req.WinnerCap)
	if assert.NotNil(t, req.IsActive) {
		assert.True(t, *req.IsActive)
	}

	inactive := false
	req = UpsertEventRequest{GridSize: 8, WinnerCap: 5, IsActive: &inactive}
	req.ApplyDefaults()
	assert.Equal(t, 8, req.GridSize)
	assert.Equal(t, 5, req.WinnerCap)
	assert.False(t, *req.IsActive)
}
