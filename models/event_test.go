// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklist_DecodesObjectAndStringForms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Checklist
	}{
		{name: "object", raw: `{"flyer":true,"venue":false}`, want: Checklist{"flyer": true, "venue": false}},
		{name: "string-embedded object", raw: `"{\"flyer\":true}"`, want: Checklist{"flyer": true}},
		{name: "empty string", raw: `""`, want: Checklist{}},
		{name: "null", raw: `null`, want: nil},
		{name: "malformed embedded JSON", raw: `"{broken"`, want: Checklist{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Checklist
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &c))
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestEventIsBlank(t *testing.T) {
	assert.True(t, Event{ID: "padding-row-7"}.IsBlank())
	assert.False(t, Event{Name: "Garden Tour"}.IsBlank())
	assert.False(t, Event{Notes: "keep"}.IsBlank())
	assert.False(t, Event{Checklist: Checklist{"flyer": true}}.IsBlank())
}
