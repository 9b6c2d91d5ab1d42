package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTool(t *testing.T) {
	tests := []struct {
		name    string
		d       ToolDecision
		wantErr bool
	}{
		{
			name: "no tool always valid",
			d:    ToolDecision{Kind: NoTool},
		},
		{
			name: "registered tool",
			d:    ToolDecision{Kind: InvokeTool, Name: RetrievalToolName},
		},
		{
			name:    "unrecognized tool",
			d:       ToolDecision{Kind: InvokeTool, Name: "drop_database"},
			wantErr: true,
		},
		{
			name:    "invoke with empty name",
			d:       ToolDecision{Kind: InvokeTool},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTool(tt.d)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unrecognized tool")
				return
			}
			require.NoError(t, err)
		})
	}
}
