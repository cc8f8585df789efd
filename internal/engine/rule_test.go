package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		rules   []Rule
		wantErr bool
	}{
		{"no rules", nil, true},
		{"replace needs find text", []Rule{{Op: OpReplaceText}}, true},
		{"remove needs text", []Rule{{Op: OpRemoveText}}, true},
		{"prefix needs text", []Rule{{Op: OpAddPrefix}}, true},
		{"replace with empty replacement ok", []Rule{{Op: OpReplaceText, A: "x"}}, false},
		{"lowercase needs nothing", []Rule{{Op: OpLowercase}}, false},
		{"second rule invalid", []Rule{{Op: OpLowercase}, {Op: OpAddSuffix}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.rules)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
