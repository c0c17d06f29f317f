package profilecss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/parse/v2"
)

func TestCheckSyntax(t *testing.T) {
	tests := []struct {
		name    string
		css     string
		wantErr string
	}{
		{name: "empty", css: ""},
		{name: "single rule", css: ".a{color:red}"},
		{name: "nested at-rule", css: "@media (min-width:600px){.a{color:red}}"},
		{name: "braces in string", css: `.a::before{content:"}"}`},
		{name: "extra closing brace", css: ".a{color:red}}", wantErr: "unexpected '}'"},
		{name: "unclosed block", css: ".a{color:red", wantErr: "1 unclosed block(s)"},
		{name: "two unclosed blocks", css: "@media print{.a{color:red", wantErr: "2 unclosed block(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSyntax(tt.css)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCheckSyntax_Position(t *testing.T) {
	err := CheckSyntax(".a{color:red}\n.b{color:blue}}")
	require.Error(t, err)

	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
}
