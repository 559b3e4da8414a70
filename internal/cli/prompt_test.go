package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "yes word", input: "yes\n", want: true},
		{name: "uppercase", input: "YES\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "empty defaults to no", input: "\n", want: false},
		{name: "garbage", input: "sure\n", want: false},
		{name: "eof defaults to no", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm(&out, strings.NewReader(tt.input), "Render 6 image(s)?")
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Render 6 image(s)? [y/N]:")
		})
	}
}
