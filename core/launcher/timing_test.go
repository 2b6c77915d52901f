package launcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{5 * time.Second, "5.000s"},
		{time.Second, "1.000s"},
		{1500 * time.Millisecond, "1.500s"},
		{500 * time.Millisecond, "500.000ms"},
		{1500 * time.Microsecond, "1.500ms"},
		{500 * time.Microsecond, "500.000us"},
		{500 * time.Nanosecond, "0.500us"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatElapsed(tc.d))
		})
	}
}
