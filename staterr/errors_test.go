package staterr_test

import (
	"testing"

	"github.com/mdeloof/stator/staterr"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"depth", &staterr.DepthExceeded{MaxDepth: 16}},
		{"transition-entry", &staterr.TransitionDuringMetaEvent{Phase: "entry"}},
		{"not-attached", &staterr.NotAttached{}},
		{"no-sender", &staterr.NoSender{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Error() == "" {
				t.Fatalf("expected non-empty error message for %s", tc.name)
			}
		})
	}
}
