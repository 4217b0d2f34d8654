package model

import "testing"

func TestMessageContent(t *testing.T) {
	cases := []struct {
		name string
		msg  Message
		want string
	}{
		{"Text preferred", Message{Text: "a", Body: "b"}, "a"},
		{"Body fallback", Message{Body: "b"}, "b"},
		{"Empty", Message{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.msg.Content(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
