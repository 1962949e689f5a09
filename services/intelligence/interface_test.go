package intelligence

import "testing"

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"When are we free to meet next week?", "schedule"},
		{"Find a time for the three of us", "schedule"},
		{"Can you schedule something on Friday?", "schedule"},
		{"Remind me to buy milk", "todo"},
		{"add todo call the dentist", "todo"},
		{"How does the app work?", "chat"},
		{"hello", "chat"},
	}
	for _, test := range tests {
		if got := detectIntent(test.text); got != test.want {
			t.Errorf("detectIntent(%q) = %q, want %q", test.text, got, test.want)
		}
	}
}
