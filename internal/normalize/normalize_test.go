package normalize

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Alice", want: "alice"},
		{in: "@Alice", want: "alice"},
		{in: "  @alice  ", want: "alice"},
		{in: "BOB_42", want: "bob_42"},
	}
	for _, tt := range tests {
		if got := Name(tt.in); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHandle(t *testing.T) {
	if got := Handle(" @Alice "); got != "Alice" {
		t.Errorf("Handle() = %q, want Alice", got)
	}
}
