package validate

import "testing"

func TestEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@b.c", true},
		{"alice@example.com", true},
		{"ALICE@Example.COM", true},
		{"first.last@sub.example.org", true},
		{"not-an-email", false},
		{"", false},
		{"@example.com", false},
		{"alice@", false},
		{"alice@example", false},
		{"alice@@example.com", false},
		{"a lice@example.com", false},
		{"alice@exa mple.com", false},
	}
	for _, tc := range cases {
		if got := Email(tc.email); got != tc.want {
			t.Errorf("Email(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Abcdefg1", true},
		{"abcdefg1", false}, // no uppercase
		{"Abcdef1", false},  // 7 chars
		{"ABCDEFG1", false}, // no lowercase
		{"Abcdefgh", false}, // no digit
		{"", false},
		{"P@ssw0rdLong", true}, // extra symbols allowed
		{"xY3xY3xY3", true},
	}
	for _, tc := range cases {
		if got := Password(tc.password); got != tc.want {
			t.Errorf("Password(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}
