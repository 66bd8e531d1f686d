package validate

import "testing"

func TestPasswordStrength(t *testing.T) {
	weak := []string{
		"",
		"abc123",
		"password",
		"aaaaaaaaaaaaaaaa",
	}
	for _, password := range weak {
		if PasswordStrength(password) {
			t.Errorf("expected %q to be rejected as weak", password)
		}
	}

	strong := []string{
		"k9#Vm2$pLxW8@qRt",
		"correct horse battery staple 42",
	}
	for _, password := range strong {
		if !PasswordStrength(password) {
			t.Errorf("expected %q to clear the strength bar", password)
		}
	}
}
