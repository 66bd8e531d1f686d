package templates

import (
	"strings"
	"testing"
)

func TestVerificationOTPTmpl(t *testing.T) {
	html, err := Email{}.VerificationOTPTmpl("483920")
	if err != nil {
		t.Fatalf("failed to render the template: %v", err)
	}

	for _, digit := range []string{"4", "8", "3", "9", "2", "0"} {
		if !strings.Contains(html, `<section class="block">`+digit+`</section>`) {
			t.Errorf("rendered email is missing the digit block %q", digit)
		}
	}

	if !strings.Contains(html, "Coindeck") {
		t.Error("rendered email is missing the product name")
	}
	if strings.Contains(html, "{{") {
		t.Error("rendered email still contains template actions")
	}
}
