package templates_test

import (
	"strings"
	"testing"

	"github.com/anand-jaiswal-IN/youtube-clone/templates"
)

func TestGetOTPTmpl(t *testing.T) {
	args := []struct {
		OTP string
	}{
		{OTP: "123456"},
		{OTP: "000000"},
	}

	for _, arg := range args {
		emailHTML, err := templates.Email{}.GetOTPTmpl(arg.OTP)
		if err != nil {
			t.Fatalf("failed to render the OTP template : %v", err)
		}

		for _, digit := range strings.Split(arg.OTP, "") {
			if !strings.Contains(emailHTML, "<h2>"+digit+"</h2>") {
				t.Fatalf("rendered template is missing the digit %s", digit)
			}
		}
	}
}
