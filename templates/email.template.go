// Package templates contains the email templates
package templates

import (
	"bytes"
	"strings"
	"text/template"
)

// Email contains all the templates that are related to email
type Email struct{}

// GetOTPTmpl is a function that is used to get the email with the OTP to verify
// the email address
func (Email) GetOTPTmpl(otp string) (emailHTML string, err error) {
	codes := strings.Split(otp, "")

	tmpl := `
<html>
  <style>
    .container {
      display: flex;
      flex-direction: row;
      align-items: center;
      justify-content: center;
      width: 100%;
      margin-top: 10px;
      column-gap: 20px;
    }

    .block {
      display: flex;
      border: 2px solid black;
      border-radius: 20%;
      width: 50px;
      height: 50px;
      align-items: center;
      justify-content: center;
    }
  </style>
  <h1>VideoTube</h1>
  <strong> Use the below OTP(One Time Password) to verify your email address </strong>
  <br />
  <br />
  <div class="container">
    {{range .Codes}}
    <div class="block">
      <h2>{{.}}</h2>
    </div>
    {{end}}
  </div>
  <br />
  <p>
    Please enter this OTP in the verification section of the VideoTube app
    within the next 5 minutes. This OTP is valid for one time use only.
  </p>
  <footer>
    If you did not request this OTP please ignore this email
  </footer>
</html>
`
	t := template.Must(template.New("otpVerification").Parse(tmpl))

	var buf bytes.Buffer
	err = t.Execute(&buf, struct{ Codes []string }{Codes: codes})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
