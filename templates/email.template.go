// Package templates contains the email templates
package templates

import (
	"bytes"
	"strings"
	"text/template"
)

// Email contains all the templates that are related to email
type Email struct{}

// VerificationOTPTmpl is a function that is used to get the email with the OTP that verifies the signup
func (Email) VerificationOTPTmpl(otp string) (emailHTML string, err error) {
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
  <h1>Coindeck</h1>
  <strong> Use the below OTP(One Time Password) to verify your email address </strong>
  <br />
  <br />
  <div class="container">
    <section class="block">{{.CODE1}}</section>
    <section class="block">{{.CODE2}}</section>
    <section class="block">{{.CODE3}}</section>
    <section class="block">{{.CODE4}}</section>
    <section class="block">{{.CODE5}}</section>
    <section class="block">{{.CODE6}}</section>
  </div>
  <footer>
    The code expires in 5 minutes; if you did not try to sign up please ignore this email
  </footer>
</html>
`

	t := template.Must(template.New("verificationOTP").Parse(tmpl))

	var buf bytes.Buffer
	err = t.Execute(&buf, struct {
		CODE1 string
		CODE2 string
		CODE3 string
		CODE4 string
		CODE5 string
		CODE6 string
	}{
		CODE1: codes[0],
		CODE2: codes[1],
		CODE3: codes[2],
		CODE4: codes[3],
		CODE5: codes[4],
		CODE6: codes[5],
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
