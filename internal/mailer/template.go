package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// Welcome email copy shown to every new subscriber.
const (
	welcomeSubject = "Welcome to TravelEase Newsletters!"
	welcomeFrom    = "TravelEase <onboarding@resend.dev>"
)

var welcomeTmpl = template.Must(template.New("welcome").Parse(`<html>
<body style="background-color:#f5f5f5;font-family:Helvetica,Arial,sans-serif">
  <div style="max-width:560px;margin:0 auto;background-color:#ffffff;padding:32px;border-radius:8px">
    <img src="{{.AppURL}}/logo.png" width="170" height="50" alt="TravelEase Logo" />
    <h1 style="color:#1f2937">Welcome to TravelEase!</h1>
    <p>Thank you for subscribing to our newsletter! We're excited to share travel tips, destination guides, and exclusive deals with you.</p>
    <p>Your email address <strong>{{.Email}}</strong> has been added to our mailing list.</p>
    <p>Get ready for inspiration for your next adventure!</p>
    <p style="text-align:center;margin:32px 0">
      <a href="{{.AppURL}}/destinations" style="background-color:#0f766e;color:#ffffff;padding:12px 24px;border-radius:6px;text-decoration:none">Explore Destinations</a>
    </p>
    <p style="color:#6b7280;font-size:12px">
      If you didn't sign up for this newsletter, you can safely ignore this email or
      <a href="{{.AppURL}}/unsubscribe">unsubscribe here</a>.
    </p>
  </div>
</body>
</html>
`))

// renderWelcome fills the welcome template for one subscriber.
func renderWelcome(appURL, email string) (string, error) {
	var buf bytes.Buffer
	err := welcomeTmpl.Execute(&buf, struct {
		AppURL string
		Email  string
	}{AppURL: appURL, Email: email})
	if err != nil {
		return "", fmt.Errorf("mailer: render welcome email: %w", err)
	}
	return buf.String(), nil
}
