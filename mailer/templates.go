package mailer

import (
	"bytes"
	"html/template"
)

// Fixed HTML templates with inline styles. Kept deliberately simple so they
// render the same in every mail client.

var verificationTmpl = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background:#f4f4f7;font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:520px;margin:24px auto;background:#ffffff;border-radius:8px;padding:32px;">
    <h2 style="color:#5b4bdb;margin-top:0;">Tickl</h2>
    <p style="color:#333333;font-size:15px;">Use the code below to verify your work email for <strong>{{.OrganizationName}}</strong>.</p>
    <p style="font-size:32px;letter-spacing:8px;font-weight:bold;color:#5b4bdb;text-align:center;margin:24px 0;">{{.OTP}}</p>
    <p style="color:#888888;font-size:13px;">The code expires in 15 minutes. If you did not request it, you can ignore this email.</p>
  </div>
</body>
</html>`))

var credentialsTmpl = template.Must(template.New("credentials").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background:#f4f4f7;font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:520px;margin:24px auto;background:#ffffff;border-radius:8px;padding:32px;">
    <h2 style="color:#5b4bdb;margin-top:0;">Tickl</h2>
    <p style="color:#333333;font-size:15px;">An administrator account for <strong>{{.OrganizationName}}</strong> has been created for you.</p>
    <table style="width:100%;margin:16px 0;border-collapse:collapse;">
      <tr><td style="padding:8px;color:#888888;font-size:13px;">Email</td><td style="padding:8px;color:#333333;font-size:14px;">{{.Email}}</td></tr>
      <tr><td style="padding:8px;color:#888888;font-size:13px;">Password</td><td style="padding:8px;color:#333333;font-size:14px;">{{.Password}}</td></tr>
    </table>
    <p style="text-align:center;margin:24px 0;">
      <a href="{{.DashboardURL}}" style="background:#5b4bdb;color:#ffffff;text-decoration:none;padding:12px 28px;border-radius:6px;font-size:14px;">Open dashboard</a>
    </p>
    <p style="color:#888888;font-size:13px;">Please change your password after the first login.</p>
  </div>
</body>
</html>`))

var approvalTmpl = template.Must(template.New("approval").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background:#f4f4f7;font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:520px;margin:24px auto;background:#ffffff;border-radius:8px;padding:32px;">
    <h2 style="color:#5b4bdb;margin-top:0;">Tickl</h2>
    <p style="color:#333333;font-size:15px;"><strong>{{.OrganizationName}}</strong> has been approved. Your members can now verify their work emails and join.</p>
    <p style="text-align:center;margin:24px 0;">
      <a href="{{.DashboardURL}}" style="background:#5b4bdb;color:#ffffff;text-decoration:none;padding:12px 28px;border-radius:6px;font-size:14px;">Go to dashboard</a>
    </p>
  </div>
</body>
</html>`))

func renderVerificationEmail(otp, organizationName string) (string, error) {
	return render(verificationTmpl, map[string]string{
		"OTP":              otp,
		"OrganizationName": organizationName,
	})
}

func renderCredentialsEmail(email, password, organizationName, dashboardURL string) (string, error) {
	return render(credentialsTmpl, map[string]string{
		"Email":            email,
		"Password":         password,
		"OrganizationName": organizationName,
		"DashboardURL":     dashboardURL,
	})
}

func renderApprovalEmail(organizationName, dashboardURL string) (string, error) {
	return render(approvalTmpl, map[string]string{
		"OrganizationName": organizationName,
		"DashboardURL":     dashboardURL,
	})
}

func render(t *template.Template, data map[string]string) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
