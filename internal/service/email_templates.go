package service

import (
	"fmt"
	"html"
)

func verificationEmailTemplate(name, verifyURL, ownerName string) (subject, htmlBody, textBody string) {
	if name == "" {
		name = "there"
	}
	subject = fmt.Sprintf("Verify your email address - %s's Portfolio", ownerName)

	htmlBody = fmt.Sprintf(`<h1>Email Verification</h1>
<p>Hi %s,</p>
<p>Thank you for your interest in contacting me. Please click the link below to verify your email address:</p>
<p><a href="%s" style="display:inline-block;background-color:#3b82f6;color:white;padding:10px 20px;text-decoration:none;border-radius:4px;">Verify Email Address</a></p>
<p>Or copy and paste this URL into your browser:</p>
<p>%s</p>
<p>This link will expire in 24 hours.</p>
<p>Best regards,<br>%s</p>`,
		html.EscapeString(name), verifyURL, verifyURL, html.EscapeString(ownerName))

	textBody = fmt.Sprintf(`Email Verification

Hi %s,

Thank you for your interest in contacting me. Please open the link below to verify your email address:

%s

This link will expire in 24 hours.

Best regards,
%s`, name, verifyURL, ownerName)

	return subject, htmlBody, textBody
}

func contactNotificationTemplate(name, email, message string) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("New Contact Form Submission from %s", name)

	htmlBody = fmt.Sprintf(`<h1>New Contact Form Submission</h1>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		html.EscapeString(name), html.EscapeString(email), html.EscapeString(message))

	textBody = fmt.Sprintf(`New Contact Form Submission
--------------------------
Name: %s
Email: %s
Message: %s`, name, email, message)

	return subject, htmlBody, textBody
}

func contactConfirmationTemplate(name, ownerName string) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("Thank you for contacting %s", ownerName)

	htmlBody = fmt.Sprintf(`<h1>Thank you for your message!</h1>
<p>Hi %s,</p>
<p>I have received your message and will get back to you as soon as possible.</p>
<p>Best regards,<br>%s</p>`,
		html.EscapeString(name), html.EscapeString(ownerName))

	textBody = fmt.Sprintf(`Thank you for your message!

Hi %s,

I have received your message and will get back to you as soon as possible.

Best regards,
%s`, name, ownerName)

	return subject, htmlBody, textBody
}
