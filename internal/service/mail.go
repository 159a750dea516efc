package service

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// SendWelcomeMail greets a freshly registered user. Signup doesn't
// wait for this and doesn't fail when it fails.
func SendWelcomeMail(sendTo, firstName string) error {
	if !viper.GetBool("mail.enabled") {
		return nil
	}

	from := viper.GetString("mail.sender_address")
	if sendTo == from {
		return errors.New("invalid email address")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", sendTo)
	m.SetHeader("Subject", "Welcome to Lavish")
	m.SetBody("text/html", fmt.Sprintf(
		"<h2>Hello %s,</h2><p>Thank you for joining <strong>Lavish</strong>!</p><p>We are very happy to have you onboard.</p>",
		firstName))

	d := gomail.NewDialer(
		viper.GetString("mail.host"),
		viper.GetInt("mail.port"),
		from,
		viper.GetString("mail.password"),
	)

	return d.DialAndSend(m)
}
