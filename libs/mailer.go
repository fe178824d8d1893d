package libs

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"aliccedress/models"
	"aliccedress/utils"

	"gopkg.in/gomail.v2"
)

var orderConfirmationTemplate = template.Must(template.New("order").Funcs(template.FuncMap{
	"price": utils.PriceLabel,
}).Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
    <h1 style="text-align: center;">aliccedress</h1>
    <h2>Заказ {{.OrderNumber}} оформлен</h2>
    <table style="width: 100%;">
      {{range .Items}}
      <tr><td>{{.Title}}</td><td>× {{.Quantity}}</td><td style="text-align: right;">{{price .Price}}</td></tr>
      {{end}}
    </table>
    <p><strong>Товаров:</strong> {{.ItemCount}}</p>
    <p><strong>Итого:</strong> {{price .Total}}</p>
    <p style="color: #666; font-size: 12px;">&copy; 2025 aliccedress. Все права защищены.</p>
  </div>
</body>
</html>`))

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends order confirmations over SMTP.
type Mailer struct {
	dialer dialer
	from   string
}

func NewMailer(host string, port int, user, pass, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

// SendOrderConfirmation returns early with ctx.Err() when ctx is done
// before the SMTP exchange finishes.
func (m *Mailer) SendOrderConfirmation(ctx context.Context, to string, order models.OrderConfirmation) error {
	var body bytes.Buffer
	if err := orderConfirmationTemplate.Execute(&body, order); err != nil {
		return fmt.Errorf("render order email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Order confirmation %s - aliccedress", order.OrderNumber))
	msg.SetBody("text/html", body.String())

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to send email: %w", ctx.Err())
	}
}
