package notify

import (
	"html/template"
	"strings"

	"github.com/safar/storefront/internal/models"
	"github.com/safar/storefront/internal/money"
)

var adminTemplate = template.Must(template.New("admin").Parse(`
<div style="font-family: sans-serif; max-width: 600px; margin: auto; border: 1px solid #e0e0e0; border-radius: 10px; overflow: hidden;">
  <div style="background: #8A2BE2; padding: 20px; text-align: center;">
    <h1 style="color: #ffffff; margin: 0; font-size: 1.5rem;">New Order Received!</h1>
  </div>
  <div style="padding: 30px; background: #ffffff;">
    <h2 style="color: #333; margin-top: 0;">Order #{{.Order.OrderNumber}}</h2>
    <div style="background: #f9f9f9; padding: 15px; border-radius: 8px; margin-bottom: 20px;">
      <p style="margin: 5px 0;"><strong>Customer:</strong> {{.Order.CustomerName}}</p>
      <p style="margin: 5px 0;"><strong>Phone:</strong> {{.Order.CustomerPhone}}</p>
    </div>
    {{range .Items}}
    <div style="padding: 10px; border-bottom: 1px solid #eee;">
      <strong style="color: #333;">{{.Title}}</strong>
      <span style="color: #666; font-size: 0.9rem;">Quantity: {{.Quantity}}</span>
      <span style="font-weight: 700; color: #8A2BE2; float: right;">{{.Price}}</span>
    </div>
    {{end}}
    <p style="color: #666; margin-top: 20px;"><strong>Total:</strong> {{.Total}}</p>
    <p style="color: #666; font-size: 1.1rem; line-height: 1.6;">
      A new order has been placed. Check the admin dashboard for the complete details.
    </p>
    <div style="margin-top: 30px; text-align: center;">
      <a href="{{.DashboardURL}}" style="background: #8A2BE2; color: white; padding: 12px 25px; text-decoration: none; border-radius: 5px; font-weight: 700;">View Dashboard</a>
    </div>
  </div>
</div>`))

var customerTemplate = template.Must(template.New("customer").Parse(`
<div style="font-family: sans-serif; max-width: 600px; margin: auto; border: 1px solid #e0e0e0; border-radius: 10px; overflow: hidden;">
  <div style="background: #000000; padding: 30px; text-align: center;">
    <h1 style="color: #8A2BE2; margin: 0; font-size: 2rem; letter-spacing: 2px;">BUSS EK PUFF</h1>
    <p style="color: #ffffff; margin: 10px 0 0; font-weight: 300;">Premium Vape &amp; Hookah Collection</p>
  </div>
  <div style="padding: 40px; background: #ffffff; text-align: center;">
    <h2 style="color: #333; margin-bottom: 10px;">Order Confirmed!</h2>
    <p style="color: #666; font-size: 1.1rem; line-height: 1.6;">Hi {{.FirstName}}, thank you for shopping with us! We've received your order and are currently processing it.</p>
    <div style="margin: 30px 0; padding: 20px; border: 1px dashed #ccc; border-radius: 10px; display: inline-block;">
      <span style="color: #999; font-size: 0.9rem; text-transform: uppercase;">Order Number</span><br/>
      <span style="font-size: 1.8rem; font-weight: 800; color: #8A2BE2;">#{{.Order.OrderNumber}}</span>
    </div>
    <div style="margin-top: 40px; border-top: 1px solid #eee; padding-top: 30px;">
      <p style="color: #333;"><strong>What's Next?</strong></p>
      <p style="color: #666; font-size: 0.95rem;">Our team will contact you shortly to confirm the delivery details.</p>
      <div style="margin-top: 20px;">
        <a href="{{.WhatsAppLink}}" style="background: #25D366; color: white; padding: 12px 25px; text-decoration: none; border-radius: 5px; font-weight: 700;">Contact on WhatsApp</a>
      </div>
    </div>
    <div style="margin-top: 40px;">
      <p style="color: #999; font-size: 0.8rem;">Thank you for choosing Buss Ek Puff</p>
    </div>
  </div>
</div>`))

type adminData struct {
	Order        *models.Order
	Items        []itemData
	Total        string
	DashboardURL string
}

type itemData struct {
	Title    string
	Quantity int
	Price    string
}

type customerData struct {
	Order        *models.Order
	FirstName    string
	WhatsAppLink string
}

func renderAdminBody(ev Event) (string, error) {
	data := adminData{
		Order:        ev.Order,
		Total:        money.FormatDecimal(money.DefaultCurrency, ev.Order.TotalAmount),
		DashboardURL: strings.TrimRight(ev.BaseURL, "/") + "/?admin=true",
	}
	for _, item := range ev.Order.Items {
		data.Items = append(data.Items, itemData{
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price(),
		})
	}

	var b strings.Builder
	if err := adminTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderCustomerBody(ev Event, whatsappNumber string) (string, error) {
	data := customerData{
		Order:        ev.Order,
		FirstName:    firstName(ev.Order.CustomerName),
		WhatsAppLink: ContactLink(whatsappNumber, ev.Order.OrderNumber),
	}

	var b strings.Builder
	if err := customerTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return full
	}
	return fields[0]
}
