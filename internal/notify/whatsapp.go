package notify

import (
	"fmt"
	"net/url"
)

// WhatsAppLink builds a wa.me deep link that opens a chat with the given
// number and the message prefilled.
func WhatsAppLink(number, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}

// ContactLink is the confirmation-email variant: the customer opens a chat
// referencing their order number.
func ContactLink(number, orderNumber string) string {
	msg := fmt.Sprintf("Hi, I just placed an order #%s. I'd like to confirm the details.", orderNumber)
	return WhatsAppLink(number, msg)
}
