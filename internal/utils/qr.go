package utils

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// OrderPickupQR encode la référence de commande en PNG, scanné au retrait
func OrderPickupQR(orderID string) ([]byte, error) {
	payload := fmt.Sprintf("ecomm:order:%s", orderID)
	return qrcode.Encode(payload, qrcode.Medium, 256)
}
