package utils

import (
	"fmt"

	"skillcert/config"

	"github.com/go-resty/resty/v2"
)

type paymentStatusResponse struct {
	Status string `json:"status"`
	Amount uint   `json:"amount"`
}

// VerifyPayment checks a payment reference with the gateway before an
// order is approved. Without an API key configured (local/dev) the
// check is skipped.
func VerifyPayment(paymentRef string, amount uint) error {
	if config.AppConfig.PaymentApiKey == "" {
		return nil
	}

	client := resty.New()

	var result paymentStatusResponse
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.PaymentApiKey).
		SetResult(&result).
		Get(config.AppConfig.PaymentApiURL + "payments/" + paymentRef)
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode())
	}

	if result.Status != "CAPTURED" {
		return fmt.Errorf("payment %s is not captured (status %s)", paymentRef, result.Status)
	}
	if result.Amount != amount {
		return fmt.Errorf("payment %s amount mismatch: got %d, want %d", paymentRef, result.Amount, amount)
	}

	return nil
}
