package billing

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/price"
)

type StripePlan struct {
	PriceID    string  `json:"price_id"`
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	Currency   string  `json:"currency"`
	UnitAmount float64 `json:"unit_amount"` // in major units (EUR)
	Interval   string  `json:"interval"`    // month/year
	Tier       string  `json:"tier"`        // starter/creator/studio
}

func ListPlansFromStripe(c *gin.Context) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	params := &stripe.PriceListParams{}
	params.Active = stripe.Bool(true)
	params.Type = stripe.String("recurring")
	params.AddExpand("data.product")

	it := price.List(params)

	out := []StripePlan{}
	for it.Next() {
		p := it.Price()

		if !p.Active || p.Recurring == nil {
			continue
		}
		if p.Product == nil || !p.Product.Active {
			continue
		}

		// hide prices via metadata
		if p.Metadata["visible"] == "false" {
			continue
		}

		amount := float64(p.UnitAmount) / 100.0

		out = append(out, StripePlan{
			PriceID:    p.ID,
			ProductID:  p.Product.ID,
			Name:       p.Product.Name,
			Currency:   string(p.Currency),
			UnitAmount: amount,
			Interval:   string(p.Recurring.Interval),
			Tier:       p.Metadata["tier"],
		})
	}

	if err := it.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch Stripe prices"})
		return
	}

	c.JSON(http.StatusOK, out)
}
