package billing

import (
	"net/http"
	"time"

	"creator-app/database"
	"creator-app/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

type paymentDTO struct {
	ID         uint      `json:"id"`
	PlanName   string    `json:"plan_name"`
	AmountEUR  float64   `json:"amount_eur"`
	Status     string    `json:"status"`
	InvoiceID  *string   `json:"invoice_id,omitempty"`
	ReceiptURL *string   `json:"receipt_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func GetPaymentHistory(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	out := make([]paymentDTO, 0, len(payments))
	for _, p := range payments {
		dto := paymentDTO{
			ID:         p.ID,
			AmountEUR:  p.AmountEUR,
			Status:     p.Status,
			InvoiceID:  p.InvoiceID,
			ReceiptURL: p.ReceiptURL,
			CreatedAt:  p.CreatedAt,
		}
		if p.Plan != nil {
			dto.PlanName = p.Plan.Name
		}
		out = append(out, dto)
	}

	c.JSON(http.StatusOK, gin.H{"payments": out})
}
