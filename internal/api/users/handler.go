package users

import (
	"net/http"
	"time"

	"creator-app/database"
	"creator-app/internal/domain/access"
	"creator-app/internal/domain/biopage"
	"creator-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.
		Preload("Plan").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	now := time.Now()
	_, _ = biopage.EnsurePageSlug(database.DB, &user)

	policy := access.ComputePolicy(now, user)

	var limits *LimitsDTO
	if policy.Limits != nil {
		limits = &LimitsDTO{
			MaxContentCards:      policy.Limits.MaxContentCards,
			MaxLeadMagnets:       policy.Limits.MaxLeadMagnets,
			HideBioPage:          policy.Limits.HideBioPage,
			ShowPlatformBranding: policy.Limits.ShowPlatformBranding,
		}
	}

	resp := MeResponse{
		User: UserDTO{
			ID:         user.ID,
			Email:      user.Email,
			Name:       user.Name,
			Lastname:   user.Lastname,
			Role:       user.Role,
			IsVerified: user.IsVerified,
			Onboarded:  user.OnboardedAt != nil,
		},
		Billing: BillingDTO{
			Plan:         BuildPlanDTO(user.Plan),
			Subscription: BuildSubscriptionDTO(user),
			Trial:        BuildTrialDTO(now, user.TrialStartAt, user.TrialEndAt),
		},
		Access: AccessDTO{
			State:        string(policy.State),
			Capabilities: policy.Capabilities,
			Page:         BuildAccessPageDTO(user, policy, limits),
		},
	}

	c.JSON(http.StatusOK, resp)
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	var verif users.VerificationToken
	if err := database.DB.Where("token = ?", token).First(&verif).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&users.User{}).Where("id = ?", verif.UserID).Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	_ = database.DB.Delete(&verif).Error

	redirectURL := "http://localhost:5173/signin"
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
