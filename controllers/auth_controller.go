package controllers

import (
	"net/http"

	"github.com/Tanmay0Bhosale/diet-tracker-modern/middlewares"
	"github.com/Tanmay0Bhosale/diet-tracker-modern/services"
	"github.com/Tanmay0Bhosale/diet-tracker-modern/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth  *services.AuthService
	users *services.UserService
}

func NewAuthController(auth *services.AuthService, users *services.UserService) *AuthController {
	return &AuthController{auth: auth, users: users}
}

type RegisterInput struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required"`
	HeightCm *float64 `json:"heightCm"`
	WeightKg *float64 `json:"weightKg"`
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, token, err := ctl.auth.Register(input.Name, input.Email, input.Password, input.HeightCm, input.WeightKg)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, token, err := ctl.auth.Login(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

func (ctl *AuthController) Me(c *gin.Context) {
	user, err := ctl.users.GetProfile(middlewares.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"user": user}
	if bmi := utils.CalculateBMI(user.WeightKg, user.HeightCm); bmi != nil {
		resp["bmi"] = *bmi
		resp["bmiCategory"] = utils.BMICategory(*bmi)
	}
	c.JSON(http.StatusOK, resp)
}

type UpdateProfileInput struct {
	Name     *string  `json:"name"`
	HeightCm *float64 `json:"heightCm"`
	WeightKg *float64 `json:"weightKg"`
}

// UpdateMe applies a partial profile patch; fields absent from the
// body keep their stored values.
func (ctl *AuthController) UpdateMe(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := ctl.users.UpdateProfile(middlewares.UserID(c), services.ProfileUpdate{
		Name:     input.Name,
		HeightCm: input.HeightCm,
		WeightKg: input.WeightKg,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
