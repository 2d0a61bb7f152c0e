package controllers

import (
	"errors"
	"market-api/models"
	"market-api/services"

	"github.com/gin-gonic/gin"
)

type SignUpController struct {
	signUpService *services.SignUpService
}

func NewSignUpController(signUpService *services.SignUpService) *SignUpController {
	return &SignUpController{signUpService: signUpService}
}

func signUpStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrAlreadyRegistered),
		errors.Is(err, services.ErrInvalidEmailPattern),
		errors.Is(err, services.ErrInvalidPhonePattern),
		errors.Is(err, services.ErrInvalidPasswordPattern),
		errors.Is(err, services.ErrAlreadyVerified),
		errors.Is(err, services.ErrWrongVerification),
		errors.Is(err, services.ErrExpiredCode):
		return 400
	case errors.Is(err, services.ErrUserNotFound):
		return 404
	default:
		return 500
	}
}

// CustomerSignUp godoc
// @Summary Register a customer
// @Description Creates a customer account and sends a verification email
// @Tags SignUp
// @Accept json
// @Produce json
// @Param form body models.SignUpForm true "Sign up form"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /signup/customer [post]
func (ctrl *SignUpController) CustomerSignUp(c *gin.Context) {
	var form models.SignUpForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	message, err := ctrl.signUpService.CustomerSignUp(c.Request.Context(), form)
	if err != nil {
		c.JSON(signUpStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: message})
}

// CustomerVerify godoc
// @Summary Verify a customer's email
// @Tags SignUp
// @Produce json
// @Param email query string true "Email"
// @Param code query string true "Verification code"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /signup/customer/verify [get]
func (ctrl *SignUpController) CustomerVerify(c *gin.Context) {
	email := c.Query("email")
	code := c.Query("code")

	if err := ctrl.signUpService.CustomerVerify(c.Request.Context(), email, code); err != nil {
		c.JSON(signUpStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Email verified"})
}

// SellerSignUp godoc
// @Summary Register a seller
// @Tags SignUp
// @Accept json
// @Produce json
// @Param form body models.SignUpForm true "Sign up form"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /signup/seller [post]
func (ctrl *SignUpController) SellerSignUp(c *gin.Context) {
	var form models.SignUpForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	message, err := ctrl.signUpService.SellerSignUp(c.Request.Context(), form)
	if err != nil {
		c.JSON(signUpStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: message})
}

// SellerVerify godoc
// @Summary Verify a seller's email
// @Tags SignUp
// @Produce json
// @Param email query string true "Email"
// @Param code query string true "Verification code"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /signup/seller/verify [get]
func (ctrl *SignUpController) SellerVerify(c *gin.Context) {
	email := c.Query("email")
	code := c.Query("code")

	if err := ctrl.signUpService.SellerVerify(c.Request.Context(), email, code); err != nil {
		c.JSON(signUpStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Email verified"})
}
