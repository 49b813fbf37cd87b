package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vital-be/middlewares"
	"vital-be/services"
	authUtils "vital-be/utils"
)

// CookieSettings controls the auth cookie.
type CookieSettings struct {
	Domain     string
	Production bool
}

type AuthController struct {
	authorities *services.AuthorityService
	tokens      *authUtils.Tokens
	cookie      CookieSettings
	logger      *zap.Logger
}

func NewAuthController(authorities *services.AuthorityService, tokens *authUtils.Tokens, cookie CookieSettings, logger *zap.Logger) *AuthController {
	return &AuthController{authorities: authorities, tokens: tokens, cookie: cookie, logger: logger}
}

// Register handles authority registration
func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required,max=50"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=6"`
		Role        string `json:"role" binding:"required"`
		DistrictID  string `json:"districtId"`
		TalukID     string `json:"talukId"`
		PanchayatID string `json:"panchayatId"`
		Village     string `json:"village"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	authority, err := ac.authorities.Register(c.Request.Context(), services.RegisterAuthorityInput{
		Name:        input.Name,
		Email:       input.Email,
		Password:    input.Password,
		Role:        input.Role,
		DistrictID:  input.DistrictID,
		TalukID:     input.TalukID,
		PanchayatID: input.PanchayatID,
		Village:     input.Village,
	})
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusCreated, authority)
}

// Login handles authority login
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	authority, err := ac.authorities.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if StatusFor(err) == http.StatusForbidden {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		respondError(c, ac.logger, err)
		return
	}

	token, err := ac.tokens.GenerateToken(authority.UID)
	if err != nil {
		ac.logger.Error("error generating token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	ac.setCookie(c, token, int(ac.tokens.TTL().Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"authority": authority,
	})
}

// Me returns the authenticated authority
func (ac *AuthController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middlewares.CurrentAuthority(c))
}

// Logout clears the auth_token cookie
func (ac *AuthController) Logout(c *gin.Context) {
	ac.setCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// VerifyAuthority lets an admin verify another authority's account.
func (ac *AuthController) VerifyAuthority(c *gin.Context) {
	authority, err := ac.authorities.Verify(c.Request.Context(), middlewares.CurrentAuthority(c), c.Param("id"))
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}
	c.JSON(http.StatusOK, authority)
}

func (ac *AuthController) setCookie(c *gin.Context, value string, maxAge int) {
	domain := ac.cookie.Domain
	// For production, don't set domain to allow cross-origin cookies
	if ac.cookie.Production {
		domain = ""
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middlewares.AuthCookie,
		Value:    value,
		MaxAge:   maxAge,
		Path:     "/",
		Domain:   domain,
		Secure:   ac.cookie.Production,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}
