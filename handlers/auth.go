package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhive/taskhive-api/internal/config"
	"github.com/taskhive/taskhive-api/internal/password"
	"github.com/taskhive/taskhive-api/internal/tokens"
	"github.com/taskhive/taskhive-api/internal/users"
	"github.com/taskhive/taskhive-api/pkg/logger"
	"github.com/taskhive/taskhive-api/pkg/metrics"
	"github.com/taskhive/taskhive-api/pkg/middleware"
)

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FederatedSignupRequest is the body of POST /auth/signup-google. IDToken is
// optional; when the identity provider verifier is configured and a token is
// supplied, it is verified server-side before the account is created.
type FederatedSignupRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	IDToken string `json:"idToken,omitempty"`
}

// AuthHandler holds dependencies for the auth endpoints.
type AuthHandler struct {
	cfg      *config.Config
	users    *users.Service
	hasher   *password.Hasher
	verifier middleware.Verifier
	identity middleware.Verifier // nil unless an identity provider is configured
}

func NewAuthHandler(cfg *config.Config, u *users.Service, hasher *password.Hasher, verifier, identity middleware.Verifier) *AuthHandler {
	return &AuthHandler{cfg: cfg, users: u, hasher: hasher, verifier: verifier, identity: identity}
}

// Register routes under /auth
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/signup", h.Signup)
	a.POST("/login", h.Login)
	a.POST("/signup-google", h.FederatedSignup)
	a.GET("/verify", middleware.AuthMiddleware(h.verifier), h.Verify)
}

// Signup creates a new password-based account.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are mandatory"})
		return
	}
	if !validEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Provide a valid email address"})
		return
	}
	if !validPassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must have at least 6 characters and contain at least one number, one lowercase and one uppercase letter."})
		return
	}

	existing, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		logger.Errorf("signup lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The provided email is already registered"})
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		logger.Errorf("password hash failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	u, err := h.users.Create(c.Request.Context(), req.Email, req.Name, hashed)
	if err != nil {
		// the unique index wins the race, not the pre-check above
		if err == users.ErrDuplicateEmail {
			c.JSON(http.StatusBadRequest, gin.H{"message": "The provided email is already registered"})
			return
		}
		if err == users.ErrMissingFields {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are mandatory"})
			return
		}
		logger.Errorf("an error occurred creating the user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	metrics.AuthRequests.WithLabelValues("signup", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"email": u.Email, "name": u.Name, "id": u.ID.Hex()})
}

// Login verifies credentials and returns a signed auth token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are mandatory"})
		return
	}

	u, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		logger.Errorf("login lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if u == nil {
		metrics.AuthRequests.WithLabelValues("login", "unknown_email").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Provided email is not registered"})
		return
	}

	// federated-only accounts have no stored hash and fail here identically
	// to a wrong password
	if !h.hasher.Verify(req.Password, u.PasswordHash) {
		metrics.AuthRequests.WithLabelValues("login", "bad_password").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect password"})
		return
	}

	authToken, err := tokens.GenerateAuthToken(h.cfg, u, h.cfg.Token.TokenTTL)
	if err != nil {
		logger.Errorf("token issue failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	metrics.AuthRequests.WithLabelValues("login", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"authToken": authToken})
}

// FederatedSignup creates an account for an identity vouched for by the
// external provider. Calling it again for the same email is not an error.
func (h *AuthHandler) FederatedSignup(c *gin.Context) {
	var req FederatedSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Email == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are mandatory"})
		return
	}

	// when the provider verifier is wired and the client sent the provider's
	// ID token, check it instead of trusting the body blindly
	if h.identity != nil && req.IDToken != "" {
		if _, err := h.identity.Verify(c.Request.Context(), req.IDToken); err != nil {
			metrics.AuthRequests.WithLabelValues("signup-google", "bad_id_token").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid identity token"})
			return
		}
	}

	existing, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		logger.Errorf("federated signup lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists"})
		return
	}

	if _, err := h.users.Create(c.Request.Context(), req.Email, req.Name, ""); err != nil {
		if err == users.ErrDuplicateEmail {
			// lost the race to a concurrent signup; same observable outcome
			c.JSON(http.StatusOK, gin.H{"message": "User already exists"})
			return
		}
		logger.Errorf("an error occurred creating the user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	metrics.AuthRequests.WithLabelValues("signup-google", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "User created successfully"})
}

// Verify echoes the decoded claims of a valid token back to the client. The
// AuthMiddleware has already rejected anything invalid by the time this runs.
func (h *AuthHandler) Verify(c *gin.Context) {
	payload, _ := c.Get(middleware.PayloadKey)
	c.JSON(http.StatusOK, payload)
}
