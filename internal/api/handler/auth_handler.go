package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/datalab/sample-tracker/internal/api/metrics"
	"github.com/datalab/sample-tracker/internal/core/domain"
	"github.com/datalab/sample-tracker/internal/core/ports"
)

const (
	msgResetAccepted = "Password reset instructions have been sent to your registered email."
	msgResetNotFound = "No account found with that DataLab ID."
	msgSignedOut     = "You have been logged out of your account."
	msgPasswordHint  = "Use any password with 6+ characters"
)

type AuthHandler struct {
	identities ports.IdentityService
	sessions   ports.SessionService
}

func NewAuthHandler(identities ports.IdentityService, sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{identities: identities, sessions: sessions}
}

// LoginPage describes the sign-in form.
//
// @Summary      Sign-in form metadata
// @Tags         auth
// @Produce      json
// @Param        from  query     string  false  "Originally requested path"
// @Success      200   {object}  loginPageResponse
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	ids, err := h.identities.DemoAccounts(c.Request().Context())
	if err != nil {
		return err
	}

	accounts := make([]demoAccount, 0, len(ids))
	for _, id := range ids {
		accounts = append(accounts, demoAccount{ID: id.ID, Role: id.Role, AccessLevel: id.AccessLevel})
	}

	return c.JSON(http.StatusOK, loginPageResponse{
		From:         c.QueryParam("from"),
		IDFormat:     msgIDFormat,
		PasswordHint: msgPasswordHint,
		DemoAccounts: accounts,
	})
}

// Login signs the caller's origin in.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "DataLab ID and password"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	origin, err := ctxOrigin(c)
	if err != nil {
		return err
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	user, err := h.sessions.Login(c.Request().Context(), origin, req.UserID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMalformedID):
			metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
		case errors.Is(err, domain.ErrIdentityNotFound), errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{User: user, RedirectTo: domain.LandingRoute})
}

// Logout clears the session shared by every tab of the caller's origin.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  logoutResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	origin, err := ctxOrigin(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Logout(c.Request().Context(), origin); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logoutResponse{Message: msgSignedOut, RedirectTo: domain.LoginRoute})
}

// PasswordReset acknowledges a reset request. No email is sent.
//
// @Summary      Request a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      passwordResetRequest  true  "DataLab ID"
// @Success      200   {object}  passwordResetResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/password-reset [post]
func (h *AuthHandler) PasswordReset(c echo.Context) error {
	var req passwordResetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.identities.RequestPasswordReset(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}

	resp := passwordResetResponse{Accepted: res.Accepted}
	switch {
	case res.Accepted:
		resp.Message = msgResetAccepted
		metrics.PasswordResetRequestsTotal.WithLabelValues("true").Inc()
	case res.Reason == ports.ResetMalformedID:
		resp.Message = msgIDFormat
		metrics.PasswordResetRequestsTotal.WithLabelValues("false").Inc()
	default:
		resp.Message = msgResetNotFound
		metrics.PasswordResetRequestsTotal.WithLabelValues("false").Inc()
	}
	return c.JSON(http.StatusOK, resp)
}

// Session returns the identity signed in for the caller's origin.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Identity
// @Failure      401  {object}  errorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	origin, err := ctxOrigin(c)
	if err != nil {
		return err
	}

	user, err := h.sessions.Current(c.Request().Context(), origin)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
