package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/readnest/readnest-server/internal/auth"
	"github.com/readnest/readnest-server/internal/db"
	"github.com/readnest/readnest-server/internal/mail"
	"github.com/readnest/readnest-server/internal/templates"
	"github.com/readnest/readnest-server/internal/validation"
)

type AuthHandler struct {
	DB        *db.DB
	Mailer    mail.MailSender
	Templates *templates.Manager
	BaseURL   string
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login verifies credentials and returns a bearer token. An unknown email
// is auto-registered, matching the mobile-first flow of the original app.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		WriteError(w, "login", err)
		return
	}

	user, err := h.DB.GetUserByEmail(req.Email)
	if err == db.ErrNoRows {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			WriteError(w, "login", err)
			return
		}
		created, err := h.DB.CreateUser(req.Email, hash)
		if err != nil {
			WriteError(w, "login", err)
			return
		}

		token, err := auth.GenerateToken(created.ID)
		if err != nil {
			WriteError(w, "login", err)
			return
		}
		WriteJSON(w, http.StatusOK, tokenResponse{Token: token})
		return
	} else if err != nil {
		WriteError(w, "login", err)
		return
	}

	match, err := auth.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		WriteError(w, "login", err)
		return
	}
	if !match {
		JSONError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		WriteError(w, "login", err)
		return
	}
	WriteJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		WriteError(w, "forgot password", err)
		return
	}

	// Same response whether or not the account exists.
	const sent = "A password reset email was sent"

	user, err := h.DB.GetUserByEmail(req.Email)
	if err != nil {
		WriteJSON(w, http.StatusOK, MessageResponse{Message: sent})
		return
	}

	token, hash, err := auth.GenerateResetToken()
	if err != nil {
		WriteError(w, "forgot password", err)
		return
	}
	expiresAt := time.Now().Add(1 * time.Hour).Unix()

	if err := h.DB.SetPasswordResetToken(user.ID, hash, expiresAt); err != nil {
		WriteError(w, "forgot password", err)
		return
	}

	link := fmt.Sprintf("%s/deeplink/reset-password?token=%s", h.BaseURL, token)

	htmlBody, err := h.Templates.Render("mail/forgot-password.html", map[string]string{"ResetPasswordLink": link})
	if err != nil {
		slog.Error("template render failed", "template", "mail/forgot-password.html", "error", err)
	}

	if err := h.Mailer.Send(user.Email, "Password reset", "Reset link: "+link, htmlBody); err != nil {
		slog.Error("mail send failed", "to", user.Email, "error", err)
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: sent})
}

// ResetPasswordDeeplink serves the HTML page that forwards a reset token
// into the app's custom URL scheme.
func (h *AuthHandler) ResetPasswordDeeplink(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		JSONError(w, "Missing token", http.StatusBadRequest)
		return
	}

	deepLink := fmt.Sprintf("readnest://reset-password?base_url=%s&token=%s", h.BaseURL, token)

	html, err := h.Templates.Render("pages/reset-password.html", map[string]string{"DeepLink": deepLink})
	if err != nil {
		WriteError(w, "reset password deeplink", err)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ResetToken string `json:"reset_token" validate:"required"`
		Password   string `json:"password" validate:"required,min=8,max=72"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		WriteError(w, "reset password", err)
		return
	}

	tokenHash := auth.HashToken(req.ResetToken)
	user, err := h.DB.GetUserByResetToken(tokenHash)
	if err != nil {
		JSONError(w, "Invalid or expired token", http.StatusBadRequest)
		return
	}
	if user.PasswordResetTokenExpires == nil || *user.PasswordResetTokenExpires < time.Now().Unix() {
		JSONError(w, "Invalid or expired token", http.StatusBadRequest)
		return
	}

	newHash, err := auth.HashPassword(req.Password)
	if err != nil {
		WriteError(w, "reset password", err)
		return
	}
	if err := h.DB.UpdatePassword(user.ID, newHash); err != nil {
		WriteError(w, "reset password", err)
		return
	}
	if err := h.DB.ClearResetToken(user.ID); err != nil {
		slog.Error("failed to clear reset token", "user_id", user.ID, "error", err)
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Password has been reset successfully"})
}
