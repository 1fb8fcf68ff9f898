// internal/app/features/teacher/handler.go
package teacher

import (
	"crypto/subtle"
	"net/http"

	"github.com/LAULAUtonton/GLOBALISSUES/internal/app/system/httpjson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Handler performs the instructor shared-secret check. The check is
// stateless and single-shot: no session and no token; the frontend simply
// re-verifies before each privileged screen.
type Handler struct {
	password     string
	passwordHash string
	Log          *zap.Logger
}

// NewHandler constructs a teacher Handler. When passwordHash (a bcrypt
// hash) is non-empty it takes precedence over the plain password.
func NewHandler(password, passwordHash string, logger *zap.Logger) *Handler {
	return &Handler{
		password:     password,
		passwordHash: passwordHash,
		Log:          logger,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// HandleLogin processes POST /teacher/login.
//
// On match: 200 and {"success": true}. On mismatch (or an unreadable
// body): 401.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "Contraseña incorrecta")
		return
	}

	if !h.verify(req.Password) {
		h.Log.Info("teacher login rejected")
		httpjson.Error(w, http.StatusUnauthorized, "Contraseña incorrecta")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) verify(submitted string) bool {
	if h.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(submitted)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(h.password), []byte(submitted)) == 1
}
