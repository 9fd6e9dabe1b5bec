package middleware

import (
	"context"
	"net/http"
	"strings"

	"aldosafaris/pkg/auth"
	apperrors "aldosafaris/pkg/errors"
	httputil "aldosafaris/pkg/http"

	"github.com/julienschmidt/httprouter"
)

const CallerIDKey contextKey = "caller_id"

// Authenticator turns bearer access tokens into a caller identity.
// The caller id travels the request context as an int64; ownership
// checks everywhere compare that single canonical representation.
type Authenticator struct {
	tokens *auth.TokenManager
}

func NewAuthenticator(tokens *auth.TokenManager) *Authenticator {
	return &Authenticator{tokens: tokens}
}

// Require wraps a route that demands an authenticated caller.
func (a *Authenticator) Require(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		header := r.Header.Get("Authorization")
		if header == "" {
			_ = httputil.WriteError(w, apperrors.Unauthorized("Missing bearer token"))
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		callerID, err := a.tokens.ValidateAccess(tokenString)
		if err != nil {
			_ = httputil.WriteError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), CallerIDKey, callerID)
		next(w, r.WithContext(ctx), ps)
	}
}

// CallerID returns the authenticated user id stored by Require.
func CallerID(ctx context.Context) (int64, bool) {
	v := ctx.Value(CallerIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
