package middleware

import (
	"github.com/gin-gonic/gin"

	"my-videos/infrastructure/session"
)

const sessionMaxAge = 24 * 60 * 60

// Session resolves the caller's server-side session from the opaque cookie,
// creating one on first contact, and attaches it to the request context.
func Session(store *session.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var sess *session.Session
		if id, err := ctx.Cookie(session.CookieName); err == nil {
			sess = store.Get(id)
		}
		if sess == nil {
			id, created := store.Create()
			ctx.SetCookie(session.CookieName, id, sessionMaxAge, "/", "", false, true)
			sess = created
		}
		session.Attach(ctx, sess)
		ctx.Next()
	}
}
