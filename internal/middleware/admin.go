package middleware

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/csrf"
	"github.com/hertz-contrib/sessions"
	"github.com/hertz-contrib/sessions/cookie"

	"PontoWeb/config"
	pkgerrors "PontoWeb/pkg/errors"
	"PontoWeb/pkg/response"
)

const (
	adminSessionName = "admin-session"
	adminSessionKey  = "admin_authenticated"
)

// AdminSessionMiddleware abre a sessão administrativa baseada em cookie.
// O front antigo guardava a flag no localStorage e a senha no código; aqui a
// flag vive em cookie assinado e a senha é conferida pelo serviço de auth.
func AdminSessionMiddleware() app.HandlerFunc {
	store := cookie.NewStore([]byte(config.Cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		Secure:   config.Cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.New(adminSessionName, store)
}

// CSRFMiddleware protege as mutações administrativas. Precisa rodar depois
// do middleware de sessão, o salt fica guardado nela.
func CSRFMiddleware() app.HandlerFunc {
	return csrf.New(
		csrf.WithSecret(config.Cfg.CSRFSecret),
		csrf.WithErrorFunc(func(ctx context.Context, c *app.RequestContext) {
			c.Abort()
			response.Error(ctx, c, pkgerrors.Unauthorized)
		}),
	)
}

// AdminGate barra quem não passou pelo login administrativo.
func AdminGate() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		session := sessions.Default(c)
		if authed, ok := session.Get(adminSessionKey).(bool); !ok || !authed {
			c.Abort()
			response.Error(ctx, c, pkgerrors.Unauthorized)
			return
		}

		c.Next(ctx)
	}
}

// MarkAdminAuthenticated grava a flag após a senha conferida.
func MarkAdminAuthenticated(c *app.RequestContext) error {
	session := sessions.Default(c)
	session.Set(adminSessionKey, true)
	return session.Save()
}

// ClearAdminSession encerra a sessão administrativa.
func ClearAdminSession(c *app.RequestContext) error {
	session := sessions.Default(c)
	session.Delete(adminSessionKey)
	return session.Save()
}

// AdminCSRFToken devolve o token a ser ecoado nas mutações.
func AdminCSRFToken(c *app.RequestContext) string {
	return csrf.GetToken(c)
}
