package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"PontoWeb/internal/handler"
	"PontoWeb/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.RequestIDMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.OpenTelemetryMiddleware())

	v1 := h.Group("/v1")

	// autenticação
	auth := v1.Group("/auth")
	auth.Use(middleware.AuthRateLimitMiddleware())
	{
		auth.POST("/login", handler.Login)
		auth.POST("/refresh", handler.RefreshToken)
		auth.POST("/logout", middleware.AuthMiddleware(), handler.Logout)

		// recuperação de senha
		recovery := auth.Group("/recover")
		{
			recovery.POST("", handler.RecoverPassword)
			recovery.POST("/validate", handler.ValidateRecoveryCode)
			recovery.POST("/change", handler.ChangePassword)
		}
	}

	// rotas do usuário logado: JWT válido e sessão viva com o backend
	me := v1.Group("/me")
	me.Use(middleware.AuthMiddleware(), middleware.SessionGate())
	{
		me.GET("/profile", handler.GetProfile)
		me.PUT("/profile", handler.UpdateProfile)

		ponto := me.Group("/ponto")
		{
			ponto.GET("/today", handler.GetToday)
			ponto.POST("/punch", handler.RegisterPunch)
			ponto.GET("/history", handler.GetHistory)
			ponto.GET("/adjust-prefill", handler.GetAdjustPrefill)
			ponto.POST("/ajuste", handler.SubmitAjuste)
			ponto.GET("/summary", handler.GetMonthlySummary)
		}
	}

	// dashboard administrativo: além da sessão de usuário, exige a sessão
	// administrativa aberta por senha própria
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminSessionMiddleware())
	{
		admin.POST("/session", middleware.AdminRateLimitMiddleware(), handler.AdminLogin)
		admin.DELETE("/session", handler.AdminLogout)

		guarded := admin.Group("")
		guarded.Use(
			middleware.AuthMiddleware(),
			middleware.SessionGate(),
			middleware.AdminGate(),
			middleware.CSRFMiddleware(),
		)
		{
			guarded.GET("/csrf", handler.GetCSRFToken)

			users := guarded.Group("/users")
			{
				users.GET("", handler.ListUsers)
				users.POST("", handler.CreateUser)
				users.GET("/:id", handler.GetUser)
				users.PUT("/:id", handler.UpdateUser)
				users.DELETE("/:id", handler.DeleteUser)
			}

			cargos := guarded.Group("/cargos")
			{
				cargos.GET("", handler.ListCargos)
				cargos.POST("", handler.CreateCargo)
				cargos.GET("/:id", handler.GetCargo)
				cargos.PUT("/:id", handler.UpdateCargo)
				cargos.DELETE("/:id", handler.DeleteCargo)
			}
		}
	}
}
