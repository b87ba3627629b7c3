package handlers

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.Engine, uiHandler *UIHandler, wsHandler *WebSocketHandler) {
	router.GET("/healthz", Health)

	bridge := router.Group("/ui")
	{
		bridge.POST("/login", uiHandler.Login)
		bridge.POST("/register", uiHandler.Register)
		bridge.POST("/buy-ticket", uiHandler.BuyTicket)
		bridge.POST("/draw", uiHandler.Draw)
		bridge.POST("/recharge", uiHandler.Recharge)
		bridge.POST("/logout", uiHandler.Logout)
		bridge.POST("/number-input", uiHandler.NumberInput)

		bridge.GET("/session", uiHandler.Session)

		numbers := bridge.Group("/numbers")
		{
			numbers.POST("/random", uiHandler.RandomNumbers)
		}

		if wsHandler != nil {
			bridge.GET("/ws", wsHandler.HandleWebSocket)
		}
	}
}
