package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateSession(c *ginext.Context)
	ListSessions(c *ginext.Context)
	GetSession(c *ginext.Context)
	UpdateCapacity(c *ginext.Context)
	UpdateSessionStatus(c *ginext.Context)
	CancelSession(c *ginext.Context)
	CreateSignup(c *ginext.Context)
	GetWaitlist(c *ginext.Context)
	CancelSignup(c *ginext.Context)
	Promote(c *ginext.Context)
	Sweep(c *ginext.Context)
	ClaimOffer(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Sessions
		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions", h.ListSessions)
		api.GET("/sessions/:id", h.GetSession)
		api.PATCH("/sessions/:id/capacity", h.UpdateCapacity)
		api.PATCH("/sessions/:id/status", h.UpdateSessionStatus)
		api.POST("/sessions/:id/cancel", h.CancelSession)

		// Signups & waitlist
		api.POST("/sessions/:id/signups", h.CreateSignup)
		api.GET("/sessions/:id/waitlist", h.GetWaitlist)
		api.POST("/signups/:id/cancel", h.CancelSignup)

		// Offers
		api.POST("/sessions/:id/promote", h.Promote)
		api.POST("/sessions/:id/sweep", h.Sweep)
		api.POST("/claims/:token", h.ClaimOffer)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
