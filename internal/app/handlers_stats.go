package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/cache"
)

// GET /stats/dashboard — cached aggregates, recomputed on miss. Cache errors are
// logged and treated as misses so redis outages never break the endpoint.
func (a *App) DashboardStatsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	key := cache.DashboardKey()

	var stats DashboardStats
	hit, err := a.Cache.GetJSON(ctx, key, &stats)
	if err != nil {
		a.Logger.Warn("dashboard cache read failed", "err", err)
	}
	if hit {
		c.JSON(http.StatusOK, gin.H{"stats": stats, "cached": true})
		return
	}

	fresh, err := a.loadDashboardStats(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := a.Cache.SetJSON(ctx, key, fresh); err != nil {
		a.Logger.Warn("dashboard cache write failed", "err", err)
	}
	c.JSON(http.StatusOK, gin.H{"stats": fresh, "cached": false})
}
