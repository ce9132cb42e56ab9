package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// googleOAuthConfig builds the OAuth2 config, or nil when the google section is
// not filled in. Calendar export is an optional feature.
func (a *App) googleOAuthConfig() *oauth2.Config {
	g := a.Cfg.Google
	if g.ClientID == "" || g.ClientSecret == "" || g.RedirectURL == "" {
		return nil
	}
	return &oauth2.Config{
		ClientID:     g.ClientID,
		ClientSecret: g.ClientSecret,
		RedirectURL:  g.RedirectURL,
		Scopes:       []string{calendar.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}
}

// GET /auth/google — starts the consent flow.
func (a *App) GoogleAuthHandler(c *gin.Context) {
	conf := a.googleOAuthConfig()
	if conf == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "google calendar not configured"})
		return
	}
	state := fmt.Sprintf("trainer_%s_%d", c.Query("trainer_id"), time.Now().Unix())
	c.JSON(http.StatusOK, gin.H{
		"auth_url": conf.AuthCodeURL(state, oauth2.AccessTypeOffline),
		"state":    state,
	})
}

// GET /oauth2callback — exchanges the authorization code for a token. The token
// is returned to the caller, who passes it back via the X-Google-Token header.
func (a *App) GoogleOAuth2CallbackHandler(c *gin.Context) {
	conf := a.googleOAuthConfig()
	if conf == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "google calendar not configured"})
		return
	}
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "authorization code required"})
		return
	}
	token, err := conf.Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to exchange code for token"})
		return
	}
	payload, _ := json.Marshal(token)
	c.JSON(http.StatusOK, gin.H{
		"message": "authorization successful",
		"state":   c.Query("state"),
		"token":   string(payload),
	})
}

func (a *App) calendarService(c *gin.Context) (*calendar.Service, bool) {
	tokenStr := c.GetHeader("X-Google-Token")
	if tokenStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "google token required in X-Google-Token header"})
		return nil, false
	}
	var token oauth2.Token
	if err := json.Unmarshal([]byte(tokenStr), &token); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid token format"})
		return nil, false
	}
	conf := a.googleOAuthConfig()
	if conf == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "google calendar not configured"})
		return nil, false
	}
	ctx := c.Request.Context()
	srv, err := calendar.NewService(ctx, option.WithHTTPClient(conf.Client(ctx, &token)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create calendar service"})
		return nil, false
	}
	return srv, true
}

// POST /trainers/:id/calendar/export — pushes the trainer's upcoming plannings to
// the caller's Google Calendar, one event per planning.
func (a *App) ExportTrainerCalendarHandler(c *gin.Context) {
	trainerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	srv, ok := a.calendarService(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	trainer, err := a.GetTrainer(ctx, trainerID)
	if err != nil {
		respondError(c, err)
		return
	}

	from := c.DefaultQuery("from", time.Now().Format("2006-01-02"))
	plannings, err := a.ListPlannings(ctx, PlanningFilter{TrainerID: trainerID, From: from, To: c.Query("to")})
	if err != nil {
		respondError(c, err)
		return
	}
	calendarID := c.DefaultQuery("calendar_id", "primary")

	var exported []string
	for i := range plannings {
		p := &plannings[i]
		if p.Status == "cancelled" {
			continue
		}
		event := &calendar.Event{
			Summary:     fmt.Sprintf("Training session %d", p.SessionID),
			Description: p.Notes,
			Start:       &calendar.EventDateTime{DateTime: fmt.Sprintf("%sT%s:00", p.Date, p.Start), TimeZone: "UTC"},
			End:         &calendar.EventDateTime{DateTime: fmt.Sprintf("%sT%s:00", p.Date, p.End), TimeZone: "UTC"},
		}
		created, err := srv.Events.Insert(calendarID, event).Do()
		if err != nil {
			a.Logger.Warn("calendar export failed", "planning_id", p.ID, "err", err)
			continue
		}
		exported = append(exported, created.Id)
	}

	c.JSON(http.StatusOK, gin.H{
		"trainer":  fmt.Sprintf("%s %s", trainer.FirstName, trainer.LastName),
		"exported": len(exported),
		"total":    len(plannings),
		"eventIds": exported,
	})
}
