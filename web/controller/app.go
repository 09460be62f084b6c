package controller

import (
	"net/http"

	"github.com/mindwell-app/mindwell/logger"
	"github.com/mindwell-app/mindwell/web/service"
	"github.com/mindwell-app/mindwell/web/session"

	"github.com/gin-gonic/gin"
)

// ChatForm is the JSON body of /get_response.
type ChatForm struct {
	Message string `json:"message"`
}

// MoodForm is the JSON body of /submit_mood.
type MoodForm struct {
	Mood string `json:"mood"`
}

// BookingForm is the /book_appointment form.
type BookingForm struct {
	Counselor string `form:"counselor"`
	Date      string `form:"date"`
	Time      string `form:"time"`
}

// PostForm is the /forum form.
type PostForm struct {
	Content   string `form:"content"`
	Anonymous bool   `form:"anonymous"`
}

// AppController handles every session-gated route: the tracker pages, the
// chatbot and mood APIs, booking, the forum and the admin dashboard.
type AppController struct {
	BaseController

	chatService      service.ChatService
	moodService      service.MoodService
	bookingService   service.BookingService
	postService      service.PostService
	analyticsService service.AnalyticsService
}

func NewAppController(g *gin.RouterGroup) *AppController {
	a := &AppController{}
	a.initRouter(g)
	return a
}

func (a *AppController) initRouter(g *gin.RouterGroup) {
	pages := g.Group("/")
	pages.Use(a.checkLogin)

	pages.GET("/chatbot", a.chatbot)
	pages.GET("/mood", a.mood)
	pages.GET("/booking", a.booking)
	pages.GET("/resources", a.resources)
	pages.GET("/forum", a.forum)
	pages.POST("/forum", a.createPost)
	pages.POST("/book_appointment", a.bookAppointment)
	pages.GET("/admin_dashboard", a.adminDashboard)

	api := g.Group("/")
	api.Use(a.checkLoginAPI)

	api.POST("/get_response", a.getResponse)
	api.POST("/submit_mood", a.submitMood)
}

// chatbot renders the chat page with the user's transcript so far. A failed
// read only logs; the page still works for new messages.
func (a *AppController) chatbot(c *gin.Context) {
	user := session.GetLoginUser(c)
	chats, err := a.chatService.History(user.Id)
	if err != nil {
		logger.Warning("failed to load chat history:", err)
	}
	html(c, "chatbot.html", "pages.chatbot.title", gin.H{
		"chats": chats,
	})
}

func (a *AppController) mood(c *gin.Context) {
	user := session.GetLoginUser(c)
	moods, err := a.moodService.List(user.Id)
	if err != nil {
		logger.Warning("failed to load mood log:", err)
	}
	html(c, "mood.html", "pages.mood.title", gin.H{
		"moods": moods,
	})
}

func (a *AppController) booking(c *gin.Context) {
	user := session.GetLoginUser(c)
	bookings, err := a.bookingService.List(user.Id)
	if err != nil {
		logger.Warning("failed to load bookings:", err)
	}
	html(c, "booking.html", "pages.booking.title", gin.H{
		"bookings": bookings,
	})
}

func (a *AppController) resources(c *gin.Context) {
	html(c, "resources.html", "pages.resources.title", nil)
}

func (a *AppController) forum(c *gin.Context) {
	html(c, "forum.html", "pages.forum.title", gin.H{
		"posts": a.postService.List(),
	})
}

// createPost appends a forum post and re-renders the forum with all posts.
func (a *AppController) createPost(c *gin.Context) {
	user := session.GetLoginUser(c)

	var form PostForm
	if err := c.ShouldBind(&form); err != nil || form.Content == "" {
		html(c, "forum.html", "pages.forum.title", gin.H{
			"posts":   a.postService.List(),
			"message": I18nWeb(c, "pages.forum.postFailed"),
		})
		return
	}

	if err := a.postService.Add(user.Id, form.Content, form.Anonymous); err != nil {
		logger.Warning("failed to save post:", err)
		html(c, "forum.html", "pages.forum.title", gin.H{
			"posts":   a.postService.List(),
			"message": I18nWeb(c, "pages.forum.postFailed"),
		})
		return
	}

	html(c, "forum.html", "pages.forum.title", gin.H{
		"posts": a.postService.List(),
	})
}

// getResponse answers a chatbot message. The exchange is recorded
// best-effort; the reply always reaches the caller.
func (a *AppController) getResponse(c *gin.Context) {
	user := session.GetLoginUser(c)

	var form ChatForm
	if err := c.ShouldBindJSON(&form); err != nil {
		form.Message = ""
	}

	reply := a.chatService.Respond(user.Id, form.Message)
	c.JSON(http.StatusOK, gin.H{"response": reply})
}

// submitMood appends one mood row for the logged-in user.
func (a *AppController) submitMood(c *gin.Context) {
	user := session.GetLoginUser(c)

	var form MoodForm
	if err := c.ShouldBindJSON(&form); err != nil || form.Mood == "" {
		c.JSON(http.StatusOK, gin.H{"message": I18nWeb(c, "pages.mood.saveFailed")})
		return
	}

	if err := a.moodService.Add(user.Id, form.Mood); err != nil {
		logger.Warning("failed to save mood:", err)
		c.JSON(http.StatusOK, gin.H{"message": I18nWeb(c, "pages.mood.saveFailed")})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": I18nWeb(c, "pages.mood.saved", "Mood=="+form.Mood)})
}

// bookAppointment inserts a booking and goes home either way; an insert
// failure is only logged.
func (a *AppController) bookAppointment(c *gin.Context) {
	user := session.GetLoginUser(c)

	var form BookingForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := a.bookingService.Add(user.Id, form.Counselor, form.Date, form.Time); err != nil {
		logger.Warning("failed to save booking:", err)
	}
	c.Redirect(http.StatusFound, "/")
}

// adminDashboard renders the aggregate statistics page.
func (a *AppController) adminDashboard(c *gin.Context) {
	stats := a.analyticsService.GetDashboardStats()
	html(c, "admin_dashboard.html", "pages.admin.title", gin.H{
		"stats": stats,
	})
}
