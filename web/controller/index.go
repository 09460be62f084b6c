package controller

import (
	"errors"
	"net/http"

	"github.com/mindwell-app/mindwell/logger"
	"github.com/mindwell-app/mindwell/web/service"
	"github.com/mindwell-app/mindwell/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegisterForm represents the registration request structure.
type RegisterForm struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Confirm  string `json:"confirm" form:"confirm"`
}

// IndexController handles the public routes: home, login, registration,
// logout and language selection.
type IndexController struct {
	BaseController

	userService service.UserService
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
	g.GET("/logout", a.logout)
	g.GET("/set_language/:code", a.setLanguage)
}

// index renders the home page for both guests and logged-in users.
func (a *IndexController) index(c *gin.Context) {
	data := gin.H{}
	if user := session.GetLoginUser(c); user != nil {
		data["user"] = user.Username
	}
	html(c, "index.html", "pages.index.title", data)
}

func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, "/")
		return
	}
	html(c, "login.html", "pages.login.title", nil)
}

// login authenticates the submitted credentials and opens a session.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil || form.Email == "" || form.Password == "" {
		html(c, "login.html", "pages.login.title", gin.H{
			"message": I18nWeb(c, "pages.login.wrongCredentials"),
		})
		return
	}

	user, err := a.userService.Authenticate(form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			logger.Warningf("wrong credentials for %q, IP: %q", form.Email, getRemoteIp(c))
			html(c, "login.html", "pages.login.title", gin.H{
				"message": I18nWeb(c, "pages.login.wrongCredentials"),
			})
		} else {
			html(c, "login.html", "pages.login.title", gin.H{
				"message": I18nWeb(c, "pages.login.errorOccurred"),
			})
		}
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("Unable to save session:", err)
	}

	logger.Infof("%s logged in successfully, Ip Address: %s", user.Username, getRemoteIp(c))
	c.Redirect(http.StatusFound, "/")
}

func (a *IndexController) registerPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, "/")
		return
	}
	html(c, "register.html", "pages.register.title", nil)
}

// register creates a new account and sends the user to the login form.
func (a *IndexController) register(c *gin.Context) {
	var form RegisterForm

	if err := c.ShouldBind(&form); err != nil || form.Username == "" || form.Email == "" || form.Password == "" {
		html(c, "register.html", "pages.register.title", gin.H{
			"message": I18nWeb(c, "pages.register.errorOccurred"),
		})
		return
	}

	err := a.userService.Register(form.Username, form.Email, form.Password, form.Confirm)
	switch {
	case err == nil:
		logger.Infof("new account %q registered", form.Username)
		c.Redirect(http.StatusFound, "/login")
	case errors.Is(err, service.ErrPasswordMismatch):
		html(c, "register.html", "pages.register.title", gin.H{
			"message": I18nWeb(c, "pages.register.passwordMismatch"),
		})
	case errors.Is(err, service.ErrUserExists):
		html(c, "register.html", "pages.register.title", gin.H{
			"message": I18nWeb(c, "pages.register.userExists"),
		})
	default:
		logger.Warning("registration err:", err)
		html(c, "register.html", "pages.register.title", gin.H{
			"message": I18nWeb(c, "pages.register.errorOccurred"),
		})
	}
}

// logout clears the session and returns to the home page.
func (a *IndexController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out successfully", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("Unable to clear session:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, "/")
}

// setLanguage stores the language preference read by the localizer middleware.
func (a *IndexController) setLanguage(c *gin.Context) {
	code := c.Param("code")
	c.SetCookie("lang", code, 60*60*24*365, "/", "", false, false)
	c.Redirect(http.StatusTemporaryRedirect, "/")
}
