// Package controller provides the HTTP request handlers for the mindwell
// web application: account pages, the chatbot and mood APIs, the forum, and
// the admin dashboard.
package controller

import (
	"net/http"

	"github.com/mindwell-app/mindwell/logger"
	"github.com/mindwell-app/mindwell/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers,
// including the session gate on protected routes.
type BaseController struct{}

// checkLogin guards page routes: anonymous visitors are sent to the login
// form instead of the requested page.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, "/login")
		c.Abort()
	} else {
		c.Next()
	}
}

// checkLoginAPI guards JSON routes: anonymous callers get a please-login
// message and no effect is performed.
func (a *BaseController) checkLoginAPI(c *gin.Context) {
	if !session.IsLogin(c) {
		pureJsonMsg(c, http.StatusUnauthorized, false, I18nWeb(c, "pages.login.loginAgain"))
		c.Abort()
	} else {
		c.Next()
	}
}

// I18nWeb retrieves an internationalized message based on the current locale.
func I18nWeb(c *gin.Context, name string, params ...string) string {
	anyfunc, funcExists := c.Get("I18n")
	if !funcExists {
		logger.Warning("I18n function not exists in gin context!")
		return ""
	}
	i18nFunc, _ := anyfunc.(func(key string, keyParams ...string) string)
	msg := i18nFunc(name, params...)
	return msg
}
