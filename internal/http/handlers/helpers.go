package handlers

import (
	"github.com/gin-gonic/gin"
)

// abortWithError регистрирует ошибку сервиса для централизованного
// обработчика ошибок и прерывает цепочку.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
