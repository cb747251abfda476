package handler

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed assets/index.html
var indexHTML []byte

// Index 返回校验页面，页面通过 fetch 以表单 POST seed_phrase 到 /
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}
