package response

import (
	"net/http"

	"seed-validator/pkg/errno"

	"github.com/gin-gonic/gin"
)

// Response defines the standard JSON structure
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"msg"`
	Data    interface{} `json:"data"`
}

// ValidateResponse 校验接口的返回结构。
// 字段名 valid / error 由前端页面直接读取，不能修改。
type ValidateResponse struct {
	Valid bool    `json:"valid"`
	Error *string `json:"error"`
}

// Success returns a success response with data
func Success(c *gin.Context, data interface{}) {
	if data == nil {
		data = gin.H{} // Return empty object instead of null
	}
	c.JSON(http.StatusOK, Response{
		Code:    errno.OK.Code,
		Message: errno.OK.Message,
		Data:    data,
	})
}

// Error returns an error response
func Error(c *gin.Context, err error) {
	code, msg := errno.Decode(err)
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: msg,
		Data:    gin.H{},
	})
}

// Validation 写出 {"valid": bool, "error": string|null}
func Validation(c *gin.Context, status int, valid bool, msg string) {
	resp := ValidateResponse{Valid: valid}
	if !valid {
		resp.Error = &msg
	}
	c.JSON(status, resp)
}
