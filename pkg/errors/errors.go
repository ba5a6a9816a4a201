package errors

// Code 业务错误码
// Code 字段为对外暴露的字符串码，Name 作为失败响应中的 error 标签
type Code struct {
	Code    string
	Name    string
	Message string
}

// 错误码表（与前端约定，取值不可变更）
var (
	Success               = Code{"0", "Success", "成功"}
	Fail                  = Code{"-1", "Fail", "失败"}
	ServerError           = Code{"500", "ServerError", "服务异常，请稍后重试"}
	NoResourceFound       = Code{"40001", "NoResourceFound", "未找到资源"}
	InvalidParameter      = Code{"40002", "InvalidParameter", "参数无效"}
	AccountOrPassWordErr  = Code{"40003", "AccountOrPassWordErr", "账户或密码错误"}
	VerificationCodeError = Code{"40004", "VerificationCodeError", "验证码错误"}
	PleaseSignIn          = Code{"40005", "PleaseSignIn", "请登陆"}
	InvalidOrExpired      = Code{"40007", "InvalidOrExpired", "验证码过期或无效"}
	FailToken             = Code{"40012", "FailToken", "认证无效或过期"}
	SessionExpired        = Code{"40013", "SessionExpired", "会话过期或失效"}
)

var all = []Code{
	Success, Fail, ServerError, NoResourceFound, InvalidParameter, AccountOrPassWordErr,
	VerificationCodeError, PleaseSignIn, InvalidOrExpired, FailToken, SessionExpired,
}

// Lookup 按字符串码查找错误码
func Lookup(code string) (Code, bool) {
	for _, c := range all {
		if c.Code == code {
			return c, true
		}
	}
	return Code{}, false
}

// IsSuccess 判断是否为成功码
func (c Code) IsSuccess() bool {
	return c.Code == Success.Code
}

func (c Code) String() string {
	return c.Name + "(" + c.Code + ")"
}
