package dto

// LoginRequest 登录请求
type LoginRequest struct {
	Code     string `json:"code"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// VerifyCaptchaRequest 校验验证码
type VerifyCaptchaRequest struct {
	Code string `json:"code"`
}

// LoginInfo 会话信息
type LoginInfo struct {
	LoginAccount string `json:"login_account"`
	ExpTime      string `json:"exp_time"`
}
