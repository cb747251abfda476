package request

// ValidateRequest 校验请求，表单字段名 seed_phrase 是前端依赖的协议
type ValidateRequest struct {
	SeedPhrase string `form:"seed_phrase" json:"seed_phrase"`
}

// DeriveSeedRequest 派生种子请求
type DeriveSeedRequest struct {
	SeedPhrase string `json:"seed_phrase" binding:"required"`
	Passphrase string `json:"passphrase" binding:"max=1024"` // 可选
}
