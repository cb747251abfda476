package handler

import (
	"encoding/hex"
	"net/http"

	"seed-validator/internal/handler/request"
	"seed-validator/internal/handler/response"
	"seed-validator/internal/service"
	"seed-validator/pkg/bip39"
	"seed-validator/pkg/errno"
	"seed-validator/pkg/validator"

	"github.com/gin-gonic/gin"
)

type SeedHandler struct {
	svc            service.SeedService
	maxPhraseBytes int
}

func NewSeedHandler(svc service.SeedService, maxPhraseBytes int) *SeedHandler {
	return &SeedHandler{svc: svc, maxPhraseBytes: maxPhraseBytes}
}

// Validate 校验助记词
// @Summary 校验 BIP-39 助记词
// @Description 检查单词数、重复单词、单词表与校验位
// @Tags Seed
// @Accept x-www-form-urlencoded
// @Produce json
// @Param seed_phrase formData string true "助记词"
// @Success 200 {object} response.ValidateResponse
// @Failure 503 {object} response.ValidateResponse
// @Router / [post]
func (h *SeedHandler) Validate(c *gin.Context) {
	// 1. Bind (表单或 JSON，取决于 Content-Type)
	var req request.ValidateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Validation(c, http.StatusBadRequest, false, validator.GetErrorMsg(err))
		return
	}

	// 2. 长度保护
	if len(req.SeedPhrase) > h.maxPhraseBytes {
		response.Validation(c, http.StatusBadRequest, false, errno.ErrPayloadTooLarge.Message)
		return
	}

	// 3. 校验
	res := h.svc.Validate(req.SeedPhrase)
	status := http.StatusOK
	if res.Kind() == bip39.KindEnvironmentUnavailable {
		// 服务端问题，不是用户输入错误
		status = http.StatusServiceUnavailable
	}
	response.Validation(c, status, res.Valid, res.Message())
}

// DeriveSeed 派生种子
// @Summary 由助记词派生 BIP-39 种子
// @Description 助记词校验通过后，使用 PBKDF2-HMAC-SHA512 派生 64 字节种子
// @Tags Seed
// @Accept json
// @Produce json
// @Param request body request.DeriveSeedRequest true "助记词与可选密码"
// @Success 200 {object} response.Response
// @Router /api/v1/seed [post]
func (h *SeedHandler) DeriveSeed(c *gin.Context) {
	var req request.DeriveSeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errno.ErrBind.WithMessage(validator.GetErrorMsg(err)))
		return
	}

	if len(req.SeedPhrase) > h.maxPhraseBytes {
		response.Error(c, errno.ErrPayloadTooLarge)
		return
	}

	seed, err := h.svc.DeriveSeed(req.SeedPhrase, req.Passphrase)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{
		"seed": hex.EncodeToString(seed),
	})
}
