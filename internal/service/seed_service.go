package service

import (
	"strconv"
	"strings"
	"time"

	"seed-validator/pkg/bip39"
	"seed-validator/pkg/logger"
	"seed-validator/pkg/monitor"

	"go.uber.org/zap"
)

type seedService struct {
	mnemonic *bip39.MnemonicService
}

// NewSeedService 创建种子服务。
// 日志中只记录单词数和结果类别，不记录助记词、密码和种子。
func NewSeedService(policy bip39.Policy) SeedService {
	return &seedService{
		mnemonic: bip39.NewMnemonicService(bip39.WithPolicy(policy)),
	}
}

func (s *seedService) Validate(phrase string) bip39.Result {
	res := s.mnemonic.ValidateMnemonic(phrase)
	s.recordValidation(phrase, res)
	return res
}

func (s *seedService) DeriveSeed(phrase, passphrase string) ([]byte, error) {
	start := time.Now()
	seed, err := s.mnemonic.MnemonicToSeed(phrase, passphrase)

	outcome := "ok"
	if err != nil {
		outcome = bip39.KindOf(err).String()
		if bip39.KindOf(err) == bip39.KindEnvironmentUnavailable {
			logger.Error("种子派生不可用", zap.Error(err))
		} else {
			logger.Debug("拒绝为无效助记词派生种子", zap.Stringer("kind", bip39.KindOf(err)))
		}
	}

	if monitor.Business != nil {
		monitor.Business.SeedDerivationsTotal.WithLabelValues(outcome).Inc()
		if err == nil {
			monitor.Business.SeedDerivationDuration.Observe(time.Since(start).Seconds())
		}
	}
	return seed, err
}

func (s *seedService) Generate(bitSize int) (string, error) {
	mnemonic, err := s.mnemonic.GenerateMnemonic(bitSize)
	if err != nil {
		logger.Warn("生成助记词失败", zap.Int("bits", bitSize), zap.Error(err))
		return "", err
	}
	if monitor.Business != nil {
		words := strconv.Itoa(len(strings.Fields(mnemonic)))
		monitor.Business.MnemonicsGenerated.WithLabelValues(words).Inc()
	}
	return mnemonic, nil
}

func (s *seedService) recordValidation(phrase string, res bip39.Result) {
	kind := res.Kind()
	if monitor.Business != nil {
		label := "valid"
		if !res.Valid {
			label = kind.String()
		}
		monitor.Business.ValidationsTotal.WithLabelValues(label).Inc()
	}

	switch {
	case res.Valid:
		logger.Debug("助记词校验通过", zap.Int("words", len(bip39.Normalize(phrase))))
	case kind == bip39.KindEnvironmentUnavailable:
		// 部署缺陷，不是用户输入问题
		logger.Error("助记词校验环境不可用", zap.Error(res.Err))
	default:
		logger.Debug("助记词校验失败",
			zap.Int("words", len(bip39.Normalize(phrase))),
			zap.Stringer("kind", kind))
	}
}
