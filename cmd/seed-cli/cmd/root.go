package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"seed-validator/pkg/bip39"

	"github.com/spf13/cobra"
)

// 退出码: 1 = 助记词无效, 2 = 运行环境无法完成校验
const (
	exitInvalid     = 1
	exitUnavailable = 2
)

var allowDuplicates bool

// rootCmd 代表基础命令，没有子命令时直接调用
var rootCmd = &cobra.Command{
	Use:   "seed-cli",
	Short: "BIP-39 助记词校验工具",
	Long: `校验 BIP-39 助记词 (单词数、单词表、重复单词与校验位)，
并可派生 64 字节种子或生成新的助记词。`,
	SilenceUsage: true,
}

// exitError 携带进程退出码
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

// Execute 将所有子命令添加到根命令并设置标志
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if ee, ok := err.(*exitError); ok {
			os.Exit(ee.code)
		}
		os.Exit(exitInvalid)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&allowDuplicates, "allow-duplicates", false, "允许重复单词 (标准 BIP-39 行为)")
}

func policy() bip39.Policy {
	if allowDuplicates {
		return bip39.StandardPolicy()
	}
	return bip39.DefaultPolicy()
}

// readPhrase 优先使用参数，否则从 stdin 读取
func readPhrase(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(io.LimitReader(stdin, 64*1024))
	if err != nil {
		return "", fmt.Errorf("读取助记词失败: %w", err)
	}
	return string(b), nil
}

// resultError 将校验结果转换为带退出码的错误
func resultError(err error) error {
	if bip39.KindOf(err) == bip39.KindEnvironmentUnavailable {
		return &exitError{code: exitUnavailable, err: err}
	}
	return &exitError{code: exitInvalid, err: err}
}
