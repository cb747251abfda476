package cmd

import (
	"fmt"

	"seed-validator/internal/service"

	"github.com/spf13/cobra"
)

var bitSize int

// newCmd 代表 new 命令
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "生成新的助记词",
	Long:  `生成一个新的随机 BIP-39 助记词。生成结果满足当前的重复单词策略。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mnemonic, err := service.NewSeedService(policy()).Generate(bitSize)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), mnemonic)
		return nil
	},
}

func init() {
	newCmd.Flags().IntVarP(&bitSize, "bits", "b", 256, "熵的位数: 128, 160, 192, 224 或 256")
	rootCmd.AddCommand(newCmd)
}
