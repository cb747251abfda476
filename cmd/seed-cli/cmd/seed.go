package cmd

import (
	"encoding/hex"
	"fmt"

	"seed-validator/internal/service"

	"github.com/spf13/cobra"
)

var passphrase string

var seedCmd = &cobra.Command{
	Use:   "seed [words...]",
	Short: "由助记词派生种子",
	Long:  `校验助记词后使用 PBKDF2-HMAC-SHA512 派生 64 字节种子，以十六进制输出。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		phrase, err := readPhrase(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		seed, err := service.NewSeedService(policy()).DeriveSeed(phrase, passphrase)
		if err != nil {
			return resultError(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(seed))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "可选密码 (第25个单词)")
	rootCmd.AddCommand(seedCmd)
}
