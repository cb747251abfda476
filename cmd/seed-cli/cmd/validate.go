package cmd

import (
	"fmt"

	"seed-validator/internal/service"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [words...]",
	Short: "校验助记词",
	Long:  `校验 BIP-39 助记词。未提供参数时从标准输入读取。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		phrase, err := readPhrase(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		res := service.NewSeedService(policy()).Validate(phrase)
		if !res.Valid {
			return resultError(res.Err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Valid BIP39 seed phrase!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
