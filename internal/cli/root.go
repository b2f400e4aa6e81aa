// Package cli implements the docx2markdown command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roboco-io/docx2markdown/internal/config"
)

var (
	version = "dev"

	rootConfigPath string
)

var rootCmd = &cobra.Command{
	Use:   "docx2markdown",
	Short: "DOCX 문서를 Markdown으로 변환하는 도구",
	Long: `docx2markdown은 DOCX(Word) 문서를 Markdown으로 변환하는 도구입니다.

스타일 상속, 목록 번호 매기기, 병합 셀이 포함된 표, 각주/미주/주석,
하이퍼링크, 변경 추적 표시를 지원합니다.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "버전 정보 표시",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "docx2markdown %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "설정 파일 경로 (기본: ~/.docx2markdown/config.yaml)")
	rootCmd.AddCommand(versionCmd)
}

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLoader honors the --config override.
func newLoader() (*config.Loader, error) {
	if rootConfigPath != "" {
		return config.NewLoaderWithPath(rootConfigPath), nil
	}
	return config.NewLoader()
}
