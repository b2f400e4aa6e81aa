package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type formatInfo struct {
	Name        string
	Extensions  string
	Status      string
	Description string
}

var formats = []formatInfo{
	{
		Name:        "docx",
		Extensions:  ".docx, .docm",
		Status:      "✓ 지원",
		Description: "OOXML WordprocessingML (Word 2007+)",
	},
	{
		Name:        "doc",
		Extensions:  ".doc, .dot",
		Status:      "✗ 미지원",
		Description: "레거시 바이너리 Word 형식 (DOCX로 저장 후 변환)",
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "지원하는 입력 형식 목록",
	Long: `변환 가능한 입력 형식 목록을 표시합니다.

레거시 DOC 형식은 감지만 지원하며, Word에서 DOCX로 다시 저장한 뒤
변환해야 합니다.`,
	Run: runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "형식\t확장자\t상태\t설명")
	fmt.Fprintln(w, "----\t------\t----\t----")

	for _, f := range formats {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Name, f.Extensions, f.Status, f.Description)
	}
}
