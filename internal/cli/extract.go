package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roboco-io/docx2markdown/internal/convert"
	"github.com/roboco-io/docx2markdown/internal/docx"
	"github.com/roboco-io/docx2markdown/internal/images"
	"github.com/roboco-io/docx2markdown/internal/ir"
)

var (
	extractOutput      string
	extractFormat      string
	extractPrettyPrint bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "DOCX 문서에서 IR(중간 표현) 추출",
	Long: `DOCX 문서를 변환 파이프라인에 통과시켜 IR(Intermediate
Representation)을 추출합니다.

렌더링 직전의 블록 목록과 수집된 참조 정의를 JSON 또는
텍스트(요약)로 출력합니다.

예시:
  docx2markdown extract document.docx
  docx2markdown extract document.docx -o output.json
  docx2markdown extract document.docx --format text`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "출력 파일 경로 (기본: stdout)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "json", "출력 형식 (json, text)")
	extractCmd.Flags().BoolVar(&extractPrettyPrint, "pretty", true, "JSON 들여쓰기 적용")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("파일을 찾을 수 없습니다: %s", inputPath)
	}

	doc, err := extractDocument(inputPath)
	if err != nil {
		return fmt.Errorf("문서 파싱 실패: %w", err)
	}

	output, err := formatExtractOutput(doc, extractFormat)
	if err != nil {
		return fmt.Errorf("출력 포맷팅 실패: %w", err)
	}

	if extractOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
	} else {
		if err := os.WriteFile(extractOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("파일 저장 실패: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "IR 추출 완료: %s\n", extractOutput)
	}

	return nil
}

// extractDocument runs the conversion pipeline but captures the block
// tree instead of the rendered markdown. Images are skipped since the
// IR dump is about structure.
func extractDocument(path string) (*ir.Document, error) {
	parsed, err := docx.Open(path)
	if err != nil {
		return nil, err
	}
	defer parsed.Close()

	opts := convert.DefaultOptions()
	opts.Images = images.ModeSkip
	return convert.New(opts, nil).Extract(parsed)
}

func formatExtractOutput(doc *ir.Document, format string) (string, error) {
	switch format {
	case "json":
		var data []byte
		var err error
		if extractPrettyPrint {
			data, err = json.MarshalIndent(doc, "", "  ")
		} else {
			data, err = json.Marshal(doc)
		}
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "text":
		return formatAsText(doc), nil

	default:
		return "", fmt.Errorf("지원하지 않는 출력 형식: %s", format)
	}
}

func formatAsText(doc *ir.Document) string {
	var sb strings.Builder

	for _, block := range doc.Blocks {
		switch block.Type {
		case ir.BlockTypeTable:
			fmt.Fprintf(&sb, "[표]\n%s\n\n", block.Text)
		case ir.BlockTypeHTML:
			fmt.Fprintf(&sb, "[HTML] %s\n\n", block.Text)
		default:
			sb.WriteString(block.Text + "\n\n")
		}
	}

	refs := &doc.References
	if !refs.IsEmpty() {
		sb.WriteString("---\n")
		fmt.Fprintf(&sb, "각주 %d개, 미주 %d개, 주석 %d개\n",
			len(refs.Footnotes), len(refs.Endnotes), len(refs.Comments))
	}

	return sb.String()
}
