package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roboco-io/docx2markdown/internal/config"
	"github.com/roboco-io/docx2markdown/internal/convert"
	"github.com/roboco-io/docx2markdown/internal/docx"
	"github.com/roboco-io/docx2markdown/internal/images"
)

var (
	convertOutput     string
	convertImagesDir  string
	convertSkipImages bool
	convertStrictRefs bool
	convertHTMLStrike bool
	convertKeepSpace  bool
	convertVerbose    bool
	convertQuiet      bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "DOCX 문서를 Markdown으로 변환",
	Long: `DOCX 문서를 Markdown으로 변환합니다.

기본적으로 이미지는 base64 데이터 URI로 본문에 포함됩니다.
--images-dir를 지정하면 이미지를 파일로 저장하고 경로로 연결합니다.

환경 변수:
  DOCX2MD_STRICT_REFS=true  참조 본문 누락 시 오류 처리
  DOCX2MD_IMAGES=xxx        이미지 처리 방식 (inline, dir, skip)
  DOCX2MD_IMAGES_DIR=xxx    이미지 저장 디렉토리

예시:
  docx2markdown convert document.docx
  docx2markdown convert document.docx -o output.md
  docx2markdown convert document.docx --images-dir ./images
  docx2markdown convert document.docx --strict-refs`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "출력 파일 경로 (기본: stdout)")
	convertCmd.Flags().StringVar(&convertImagesDir, "images-dir", "", "이미지를 파일로 저장할 디렉토리")
	convertCmd.Flags().BoolVar(&convertSkipImages, "skip-images", false, "이미지 제외")
	convertCmd.Flags().BoolVar(&convertStrictRefs, "strict-refs", false, "참조 본문 누락 시 오류 처리")
	convertCmd.Flags().BoolVar(&convertHTMLStrike, "html-strike", false, "취소선을 ~~ 대신 <s> 태그로 출력")
	convertCmd.Flags().BoolVar(&convertKeepSpace, "preserve-whitespace", false, "문단 앞뒤 공백 유지")
	convertCmd.Flags().BoolVarP(&convertVerbose, "verbose", "v", false, "상세 출력")
	convertCmd.Flags().BoolVarP(&convertQuiet, "quiet", "q", false, "조용한 모드")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	f, err := os.Open(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("파일을 찾을 수 없습니다: %s", inputPath)
		}
		return fmt.Errorf("파일을 열 수 없습니다: %w", err)
	}
	format, err := docx.DetectFormatFromReader(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("파일 형식 감지 실패: %w", err)
	}
	switch format {
	case docx.FormatDoc:
		return fmt.Errorf("레거시 DOC(OLE) 형식은 지원하지 않습니다. Word에서 DOCX로 저장 후 다시 시도하세요: %s", inputPath)
	case docx.FormatUnknown:
		return fmt.Errorf("지원하지 않는 파일 형식입니다: %s", filepath.Ext(inputPath))
	}

	opts, cfg, err := convertOptions(cmd)
	if err != nil {
		return err
	}

	log := config.NewLogger(logLevel(cfg))
	defer func() { _ = log.Sync() }()

	if convertVerbose && !convertQuiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "입력 파일: %s\n", inputPath)
		fmt.Fprintf(cmd.ErrOrStderr(), "파일 형식: %s\n", format)
	}

	conv := convert.New(opts, log)
	markdown, err := conv.ConvertFile(inputPath)
	if err != nil {
		return fmt.Errorf("문서 변환 실패: %w", err)
	}

	if convertOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), markdown)
	} else {
		if err := os.WriteFile(convertOutput, []byte(markdown), 0644); err != nil {
			return fmt.Errorf("파일 저장 실패: %w", err)
		}
		if !convertQuiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "변환 완료: %s\n", convertOutput)
		}
	}

	return nil
}

// convertOptions merges config-file defaults with explicitly set flags.
func convertOptions(cmd *cobra.Command) (convert.Options, *config.Config, error) {
	loader, err := newLoader()
	if err != nil {
		return convert.Options{}, nil, fmt.Errorf("설정 로더 초기화 실패: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return convert.Options{}, nil, fmt.Errorf("설정 로드 실패: %w", err)
	}

	opts := convert.Options{
		PreserveWhitespace: cfg.Convert.PreserveWhitespace,
		HTMLUnderline:      cfg.Convert.HTMLUnderline,
		HTMLStrikethrough:  cfg.Convert.HTMLStrikethrough,
		StrictReferences:   cfg.Convert.StrictRefs,
		Images:             imageMode(cfg.Convert.Images),
		ImagesDir:          cfg.Convert.ImagesDir,
	}

	flags := cmd.Flags()
	if flags.Changed("strict-refs") {
		opts.StrictReferences = convertStrictRefs
	}
	if flags.Changed("html-strike") {
		opts.HTMLStrikethrough = convertHTMLStrike
	}
	if flags.Changed("preserve-whitespace") {
		opts.PreserveWhitespace = convertKeepSpace
	}
	if convertImagesDir != "" {
		opts.Images = images.ModeSaveToDir
		opts.ImagesDir = convertImagesDir
	}
	if convertSkipImages {
		opts.Images = images.ModeSkip
	}

	return opts, cfg, nil
}

func imageMode(name string) images.Mode {
	switch name {
	case "dir":
		return images.ModeSaveToDir
	case "skip":
		return images.ModeSkip
	default:
		return images.ModeInline
	}
}

func logLevel(cfg *config.Config) string {
	switch {
	case convertQuiet:
		return "quiet"
	case convertVerbose:
		return "debug"
	default:
		return cfg.Logging.Level
	}
}
