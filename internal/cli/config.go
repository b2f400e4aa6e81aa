package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roboco-io/docx2markdown/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "설정 관리",
	Long: `docx2markdown 설정을 관리합니다.

설정 파일 위치: ~/.docx2markdown/config.yaml

하위 명령:
  show    현재 설정 표시
  init    기본 설정 파일 생성
  set     설정 값 변경
  path    설정 파일 경로 표시`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "현재 설정 표시",
	Long: `현재 적용된 설정을 표시합니다.

환경 변수가 설정되어 있으면 해당 값이 적용됩니다.
설정 파일이 없으면 기본값이 표시됩니다.`,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "기본 설정 파일 생성",
	Long: `기본 설정 파일을 ~/.docx2markdown/config.yaml에 생성합니다.

이미 설정 파일이 있는 경우 오류가 발생합니다.
기존 파일을 덮어쓰려면 --force 플래그를 사용하세요.`,
	RunE: runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "설정 값 변경",
	Long: `설정 값을 변경합니다.

지원하는 키:
  convert.strict_refs          참조 본문 누락 시 오류 처리 (true/false)
  convert.html_underline       밑줄을 <u> 태그로 출력 (true/false)
  convert.html_strikethrough   취소선을 <s> 태그로 출력 (true/false)
  convert.preserve_whitespace  문단 앞뒤 공백 유지 (true/false)
  convert.images               이미지 처리 방식 (inline, dir, skip)
  convert.images_dir           이미지 저장 디렉토리
  logging.level                로그 레벨 (quiet, normal, debug)

예시:
  docx2markdown config set convert.strict_refs true
  docx2markdown config set convert.images dir`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "설정 파일 경로 표시",
	Run: func(cmd *cobra.Command, args []string) {
		loader, err := newLoader()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "오류: %v\n", err)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), loader.ConfigPath())
	},
}

var configForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "기존 설정 파일 덮어쓰기")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	loader, err := newLoader()
	if err != nil {
		return fmt.Errorf("설정 로더 초기화 실패: %w", err)
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	if loader.Exists() {
		fmt.Fprintf(cmd.OutOrStdout(), "설정 파일: %s\n\n", loader.ConfigPath())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "설정 파일: (기본값 사용)\n\n")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("설정 출력 실패: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	fmt.Fprintln(cmd.OutOrStdout(), "환경 변수:")
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	envVars := []struct {
		key  string
		desc string
	}{
		{"DOCX2MD_STRICT_REFS", "참조 본문 누락 시 오류 처리"},
		{"DOCX2MD_HTML_STRIKE", "취소선을 <s> 태그로 출력"},
		{"DOCX2MD_IMAGES", "이미지 처리 방식"},
		{"DOCX2MD_IMAGES_DIR", "이미지 저장 디렉토리"},
		{"DOCX2MD_LOG_LEVEL", "로그 레벨"},
	}

	for _, ev := range envVars {
		status := "(미설정)"
		if value := os.Getenv(ev.key); value != "" {
			status = value
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", ev.key, ev.desc, status)
	}
	w.Flush()

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	loader, err := newLoader()
	if err != nil {
		return fmt.Errorf("설정 로더 초기화 실패: %w", err)
	}

	if loader.Exists() && !configForce {
		return fmt.Errorf("설정 파일이 이미 존재합니다: %s\n덮어쓰려면 --force 플래그를 사용하세요", loader.ConfigPath())
	}

	if err := loader.Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("설정 파일 생성 실패: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "설정 파일 생성됨: %s\n", loader.ConfigPath())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	loader, err := newLoader()
	if err != nil {
		return fmt.Errorf("설정 로더 초기화 실패: %w", err)
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	switch key {
	case "convert.strict_refs":
		cfg.Convert.StrictRefs, err = parseBoolValue(value)
	case "convert.html_underline":
		cfg.Convert.HTMLUnderline, err = parseBoolValue(value)
	case "convert.html_strikethrough":
		cfg.Convert.HTMLStrikethrough, err = parseBoolValue(value)
	case "convert.preserve_whitespace":
		cfg.Convert.PreserveWhitespace, err = parseBoolValue(value)

	case "convert.images":
		validModes := []string{"inline", "dir", "skip"}
		if !contains(validModes, value) {
			return fmt.Errorf("유효하지 않은 이미지 처리 방식: %s (지원: %s)", value, strings.Join(validModes, ", "))
		}
		cfg.Convert.Images = value

	case "convert.images_dir":
		cfg.Convert.ImagesDir = value

	case "logging.level":
		validLevels := []string{"quiet", "normal", "debug"}
		if !contains(validLevels, value) {
			return fmt.Errorf("유효하지 않은 로그 레벨: %s (지원: %s)", value, strings.Join(validLevels, ", "))
		}
		cfg.Logging.Level = value

	default:
		return fmt.Errorf("알 수 없는 설정 키: %s", key)
	}
	if err != nil {
		return err
	}

	if err := loader.Save(cfg); err != nil {
		return fmt.Errorf("설정 저장 실패: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "설정 변경됨: %s = %s\n", key, value)
	return nil
}

func parseBoolValue(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("유효하지 않은 불리언 값: %s", value)
	}
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
