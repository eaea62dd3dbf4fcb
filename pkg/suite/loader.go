package suite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dlclark/regexp2"
	"gopkg.in/yaml.v3"

	"jsoncmp/pkg/path"
)

// LoadFromFile 从文件加载比较配置
// 相对路径以配置文件所在目录为准
func LoadFromFile(filePath string) (*Suite, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, err
	}

	s.resolve(filepath.Dir(filePath))

	return s, nil
}

// Parse 解析并校验配置内容
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate 校验配置的合法性，并补全默认值
func (s *Suite) Validate() error {
	// 0 表示由调用方决定
	if s.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}

	if (s.ExpectedDir == "") != (s.ActualDir == "") {
		return fmt.Errorf("expected_dir and actual_dir must be set together")
	}

	if s.Include != "" {
		if s.ExpectedDir == "" {
			return fmt.Errorf("include requires expected_dir")
		}
		if _, err := CompileInclude(s.Include); err != nil {
			return fmt.Errorf("include: %w", err)
		}
	}

	for i, c := range s.Cases {
		if c == nil {
			return fmt.Errorf("case %d: empty case", i)
		}
		if err := ValidateCase(c); err != nil {
			return fmt.Errorf("case %d: %w", i, err)
		}
	}

	return nil
}

// ValidateCase 校验单个比较用例
func ValidateCase(c *Case) error {
	if c.Expected == "" {
		return fmt.Errorf("expected is required")
	}
	if c.Actual == "" {
		return fmt.Errorf("actual is required")
	}

	switch c.Mode {
	case "":
		c.Mode = ModeAuto
	case ModeAuto, ModeObject, ModeArray:
	default:
		return fmt.Errorf("unknown mode: %s", c.Mode)
	}

	if _, err := path.Parse(c.At); err != nil {
		return fmt.Errorf("at: %w", err)
	}

	return nil
}

// CompileInclude 编译文件过滤正则
// 支持 @pattern@ 和不带 @ 的写法
func CompileInclude(include string) (*regexp2.Regexp, error) {
	pattern := include
	if len(pattern) >= 2 && strings.HasPrefix(pattern, "@") && strings.HasSuffix(pattern, "@") {
		pattern = pattern[1 : len(pattern)-1]
	}

	if pattern == "" {
		return nil, fmt.Errorf("regex pattern cannot be empty")
	}

	re, err := regexp2.Compile(pattern, 0)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %w", err)
	}

	return re, nil
}

// resolve 将用例中的相对路径转换为相对 base 的路径
func (s *Suite) resolve(base string) {
	if s.ExpectedDir != "" {
		s.ExpectedDir = join(base, s.ExpectedDir)
		s.ActualDir = join(base, s.ActualDir)
	}
	for _, c := range s.Cases {
		c.Expected = join(base, c.Expected)
		c.Actual = join(base, c.Actual)
	}
}

func join(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
