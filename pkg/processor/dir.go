package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jsoncmp/pkg/suite"
)

// CasesFromDirs 遍历检验目录，按相对路径与被检验目录中的文件配对
// include 为空时只处理 .json、.yaml 和 .yml 文件
// 被检验目录中缺少的文件仍生成用例，由比较时报告读取错误
func CasesFromDirs(expectedDir, actualDir, include string) ([]*suite.Case, error) {
	match := hasDocumentExt
	if include != "" {
		re, err := suite.CompileInclude(include)
		if err != nil {
			return nil, fmt.Errorf("include: %w", err)
		}
		match = func(rel string) bool {
			ok, err := re.MatchString(filepath.ToSlash(rel))
			return err == nil && ok
		}
	}

	var cases []*suite.Case
	err := filepath.Walk(expectedDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(expectedDir, p)
		if err != nil {
			return err
		}
		if !match(relPath) {
			return nil
		}

		cases = append(cases, &suite.Case{
			Name:     filepath.ToSlash(relPath),
			Expected: p,
			Actual:   filepath.Join(actualDir, relPath),
			Mode:     suite.ModeAuto,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", expectedDir, err)
	}

	return cases, nil
}

func hasDocumentExt(p string) bool {
	return strings.ToLower(filepath.Ext(p)) == ".json" || isYAML(p)
}
