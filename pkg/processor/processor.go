package processor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jsoncmp/pkg/compare"
	"jsoncmp/pkg/path"
	"jsoncmp/pkg/suite"
	"jsoncmp/pkg/value"
)

// Report 表示一个用例的比较结果
type Report struct {
	Case    *suite.Case
	Outcome compare.Outcome
	// Err 文件读取、解析或定位子树失败，此时 Outcome 无意义
	Err error
}

// Failed 比较不一致或出错
func (r Report) Failed() bool {
	return r.Err != nil || !r.Outcome.Equal()
}

// Processor 批量比较 JSON 文件
type Processor struct {
	logger    *zap.Logger
	workers   int
	navigator *path.Navigator
}

type Option func(*Processor)

func WithLogger(logger *zap.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithWorkers 设置并发比较的数量，小于 1 时按 1 处理
func WithWorkers(n int) Option {
	return func(p *Processor) {
		p.workers = n
	}
}

// New 创建处理器
func New(opts ...Option) *Processor {
	p := &Processor{
		logger:    zap.NewNop(),
		workers:   1,
		navigator: &path.Navigator{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.workers < 1 {
		p.workers = 1
	}
	return p
}

// RunSuite 执行配置文件中的所有用例，配置中的 workers 优先
// 设置了目录时，目录中按 Include 过滤出的文件排在 Cases 之后
func (p *Processor) RunSuite(ctx context.Context, s *suite.Suite) ([]Report, error) {
	workers := p.workers
	if s.Workers > 0 {
		workers = s.Workers
	}

	cases := s.Cases
	if s.ExpectedDir != "" {
		dirCases, err := CasesFromDirs(s.ExpectedDir, s.ActualDir, s.Include)
		if err != nil {
			return nil, err
		}
		cases = append(append([]*suite.Case{}, s.Cases...), dirCases...)
	}

	return p.run(ctx, cases, workers)
}

// Run 执行用例，结果顺序与用例顺序一致
func (p *Processor) Run(ctx context.Context, cases []*suite.Case) ([]Report, error) {
	return p.run(ctx, cases, p.workers)
}

func (p *Processor) run(ctx context.Context, cases []*suite.Case, workers int) ([]Report, error) {
	reports := make([]Report, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = p.RunCase(gctx, c)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// RunCase 比较单个用例
func (p *Processor) RunCase(ctx context.Context, c *suite.Case) Report {
	report := Report{Case: c}

	if err := ctx.Err(); err != nil {
		report.Err = err
		return report
	}

	outcome, err := p.compareCase(c)
	if err != nil {
		p.logger.Debug("compare failed",
			zap.String("case", c.Title()),
			zap.Error(err),
		)
		report.Err = err
		return report
	}

	p.logger.Debug("compared",
		zap.String("case", c.Title()),
		zap.Bool("equal", outcome.Equal()),
		zap.Stringer("reason", outcome.Reason()),
		zap.Stringer("path", outcome.Path()),
	)

	report.Outcome = outcome
	return report
}

func (p *Processor) compareCase(c *suite.Case) (compare.Outcome, error) {
	at, err := path.Parse(c.At)
	if err != nil {
		return compare.Outcome{}, fmt.Errorf("parse at: %w", err)
	}

	initiative, err := p.load(c.Expected, at)
	if err != nil {
		return compare.Outcome{}, fmt.Errorf("expected: %w", err)
	}

	passive, err := p.load(c.Actual, at)
	if err != nil {
		return compare.Outcome{}, fmt.Errorf("actual: %w", err)
	}

	switch c.Mode {
	case suite.ModeObject:
		return compare.ObjectsAt(initiative, passive, at)
	case suite.ModeArray:
		return compare.ArraysAt(initiative, passive, at)
	default:
		return compare.Values(initiative, passive, at)
	}
}

// load 读取文档并定位到 at 所指的子树
func (p *Processor) load(file string, at path.Path) (value.Value, error) {
	doc, err := LoadDocument(file)
	if err != nil {
		return nil, err
	}

	node, err := p.navigator.Find(doc, at)
	if err != nil {
		return nil, fmt.Errorf("find '%s' in %s: %w", at, file, err)
	}

	return node, nil
}

// LoadDocument 读取 JSON 或 YAML 文件，按扩展名选择解析器
func LoadDocument(file string) (value.Value, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	// 移除 UTF-8 BOM
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	var doc value.Value
	if isYAML(file) {
		doc, err = value.ParseYAML(data)
	} else {
		doc, err = value.ParseJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	return doc, nil
}

func isYAML(file string) bool {
	ext := strings.ToLower(filepath.Ext(file))
	return ext == ".yaml" || ext == ".yml"
}
