package suite

// Mode 定义根节点的比较方式
type Mode string

const (
	ModeAuto   Mode = "auto"   // 按根节点类型自动选择
	ModeObject Mode = "object" // 根节点必须是对象
	ModeArray  Mode = "array"  // 根节点必须是数组
)

// Case 表示一组待比较的文件
type Case struct {
	Name     string `yaml:"name,omitempty"`
	Expected string `yaml:"expected"`     // 检验文件
	Actual   string `yaml:"actual"`       // 被检验文件
	At       string `yaml:"at,omitempty"` // 只比较该路径下的子树
	Mode     Mode   `yaml:"mode,omitempty"`
}

// Title 返回用于输出的名称，未命名时使用被检验文件名
func (c *Case) Title() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Actual
}

// Suite 表示一个比较配置文件
type Suite struct {
	// ExpectedDir、ActualDir 目录模式，按相对路径配对后追加到 Cases
	ExpectedDir string `yaml:"expected_dir,omitempty"`
	ActualDir   string `yaml:"actual_dir,omitempty"`
	// Include 目录模式下的文件过滤，@pattern@ 形式的正则
	Include string  `yaml:"include,omitempty"`
	Workers int     `yaml:"workers,omitempty"`
	Cases   []*Case `yaml:"cases"`
}
