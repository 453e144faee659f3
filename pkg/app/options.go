package app

import (
	cliFlag "github.com/maxiaolu1981/cretem/nexuscore/component-base/cli/flag"
)

// CliOptions 是应用配置选项的抽象：按分组暴露命令行标志并可校验。
type CliOptions interface {
	Flags() cliFlag.NamedFlagSets
	Validate() []error
}

// CompleteableOptions 支持在校验前补全默认值的选项。
type CompleteableOptions interface {
	Complete() error
}

// PrintableOptions 支持打印自身内容的选项。
type PrintableOptions interface {
	String() string
}
