package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFlagName = "config"

var cfgFile string

// nolint: gochecknoinits
func init() {
	pflag.StringVarP(&cfgFile, "config", "c", cfgFile,
		"从指定的文件读取配置，支持 JSON、TOML、YAML、HCL 或 Java properties 格式。")
}

// addConfigFlag 为服务添加配置标志并初始化配置加载逻辑：
// 未显式指定配置文件时，依次搜索当前目录、~/.<name>/ 和 /etc/<name>/。
func addConfigFlag(basename string, fs *pflag.FlagSet) {
	fs.AddFlag(pflag.Lookup(configFlagName))

	viper.AutomaticEnv()
	viper.SetEnvPrefix(strings.Replace(strings.ToUpper(basename), "-", "_", -1))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	cobra.OnInitialize(func() {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath(".")

			if names := strings.Split(basename, "-"); len(names) > 1 {
				if home, err := os.UserHomeDir(); err == nil {
					viper.AddConfigPath(filepath.Join(home, "."+names[0]))
				}
				viper.AddConfigPath(filepath.Join("/etc", names[0]))
			}

			viper.SetConfigName(basename)
		}

		if err := viper.ReadInConfig(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "错误：读取配置文件失败(%s)：%v\n", cfgFile, err)
			os.Exit(1)
		}
	})
}

// printConfig 以表格形式打印所有加载的配置项。
func printConfig() {
	if keys := viper.AllKeys(); len(keys) > 0 {
		fmt.Printf("%v 配置项：\n", progressMessage)
		table := uitable.New()
		table.Separator = " "
		table.MaxColWidth = 80
		table.RightAlign(0)

		for _, k := range keys {
			table.AddRow(fmt.Sprintf("%s:", k), viper.Get(k))
		}

		fmt.Printf("%v", table)
	}
	fmt.Println()
}
