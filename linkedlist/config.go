package linkedlist

import (
	"io"

	"sllist/log"
)

const (
	defaultName = "default"

	// DefaultSeparator is used by PrintWithSeparator when no separator is given.
	DefaultSeparator = " "
)

type Config struct {
	Name      string     // 链表名称, 用于日志和监控
	MaxNodes  int64      // 节点数量上限, 0 表示不限制
	Output    io.Writer  // Print 的输出, nil 表示 os.Stdout
	Separator string     // 默认分隔符
	Logger    log.Logger // nil 表示 log.Default()
}

func NewConfig() *Config {
	return &Config{
		Name:      defaultName,
		Separator: DefaultSeparator,
	}
}
