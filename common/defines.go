/*
- @Author: aztec
- @Date: 2024-02-19 09:47:22
- @Description: 通用数据定义。截面数据、截面序列、日志
- @
- @Copyright (c) 2024 by aztec, All Rights Reserved.
*/
package common

import (
	"fmt"
	"slices"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
)

type FnLog func(format string, args ...interface{})

var logNormal FnLog
var logError FnLog

// 默认走logrus。外部如果有自己的日志系统，用Init替换掉即可
func init() {
	logNormal = func(format string, args ...interface{}) {
		logrus.Infof(format, args...)
	}
	logError = func(format string, args ...interface{}) {
		logrus.Errorf(format, args...)
	}
}

func Init(fnLogNormal, fnLogError FnLog) {
	logNormal = fnLogNormal
	logError = fnLogError
}

func LogNormal(prefix, format string, args ...interface{}) {
	if logNormal != nil {
		logNormal(fmt.Sprintf("[%s] %s", prefix, format), args...)
	}
}

func LogError(prefix, format string, args ...interface{}) {
	if logError != nil {
		logError(fmt.Sprintf("[%s] %s", prefix, format), args...)
	}
}

// 截面数据
// 某一时刻各个品种的某一数据。可以代表价格、因子值、持仓权重等数据
type SectionData struct {
	Time    time.Time // 时间
	InstIds []string  // 品种
	Values  []float64 // 值。长度与InstIds相同。缺失数据用NaN表示
}

func (s SectionData) Valid() bool {
	if len(s.InstIds) != len(s.Values) {
		return false
	}
	return true
}

func (s SectionData) ToTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetAutoIndex(true)
	t.SetTitle(s.Time.Format(time.DateTime))
	t.AppendHeader(table.Row{"InstId", "Value"})
	l := len(s.InstIds)
	for i := 0; i < l; i++ {
		t.AppendRow(table.Row{s.InstIds[i], s.Values[i]})
	}
	return t
}

// 截面序列
// 截面序列中的data，共享相同的InstIds，数量和顺序都需要一致
type SectionSequence struct {
	InstIds []string
	Data    []SectionData
}

func (s SectionSequence) Valid() bool {
	for _, sd := range s.Data {
		if !sd.Valid() {
			return false
		}

		if slices.Compare(sd.InstIds, s.InstIds) != 0 {
			return false
		}
	}

	return true
}

// 单行数据太多时，最多显示n列
func (s SectionSequence) ToTable(n int) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetAutoIndex(true)

	l := len(s.InstIds)
	overlen := l > n
	header := table.Row{"time"}
	for i := 0; i < l && i < n; i++ {
		header = append(header, s.InstIds[i])
	}
	if overlen {
		header = append(header, fmt.Sprintf("%d more...", l-n))
	}
	t.AppendHeader(header)

	for _, sd := range s.Data {
		row := table.Row{sd.Time.Format(time.DateTime)}
		for i := 0; i < l && i < n; i++ {
			row = append(row, sd.Values[i])
		}
		t.AppendRow(row)
	}

	return t
}
