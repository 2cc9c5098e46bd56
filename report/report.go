/*
- @Author: aztec
- @Date: 2024-03-07 10:25:44
- @Description: 净值曲线的概要指标与表格展示
- @
- @Copyright (c) 2024 by aztec, All Rights Reserved.
*/
package report

import (
	"fmt"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// 一条净值曲线的概要指标
type CurveStats struct {
	TotalReturn        float64 // 区间总收益
	PeriodVolatility   float64 // 周期收益标准差
	MedianPeriodReturn float64 // 周期收益中位数
	MaxDrawdown        float64 // 最大回撤，负数
	Sharpe             float64 // 年化Sharpe
}

// PeriodReturns 净值曲线转周期简单收益序列，长度为len(curve)-1
func PeriodReturns(curve []float64) []float64 {
	if len(curve) < 2 {
		return nil
	}
	rets := make([]float64, len(curve)-1)
	for i := 1; i < len(curve); i++ {
		rets[i-1] = curve[i]/curve[i-1] - 1
	}
	return rets
}

// PeriodVariance 周期收益方差，用来衡量曲线的平滑程度
func PeriodVariance(curve []float64) float64 {
	rets := PeriodReturns(curve)
	if len(rets) < 2 {
		return 0
	}
	return stat.Variance(rets, nil)
}

// MaxDrawdown 最大回撤。净值相对历史峰值的最大跌幅，返回负数
func MaxDrawdown(curve []float64) float64 {
	if len(curve) == 0 {
		return 0
	}

	peak := curve[0]
	maxDD := 0.0
	for _, v := range curve {
		peak = math.Max(peak, v)
		dd := v/peak - 1
		if dd < maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// Sharpe 周期收益均值/标准差，按每年periodsPerYear个周期年化
// 波动为0时按收益方向给出±Inf，无收益给0
func Sharpe(curve []float64, periodsPerYear int) float64 {
	rets := PeriodReturns(curve)
	if len(rets) < 2 {
		return 0
	}

	mean := stat.Mean(rets, nil)
	sd := stat.StdDev(rets, nil)
	if sd == 0 {
		if mean > 0 {
			return math.Inf(1)
		} else if mean < 0 {
			return math.Inf(-1)
		} else {
			return 0
		}
	}
	return mean / sd * math.Sqrt(float64(periodsPerYear))
}

// Stats 一次算齐所有概要指标
func Stats(curve []float64, periodsPerYear int) CurveStats {
	s := CurveStats{
		PeriodVolatility:   math.Sqrt(PeriodVariance(curve)),
		MaxDrawdown:        MaxDrawdown(curve),
		Sharpe:             Sharpe(curve, periodsPerYear),
		MedianPeriodReturn: math.NaN(),
	}

	if len(curve) >= 2 && curve[0] != 0 {
		s.TotalReturn = curve[len(curve)-1]/curve[0] - 1
	}
	if med, err := mstats.Median(PeriodReturns(curve)); err == nil {
		s.MedianPeriodReturn = med
	}
	return s
}

// CurvesToTable 多份资金的净值矩阵（T×funds）转表格
// 资金份数太多时，最多显示n列
func CurvesToTable(curves [][]float64, n int) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetAutoIndex(true)

	if len(curves) == 0 {
		return t
	}

	l := len(curves[0])
	overlen := l > n
	header := table.Row{"period"}
	for i := 0; i < l && i < n; i++ {
		header = append(header, fmt.Sprintf("fund%d", i))
	}
	if overlen {
		header = append(header, fmt.Sprintf("%d more...", l-n))
	}
	t.AppendHeader(header)

	for p, row := range curves {
		r := table.Row{p}
		for i := 0; i < l && i < n; i++ {
			r = append(r, fmt.Sprintf("%.4f", row[i]))
		}
		t.AppendRow(r)
	}

	return t
}

// StatsToTable 概要指标转表格
func StatsToTable(s CurveStats) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"metric", "value"})
	t.AppendRow(table.Row{"total_return", fmt.Sprintf("%.4f", s.TotalReturn)})
	t.AppendRow(table.Row{"period_volatility", fmt.Sprintf("%.6f", s.PeriodVolatility)})
	t.AppendRow(table.Row{"median_period_return", fmt.Sprintf("%.6f", s.MedianPeriodReturn)})
	t.AppendRow(table.Row{"max_drawdown", fmt.Sprintf("%.4f", s.MaxDrawdown)})
	t.AppendRow(table.Row{"sharpe", fmt.Sprintf("%.4f", s.Sharpe)})
	return t
}
