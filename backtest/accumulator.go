/*
- @Author: aztec
- @Date: 2024-02-21 10:02:11
- @Description: 累积收益估算
- @精确计算收益非常麻烦（手续费、滑点、涨跌停无法入场等），这里只做估算，
- @用于不同因子之间的收益比较基本够用。更精确的计算请使用专用的回测引擎。
- @资金分成多份、错开入场、隔期调仓，以此平滑入场时机对净值的影响。
- @Copyright (c) 2024 by aztec, All Rights Reserved.
*/
package backtest

import (
	"fmt"
	"math"

	"github.com/aztecqt/qfactor/common"
)

const logPrefix = "backtest"

// 现金权重的取整精度。权重绝对值之和与1的偏差小于该值时视为浮点残渣
const cashWeightPrecision = 1e-5

// 数值是否缺失。NaN是唯一不等于自身的值，这里统一用显式谓词表达
func isMissing(v float64) bool {
	return math.IsNaN(v)
}

// 把一维序列提升为单列矩阵，用于单品种场景
func AsColumn(v []float64) [][]float64 {
	out := make([][]float64, len(v))
	for i, x := range v {
		out[i] = []float64{x}
	}
	return out
}

// SubPortfolioReturns 资金分成Funds份，第k份在第k期入场，之后每隔Freq期调仓
// returns为毛收益矩阵（1+r，出场期记账），weights为持仓权重矩阵，两者形状必须一致
// 返回 T×Funds 的净值矩阵，每列是一份资金的净值曲线
// 输入矩阵不会被修改，NaN清洗在内部副本上统一完成
func SubPortfolioReturns(returns, weights [][]float64, cfg CumConfig) ([][]float64, error) {
	if err := validate(returns, weights, nil, cfg); err != nil {
		return nil, err
	}

	rs, ws := cashAdjusted(returns, weights, cfg.RiskFree)
	return run(rs, ws, cfg), nil
}

// CumulativeReturns 多份资金净值的合成曲线（逐期取均值）
// benchmark非空时返回相对基准的超额收益：mean - cumprod(1+benchmark)
func CumulativeReturns(returns, weights [][]float64, cfg CumConfig, benchmark []float64) ([]float64, error) {
	if err := validate(returns, weights, benchmark, cfg); err != nil {
		return nil, err
	}

	rs, ws := cashAdjusted(returns, weights, cfg.RiskFree)
	sub := run(rs, ws, cfg)

	out := make([]float64, len(sub))
	for t, row := range sub {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		out[t] = sum / float64(len(row))
	}

	if benchmark != nil {
		acc := 1.0
		for t, b := range benchmark {
			acc *= 1 + b
			out[t] -= acc
		}
	}
	return out, nil
}

// 每份资金一个独立状态机，逐期同步推进
func run(rs, ws [][]float64, cfg CumConfig) [][]float64 {
	m := len(ws)
	cols := 0
	if m > 0 {
		cols = len(ws[0])
	}

	funds := make([]*fundState, cfg.Funds)
	for k := range funds {
		funds[k] = newFundState(k, cfg, cols)
	}

	out := make([][]float64, m)
	for t := 0; t < m; t++ {
		row := make([]float64, cfg.Funds)
		for k, f := range funds {
			row[k] = f.step(t, ws, rs)
		}
		out[t] = row
	}
	return out
}

// 前置校验。任何一项不满足都在资金计算开始前直接失败
func validate(returns, weights [][]float64, benchmark []float64, cfg CumConfig) error {
	if cfg.Funds < 1 || cfg.Freq < 1 {
		return failf("%w: funds=%d, freq=%d", common.ErrInvalidParameter, cfg.Funds, cfg.Freq)
	}

	if len(returns) != len(weights) {
		return failf("%w: %d return rows, %d weight rows", common.ErrShapeMismatch, len(returns), len(weights))
	}

	for t := range returns {
		if len(returns[t]) != len(weights[t]) {
			return failf("%w: row %d has %d return columns, %d weight columns",
				common.ErrShapeMismatch, t, len(returns[t]), len(weights[t]))
		}
		if len(returns[t]) != len(returns[0]) {
			return failf("%w: ragged row %d", common.ErrShapeMismatch, t)
		}
	}

	if benchmark != nil && len(benchmark) != len(returns) {
		return failf("%w: benchmark length %d, %d rows", common.ErrShapeMismatch, len(benchmark), len(returns))
	}
	return nil
}

func failf(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	common.LogError(logPrefix, "%s", err.Error())
	return err
}

// 注入现金列并清洗NaN
// 第0列为现金列：权重=1-Σ|w|（按1e-5精度取整去浮点残渣），收益=RiskFree
// returns中的NaN替换为1.0（本期无涨跌），weights中的NaN替换为0.0（无持仓）
func cashAdjusted(returns, weights [][]float64, riskFree float64) (rs, ws [][]float64) {
	m := len(weights)
	rs = make([][]float64, m)
	ws = make([][]float64, m)

	for t := 0; t < m; t++ {
		n := len(weights[t])
		rrow := make([]float64, n+1)
		wrow := make([]float64, n+1)

		absSum := 0.0
		for j := 0; j < n; j++ {
			r := returns[t][j]
			if isMissing(r) {
				r = 1.0
			}
			w := weights[t][j]
			if isMissing(w) {
				w = 0.0
			}
			rrow[j+1] = r
			wrow[j+1] = w
			absSum += math.Abs(w)
		}

		rrow[0] = riskFree
		wrow[0] = 1 - roundToPrecision(absSum)
		rs[t] = rrow
		ws[t] = wrow
	}
	return
}

func roundToPrecision(v float64) float64 {
	return math.Round(v/cashWeightPrecision) * cashWeightPrecision
}
