/*
- @Author: aztec
- @Date: 2024-02-23 15:21:46
- @Description: 由价格截面序列构造收益矩阵与基准收益
- @
- @Copyright (c) 2024 by aztec, All Rights Reserved.
*/
package data

import (
	"fmt"
	"math"

	"github.com/aztecqt/qfactor/common"
)

const logPrefix = "data"

// ReturnsFromPrices 将价格截面序列转换为毛收益矩阵（1+r）
// 行t列j = p[t][j] / p[t-1][j]，记在出场期。首行以及价格缺失处为NaN
// backtest会把NaN按“本期无涨跌”处理
func ReturnsFromPrices(prices common.SectionSequence) ([][]float64, error) {
	if !prices.Valid() {
		err := fmt.Errorf("%w: invalid price sequence", common.ErrShapeMismatch)
		common.LogError(logPrefix, "%s", err.Error())
		return nil, err
	}

	m := len(prices.Data)
	n := len(prices.InstIds)
	out := make([][]float64, m)
	for t := 0; t < m; t++ {
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			if t == 0 {
				row[j] = math.NaN()
				continue
			}

			px0 := prices.Data[t-1].Values[j]
			px1 := prices.Data[t].Values[j]
			if math.IsNaN(px0) || math.IsNaN(px1) || px0 == 0 {
				row[j] = math.NaN()
			} else {
				row[j] = px1 / px0
			}
		}
		out[t] = row
	}
	return out, nil
}

// BenchmarkFromPrices 将基准价格序列转换为简单收益序列
// 首期收益为0，价格缺失处也为0（基准曲线在缺口处持平）
func BenchmarkFromPrices(prices []float64) []float64 {
	out := make([]float64, len(prices))
	for t := 1; t < len(prices); t++ {
		px0 := prices[t-1]
		px1 := prices[t]
		if math.IsNaN(px0) || math.IsNaN(px1) || px0 == 0 {
			out[t] = 0
		} else {
			out[t] = px1/px0 - 1
		}
	}
	return out
}
