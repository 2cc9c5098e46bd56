/*
- @Author: aztec
- @Date: 2024-03-01 09:55:18
- @Description: 因子分层。等数量分位法与前K后K法
- @
- @Copyright (c) 2024 by aztec, All Rights Reserved.
*/
package prep

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/aztecqt/qfactor/common"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// 分层结果写入的列名
const QuantileCol = "factor_quantile"

// WithFactorQuantile 添加因子分位数列
// 按by列分组（通常是日期列，可叠加条件分组列），组内对因子做等数量分层，
// 分位序号0~quantiles-1。因子缺失的行分位为NaN。by为空时整表视为一组
func WithFactorQuantile(df dataframe.DataFrame, factor string, quantiles int, by ...string) (dataframe.DataFrame, error) {
	if quantiles <= 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: quantiles=%d", common.ErrInvalidParameter, quantiles)
	}

	values, err := floatColumn(df, factor)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	groups, err := groupRows(df, by)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	labels := make([]float64, len(values))
	for i := range labels {
		labels[i] = math.NaN()
	}

	for _, rows := range groups {
		// 组内按因子值排序后，每行分配一个分位序号
		valid := make([]int, 0, len(rows))
		for _, r := range rows {
			if !math.IsNaN(values[r]) {
				valid = append(valid, r)
			}
		}
		if len(valid) == 0 {
			continue
		}

		slices.SortFunc(valid, func(a, b int) int {
			if values[a] < values[b] {
				return -1
			} else if values[a] > values[b] {
				return 1
			} else {
				return 0
			}
		})

		step := float64(quantiles)/float64(len(valid)) + 0.00001
		acc := 0.0
		for _, r := range valid {
			labels[r] = float64(int(acc))
			acc += step
		}
	}

	out := df.Mutate(series.New(labels, series.Float, QuantileCol))
	return out, out.Error()
}

// WithFactorTopK 前K后K的分层方法。一般用于截面品种数不多、无法分位数分层的情况
// 输出0、1、2，分别为做空、对冲、做多。因子缺失的行为NaN
// 做多做空组的数量并不一定等于topK：遇到并列时会多于topK；
// 一个品种同时进两组（topK大于数量一半）时划入对冲组
func WithFactorTopK(df dataframe.DataFrame, factor string, topK int, by ...string) (dataframe.DataFrame, error) {
	if topK <= 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: topK=%d", common.ErrInvalidParameter, topK)
	}

	values, err := floatColumn(df, factor)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	groups, err := groupRows(df, by)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	labels := make([]float64, len(values))
	for i := range labels {
		labels[i] = math.NaN()
	}

	for _, rows := range groups {
		valid := make([]int, 0, len(rows))
		for _, r := range rows {
			if !math.IsNaN(values[r]) {
				valid = append(valid, r)
			}
		}
		if len(valid) == 0 {
			continue
		}

		sorted := make([]float64, len(valid))
		for i, r := range valid {
			sorted[i] = values[r]
		}
		slices.Sort(sorted)

		k := topK
		if k > len(sorted) {
			k = len(sorted)
		}
		// 第k小与第k大作为两组的入选门槛
		loThreshold := sorted[k-1]
		hiThreshold := sorted[len(sorted)-k]

		for _, r := range valid {
			lo := values[r] <= loThreshold
			hi := values[r] >= hiThreshold
			if lo && hi {
				labels[r] = 1
			} else if hi {
				labels[r] = 2
			} else if lo {
				labels[r] = 0
			} else {
				labels[r] = 1
			}
		}
	}

	out := df.Mutate(series.New(labels, series.Float, QuantileCol))
	return out, out.Error()
}

// 取出浮点列
func floatColumn(df dataframe.DataFrame, name string) ([]float64, error) {
	if df.Error() != nil {
		return nil, df.Error()
	}
	if !slices.Contains(df.Names(), name) {
		return nil, fmt.Errorf("%w: column %q not found", common.ErrInvalidParameter, name)
	}
	return df.Col(name).Float(), nil
}

// 按by列的取值组合划分行。by为空时整表一组
func groupRows(df dataframe.DataFrame, by []string) (map[string][]int, error) {
	nrow := df.Nrow()
	if len(by) == 0 {
		all := make([]int, nrow)
		for i := range all {
			all[i] = i
		}
		return map[string][]int{"": all}, nil
	}

	keys := make([][]string, len(by))
	for i, name := range by {
		if !slices.Contains(df.Names(), name) {
			return nil, fmt.Errorf("%w: group column %q not found", common.ErrInvalidParameter, name)
		}
		keys[i] = df.Col(name).Records()
	}

	groups := map[string][]int{}
	for r := 0; r < nrow; r++ {
		parts := make([]string, len(by))
		for i := range by {
			parts[i] = keys[i][r]
		}
		key := strings.Join(parts, "\x1f")
		groups[key] = append(groups[key], r)
	}
	return groups, nil
}
