/*
- @Author: aztec
- @Date: 2024-02-27 09:28:31
- @Description: 由分位标签构造持仓权重矩阵
- @
- @Copyright (c) 2024 by aztec, All Rights Reserved.
*/
package evaluate

import (
	"fmt"
	"math"

	"github.com/aztecqt/qfactor/common"
)

// QuantileWeights 做多指定分位的品种，层内等权，权重绝对值之和为1
// 输出行与输入截面一一对应。本层无品种的截面输出全0（空仓）
// 注意：产出的是信号期权重，喂给backtest前需要用ShiftToExit移到出场期
func QuantileWeights(seq PrepResultSeq, quantile int) ([][]float64, error) {
	if quantile < 0 || quantile >= seq.Quantiles {
		return nil, fmt.Errorf("%w: quantile=%d, quantiles=%d", common.ErrInvalidParameter, quantile, seq.Quantiles)
	}

	out := make([][]float64, len(seq.Data))
	for i, pr := range seq.Data {
		row := make([]float64, len(pr.Details))

		count := 0
		for _, d := range pr.Details {
			if d.Quantile == quantile {
				count++
			}
		}
		if count > 0 {
			w := 1.0 / float64(count)
			for j, d := range pr.Details {
				if d.Quantile == quantile {
					row[j] = w
				}
			}
		}
		out[i] = row
	}
	return out, nil
}

// LongShortWeights 做多最高分位、做空最低分位的对冲权重
// 多头共0.5、空头共-0.5，权重绝对值之和为1
func LongShortWeights(seq PrepResultSeq) ([][]float64, error) {
	if seq.Quantiles < 2 {
		return nil, fmt.Errorf("%w: quantiles=%d, need at least 2 for long-short", common.ErrInvalidParameter, seq.Quantiles)
	}

	top := seq.Quantiles - 1
	out := make([][]float64, len(seq.Data))
	for i, pr := range seq.Data {
		row := make([]float64, len(pr.Details))

		nLong, nShort := 0, 0
		for _, d := range pr.Details {
			if d.Quantile == top {
				nLong++
			} else if d.Quantile == 0 {
				nShort++
			}
		}

		for j, d := range pr.Details {
			if d.Quantile == top && nLong > 0 {
				row[j] = 0.5 / float64(nLong)
			} else if d.Quantile == 0 && nShort > 0 {
				row[j] = -0.5 / float64(nShort)
			}
		}
		out[i] = row
	}
	return out, nil
}

// ShiftToExit 将信号期权重下移到出场期
// 行t的权重吃的是行t的收益，所以入场信号需要向后平移持仓周期数
// 移出来的前periods行填NaN，backtest会按无持仓处理
func ShiftToExit(weights [][]float64, periods int) ([][]float64, error) {
	if periods < 0 {
		return nil, fmt.Errorf("%w: shift periods=%d", common.ErrInvalidParameter, periods)
	}

	out := make([][]float64, len(weights))
	for i := range weights {
		row := make([]float64, len(weights[i]))
		if i < periods {
			for j := range row {
				row[j] = math.NaN()
			}
		} else {
			copy(row, weights[i-periods])
		}
		out[i] = row
	}
	return out, nil
}
